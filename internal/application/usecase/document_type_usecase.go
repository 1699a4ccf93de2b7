package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

// DocumentTypeUseCase casos de uso para tipos de documento (datos paramétricos).
type DocumentTypeUseCase struct {
	repo repository.DocumentTypeRepository
}

// NewDocumentTypeUseCase construye el caso de uso.
func NewDocumentTypeUseCase(repo repository.DocumentTypeRepository) *DocumentTypeUseCase {
	return &DocumentTypeUseCase{repo: repo}
}

// Create registra un tipo de documento nuevo.
func (uc *DocumentTypeUseCase) Create(ctx context.Context, in dto.CreateDocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	dt := &entity.DocumentType{
		ID:   uuid.New().String(),
		Code: in.Code,
		Name: in.Name,
	}
	if err := uc.repo.Create(ctx, dt); err != nil {
		return nil, err
	}
	return &dto.DocumentTypeResponse{Code: dt.Code, Name: dt.Name}, nil
}

// List devuelve todos los tipos de documento.
func (uc *DocumentTypeUseCase) List(ctx context.Context) ([]*dto.DocumentTypeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentTypeResponse, 0, len(list))
	for _, dt := range list {
		out = append(out, &dto.DocumentTypeResponse{Code: dt.Code, Name: dt.Name})
	}
	return out, nil
}

// Delete elimina un tipo de documento por código.
// Falla con ErrDocumentTypeInUse si existen clientes que lo referencian.
func (uc *DocumentTypeUseCase) Delete(ctx context.Context, code string) error {
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrDocumentTypeNotFound
	}
	return uc.repo.Delete(ctx, code)
}
