package repository

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// DocumentTypeRepository define el puerto de persistencia para tipos de documento.
type DocumentTypeRepository interface {
	Create(ctx context.Context, dt *entity.DocumentType) error
	// GetByCode devuelve nil, nil si el código no existe.
	GetByCode(ctx context.Context, code string) (*entity.DocumentType, error)
	List(ctx context.Context) ([]*entity.DocumentType, error)
	// Delete retorna domain.ErrDocumentTypeInUse si hay clientes asociados.
	Delete(ctx context.Context, code string) error
}
