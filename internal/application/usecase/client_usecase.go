package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ClientUseCase casos de uso para clientes: consulta por llave natural y registro.
type ClientUseCase struct {
	clients   repository.ClientRepository
	docTypes  repository.DocumentTypeRepository
	purchases repository.PurchaseRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	clients repository.ClientRepository,
	docTypes repository.DocumentTypeRepository,
	purchases repository.PurchaseRepository,
) *ClientUseCase {
	return &ClientUseCase{clients: clients, docTypes: docTypes, purchases: purchases}
}

// FindByDocument busca un cliente por (código de tipo de documento, número)
// y devuelve su detalle con las compras en orden de inserción.
//
// Errores:
//   - domain.ErrMissingParams        si falta alguno de los dos parámetros.
//   - domain.ErrDocumentTypeNotFound si el código no corresponde a ningún tipo.
//   - domain.ErrClientNotFound       si no hay cliente con esa llave natural.
func (uc *ClientUseCase) FindByDocument(ctx context.Context, documentTypeCode, documentNumber string) (*dto.ClientDetailResponse, error) {
	if documentTypeCode == "" || documentNumber == "" {
		return nil, domain.ErrMissingParams
	}
	docType, err := uc.docTypes.GetByCode(ctx, documentTypeCode)
	if err != nil {
		return nil, err
	}
	if docType == nil {
		return nil, domain.ErrDocumentTypeNotFound
	}
	client, err := uc.clients.GetByDocument(ctx, docType.ID, documentNumber)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	purchases, err := uc.purchases.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	detail := &dto.ClientDetailResponse{
		DocumentType:   dto.DocumentTypeDTO{Code: docType.Code, Name: docType.Name},
		DocumentNumber: client.DocumentNumber,
		FirstName:      client.FirstName,
		LastName:       client.LastName,
		Email:          client.Email,
		Phone:          client.Phone,
		Purchases:      make([]dto.PurchaseDTO, 0, len(purchases)),
	}
	for _, p := range purchases {
		detail.Purchases = append(detail.Purchases, dto.PurchaseDTO{
			Amount:       p.Amount,
			PurchaseDate: p.PurchaseDate.Format(dateLayout),
			Description:  p.Description,
			OrderNumber:  p.OrderNumber,
		})
	}
	return detail, nil
}

// Create registra un cliente nuevo validando la llave natural.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.DocumentType == "" || in.DocumentNumber == "" || in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	docType, err := uc.docTypes.GetByCode(ctx, in.DocumentType)
	if err != nil {
		return nil, err
	}
	if docType == nil {
		return nil, domain.ErrDocumentTypeNotFound
	}
	existing, err := uc.clients.GetByDocument(ctx, docType.ID, in.DocumentNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:             uuid.New().String(),
		DocumentTypeID: docType.ID,
		DocumentNumber: in.DocumentNumber,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return &dto.ClientResponse{
		ID:             client.ID,
		DocumentType:   docType.Code,
		DocumentNumber: client.DocumentNumber,
		FirstName:      client.FirstName,
		LastName:       client.LastName,
		Email:          client.Email,
		Phone:          client.Phone,
	}, nil
}

// Update edita los datos de contacto de un cliente existente.
// La llave natural (tipo y número de documento) no se modifica.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) error {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	if in.FirstName != "" {
		client.FirstName = in.FirstName
	}
	if in.LastName != "" {
		client.LastName = in.LastName
	}
	if in.Email != "" {
		client.Email = in.Email
	}
	if in.Phone != "" {
		client.Phone = in.Phone
	}
	client.UpdatedAt = time.Now()
	return uc.clients.Update(ctx, client)
}

// Delete borra un cliente; sus compras se borran en cascada en la base.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	return uc.clients.Delete(ctx, id)
}
