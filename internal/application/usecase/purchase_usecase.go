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

// PurchaseUseCase casos de uso para el registro de compras.
type PurchaseUseCase struct {
	purchases repository.PurchaseRepository
	clients   repository.ClientRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(purchases repository.PurchaseRepository, clients repository.ClientRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, clients: clients}
}

// Register registra una compra a nombre de un cliente existente.
// El monto debe ser no negativo y tener a lo sumo 2 decimales (NUMERIC(15,2)).
func (uc *PurchaseUseCase) Register(ctx context.Context, clientID string, in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if in.Amount.IsNegative() || in.Amount.Exponent() < -2 {
		return nil, domain.ErrInvalidInput
	}
	purchaseDate, err := time.Parse(dateLayout, in.PurchaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	purchase := &entity.Purchase{
		ID:           uuid.New().String(),
		ClientID:     client.ID,
		Amount:       in.Amount,
		PurchaseDate: purchaseDate,
		Description:  in.Description,
		OrderNumber:  in.OrderNumber,
		CreatedAt:    time.Now(),
	}
	if err := uc.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}
	return purchaseToResponse(purchase), nil
}

// ListByClient devuelve las compras de un cliente en orden de inserción.
func (uc *PurchaseUseCase) ListByClient(ctx context.Context, clientID string) ([]*dto.PurchaseResponse, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	list, err := uc.purchases.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, purchaseToResponse(p))
	}
	return out, nil
}

func purchaseToResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		ClientID:     p.ClientID,
		Amount:       p.Amount,
		PurchaseDate: p.PurchaseDate.Format(dateLayout),
		Description:  p.Description,
		OrderNumber:  p.OrderNumber,
	}
}
