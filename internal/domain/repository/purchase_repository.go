package repository

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para compras.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	// ListByClient devuelve las compras en orden de inserción (created_at, id),
	// para que las exportaciones sean reproducibles.
	ListByClient(ctx context.Context, clientID string) ([]*entity.Purchase, error)
}
