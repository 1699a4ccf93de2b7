package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra. Description y OrderNumber vacíos se guardan como NULL.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, client_id, amount, purchase_date, description, order_number, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ClientID, p.Amount, p.PurchaseDate, p.Description, p.OrderNumber, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// ListByClient devuelve las compras de un cliente en orden de inserción
// (created_at, id), para exportaciones reproducibles.
func (r *PurchaseRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Purchase, error) {
	query := `
		SELECT id, client_id, amount, purchase_date, COALESCE(description, ''), COALESCE(order_number, ''), created_at
		FROM purchases WHERE client_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.Amount, &p.PurchaseDate, &p.Description, &p.OrderNumber, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
