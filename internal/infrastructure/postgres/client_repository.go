package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, document_type_id, document_number, first_name, last_name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.DocumentTypeID, c.DocumentNumber, c.FirstName, c.LastName, c.Email, c.Phone,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil, nil si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, document_type_id, document_number, first_name, last_name, email, phone, created_at, updated_at
		FROM clients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get client")
}

// GetByDocument obtiene un cliente por su llave natural (tipo de documento, número).
func (r *ClientRepo) GetByDocument(ctx context.Context, documentTypeID, documentNumber string) (*entity.Client, error) {
	query := `
		SELECT id, document_type_id, document_number, first_name, last_name, email, phone, created_at, updated_at
		FROM clients WHERE document_type_id = $1 AND document_number = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, documentTypeID, documentNumber), "get client by document")
}

// Update actualiza los datos de contacto de un cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET first_name = $2, last_name = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete borra un cliente por ID; el FK de purchases cascadea el borrado.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *ClientRepo) scanOne(row pgx.Row, op string) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.DocumentTypeID, &c.DocumentNumber, &c.FirstName, &c.LastName,
		&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
