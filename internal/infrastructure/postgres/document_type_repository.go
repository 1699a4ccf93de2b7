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

var _ repository.DocumentTypeRepository = (*DocumentTypeRepo)(nil)

// DocumentTypeRepo implementación de DocumentTypeRepository (usable con pool o tx).
type DocumentTypeRepo struct {
	q Querier
}

// NewDocumentTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentTypeRepository(q Querier) *DocumentTypeRepo {
	return &DocumentTypeRepo{q: q}
}

// Create persiste un tipo de documento nuevo.
func (r *DocumentTypeRepo) Create(ctx context.Context, dt *entity.DocumentType) error {
	query := `INSERT INTO document_types (id, code, name) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, dt.ID, dt.Code, dt.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document_type: %w", err)
	}
	return nil
}

// GetByCode obtiene un tipo de documento por código. Devuelve nil, nil si no existe.
func (r *DocumentTypeRepo) GetByCode(ctx context.Context, code string) (*entity.DocumentType, error) {
	query := `SELECT id, code, name FROM document_types WHERE code = $1`
	var dt entity.DocumentType
	err := r.q.QueryRow(ctx, query, code).Scan(&dt.ID, &dt.Code, &dt.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document_type: %w", err)
	}
	return &dt, nil
}

// List devuelve todos los tipos de documento ordenados por código.
func (r *DocumentTypeRepo) List(ctx context.Context) ([]*entity.DocumentType, error) {
	query := `SELECT id, code, name FROM document_types ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list document_types: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentType
	for rows.Next() {
		var dt entity.DocumentType
		if err := rows.Scan(&dt.ID, &dt.Code, &dt.Name); err != nil {
			return nil, fmt.Errorf("scan document_type: %w", err)
		}
		list = append(list, &dt)
	}
	return list, rows.Err()
}

// Delete borra un tipo de documento por código. El FK de clients es RESTRICT:
// una violación se traduce a domain.ErrDocumentTypeInUse.
func (r *DocumentTypeRepo) Delete(ctx context.Context, code string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM document_types WHERE code = $1`, code)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrDocumentTypeInUse
		}
		return fmt.Errorf("delete document_type: %w", err)
	}
	return nil
}
