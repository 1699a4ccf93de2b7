package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/clientes-api/internal/domain/loyalty"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte de fidelización.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// PurchasesSince trae las compras con purchase_date >= start unidas con su
// cliente y el tipo de documento. La agregación por cliente se hace en el
// caso de uso con aritmética decimal exacta.
func (r *ReportRepo) PurchasesSince(ctx context.Context, start time.Time) ([]loyalty.PurchaseRow, error) {
	const query = `
	SELECT
	    c.id              AS client_id,
	    dt.code           AS document_type,
	    c.document_number,
	    c.first_name,
	    c.last_name,
	    c.email,
	    c.phone,
	    p.amount,
	    p.purchase_date
	FROM purchases p
	JOIN clients        c  ON c.id  = p.client_id
	JOIN document_types dt ON dt.id = c.document_type_id
	WHERE p.purchase_date >= $1
	ORDER BY c.id, p.created_at, p.id`

	rows, err := r.pool.Query(ctx, query, start)
	if err != nil {
		return nil, fmt.Errorf("report.PurchasesSince: %w", err)
	}
	defer rows.Close()

	var results []loyalty.PurchaseRow
	for rows.Next() {
		var row loyalty.PurchaseRow
		if err := rows.Scan(
			&row.ClientID,
			&row.DocumentTypeCode,
			&row.DocumentNumber,
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&row.Phone,
			&row.Amount,
			&row.PurchaseDate,
		); err != nil {
			return nil, fmt.Errorf("report.PurchasesSince scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
