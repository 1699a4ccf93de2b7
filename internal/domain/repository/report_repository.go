package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/clientes-api/internal/domain/loyalty"
)

// ReportRepository consultas de solo lectura para el reporte de fidelización.
// Las implementaciones no modifican datos.
type ReportRepository interface {
	// PurchasesSince devuelve las compras con purchase_date >= start,
	// unidas con su cliente y el tipo de documento del cliente.
	PurchasesSince(ctx context.Context, start time.Time) ([]loyalty.PurchaseRow, error)
}
