package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/loyalty"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

// LoyaltyReportWriter puerto de render del reporte de fidelización.
// La implementación de infraestructura produce los bytes del .xlsx.
type LoyaltyReportWriter interface {
	Write(totals []loyalty.ClientTotal) ([]byte, error)
}

// LoyaltyReportUseCase genera el reporte de clientes fidelizados: clientes
// cuyas compras de los últimos 30 días superan el umbral del programa.
type LoyaltyReportUseCase struct {
	reports repository.ReportRepository
	writer  LoyaltyReportWriter
}

// NewLoyaltyReportUseCase construye el caso de uso.
func NewLoyaltyReportUseCase(reports repository.ReportRepository, writer LoyaltyReportWriter) *LoyaltyReportUseCase {
	return &LoyaltyReportUseCase{reports: reports, writer: writer}
}

// Generate arma el reporte con la ventana móvil [asOf − 30 días, asOf].
// La cota inferior es inclusiva: una compra fechada exactamente 30 días
// atrás entra en la ventana.
//
// Errores:
//   - domain.ErrNoPurchases   si no hay compras en la ventana.
//   - domain.ErrNoLoyalClients si ningún cliente supera el umbral.
func (uc *LoyaltyReportUseCase) Generate(ctx context.Context, asOf time.Time) (xlsxBytes []byte, filename string, err error) {
	rows, err := uc.reports.PurchasesSince(ctx, loyalty.WindowStart(asOf))
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", domain.ErrNoPurchases
	}

	totals := loyalty.Aggregate(rows)
	if len(totals) == 0 {
		return nil, "", domain.ErrNoLoyalClients
	}

	xlsxBytes, err = uc.writer.Write(totals)
	if err != nil {
		return nil, "", fmt.Errorf("generar xlsx: %w", err)
	}
	filename = fmt.Sprintf("reporte_fidelizacion_%s.xlsx", asOf.Format(dateLayout))
	return xlsxBytes, filename, nil
}
