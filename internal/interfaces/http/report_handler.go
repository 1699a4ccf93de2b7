package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler maneja los endpoints de reportes.
type ReportHandler struct {
	uc *usecase.LoyaltyReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.LoyaltyReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LoyalCustomers GET /reports/loyal-customers
//
// Descarga el reporte de fidelización en .xlsx: clientes cuyas compras de los
// últimos 30 días superan el umbral del programa. Acepta un parámetro opcional
// as_of=YYYY-MM-DD como fecha de referencia; por defecto usa la fecha actual.
// 404 si no hay compras en la ventana o ningún cliente califica.
func (h *ReportHandler) LoyalCustomers(c *fiber.Ctx) error {
	// La fecha de referencia por defecto es la fecha calendario de hoy, sin
	// componente horario: la cota inferior de la ventana compara contra
	// medianoche, de modo que una compra fechada exactamente 30 días atrás
	// queda incluida.
	now := time.Now()
	asOf := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "as_of debe tener formato YYYY-MM-DD"})
		}
		asOf = parsed
	}

	xlsxBytes, filename, err := h.uc.Generate(c.Context(), asOf)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPurchases):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_PURCHASES", Message: "No hay compras registradas en el último mes."})
		case errors.Is(err, domain.ErrNoLoyalClients):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_LOYAL_CLIENTS", Message: "No hay clientes que superen el monto mínimo para fidelización."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(xlsxBytes)
}
