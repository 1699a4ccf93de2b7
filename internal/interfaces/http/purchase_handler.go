package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/internal/domain"
)

// PurchaseHandler maneja el registro y listado de compras de un cliente.
type PurchaseHandler struct {
	uc *usecase.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Register POST /api/clients/:id/purchases
func (h *PurchaseHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	purchase, err := h.uc.Register(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cliente no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser no negativo con máximo 2 decimales y purchase_date YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// List GET /api/clients/:id/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListByClient(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
