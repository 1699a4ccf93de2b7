package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/internal/domain"
)

// DocumentTypeHandler maneja las peticiones HTTP de tipos de documento.
type DocumentTypeHandler struct {
	uc *usecase.DocumentTypeUseCase
}

// NewDocumentTypeHandler construye el handler.
func NewDocumentTypeHandler(uc *usecase.DocumentTypeUseCase) *DocumentTypeHandler {
	return &DocumentTypeHandler{uc: uc}
}

// Create POST /api/document-types
func (h *DocumentTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dt, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un tipo de documento con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dt)
}

// List GET /api/document-types
func (h *DocumentTypeHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete DELETE /api/document-types/:code
//
// Protegido contra borrado: falla con 409 si hay clientes que referencian el tipo.
func (h *DocumentTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("code")); err != nil {
		switch {
		case errors.Is(err, domain.ErrDocumentTypeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Tipo de documento no válido"})
		case errors.Is(err, domain.ErrDocumentTypeInUse):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DOCUMENT_TYPE_IN_USE", Message: "el tipo de documento tiene clientes asociados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
