package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/internal/domain"
)

// ClientHandler maneja las peticiones HTTP de clientes: búsqueda por llave
// natural, exportación CSV y la API de registro.
type ClientHandler struct {
	uc     *usecase.ClientUseCase
	export *usecase.ExportUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, export *usecase.ExportUseCase) *ClientHandler {
	return &ClientHandler{uc: uc, export: export}
}

// Search GET /client/search?document_type=CC&document_number=123456789
//
// Devuelve el detalle del cliente con sus compras.
// 400 si falta un parámetro o el tipo de documento no existe; 404 si el
// cliente no existe.
func (h *ClientHandler) Search(c *fiber.Ctx) error {
	detail, err := h.uc.FindByDocument(c.Context(), c.Query("document_type"), c.Query("document_number"))
	if err != nil {
		return clientLookupError(c, err)
	}
	return c.JSON(detail)
}

// Export GET /client/export?document_type=CC&document_number=123456789
//
// Descarga la información del cliente y sus compras como CSV delimitado por
// punto y coma. Mismo contrato de errores que Search.
func (h *ClientHandler) Export(c *fiber.Ctx) error {
	csvBytes, filename, err := h.export.ExportClientCSV(c.Context(), c.Query("document_type"), c.Query("document_number"))
	if err != nil {
		return clientLookupError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(csvBytes)
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "document_type, document_number, first_name y last_name son requeridos"})
		case errors.Is(err, domain.ErrDocumentTypeNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DOCUMENT_TYPE", Message: "Tipo de documento no válido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cliente con ese tipo y número de documento"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/clients/:id
//
// Borra el cliente y, en cascada, todas sus compras.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// clientLookupError traduce los errores de resolución por llave natural al
// contrato HTTP compartido por Search y Export.
func clientLookupError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingParams):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PARAMS", Message: "Parámetros requeridos: document_type y document_number"})
	case errors.Is(err, domain.ErrDocumentTypeNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DOCUMENT_TYPE", Message: "Tipo de documento no válido"})
	case errors.Is(err, domain.ErrClientNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Cliente no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
