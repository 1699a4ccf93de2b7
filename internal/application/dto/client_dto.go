package dto

import "github.com/shopspring/decimal"

// DocumentTypeDTO tipo de documento embebido en respuestas de cliente.
type DocumentTypeDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PurchaseDTO compra dentro del detalle de un cliente.
type PurchaseDTO struct {
	Amount       decimal.Decimal `json:"amount"`
	PurchaseDate string          `json:"purchase_date"` // ISO 8601 (YYYY-MM-DD)
	Description  string          `json:"description"`
	OrderNumber  string          `json:"order_number"`
}

// ClientDetailResponse respuesta de GET /client/search.
type ClientDetailResponse struct {
	DocumentType   DocumentTypeDTO `json:"document_type"`
	DocumentNumber string          `json:"document_number"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Purchases      []PurchaseDTO   `json:"purchases"`
}

// CreateClientRequest alta de cliente (API de registro).
type CreateClientRequest struct {
	DocumentType   string `json:"document_type"` // código, ej. "CC"
	DocumentNumber string `json:"document_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// UpdateClientRequest edición de datos de contacto del cliente.
type UpdateClientRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ClientResponse cliente plano en respuestas de la API de registro.
type ClientResponse struct {
	ID             string `json:"id"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}
