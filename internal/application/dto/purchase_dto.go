package dto

import "github.com/shopspring/decimal"

// RegisterPurchaseRequest registro de una compra para un cliente.
type RegisterPurchaseRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	PurchaseDate string          `json:"purchase_date"` // YYYY-MM-DD
	Description  string          `json:"description,omitempty"`
	OrderNumber  string          `json:"order_number,omitempty"`
}

// PurchaseResponse compra creada o listada vía API de registro.
type PurchaseResponse struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	Amount       decimal.Decimal `json:"amount"`
	PurchaseDate string          `json:"purchase_date"`
	Description  string          `json:"description,omitempty"`
	OrderNumber  string          `json:"order_number,omitempty"`
}
