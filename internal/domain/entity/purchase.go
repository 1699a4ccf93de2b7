package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra registrada a nombre de un cliente.
// El ciclo de vida depende del cliente: al borrar el cliente se borran sus compras.
type Purchase struct {
	ID           string
	ClientID     string
	Amount       decimal.Decimal // NUMERIC(15,2), nunca float
	PurchaseDate time.Time       // fecha calendario (sin hora)
	Description  string          // "" si no aplica
	OrderNumber  string          // "" si no aplica
	CreatedAt    time.Time
}
