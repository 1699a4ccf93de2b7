// Package loyalty contiene las reglas del programa de fidelización:
// ventana móvil de compras, agregación por cliente y umbral de corte.
package loyalty

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// WindowDays días de la ventana móvil del reporte (no es mes calendario).
const WindowDays = 30

// Threshold monto mínimo de compras en la ventana para calificar.
// El corte es estrictamente mayor: un total exactamente igual no califica.
var Threshold = decimal.NewFromInt(5_000_000)

// PurchaseRow fila cruda compra + cliente + tipo de documento, tal como la
// devuelve el repositorio de reportes.
type PurchaseRow struct {
	ClientID         string
	DocumentTypeCode string
	DocumentNumber   string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Amount           decimal.Decimal
	PurchaseDate     time.Time
}

// ClientTotal total acumulado de un cliente dentro de la ventana.
type ClientTotal struct {
	ClientID         string
	DocumentTypeCode string
	DocumentNumber   string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Total            decimal.Decimal
}

// WindowStart fecha inicial (inclusiva) de la ventana móvil relativa a asOf.
func WindowStart(asOf time.Time) time.Time {
	return asOf.AddDate(0, 0, -WindowDays)
}

// Aggregate agrupa las filas por cliente, suma los montos con aritmética
// decimal exacta y devuelve solo los clientes cuyo total supera el umbral.
// El orden de salida es determinista: total descendente y, a igual total,
// número de documento ascendente.
func Aggregate(rows []PurchaseRow) []ClientTotal {
	totals := make(map[string]*ClientTotal, len(rows))
	for _, row := range rows {
		t, ok := totals[row.ClientID]
		if !ok {
			t = &ClientTotal{
				ClientID:         row.ClientID,
				DocumentTypeCode: row.DocumentTypeCode,
				DocumentNumber:   row.DocumentNumber,
				FirstName:        row.FirstName,
				LastName:         row.LastName,
				Email:            row.Email,
				Phone:            row.Phone,
				Total:            decimal.Zero,
			}
			totals[row.ClientID] = t
		}
		t.Total = t.Total.Add(row.Amount)
	}

	var qualified []ClientTotal
	for _, t := range totals {
		if t.Total.GreaterThan(Threshold) {
			qualified = append(qualified, *t)
		}
	}
	sort.Slice(qualified, func(i, j int) bool {
		if !qualified[i].Total.Equal(qualified[j].Total) {
			return qualified[i].Total.GreaterThan(qualified[j].Total)
		}
		return qualified[i].DocumentNumber < qualified[j].DocumentNumber
	})
	return qualified
}
