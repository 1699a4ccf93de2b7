// Package excel implementa la generación del reporte de fidelización en
// formato .xlsx usando Excelize.
//
// Layout de la hoja Clientes_fidelizacion:
//
//	client_id | document_type | document_number | first_name | last_name | email | phone | total_last_month
//	uuid      | CC            | 111             | Ana        | Gómez     | ...   | ...   | 5500001.00
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/internal/domain/loyalty"
)

// SheetName nombre de la hoja del reporte.
const SheetName = "Clientes_fidelizacion"

var headers = []string{
	"client_id",
	"document_type",
	"document_number",
	"first_name",
	"last_name",
	"email",
	"phone",
	"total_last_month",
}

var _ usecase.LoyaltyReportWriter = (*LoyaltyReportWriter)(nil)

// LoyaltyReportWriter implementa usecase.LoyaltyReportWriter con Excelize.
type LoyaltyReportWriter struct{}

// NewLoyaltyReportWriter construye el generador.
func NewLoyaltyReportWriter() *LoyaltyReportWriter {
	return &LoyaltyReportWriter{}
}

// Write genera el libro con una fila por cliente fidelizado y devuelve sus bytes.
// Los totales llegan ya agregados con aritmética decimal; aquí solo se renderizan.
func (w *LoyaltyReportWriter) Write(totals []loyalty.ClientTotal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	// Formato numérico 0.00 para la columna de totales.
	totalStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("crear estilo de totales: %w", err)
	}

	for i, t := range totals {
		rowNum := i + 2
		row := []any{
			t.ClientID,
			t.DocumentTypeCode,
			t.DocumentNumber,
			t.FirstName,
			t.LastName,
			t.Email,
			t.Phone,
		}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", rowNum, err)
		}
		// El total se escribe como celda numérica a partir de su representación
		// decimal exacta; nunca pasa por float64.
		totalCell := fmt.Sprintf("H%d", rowNum)
		if err := f.SetCellDefault(SheetName, totalCell, t.Total.StringFixed(2)); err != nil {
			return nil, fmt.Errorf("escribir total fila %d: %w", rowNum, err)
		}
		if err := f.SetCellStyle(SheetName, totalCell, totalCell, totalStyle); err != nil {
			return nil, fmt.Errorf("aplicar estilo fila %d: %w", rowNum, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
