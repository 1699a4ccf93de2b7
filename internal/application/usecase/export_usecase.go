package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
)

// ExportUseCase genera la exportación CSV de un cliente con sus compras.
//
// El archivo tiene dos secciones separadas por una línea en blanco, con
// punto y coma como delimitador:
//
//	Datos del cliente
//	Tipo documento;Número de documento;Nombre;Apellido;Correo;Teléfono
//	CC;111;Ana;Gómez;ana@correo.co;3001234567
//
//	Compras del cliente
//	Fecha de compra;Monto;Descripción;Número de orden
//	2026-08-01;3000000.00;;ORD-1
type ExportUseCase struct {
	clients *ClientUseCase
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(clients *ClientUseCase) *ExportUseCase {
	return &ExportUseCase{clients: clients}
}

// ExportClientCSV resuelve el cliente con el mismo contrato que FindByDocument
// y devuelve los bytes del CSV junto con el nombre de archivo sugerido.
func (uc *ExportUseCase) ExportClientCSV(ctx context.Context, documentTypeCode, documentNumber string) (csvBytes []byte, filename string, err error) {
	detail, err := uc.clients.FindByDocument(ctx, documentTypeCode, documentNumber)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	records := [][]string{
		{"Datos del cliente"},
		{"Tipo documento", "Número de documento", "Nombre", "Apellido", "Correo", "Teléfono"},
		{
			detail.DocumentType.Code,
			detail.DocumentNumber,
			detail.FirstName,
			detail.LastName,
			detail.Email,
			detail.Phone,
		},
		{},
		{"Compras del cliente"},
		{"Fecha de compra", "Monto", "Descripción", "Número de orden"},
	}
	for _, p := range detail.Purchases {
		records = append(records, []string{
			p.PurchaseDate,
			p.Amount.StringFixed(2),
			p.Description,
			p.OrderNumber,
		})
	}
	if err := w.WriteAll(records); err != nil {
		return nil, "", fmt.Errorf("escribir CSV: %w", err)
	}

	filename = fmt.Sprintf("cliente_%s_%s.csv", detail.DocumentType.Code, detail.DocumentNumber)
	return buf.Bytes(), filename, nil
}
