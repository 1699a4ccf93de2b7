package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrMissingParams        = errors.New("parámetros requeridos: document_type y document_number")
	ErrDocumentTypeNotFound = errors.New("tipo de documento no válido")
	ErrDocumentTypeInUse    = errors.New("el tipo de documento tiene clientes asociados")
	ErrClientNotFound       = errors.New("cliente no encontrado")
	ErrNoPurchases          = errors.New("no hay compras registradas en el último mes")
	ErrNoLoyalClients       = errors.New("no hay clientes que superen el monto mínimo para fidelización")
)
