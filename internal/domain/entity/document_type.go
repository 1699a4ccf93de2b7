package entity

// DocumentType tipo de documento de identidad (CC, CE, TI, PP, NIT).
// Datos paramétricos: Client los referencia y su borrado está protegido
// mientras exista al menos un cliente asociado.
type DocumentType struct {
	ID   string
	Code string // corto y único, ej. "CC"
	Name string
}
