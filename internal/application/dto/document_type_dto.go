package dto

// CreateDocumentTypeRequest alta de tipo de documento.
type CreateDocumentTypeRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DocumentTypeResponse tipo de documento en listados.
type DocumentTypeResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
