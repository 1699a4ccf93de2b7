package entity

import "time"

// Client representa un cliente registrado.
// La llave natural es el par (DocumentTypeID, DocumentNumber).
type Client struct {
	ID             string
	DocumentTypeID string
	DocumentNumber string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
