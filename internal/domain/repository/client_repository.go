package repository

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para clientes.
// Los métodos Get devuelven nil, nil cuando no hay coincidencia.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	// GetByDocument busca por la llave natural (tipo de documento, número).
	GetByDocument(ctx context.Context, documentTypeID, documentNumber string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// Delete borra el cliente; la base cascadea el borrado de sus compras.
	Delete(ctx context.Context, id string) error
}
