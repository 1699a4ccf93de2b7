// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en pruebas y respeta la misma semántica que PostgreSQL:
// unicidad de la llave natural, borrado protegido de tipos de documento y
// borrado en cascada de compras.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/loyalty"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

// Store almacén en memoria compartido por los repositorios.
type Store struct {
	mu        sync.RWMutex
	docTypes  map[string]entity.DocumentType // key: code
	clients   map[string]entity.Client       // key: id
	purchases []entity.Purchase              // en orden de inserción
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		docTypes: make(map[string]entity.DocumentType),
		clients:  make(map[string]entity.Client),
	}
}

// DocumentTypes devuelve el repositorio de tipos de documento.
func (s *Store) DocumentTypes() repository.DocumentTypeRepository { return &documentTypeRepo{s} }

// Clients devuelve el repositorio de clientes.
func (s *Store) Clients() repository.ClientRepository { return &clientRepo{s} }

// Purchases devuelve el repositorio de compras.
func (s *Store) Purchases() repository.PurchaseRepository { return &purchaseRepo{s} }

// Reports devuelve el repositorio de reportes.
func (s *Store) Reports() repository.ReportRepository { return &reportRepo{s} }

// ── Tipos de documento ───────────────────────────────────────────────────────

type documentTypeRepo struct{ s *Store }

func (r *documentTypeRepo) Create(_ context.Context, dt *entity.DocumentType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.docTypes[dt.Code]; exists {
		return domain.ErrDuplicate
	}
	r.s.docTypes[dt.Code] = *dt
	return nil
}

func (r *documentTypeRepo) GetByCode(_ context.Context, code string) (*entity.DocumentType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	dt, ok := r.s.docTypes[code]
	if !ok {
		return nil, nil
	}
	return &dt, nil
}

func (r *documentTypeRepo) List(_ context.Context) ([]*entity.DocumentType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.DocumentType, 0, len(r.s.docTypes))
	for _, dt := range r.s.docTypes {
		d := dt
		list = append(list, &d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *documentTypeRepo) Delete(_ context.Context, code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	dt, ok := r.s.docTypes[code]
	if !ok {
		return nil
	}
	for _, c := range r.s.clients {
		if c.DocumentTypeID == dt.ID {
			return domain.ErrDocumentTypeInUse
		}
	}
	delete(r.s.docTypes, code)
	return nil
}

// ── Clientes ─────────────────────────────────────────────────────────────────

type clientRepo struct{ s *Store }

func (r *clientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.clients {
		if existing.DocumentTypeID == c.DocumentTypeID && existing.DocumentNumber == c.DocumentNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.clients[c.ID] = *c
	return nil
}

func (r *clientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *clientRepo) GetByDocument(_ context.Context, documentTypeID, documentNumber string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.clients {
		if c.DocumentTypeID == documentTypeID && c.DocumentNumber == documentNumber {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *clientRepo) Update(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrClientNotFound
	}
	r.s.clients[c.ID] = *c
	return nil
}

func (r *clientRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.clients, id)
	// Cascada: las compras no tienen ciclo de vida propio.
	kept := r.s.purchases[:0]
	for _, p := range r.s.purchases {
		if p.ClientID != id {
			kept = append(kept, p)
		}
	}
	r.s.purchases = kept
	return nil
}

// ── Compras ──────────────────────────────────────────────────────────────────

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[p.ClientID]; !ok {
		return domain.ErrClientNotFound
	}
	r.s.purchases = append(r.s.purchases, *p)
	return nil
}

func (r *purchaseRepo) ListByClient(_ context.Context, clientID string) ([]*entity.Purchase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Purchase
	for _, p := range r.s.purchases {
		if p.ClientID == clientID {
			item := p
			list = append(list, &item)
		}
	}
	return list, nil
}

// ── Reportes ─────────────────────────────────────────────────────────────────

type reportRepo struct{ s *Store }

func (r *reportRepo) PurchasesSince(_ context.Context, start time.Time) ([]loyalty.PurchaseRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var rows []loyalty.PurchaseRow
	for _, p := range r.s.purchases {
		if p.PurchaseDate.Before(start) {
			continue
		}
		client, ok := r.s.clients[p.ClientID]
		if !ok {
			continue
		}
		var docType entity.DocumentType
		for _, dt := range r.s.docTypes {
			if dt.ID == client.DocumentTypeID {
				docType = dt
				break
			}
		}
		rows = append(rows, loyalty.PurchaseRow{
			ClientID:         client.ID,
			DocumentTypeCode: docType.Code,
			DocumentNumber:   client.DocumentNumber,
			FirstName:        client.FirstName,
			LastName:         client.LastName,
			Email:            client.Email,
			Phone:            client.Phone,
			Amount:           p.Amount,
			PurchaseDate:     p.PurchaseDate,
		})
	}
	return rows, nil
}
