// seed aplica el esquema y puebla los tipos de documento colombianos
// (CC, CE, TI, PP, NIT). Con --demo carga además clientes y compras de
// ejemplo para probar la búsqueda, la exportación y el reporte.
//
// Uso: go run ./cmd/seed [--demo]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/clientes-api/pkg/config"
)

const schemaPath = "internal/infrastructure/postgres/migrations/001_init.sql"

var documentTypes = []entity.DocumentType{
	{Code: "CC", Name: "Cédula de ciudadanía"},
	{Code: "CE", Name: "Cédula de extranjería"},
	{Code: "TI", Name: "Tarjeta de identidad"},
	{Code: "PP", Name: "Pasaporte"},
	{Code: "NIT", Name: "Número de identificación tributaria"},
}

func main() {
	demo := flag.Bool("demo", false, "cargar clientes y compras de ejemplo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fail("leer esquema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fail("aplicar esquema: %v", err)
	}
	fmt.Println("esquema aplicado")

	docTypeRepo := postgres.NewDocumentTypeRepository(pool)
	for i := range documentTypes {
		dt := documentTypes[i]
		dt.ID = uuid.New().String()
		err := docTypeRepo.Create(ctx, &dt)
		switch {
		case err == nil:
			fmt.Printf("tipo de documento %s creado\n", dt.Code)
		case errors.Is(err, domain.ErrDuplicate):
			fmt.Printf("tipo de documento %s ya existe\n", dt.Code)
		default:
			fail("crear tipo de documento %s: %v", dt.Code, err)
		}
	}

	if *demo {
		if err := seedDemo(ctx, pool); err != nil {
			fail("datos de ejemplo: %v", err)
		}
		fmt.Println("datos de ejemplo cargados")
	}
}

// seedDemo crea dos clientes alrededor del umbral de fidelización:
// Ana supera los 5'000.000 en los últimos 30 días, Bruno queda exactamente
// en el umbral y no debe aparecer en el reporte.
func seedDemo(ctx context.Context, q postgres.Querier) error {
	docTypeRepo := postgres.NewDocumentTypeRepository(q)
	clientRepo := postgres.NewClientRepository(q)
	purchaseRepo := postgres.NewPurchaseRepository(q)

	cc, err := docTypeRepo.GetByCode(ctx, "CC")
	if err != nil {
		return err
	}
	if cc == nil {
		return fmt.Errorf("tipo de documento CC no existe")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type demoPurchase struct {
		amount      string
		daysAgo     int
		description string
		orderNumber string
	}
	demoClients := []struct {
		number, firstName, lastName, email, phone string
		purchases                                 []demoPurchase
	}{
		{
			number: "111111111", firstName: "Ana", lastName: "Gómez",
			email: "ana.gomez@correo.co", phone: "3001234567",
			purchases: []demoPurchase{
				{amount: "3000000.00", daysAgo: 20, description: "Televisor", orderNumber: "ORD-1001"},
				{amount: "2500001.00", daysAgo: 5, description: "Portátil", orderNumber: "ORD-1002"},
			},
		},
		{
			number: "222222222", firstName: "Bruno", lastName: "Ríos",
			email: "bruno.rios@correo.co", phone: "3017654321",
			purchases: []demoPurchase{
				{amount: "5000000.00", daysAgo: 10, description: "Muebles"},
			},
		},
	}

	for _, dc := range demoClients {
		existing, err := clientRepo.GetByDocument(ctx, cc.ID, dc.number)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		client := &entity.Client{
			ID:             uuid.New().String(),
			DocumentTypeID: cc.ID,
			DocumentNumber: dc.number,
			FirstName:      dc.firstName,
			LastName:       dc.lastName,
			Email:          dc.email,
			Phone:          dc.phone,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := clientRepo.Create(ctx, client); err != nil {
			return err
		}
		for _, dp := range dc.purchases {
			amount, err := decimal.NewFromString(dp.amount)
			if err != nil {
				return err
			}
			purchase := &entity.Purchase{
				ID:           uuid.New().String(),
				ClientID:     client.ID,
				Amount:       amount,
				PurchaseDate: today.AddDate(0, 0, -dp.daysAgo),
				Description:  dp.description,
				OrderNumber:  dp.orderNumber,
				CreatedAt:    now,
			}
			if err := purchaseRepo.Create(ctx, purchase); err != nil {
				return err
			}
		}
	}
	return nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
