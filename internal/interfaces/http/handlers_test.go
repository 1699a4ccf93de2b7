package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/clientes-api/internal/application/usecase"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/excel"
	"github.com/tu-usuario/clientes-api/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/clientes-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación Fiber completa sobre el almacén en memoria.
func buildTestApp(store *memory.Store) *fiber.App {
	docTypeUC := usecase.NewDocumentTypeUseCase(store.DocumentTypes())
	clientUC := usecase.NewClientUseCase(store.Clients(), store.DocumentTypes(), store.Purchases())
	purchaseUC := usecase.NewPurchaseUseCase(store.Purchases(), store.Clients())
	exportUC := usecase.NewExportUseCase(clientUC)
	reportUC := usecase.NewLoyaltyReportUseCase(store.Reports(), excel.NewLoyaltyReportWriter())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ClientUC:       clientUC,
		DocumentTypeUC: docTypeUC,
		PurchaseUC:     purchaseUC,
		ExportUC:       exportUC,
		ReportUC:       reportUC,
	})
	return app
}

func seedDocType(t *testing.T, store *memory.Store, code, name string) *entity.DocumentType {
	t.Helper()
	dt := &entity.DocumentType{ID: uuid.New().String(), Code: code, Name: name}
	require.NoError(t, store.DocumentTypes().Create(context.Background(), dt))
	return dt
}

func seedClient(t *testing.T, store *memory.Store, docTypeID, number, first, last string) *entity.Client {
	t.Helper()
	now := time.Now()
	c := &entity.Client{
		ID:             uuid.New().String(),
		DocumentTypeID: docTypeID,
		DocumentNumber: number,
		FirstName:      first,
		LastName:       last,
		Email:          first + "@correo.co",
		Phone:          "3000000000",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, store.Clients().Create(context.Background(), c))
	return c
}

func seedPurchase(t *testing.T, store *memory.Store, clientID, amount, date string) {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	require.NoError(t, store.Purchases().Create(context.Background(), &entity.Purchase{
		ID:           uuid.New().String(),
		ClientID:     clientID,
		Amount:       decimal.RequireFromString(amount),
		PurchaseDate: day,
		CreatedAt:    time.Now(),
	}))
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyContains(t *testing.T, resp *http.Response, want string) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), want)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /client/search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_ParametrosFaltantes_Retorna400(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	for _, path := range []string{
		"/client/search",
		"/client/search?document_type=CC",
		"/client/search?document_number=111",
	} {
		resp := doGet(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		bodyContains(t, resp, "MISSING_PARAMS")
		resp.Body.Close()
	}
}

func TestSearch_TipoDocumentoInvalido_Retorna400(t *testing.T) {
	store := memory.NewStore()
	seedDocType(t, store, "CC", "Cédula de ciudadanía")
	app := buildTestApp(store)

	resp := doGet(t, app, "/client/search?document_type=XX&document_number=111")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	bodyContains(t, resp, "Tipo de documento no válido")
}

func TestSearch_ClienteInexistente_Retorna404(t *testing.T) {
	store := memory.NewStore()
	seedDocType(t, store, "CC", "Cédula de ciudadanía")
	app := buildTestApp(store)

	resp := doGet(t, app, "/client/search?document_type=CC&document_number=999")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	bodyContains(t, resp, "Cliente no encontrado")
}

func TestSearch_DevuelveDetalleConCompras(t *testing.T) {
	store := memory.NewStore()
	dt := seedDocType(t, store, "CC", "Cédula de ciudadanía")
	client := seedClient(t, store, dt.ID, "111111111", "Ana", "Gómez")
	seedPurchase(t, store, client.ID, "3000000.00", "2026-08-11")
	seedPurchase(t, store, client.ID, "2500001.00", "2026-08-26")
	app := buildTestApp(store)

	resp := doGet(t, app, "/client/search?document_type=CC&document_number=111111111")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		DocumentType struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"document_type"`
		DocumentNumber string `json:"document_number"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Purchases      []struct {
			Amount       string `json:"amount"`
			PurchaseDate string `json:"purchase_date"`
		} `json:"purchases"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "CC", body.DocumentType.Code)
	assert.Equal(t, "Cédula de ciudadanía", body.DocumentType.Name)
	assert.Equal(t, "111111111", body.DocumentNumber)
	assert.Equal(t, "Ana", body.FirstName)
	assert.Equal(t, "Gómez", body.LastName)
	require.Len(t, body.Purchases, 2)
	assert.Equal(t, "2026-08-11", body.Purchases[0].PurchaseDate)
	assert.Equal(t, "3000000", body.Purchases[0].Amount)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /client/export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_DescargaCSV(t *testing.T) {
	store := memory.NewStore()
	dt := seedDocType(t, store, "CC", "Cédula de ciudadanía")
	client := seedClient(t, store, dt.ID, "111111111", "Ana", "Gómez")
	seedPurchase(t, store, client.ID, "3000000.00", "2026-08-11")
	app := buildTestApp(store)

	resp := doGet(t, app, "/client/export?document_type=CC&document_number=111111111")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Equal(t,
		`attachment; filename="cliente_CC_111111111.csv"`,
		resp.Header.Get(fiber.HeaderContentDisposition))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Datos del cliente")
	assert.Contains(t, string(raw), "Compras del cliente")
	assert.Contains(t, string(raw), "CC;111111111;Ana;Gómez")
	assert.Contains(t, string(raw), "2026-08-11;3000000.00")
}

func TestExport_MismoContratoDeErroresQueSearch(t *testing.T) {
	store := memory.NewStore()
	seedDocType(t, store, "CC", "Cédula de ciudadanía")
	app := buildTestApp(store)

	resp := doGet(t, app, "/client/export")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doGet(t, app, "/client/export?document_type=CC&document_number=999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /reports/loyal-customers
// ──────────────────────────────────────────────────────────────────────────────

func TestReporte_SinCompras_Retorna404(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	resp := doGet(t, app, "/reports/loyal-customers")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	bodyContains(t, resp, "No hay compras registradas en el último mes.")
}

func TestReporte_NingunClienteCalifica_Retorna404(t *testing.T) {
	store := memory.NewStore()
	dt := seedDocType(t, store, "CC", "Cédula de ciudadanía")
	client := seedClient(t, store, dt.ID, "222222222", "Bruno", "Ríos")
	seedPurchase(t, store, client.ID, "5000000.00", "2026-08-21")
	app := buildTestApp(store)

	resp := doGet(t, app, "/reports/loyal-customers?as_of=2026-08-31")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	bodyContains(t, resp, "No hay clientes que superen el monto mínimo para fidelización.")
}

func TestReporte_FechaInvalida_Retorna400(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	resp := doGet(t, app, "/reports/loyal-customers?as_of=31-08-2026")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	bodyContains(t, resp, "INVALID_DATE")
}

// Escenario completo: A supera el umbral, B queda exactamente en el umbral y
// el .xlsx descargado contiene una sola fila de datos.
func TestReporte_DescargaXlsxConClientesFieles(t *testing.T) {
	store := memory.NewStore()
	dt := seedDocType(t, store, "CC", "Cédula de ciudadanía")
	clientA := seedClient(t, store, dt.ID, "111111111", "Ana", "Gómez")
	clientB := seedClient(t, store, dt.ID, "222222222", "Bruno", "Ríos")
	seedPurchase(t, store, clientA.ID, "3000000.00", "2026-08-11")
	seedPurchase(t, store, clientA.ID, "2500001.00", "2026-08-26")
	seedPurchase(t, store, clientB.ID, "5000000.00", "2026-08-21")
	// Fuera de la ventana: no debe contar aunque el monto sea enorme.
	seedPurchase(t, store, clientB.ID, "9000000.00", "2026-07-30")
	app := buildTestApp(store)

	resp := doGet(t, app, "/reports/loyal-customers?as_of=2026-08-31")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t,
		`attachment; filename="reporte_fidelizacion_2026-08-31.xlsx"`,
		resp.Header.Get(fiber.HeaderContentDisposition))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err, "el cuerpo debe ser un .xlsx válido")
	defer f.Close()

	rows, err := f.GetRows(excel.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2, "encabezado + solo el cliente A")
	assert.Equal(t, "111111111", rows[1][2])
	assert.Equal(t, "Ana", rows[1][3])
	assert.Equal(t, "5500001.00", rows[1][7])
}

// Sin as_of la fecha de referencia es la fecha calendario de hoy: una compra
// fechada exactamente 30 días atrás entra en la ventana sin importar la hora
// a la que se consulte el reporte.
func TestReporte_FechaPorDefectoEsCalendario(t *testing.T) {
	store := memory.NewStore()
	dt := seedDocType(t, store, "CC", "Cédula de ciudadanía")
	client := seedClient(t, store, dt.ID, "111111111", "Ana", "Gómez")

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	seedPurchase(t, store, client.ID, "6000000.00", today.AddDate(0, 0, -30).Format("2006-01-02"))
	app := buildTestApp(store)

	resp := doGet(t, app, "/reports/loyal-customers")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la compra en el borde de la ventana debe calificar también sin as_of")
}

// La cota inferior de la ventana es inclusiva: una compra fechada exactamente
// 30 días atrás entra; una de 31 días no.
func TestReporte_BordeDeVentana(t *testing.T) {
	store := memory.NewStore()
	dt := seedDocType(t, store, "CC", "Cédula de ciudadanía")
	client := seedClient(t, store, dt.ID, "111111111", "Ana", "Gómez")
	seedPurchase(t, store, client.ID, "6000000.00", "2026-08-01") // asOf - 30: incluida
	app := buildTestApp(store)

	resp := doGet(t, app, "/reports/loyal-customers?as_of=2026-08-31")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	store2 := memory.NewStore()
	dt2 := seedDocType(t, store2, "CC", "Cédula de ciudadanía")
	client2 := seedClient(t, store2, dt2.ID, "111111111", "Ana", "Gómez")
	seedPurchase(t, store2, client2.ID, "6000000.00", "2026-07-31") // asOf - 31: excluida
	app2 := buildTestApp(store2)

	resp2 := doGet(t, app2, "/reports/loyal-customers?as_of=2026-08-31")
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
	resp2.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// API de registro
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentTypes_CRUDYProteccionDeBorrado(t *testing.T) {
	store := memory.NewStore()
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/document-types/", `{"code":"CC","name":"Cédula de ciudadanía"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Código duplicado
	resp = doJSON(t, app, http.MethodPost, "/api/document-types/", `{"code":"CC","name":"Otra"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Con un cliente asociado el borrado queda protegido
	resp = doJSON(t, app, http.MethodPost, "/api/clients/",
		`{"document_type":"CC","document_number":"111","first_name":"Ana","last_name":"Gómez"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodDelete, "/api/document-types/CC", nil)
	delResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusConflict, delResp.StatusCode)
	bodyContains(t, delResp, "DOCUMENT_TYPE_IN_USE")
}

func TestClients_AltaDuplicadaYCompras(t *testing.T) {
	store := memory.NewStore()
	seedDocType(t, store, "CC", "Cédula de ciudadanía")
	app := buildTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/clients/",
		`{"document_type":"CC","document_number":"111","first_name":"Ana","last_name":"Gómez"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/clients/",
		`{"document_type":"CC","document_number":"111","first_name":"Copia","last_name":"Gómez"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Monto con más de 2 decimales: rechazado
	resp = doJSON(t, app, http.MethodPost, "/api/clients/"+created.ID+"/purchases",
		`{"amount":"10.005","purchase_date":"2026-08-20"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/clients/"+created.ID+"/purchases",
		`{"amount":"150000.50","purchase_date":"2026-08-20","description":"Mercado","order_number":"ORD-1"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doGet(t, app, "/api/clients/"+created.ID+"/purchases")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var purchases []struct {
		Amount      string `json:"amount"`
		Description string `json:"description"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&purchases))
	resp.Body.Close()
	require.Len(t, purchases, 1)
	assert.Equal(t, "150000.5", purchases[0].Amount)
	assert.Equal(t, "Mercado", purchases[0].Description)
}
