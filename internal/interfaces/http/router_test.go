package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/botica-api/internal/application/dto"
	"github.com/jhoicas/botica-api/internal/domain"
	apphttp "github.com/jhoicas/botica-api/internal/interfaces/http"
)

type stubAuth struct{}

func (stubAuth) RegisterUser(_ context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "dup@botica.co" {
		return nil, domain.ErrEmailAlreadyExists
	}
	return &dto.UserResponse{ID: "u-1", Email: in.Email}, nil
}

func (stubAuth) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Password != "secreta1" {
		return nil, domain.ErrUnauthorized
	}
	return &dto.LoginResponse{Token: "tok"}, nil
}

type stubProducts struct{ lastID string }

func (s *stubProducts) AddStock(_ context.Context, in dto.AddStockRequest) (*dto.AddStockResponse, error) {
	return &dto.AddStockResponse{Product: dto.ProductResponse{ID: "p-1", Name: in.Name, Stock: in.Stock}, Created: in.Lab != "LHA"}, nil
}

func (s *stubProducts) GetByID(_ context.Context, id string) (*dto.ProductResponse, error) {
	s.lastID = id
	if id != "p-1" {
		return nil, domain.ErrNotFound
	}
	return &dto.ProductResponse{ID: id}, nil
}

func (s *stubProducts) Update(_ context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Stock != nil && *in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock", domain.ErrInvalidInput)
	}
	return &dto.ProductResponse{ID: id}, nil
}

func (s *stubProducts) List(context.Context) (*dto.ProductListResponse, error) {
	return &dto.ProductListResponse{Items: []dto.ProductResponse{{ID: "p-1"}}}, nil
}

func (s *stubProducts) LowStock(context.Context) ([]dto.LowStockItemDTO, error) {
	return []dto.LowStockItemDTO{{ID: "p-1", Name: "Drotox Jarabe", Stock: 3, MinStock: 10}}, nil
}

func (s *stubProducts) Delete(_ context.Context, id string) error {
	if id != "p-1" {
		return domain.ErrNotFound
	}
	return nil
}

type stubSales struct {
	userID   string
	from, to *time.Time
}

func (s *stubSales) Register(_ context.Context, userID string, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	s.userID = userID
	switch {
	case in.Quantity > 10:
		return nil, domain.ErrInsufficientStock
	case in.PaymentMethod != "Efectivo" && in.PaymentMethod != "Transferencia":
		return nil, domain.ErrInvalidPaymentMethod
	}
	return &dto.SaleResponse{ID: "v-1", Quantity: in.Quantity, PaymentMethod: in.PaymentMethod}, nil
}

func (s *stubSales) List(_ context.Context, from, to *time.Time) (*dto.SaleListResponse, error) {
	s.from, s.to = from, to
	return &dto.SaleListResponse{Items: []dto.SaleResponse{}}, nil
}

type stubReports struct{}

func (stubReports) Generate(_ context.Context, kind, anchor string) (*dto.ReportResponse, error) {
	if kind != "daily" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidReportKind, kind)
	}
	return &dto.ReportResponse{Kind: kind, Title: "Reporte Diario: 15/01/2024", TotalRevenue: decimal.NewFromInt(152000)}, nil
}

func (stubReports) PDF(_ context.Context, kind, anchor string) ([]byte, string, error) {
	return []byte("%PDF-1.3"), "reporte_daily_2024-01-15.pdf", nil
}

type stubDashboard struct{}

func (stubDashboard) Summary(context.Context) (*dto.DashboardSummaryDTO, error) {
	return &dto.DashboardSummaryDTO{DateLabel: "15/01/2024", LowStock: []dto.LowStockItemDTO{}}, nil
}

var bogota = time.FixedZone("COT", -5*60*60)

func newTestRouter() (*fiber.App, *stubProducts, *stubSales) {
	products, sales := &stubProducts{}, &stubSales{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      stubAuth{},
		ProductUC:   products,
		SaleUC:      sales,
		ReportUC:    stubReports{},
		DashboardUC: stubDashboard{},
		JWTSecret:   testJWTSecret,
		Location:    bogota,
	})
	return app, products, sales
}

func call(t *testing.T, app *fiber.App, method, path, body, auth string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, string(b)
}

func TestRouter_HealthIsPublic(t *testing.T) {
	app, _, _ := newTestRouter()
	resp, body := call(t, app, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "ok")
}

func TestRouter_ProtectedRequiresToken(t *testing.T) {
	app, _, _ := newTestRouter()
	for _, path := range []string{"/api/medicamentos", "/api/ventas", "/api/reportes?tipo=daily", "/api/dashboard/summary"} {
		resp, _ := call(t, app, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRouter_Auth(t *testing.T) {
	app, _, _ := newTestRouter()

	resp, _ := call(t, app, http.MethodPost, "/api/auth/register", `{"email":"a@botica.co","password":"secreta1"}`, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := call(t, app, http.MethodPost, "/api/auth/register", `{"email":"dup@botica.co","password":"secreta1"}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "EMAIL_EXISTS")

	resp, _ = call(t, app, http.MethodPost, "/api/auth/register", `{"email":""}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/auth/login", `{"email":"a@botica.co","password":"secreta1"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = call(t, app, http.MethodPost, "/api/auth/login", `{"email":"a@botica.co","password":"mala"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "credenciales inválidas")
}

func TestRouter_Medicamentos(t *testing.T) {
	app, products, _ := newTestRouter()
	auth := bearer(t)

	resp, body := call(t, app, http.MethodPost, "/api/medicamentos", `{"nombre":"Chimal Gotas","lab":"Otro","stock":12,"costo":"29600","precio":"60000"}`, auth)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, body)

	resp, _ = call(t, app, http.MethodPost, "/api/medicamentos", `{"nombre":"Drotox Jarabe","lab":"LHA","stock":5}`, auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "reabastecer no crea")

	resp, _ = call(t, app, http.MethodPost, "/api/medicamentos", `{"nombre":"X","stock":0}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = call(t, app, http.MethodGet, "/api/medicamentos/low-stock", "", auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Drotox Jarabe")
	assert.Empty(t, products.lastID, "low-stock no debe caer en /:id")

	resp, _ = call(t, app, http.MethodGet, "/api/medicamentos/nope", "", auth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = call(t, app, http.MethodPut, "/api/medicamentos/p-1", `{"stock":-1}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)

	resp, _ = call(t, app, http.MethodDelete, "/api/medicamentos/p-1", "", auth)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_Ventas(t *testing.T) {
	app, _, sales := newTestRouter()
	auth := bearer(t)

	resp, body := call(t, app, http.MethodPost, "/api/ventas", `{"medicamento_id":"p-1","cantidad":2,"forma_pago":"Efectivo"}`, auth)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Equal(t, testUserID, sales.userID)

	resp, body = call(t, app, http.MethodPost, "/api/ventas", `{"medicamento_id":"p-1","cantidad":20,"forma_pago":"Efectivo"}`, auth)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "INSUFFICIENT_STOCK")

	resp, body = call(t, app, http.MethodPost, "/api/ventas", `{"medicamento_id":"p-1","cantidad":1,"forma_pago":"Nequi"}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "INVALID_PAYMENT_METHOD")

	resp, _ = call(t, app, http.MethodGet, "/api/ventas?desde=2024-01-15&hasta=2024-01-21", "", auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, sales.from)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, bogota), *sales.from)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, bogota), *sales.to)

	resp, _ = call(t, app, http.MethodGet, "/api/ventas?desde=2024-01-15", "", auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Reportes(t *testing.T) {
	app, _, _ := newTestRouter()
	auth := bearer(t)

	resp, body := call(t, app, http.MethodGet, "/api/reportes?tipo=daily&fecha=2024-01-15", "", auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "Reporte Diario: 15/01/2024", out["titulo"])

	resp, body = call(t, app, http.MethodGet, "/api/reportes?tipo=quarterly", "", auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "INVALID_REPORT_KIND")

	resp, body = call(t, app, http.MethodGet, "/api/reportes/pdf?tipo=daily", "", auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "reporte_daily_2024-01-15.pdf")
	assert.True(t, strings.HasPrefix(body, "%PDF"))
}

func TestRouter_Dashboard(t *testing.T) {
	app, _, _ := newTestRouter()
	resp, body := call(t, app, http.MethodGet, "/api/dashboard/summary", "", bearer(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "15/01/2024")
}
