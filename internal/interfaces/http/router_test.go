package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/application/usecase"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/docstore"
	apphttp "github.com/jhoicas/Inventario-stock/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Inventario-stock/pkg/jwt"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

type stubReport struct{}

func (stubReport) GenerateReorderReport(context.Context, inventory.ReorderReport) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

type brokenRunner struct{}

func (brokenRunner) Run(context.Context, func(repository.Collections) error) error {
	return errors.New("disk on fire")
}

func newAPI(t *testing.T, tx repository.TxRunner, jwtSecret string) *fiber.App {
	t.Helper()
	log := logger.Nop()
	app := apphttp.NewApp("test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(tx),
		WarehouseUC: usecase.NewWarehouseUseCase(tx),
		StockUC:     usecase.NewStockLevelUseCase(tx),
		TransferUC:  inventory.NewTransferUseCase(tx, log, nil),
		AlertUC:     inventory.NewAlertUseCase(tx, log, nil),
		ReportUC:    inventory.NewReportUseCase(tx, stubReport{}, nil),
		DashboardUC: inventory.NewDashboardUseCase(tx),
		Log:         log,
		JWTSecret:   jwtSecret,
		StoreDriver: "memory",
	})
	return app
}

func seededRunner(t *testing.T) repository.TxRunner {
	t.Helper()
	ctx := context.Background()
	tx := docstore.NewTxRunner(docstore.NewMemoryBackend())
	require.NoError(t, tx.Run(ctx, func(c repository.Collections) error {
		if err := c.Products.SaveAll(ctx, []entity.Product{
			{ID: 1, SKU: "A", Name: "Producto A", Category: "Bebidas", UnitCost: decimal.RequireFromString("2.5"), ReorderPoint: 100},
		}); err != nil {
			return err
		}
		if err := c.Warehouses.SaveAll(ctx, []entity.Warehouse{{ID: 1, Code: "W1", Name: "Central"}, {ID: 2, Code: "W2", Name: "Norte"}}); err != nil {
			return err
		}
		return c.StockLevels.SaveAll(ctx, []entity.StockLevel{{ID: 1, ProductID: 1, WarehouseID: 1, Quantity: 50}})
	}))
	return tx
}

func call(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHealth(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")
	resp, body := call(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","store":"memory"}`, string(body))
}

func TestTransfers_CreateAndList(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")

	resp, body := call(t, app, http.MethodPost, "/api/transfers", map[string]any{
		"productId": 1, "fromWarehouseId": 1, "toWarehouseId": 2, "quantity": 30, "notes": "pedido 12",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created dto.TransferResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "completed", created.Status)
	assert.Equal(t, 30, created.Quantity)

	resp, body = call(t, app, http.MethodGet, "/api/stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var levels []dto.StockLevelResponse
	require.NoError(t, json.Unmarshal(body, &levels))
	require.Len(t, levels, 2)
	assert.Equal(t, 20, levels[0].Quantity)
	assert.Equal(t, 30, levels[1].Quantity)
	assert.Equal(t, "Norte", levels[1].WarehouseName)

	resp, body = call(t, app, http.MethodGet, "/api/transfers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []dto.TransferResponse
	require.NoError(t, json.Unmarshal(body, &history))
	require.Len(t, history, 1)
	assert.Equal(t, created.ID, history[0].ID)
}

func TestTransfers_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"json inválido", `{"productId":`, http.StatusBadRequest, "INVALID_BODY"},
		{"faltan campos", map[string]any{"productId": 1}, http.StatusBadRequest, "VALIDATION"},
		{"misma bodega", map[string]any{"productId": 1, "fromWarehouseId": 1, "toWarehouseId": 1, "quantity": 1}, http.StatusBadRequest, "VALIDATION"},
		{"producto inexistente", map[string]any{"productId": 9, "fromWarehouseId": 1, "toWarehouseId": 2, "quantity": 1}, http.StatusNotFound, "NOT_FOUND"},
		{"stock insuficiente", map[string]any{"productId": 1, "fromWarehouseId": 1, "toWarehouseId": 2, "quantity": 60}, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAPI(t, seededRunner(t), "")
			resp, body := call(t, app, http.MethodPost, "/api/transfers", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var e dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, e.Message, e.Error)
		})
	}
}

func TestTransfers_InsufficientStockMessage(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")
	_, body := call(t, app, http.MethodPost, "/api/transfers", map[string]any{
		"productId": 1, "fromWarehouseId": 1, "toWarehouseId": 2, "quantity": 60,
	})
	assert.Contains(t, string(body), "disponible 50, solicitado 60")
}

func TestMethodNotAllowed(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")
	resp, body := call(t, app, http.MethodPut, "/api/transfers", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Contains(t, string(body), "METHOD_NOT_ALLOWED")
}

func TestAlerts_ListAndAcknowledge(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")

	resp, body := call(t, app, http.MethodGet, "/api/alerts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var alerts []entity.Alert
	require.NoError(t, json.Unmarshal(body, &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, "warning", alerts[0].Status)

	resp, body = call(t, app, http.MethodPatch, "/api/alerts", dto.UpdateAlertRequest{AlertID: alerts[0].ID, Action: "acknowledge"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var acked entity.Alert
	require.NoError(t, json.Unmarshal(body, &acked))
	assert.True(t, acked.Acknowledged)

	resp, body = call(t, app, http.MethodPatch, "/api/alerts/"+alerts[0].ID, map[string]string{"action": "unacknowledge"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var unacked entity.Alert
	require.NoError(t, json.Unmarshal(body, &unacked))
	assert.False(t, unacked.Acknowledged)
	assert.Nil(t, unacked.AcknowledgedAt)

	resp, _ = call(t, app, http.MethodPatch, "/api/alerts", dto.UpdateAlertRequest{AlertID: "ALERT-x", Action: "acknowledge"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPatch, "/api/alerts", dto.UpdateAlertRequest{Action: "acknowledge"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = call(t, app, http.MethodGet, "/api/alerts/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats dto.AlertStatisticsResponse
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Warning)
}

func TestAlerts_ReportPDF(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")
	resp, body := call(t, app, http.MethodGet, "/api/alerts/report.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestProducts_CRUD(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")

	resp, body := call(t, app, http.MethodPost, "/api/products", map[string]any{
		"sku": "B", "name": "Producto B", "category": "Aseo", "unitCost": 3.75, "reorderPoint": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 2, created.ID)
	assert.True(t, decimal.RequireFromString("3.75").Equal(created.UnitCost))

	resp, _ = call(t, app, http.MethodPost, "/api/products", map[string]any{"sku": "b", "name": "Otro"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = call(t, app, http.MethodPut, "/api/products/2", map[string]any{"name": "Producto B2"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "Producto B2")

	resp, _ = call(t, app, http.MethodDelete, "/api/products/2", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/products/2", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")
	resp, body := call(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.DashboardResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 1, got.TotalProducts)
	assert.Equal(t, 50, got.TotalStock)
	assert.True(t, decimal.NewFromInt(125).Equal(got.TotalInventoryValue))
	assert.Equal(t, 1, got.LowStockCount)
	require.Len(t, got.StockByWarehouse, 2)
}

func TestStorageFailureIsGeneric500(t *testing.T) {
	app := newAPI(t, brokenRunner{}, "")
	resp, body := call(t, app, http.MethodGet, "/api/alerts", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "disk on fire")
	assert.Contains(t, string(body), "INTERNAL")
}

func TestAuthEnabled(t *testing.T) {
	const secret = "router-secret"
	app := newAPI(t, seededRunner(t), secret)
	transfer := map[string]any{"productId": 1, "fromWarehouseId": 1, "toWarehouseId": 2, "quantity": 5}
	bearer := func(role string) string {
		tok, err := pkgjwt.Generate(secret, "user-"+role, role, "test", 5)
		require.NoError(t, err)
		return "Bearer " + tok
	}

	resp, _ := call(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/products", nil, "Authorization", bearer(pkgjwt.RoleViewer))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/transfers", transfer, "Authorization", bearer(pkgjwt.RoleViewer))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := call(t, app, http.MethodPost, "/api/transfers", transfer, "Authorization", bearer(pkgjwt.RoleBodeguero))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created dto.TransferResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "user-bodeguero", created.CreatedBy)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

	resp, _ = call(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "health no exige token")
}

func TestRequestIDHeader(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")
	resp, _ := call(t, app, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp, _ = call(t, app, http.MethodGet, "/health", nil, fiber.HeaderXRequestID, "abc-123")
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestUnknownRoute(t *testing.T) {
	app := newAPI(t, seededRunner(t), "")
	resp, body := call(t, app, http.MethodGet, "/api/nada", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "ruta no encontrada")
}
