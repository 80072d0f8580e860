package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/inventory"
)

func TestGenerateReorderReport_ProducesPDF(t *testing.T) {
	alerts := []entity.Alert{
		{
			ID: "ALERT-1", ProductSKU: "A-1", ProductName: "Producto A", Status: entity.StockStatusCritical,
			Level: "Out of Stock", Priority: 1, ReorderPoint: 100, RecommendedOrderQuantity: 200,
			EstimatedCost: decimal.NewFromInt(500),
		},
		{
			ID: "ALERT-2", ProductSKU: "C-3", ProductName: "Producto C", Status: entity.StockStatusLow,
			Level: "Low", Priority: 2, CurrentStock: 8, ReorderPoint: 20, RecommendedOrderQuantity: 32,
			EstimatedCost: decimal.NewFromInt(128),
		},
	}
	report := appinventory.ReorderReport{
		Title:       "Informe de reposición",
		GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Alerts:      alerts,
		Stats:       inventory.Statistics(alerts),
	}

	doc, err := NewMarotoReportGenerator().GenerateReorderReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateReorderReport_EmptyList(t *testing.T) {
	doc, err := NewMarotoReportGenerator().GenerateReorderReport(context.Background(), appinventory.ReorderReport{
		Title: "Informe de reposición", GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestNumberFormatting(t *testing.T) {
	g := NewMarotoReportGenerator()
	assert.Equal(t, "1.234.567", g.formatInt(1234567))
	assert.Equal(t, "$1.234.567,50", g.formatMoney(decimal.RequireFromString("1234567.5")))
}
