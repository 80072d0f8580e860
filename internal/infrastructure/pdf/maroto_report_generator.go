// Package pdf genera el informe de reposición en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Críticas | Bajas | Advertencia | Costo    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Estado | Stock | Reorden | Pedir | Costo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: costo estimado de reposición                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appinventory "github.com/jhoicas/Inventario-stock/internal/application/inventory"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorLow      = &props.Color{Red: 220, Green: 120, Blue: 0}
)

var _ appinventory.ReorderReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa inventory.ReorderReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador con formato numérico en español.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{printer: message.NewPrinter(language.Spanish)}
}

// GenerateReorderReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReorderReport(_ context.Context, report appinventory.ReorderReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Alerts) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin productos por reponer.", props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		)))
	}
	for _, r := range g.tableDetailRows(report.Alerts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(report appinventory.ReorderReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(report.GeneratedAt.Format("02/01/2006 15:04 MST"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func (g *MarotoReportGenerator) summaryRow(report appinventory.ReorderReport) core.Row {
	s := report.Stats
	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5, Color: color}),
		)
	}
	return row.New(14).Add(
		cell("Alertas", g.formatInt(s.Total), colorPrimary),
		cell("Críticas", g.formatInt(s.Critical), colorCritical),
		cell("Bajas", g.formatInt(s.Low), colorLow),
		cell("Advertencia", g.formatInt(s.Warning), colorPrimary),
		cell("Sin revisar", g.formatInt(s.Unacknowledged), colorPrimary),
		cell("Costo estimado", g.formatMoney(s.TotalReorderCost), colorPrimary),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Estado", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Reorden", 1, align.Right),
		h("Pedir", 1, align.Right),
		h("Costo", 2, align.Right),
	)
}

// tableDetailRows: una fila por alerta, en el orden de prioridad recibido.
func (g *MarotoReportGenerator) tableDetailRows(alerts []entity.Alert) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		cell := func(s string, size int, al align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: al, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(7).Add(
			cell(a.ProductSKU, 2, align.Left),
			cell(a.ProductName, 3, align.Left),
			col.New(2).Add(text.New(a.Level, props.Text{
				Size: 8, Top: 1, Left: 1, Style: fontstyle.Bold, Color: statusColor(a.Status),
			})),
			cell(g.formatInt(a.CurrentStock), 1, align.Right),
			cell(g.formatInt(a.ReorderPoint), 1, align.Right),
			cell(g.formatInt(a.RecommendedOrderQuantity), 1, align.Right),
			cell(g.formatMoney(a.EstimatedCost), 2, align.Right),
		))
	}
	return result
}

func (g *MarotoReportGenerator) totalRow(report appinventory.ReorderReport) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(g.formatMoney(report.Stats.TotalReorderCost), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(status string) *props.Color {
	switch status {
	case entity.StockStatusCritical:
		return colorCritical
	case entity.StockStatusLow:
		return colorLow
	default:
		return colorGray
	}
}

func (g *MarotoReportGenerator) formatInt(n int) string {
	return g.printer.Sprintf("%d", n)
}

// formatMoney redondea a dos decimales con separadores locales. Ej: 1234567.5 → "$1.234.567,50".
func (g *MarotoReportGenerator) formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "$" + g.printer.Sprintf("%.2f", f)
}
