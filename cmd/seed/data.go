package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

type dataset struct {
	Products    []entity.Product
	Warehouses  []entity.Warehouse
	StockLevels []entity.StockLevel
}

func demoData() dataset {
	products := []entity.Product{
		{SKU: "BEB-001", Name: "Agua mineral 600ml", Category: "Bebidas", UnitCost: decimal.RequireFromString("1200"), ReorderPoint: 120},
		{SKU: "BEB-002", Name: "Jugo de naranja 1L", Category: "Bebidas", UnitCost: decimal.RequireFromString("4500"), ReorderPoint: 60},
		{SKU: "ASE-001", Name: "Detergente en polvo 1kg", Category: "Aseo", UnitCost: decimal.RequireFromString("9800"), ReorderPoint: 40},
		{SKU: "ASE-002", Name: "Jabón de tocador x3", Category: "Aseo", UnitCost: decimal.RequireFromString("6300"), ReorderPoint: 50},
		{SKU: "ALI-001", Name: "Arroz 5kg", Category: "Alimentos", UnitCost: decimal.RequireFromString("21500"), ReorderPoint: 30},
		{SKU: "ALI-002", Name: "Aceite vegetal 3L", Category: "Alimentos", UnitCost: decimal.RequireFromString("27900"), ReorderPoint: 25},
		{SKU: "ALI-003", Name: "Café molido 500g", Category: "Alimentos", UnitCost: decimal.RequireFromString("15750.50"), ReorderPoint: 20},
		{SKU: "PAP-001", Name: "Resma papel carta", Category: "Papelería", UnitCost: decimal.RequireFromString("18900"), ReorderPoint: 0},
	}
	for i := range products {
		products[i].ID = i + 1
	}

	warehouses := []entity.Warehouse{
		{ID: 1, Code: "BOG-01", Name: "Bodega Central", Location: "Bogotá"},
		{ID: 2, Code: "MED-01", Name: "Bodega Norte", Location: "Medellín"},
		{ID: 3, Code: "CLO-01", Name: "Bodega Sur", Location: "Cali"},
	}

	// {productID, warehouseID, cantidad}
	quantities := [][3]int{
		{1, 1, 80}, {1, 2, 25},
		{2, 1, 90}, {2, 3, 40},
		{3, 1, 8},
		{4, 2, 30}, {4, 3, 15},
		{5, 1, 0}, {5, 2, 0},
		{6, 1, 60}, {6, 3, 12},
		{7, 2, 4},
		{8, 1, 35},
	}
	levels := make([]entity.StockLevel, 0, len(quantities))
	for i, q := range quantities {
		levels = append(levels, entity.StockLevel{ID: i + 1, ProductID: q[0], WarehouseID: q[1], Quantity: q[2]})
	}
	return dataset{Products: products, Warehouses: warehouses, StockLevels: levels}
}

// withProducts reemplaza el catálogo demo; el stock de demostración solo se conserva para
// ids que siguen existiendo.
func withProducts(data dataset, products []entity.Product) dataset {
	ids := make(map[int]bool, len(products))
	for i := range products {
		products[i].ID = i + 1
		ids[products[i].ID] = true
	}
	levels := make([]entity.StockLevel, 0, len(data.StockLevels))
	for _, l := range data.StockLevels {
		if ids[l.ProductID] {
			levels = append(levels, l)
		}
	}
	return dataset{Products: products, Warehouses: data.Warehouses, StockLevels: levels}
}

var csvHeader = []string{"sku", "name", "category", "unitcost", "reorderpoint"}

// parseProductsCSV lee sku,name,category,unitCost,reorderPoint. Acepta coma o punto y coma.
func parseProductsCSV(r io.Reader) ([]entity.Product, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	if first, _, _ := strings.Cut(text, "\n"); strings.Count(first, ";") > strings.Count(first, ",") {
		cr.Comma = ';'
	}
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv vacío")
	}
	for i, col := range csvHeader {
		if i >= len(records[0]) || strings.ToLower(strings.TrimSpace(records[0][i])) != col {
			return nil, fmt.Errorf("cabecera inválida: se esperaba %s", strings.Join(csvHeader, ","))
		}
	}

	seen := make(map[string]int)
	products := make([]entity.Product, 0, len(records)-1)
	for n, rec := range records[1:] {
		line := n + 2
		if len(rec) < len(csvHeader) {
			return nil, fmt.Errorf("línea %d: se esperaban %d columnas", line, len(csvHeader))
		}
		sku := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if sku == "" || name == "" {
			return nil, fmt.Errorf("línea %d: sku y nombre son obligatorios", line)
		}
		key := strings.ToLower(sku)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("línea %d: sku %s repetido (línea %d)", line, sku, prev)
		}
		seen[key] = line

		cost, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[3]), ",", "."))
		if err != nil || cost.IsNegative() {
			return nil, fmt.Errorf("línea %d: costo unitario inválido %q", line, rec[3])
		}
		rp, err := strconv.Atoi(strings.TrimSpace(rec[4]))
		if err != nil || rp < 0 {
			return nil, fmt.Errorf("línea %d: punto de reorden inválido %q", line, rec[4])
		}
		products = append(products, entity.Product{
			SKU:          sku,
			Name:         name,
			Category:     strings.TrimSpace(rec[2]),
			UnitCost:     cost,
			ReorderPoint: rp,
		})
	}
	return products, nil
}
