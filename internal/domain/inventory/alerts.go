package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// NewAlertID genera el identificador de una alerta nueva.
func NewAlertID() string {
	return "ALERT-" + uuid.New().String()
}

// GenerateAlerts recalcula la lista completa de alertas a partir de productos y stock.
//
// Por producto: stock total → clasificación → si no requiere atención se omite (y su alerta
// previa desaparece) → cantidad de reorden y costo estimado → se busca la alerta previa por
// ProductID (primera coincidencia) y se conservan ID, Acknowledged, AcknowledgedAt,
// ResolvedAt y CreatedAt. UpdatedAt siempre es now.
// El resultado se ordena por prioridad ascendente conservando el orden de productos en empates.
func GenerateAlerts(products []entity.Product, levels []entity.StockLevel, existing []entity.Alert, now time.Time) []entity.Alert {
	totals := stockByProduct(levels)

	previous := make(map[int]entity.Alert, len(existing))
	for _, a := range existing {
		if _, seen := previous[a.ProductID]; !seen {
			previous[a.ProductID] = a
		}
	}

	alerts := make([]entity.Alert, 0)
	for _, p := range products {
		total := totals[p.ID]
		status := ClassifyStock(total, p.ReorderPoint)
		if !status.NeedsAttention() {
			continue
		}
		qty := ReorderQuantity(total, p.ReorderPoint, nil)

		alert := entity.Alert{
			ProductID:                p.ID,
			ProductSKU:               p.SKU,
			ProductName:              p.Name,
			Category:                 p.Category,
			CurrentStock:             total,
			ReorderPoint:             p.ReorderPoint,
			Status:                   status.Status,
			Level:                    status.Level,
			Priority:                 status.Priority,
			Message:                  status.Message,
			RecommendedOrderQuantity: qty,
			EstimatedCost:            p.UnitCost.Mul(decimal.NewFromInt(int64(qty))),
			UpdatedAt:                now,
		}
		if prev, ok := previous[p.ID]; ok {
			alert.ID = prev.ID
			alert.Acknowledged = prev.Acknowledged
			alert.AcknowledgedAt = prev.AcknowledgedAt
			alert.ResolvedAt = prev.ResolvedAt
			alert.CreatedAt = prev.CreatedAt
		} else {
			alert.ID = NewAlertID()
			alert.CreatedAt = now
		}
		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority < alerts[j].Priority
	})
	return alerts
}

// ApplyAlertAction aplica una acción del usuario sobre la alerta y actualiza UpdatedAt.
func ApplyAlertAction(alert *entity.Alert, action string, now time.Time) error {
	switch action {
	case entity.AlertActionAcknowledge:
		at := now
		alert.Acknowledged = true
		alert.AcknowledgedAt = &at
	case entity.AlertActionUnacknowledge:
		alert.Acknowledged = false
		alert.AcknowledgedAt = nil
	case entity.AlertActionResolve:
		at := now
		alert.ResolvedAt = &at
	default:
		return fmt.Errorf("%w: acción desconocida %q", domain.ErrInvalidInput, action)
	}
	alert.UpdatedAt = now
	return nil
}

// AlertStatistics resumen de la lista de alertas.
type AlertStatistics struct {
	Total            int
	Critical         int
	Low              int
	Warning          int
	Acknowledged     int
	Unacknowledged   int
	TotalReorderCost decimal.Decimal
}

// Statistics cuenta alertas por estado y suma el costo estimado de reposición.
func Statistics(alerts []entity.Alert) AlertStatistics {
	s := AlertStatistics{Total: len(alerts), TotalReorderCost: decimal.Zero}
	for _, a := range alerts {
		switch a.Status {
		case entity.StockStatusCritical:
			s.Critical++
		case entity.StockStatusLow:
			s.Low++
		case entity.StockStatusWarning:
			s.Warning++
		}
		if a.Acknowledged {
			s.Acknowledged++
		} else {
			s.Unacknowledged++
		}
		s.TotalReorderCost = s.TotalReorderCost.Add(a.EstimatedCost)
	}
	return s
}
