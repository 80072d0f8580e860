package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock (value object conceptual).
const (
	StockStatusCritical    = "critical"
	StockStatusLow         = "low"
	StockStatusWarning     = "warning"
	StockStatusAdequate    = "adequate"
	StockStatusOverstocked = "overstocked"
)

// Acciones que el usuario puede aplicar sobre una alerta.
const (
	AlertActionAcknowledge   = "acknowledge"
	AlertActionUnacknowledge = "unacknowledge"
	AlertActionResolve       = "resolve"
)

// Alert es una alerta derivada de stock bajo. Se recalcula en cada lectura;
// solo el estado de reconocimiento (y las fechas asociadas) sobrevive a la regeneración.
type Alert struct {
	ID                       string          `json:"id"`
	ProductID                int             `json:"productId"`
	ProductSKU               string          `json:"productSku"`
	ProductName              string          `json:"productName"`
	Category                 string          `json:"category"`
	CurrentStock             int             `json:"currentStock"`
	ReorderPoint             int             `json:"reorderPoint"`
	Status                   string          `json:"status"`
	Level                    string          `json:"level"`
	Priority                 int             `json:"priority"`
	Message                  string          `json:"message"`
	RecommendedOrderQuantity int             `json:"recommendedOrderQuantity"`
	EstimatedCost            decimal.Decimal `json:"estimatedCost"`
	Acknowledged             bool            `json:"acknowledged"`
	AcknowledgedAt           *time.Time      `json:"acknowledgedAt"`
	ResolvedAt               *time.Time      `json:"resolvedAt"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}
