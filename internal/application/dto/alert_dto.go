package dto

import "github.com/shopspring/decimal"

// UpdateAlertRequest cuerpo de PATCH /api/alerts. En PATCH /api/alerts/:id el id viene en la ruta.
type UpdateAlertRequest struct {
	AlertID string `json:"alertId"`
	Action  string `json:"action"`
}

// AlertStatisticsResponse resumen de alertas.
type AlertStatisticsResponse struct {
	Total            int             `json:"total"`
	Critical         int             `json:"critical"`
	Low              int             `json:"low"`
	Warning          int             `json:"warning"`
	Acknowledged     int             `json:"acknowledged"`
	Unacknowledged   int             `json:"unacknowledged"`
	TotalReorderCost decimal.Decimal `json:"totalReorderCost"`
}
