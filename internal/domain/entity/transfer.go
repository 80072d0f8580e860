package entity

import "time"

// Estados de un traslado. Hoy solo se registran traslados completados.
const (
	TransferStatusCompleted = "completed"
)

// Transfer es el registro inmutable (append-only) de un traslado entre bodegas.
type Transfer struct {
	ID              string    `json:"id"`
	ProductID       int       `json:"productId"`
	FromWarehouseID int       `json:"fromWarehouseId"`
	ToWarehouseID   int       `json:"toWarehouseId"`
	Quantity        int       `json:"quantity"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	CompletedAt     time.Time `json:"completedAt"`
}
