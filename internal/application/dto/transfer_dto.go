package dto

import "time"

// CreateTransferRequest cuerpo de POST /api/transfers.
type CreateTransferRequest struct {
	ProductID       int    `json:"productId"`
	FromWarehouseID int    `json:"fromWarehouseId"`
	ToWarehouseID   int    `json:"toWarehouseId"`
	Quantity        int    `json:"quantity"`
	Notes           string `json:"notes"`
}

// TransferResponse traslado registrado.
type TransferResponse struct {
	ID              string    `json:"id"`
	ProductID       int       `json:"productId"`
	FromWarehouseID int       `json:"fromWarehouseId"`
	ToWarehouseID   int       `json:"toWarehouseId"`
	Quantity        int       `json:"quantity"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	CreatedBy       string    `json:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	CompletedAt     time.Time `json:"completedAt"`
}
