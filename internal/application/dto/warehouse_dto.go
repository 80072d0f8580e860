package dto

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID         int    `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	TotalStock int    `json:"totalStock"`
}
