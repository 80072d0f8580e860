package entity

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
