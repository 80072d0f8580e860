package dto

// ErrorResponse cuerpo de error HTTP. Error repite Message para el cliente web, que lee data.error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// HealthResponse respuesta de /health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
