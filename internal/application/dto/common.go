package dto

// ErrorResponse cuerpo de error HTTP. Nunca se expone un stack trace.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje y, opcionalmente, el id creado.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
