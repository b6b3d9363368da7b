package dto

// ErrorDTO corpo de erro devolvido pelo serviço remoto.
type ErrorDTO struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}

// MessageDTO resposta de operações sem corpo útil (ex. DELETE).
type MessageDTO struct {
	Message string `json:"message"`
}
