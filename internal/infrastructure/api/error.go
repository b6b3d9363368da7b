package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error erro de transporte tipado: status HTTP, mensagem do servidor e payload
// bruto. É sempre propagado ao chamador, nunca engolido pelos stores.
type Error struct {
	Status  int
	Message string
	Details json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.Status)
}

// newError normaliza uma resposta não-2xx. A mensagem vem do campo
// message/error do corpo JSON quando presente; caso contrário é genérica.
func newError(status int, body []byte) *Error {
	msg := fmt.Sprintf("erro na requisição (%d)", status)

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			msg = parsed.Message
		} else if parsed.Error != "" {
			msg = parsed.Error
		}
	}

	return &Error{
		Status:  status,
		Message: msg,
		Details: json.RawMessage(body),
	}
}

// IsNotFound indica se o erro é um HTTP 404 do serviço remoto.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsValidation indica se o servidor rejeitou o payload (400 ou 422).
// A validação de regra de negócio é responsabilidade do servidor.
func IsValidation(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity
}
