package dto

import "net/http"

// ErrorResponse представляет тело ошибки API.
// Error — числовой HTTP код, Message — фиксированное человекочитаемое сообщение.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// errorMessages — фиксированные сообщения для поддерживаемых кодов ошибок
var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusInternalServerError: "internal server error",
}

// NewErrorResponse создает тело ошибки для заданного HTTP статуса
func NewErrorResponse(status int) *ErrorResponse {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return &ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
