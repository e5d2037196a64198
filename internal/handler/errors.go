package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// respondError отправляет тело ошибки с фиксированным сообщением для статуса
func respondError(c *gin.Context, status int) {
	c.JSON(status, dto.NewErrorResponse(status))
}

// handleServiceError переводит ошибку сервиса в HTTP ответ.
// Любая нераспознанная ошибка считается сбоем хранилища и дает 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInternal):
		log.Printf("ERROR: store write failed: %v", err)
		respondError(c, http.StatusInternalServerError)
	default:
		log.Printf("ERROR: internal server error: %v", err)
		respondError(c, http.StatusInternalServerError)
	}
}
