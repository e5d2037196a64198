package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/handler/dto"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы игры в викторину
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestionRequest представляет запрос очередного вопроса викторины.
// quiz_category равный 0 (или отсутствующий) означает "все категории".
// previous_questions — ID вопросов, уже показанных в этой сессии;
// состояние сессии на сервере не хранится.
type NextQuestionRequest struct {
	PreviousQuestions []uint `json:"previous_questions"`
	QuizCategory      uint   `json:"quiz_category"`
}

// NextQuestion возвращает случайный неиспользованный вопрос
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(req.QuizCategory, req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizQuestionResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	})
}
