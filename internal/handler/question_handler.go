package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает страницу списка вопросов
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.questionService.GetQuestionsPage(page)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionPageResponse(result.Questions, result.Total, result.Categories))
}

// CreateQuestionRequest представляет запрос на создание вопроса
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// createQuestionFields — требуемый набор полей запроса на создание вопроса
var createQuestionFields = []string{"question", "answer", "category", "difficulty"}

// bindCreateQuestion разбирает и валидирует тело запроса на создание вопроса.
// Набор ключей тела должен совпадать с createQuestionFields в точности:
// и отсутствующее, и лишнее поле — ошибка валидации с указанием поля.
func bindCreateQuestion(body []byte) (*CreateQuestionRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON body", apperrors.ErrValidation)
	}

	required := make(map[string]bool, len(createQuestionFields))
	for _, name := range createQuestionFields {
		required[name] = true
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("%w: missing required field %q", apperrors.ErrValidation, name)
		}
	}
	for name := range fields {
		if !required[name] {
			return nil, fmt.Errorf("%w: unexpected field %q", apperrors.ErrValidation, name)
		}
	}

	var req CreateQuestionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: invalid field value: %v", apperrors.ErrValidation, err)
	}
	return &req, nil
}

// CreateQuestion обрабатывает запрос на создание вопроса
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	req, err := bindCreateQuestion(body)
	if err != nil {
		// Конкретная причина отказа — в лог, клиенту фиксированное сообщение
		log.Printf("[QuestionHandler] Отклонен запрос на создание вопроса: %v", err)
		respondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.questionService.CreateQuestion(req.Question, req.Answer, req.Difficulty, req.Category)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreatedQuestionResponse(question))
}

// SearchQuestionsRequest представляет поисковый запрос.
// Указатель отличает отсутствующий ключ от пустой строки:
// пустой searchTerm валиден и совпадает со всеми вопросами.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions возвращает вопросы по поисковой подстроке
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SearchTerm == nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.questionService.SearchQuestions(*req.SearchTerm)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchQuestionsResponse(questions))
}

// DeleteQuestion удаляет вопрос по ID
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedQuestionResponse{
		Success:    true,
		QuestionID: questionID,
	})
}
