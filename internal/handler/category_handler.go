package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/internal/handler/dto"
	"github.com/yourusername/quiz-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{questionService: questionService}
}

// ListCategories возвращает список всех категорий
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.questionService.ListCategories()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListCategoriesResponse(categories))
}

// GetCategoryQuestions возвращает вопросы одной категории
// GET /categories/:id/questions
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	questions, category, err := h.questionService.GetQuestionsByCategory(categoryID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryQuestionsResponse(questions, category))
}
