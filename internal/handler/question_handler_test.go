package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/middleware"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeQuestionRepo — репозиторий вопросов в памяти для сквозных тестов обработчиков.
// writeErr позволяет имитировать сбой записи в хранилище.
type fakeQuestionRepo struct {
	questions []entity.Question
	nextID    uint
	writeErr  error
}

func newFakeQuestionRepo(questions ...entity.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{nextID: 1}
	for _, q := range questions {
		if q.ID >= repo.nextID {
			repo.nextID = q.ID + 1
		}
		repo.questions = append(repo.questions, q)
	}
	return repo
}

func (r *fakeQuestionRepo) GetAll() ([]entity.Question, error) {
	return append([]entity.Question(nil), r.questions...), nil
}

func (r *fakeQuestionRepo) GetByID(id uint) (*entity.Question, error) {
	for i := range r.questions {
		if r.questions[i].ID == id {
			q := r.questions[i]
			return &q, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeQuestionRepo) GetByCategoryID(categoryID uint) ([]entity.Question, error) {
	var result []entity.Question
	for _, q := range r.questions {
		if q.CategoryID != nil && *q.CategoryID == categoryID {
			result = append(result, q)
		}
	}
	return result, nil
}

func (r *fakeQuestionRepo) Search(term string) ([]entity.Question, error) {
	var result []entity.Question
	for _, q := range r.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			result = append(result, q)
		}
	}
	return result, nil
}

func (r *fakeQuestionRepo) Create(question *entity.Question) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	for i := range r.questions {
		if r.questions[i].ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// fakeCategoryRepo — репозиторий категорий в памяти
type fakeCategoryRepo struct {
	categories []entity.Category
}

func (r *fakeCategoryRepo) GetAll() ([]entity.Category, error) {
	return append([]entity.Category(nil), r.categories...), nil
}

func (r *fakeCategoryRepo) GetByID(id uint) (*entity.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCategoryRepo) Create(category *entity.Category) error {
	category.ID = uint(len(r.categories) + 1)
	r.categories = append(r.categories, *category)
	return nil
}

// setupRouter собирает роутер с теми же маршрутами, что и cmd/api
func setupRouter(questionRepo *fakeQuestionRepo, categoryRepo *fakeCategoryRepo) *gin.Engine {
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	quizService := service.NewQuizService(questionRepo, categoryRepo, rand.New(rand.NewSource(1)))

	categoryHandler := NewCategoryHandler(questionService)
	questionHandler := NewQuestionHandler(questionService)
	quizHandler := NewQuizHandler(quizService)

	router := gin.New()

	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)

		categoryWithID := categories.Group("/:id")
		categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
		{
			categoryWithID.GET("/questions", categoryHandler.GetCategoryQuestions)
		}
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.POST("/search", questionHandler.SearchQuestions)

		questionWithID := questions.Group("/:id")
		questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
		{
			questionWithID.DELETE("", questionHandler.DeleteQuestion)
		}
	}

	router.POST("/quizzes", quizHandler.NextQuestion)

	return router
}

// uintPtr возвращает указатель на значение uint
func uintPtr(v uint) *uint {
	return &v
}

// seededRepos — категория Science с двумя вопросами, как в сценарных тестах
func seededRepos() (*fakeQuestionRepo, *fakeCategoryRepo) {
	categoryRepo := &fakeCategoryRepo{categories: []entity.Category{{ID: 1, Type: "Science"}}}
	questionRepo := newFakeQuestionRepo(
		entity.Question{ID: 1, Question: "Q1", Answer: "A1", Difficulty: 1, CategoryID: uintPtr(1)},
		entity.Question{ID: 2, Question: "Q2", Answer: "A2", Difficulty: 2, CategoryID: uintPtr(1)},
	)
	return questionRepo, categoryRepo
}

// doJSON выполняет запрос с JSON телом и разбирает JSON ответа
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "response body should be valid JSON: %s", w.Body.String())
	return w, resp
}

// ============================================================================
// GET /categories
// ============================================================================

func TestListCategories(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "GET", "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["count"])
	categories := resp["categories"].([]interface{})
	require.Len(t, categories, 1)
	assert.Equal(t, "Science", categories[0].(map[string]interface{})["type"])
}

// ============================================================================
// GET /questions
// ============================================================================

func TestListQuestions_FirstPage(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "GET", "/questions", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(2), resp["total_questions"])
	assert.Len(t, resp["questions"].([]interface{}), 2)
	assert.Len(t, resp["categories"].([]interface{}), 1)
	assert.Nil(t, resp["current_category"])
}

func TestListQuestions_PageOutOfRange(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "GET", "/questions?page=1000", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, float64(404), resp["error"])
	assert.Equal(t, "resource not found", resp["message"])
}

// TestListQuestions_EmptyStore — обе ветки пустой базы:
// страница 1 валидна, страница 2 — нет
func TestListQuestions_EmptyStore(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	categoryRepo := &fakeCategoryRepo{}
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "GET", "/questions", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), resp["total_questions"])
	assert.Len(t, resp["questions"].([]interface{}), 0)

	// Ключ categories присутствует даже при пустой базе
	categories, ok := resp["categories"].([]interface{})
	require.True(t, ok, "categories key must be present in the paginated response")
	assert.Len(t, categories, 0)

	w, resp = doJSON(t, router, "GET", "/questions?page=2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "resource not found", resp["message"])
}

// TestListQuestions_InvalidPageDefaultsToFirst — нечисловой или
// неположительный page трактуется как страница 1
func TestListQuestions_InvalidPageDefaultsToFirst(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	for _, page := range []string{"abc", "-3", "0"} {
		w, resp := doJSON(t, router, "GET", "/questions?page="+page, nil)
		assert.Equal(t, http.StatusOK, w.Code, "page=%s", page)
		assert.Equal(t, true, resp["success"])
	}
}

// ============================================================================
// GET /categories/:id/questions
// ============================================================================

func TestGetCategoryQuestions(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "GET", "/categories/1/questions", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["questions"].([]interface{}), 2)
	current := resp["current_category"].(map[string]interface{})
	assert.Equal(t, "Science", current["type"])
}

func TestGetCategoryQuestions_UnknownCategory(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "GET", "/categories/1000/questions", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "resource not found", resp["message"])
}

// ============================================================================
// POST /questions
// ============================================================================

func TestCreateQuestion_EchoesFields(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	body := map[string]interface{}{
		"question":   "What is the capital of France?",
		"answer":     "Paris",
		"category":   1,
		"difficulty": 2,
	}
	w, resp := doJSON(t, router, "POST", "/questions", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])
	created := resp["new_question"].(map[string]interface{})
	assert.Equal(t, "What is the capital of France?", created["question"])
	assert.Equal(t, "Paris", created["answer"])
	assert.Equal(t, float64(1), created["category"])
	assert.Equal(t, float64(2), created["difficulty"])
	assert.NotZero(t, created["id"])
}

// TestCreateQuestion_StoreFailure — сбой записи в хранилище даёт 500
// с фиксированным телом ошибки
func TestCreateQuestion_StoreFailure(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	questionRepo.writeErr = fmt.Errorf("%w: connection reset", apperrors.ErrInternal)
	router := setupRouter(questionRepo, categoryRepo)

	body := map[string]interface{}{
		"question":   "What is the capital of France?",
		"answer":     "Paris",
		"category":   1,
		"difficulty": 2,
	}
	w, resp := doJSON(t, router, "POST", "/questions", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, float64(http.StatusInternalServerError), resp["error"])
	assert.Equal(t, "internal server error", resp["message"])
}

// TestCreateQuestion_FieldSetMismatch — набор полей тела должен совпадать
// с требуемым в точности: и пропуск, и лишнее поле дают 400
func TestCreateQuestion_FieldSetMismatch(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing question",
			body: map[string]interface{}{"answer": "Paris", "category": 1, "difficulty": 2},
		},
		{
			name: "missing answer",
			body: map[string]interface{}{"question": "Q?", "category": 1, "difficulty": 2},
		},
		{
			name: "missing category",
			body: map[string]interface{}{"question": "Q?", "answer": "A", "difficulty": 2},
		},
		{
			name: "missing difficulty",
			body: map[string]interface{}{"question": "Q?", "answer": "A", "category": 1},
		},
		{
			name: "unexpected extra field",
			body: map[string]interface{}{"question": "Q?", "answer": "A", "category": 1, "difficulty": 2, "rating": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionRepo, categoryRepo := seededRepos()
			router := setupRouter(questionRepo, categoryRepo)

			w, resp := doJSON(t, router, "POST", "/questions", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, float64(400), resp["error"])
			assert.Equal(t, "bad request", resp["message"])
		})
	}
}

// ============================================================================
// POST /questions/search
// ============================================================================

func TestSearchQuestions_CaseInsensitiveSubstring(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: []entity.Category{{ID: 1, Type: "Science"}}}
	questionRepo := newFakeQuestionRepo(
		entity.Question{ID: 1, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: uintPtr(1)},
		entity.Question{ID: 2, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: uintPtr(1)},
	)
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "POST", "/questions/search", map[string]string{"searchTerm": "CAGED bird"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["total_questions"])
	questions := resp["questions"].([]interface{})
	require.Len(t, questions, 1)
	assert.Equal(t, float64(1), questions[0].(map[string]interface{})["id"])
}

func TestSearchQuestions_NoMatchesIsSuccess(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "POST", "/questions/search", map[string]string{"searchTerm": "zzzz"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(0), resp["total_questions"])
	assert.Len(t, resp["questions"].([]interface{}), 0)
}

// TestSearchQuestions_EmptyTermMatchesAll — пустая подстрока содержится
// в любом тексте, поэтому возвращаются все вопросы
func TestSearchQuestions_EmptyTermMatchesAll(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "POST", "/questions/search", map[string]string{"searchTerm": ""})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), resp["total_questions"])
}

func TestSearchQuestions_MissingSearchTerm(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "POST", "/questions/search", map[string]string{"searchTTTTerm": "dummy"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad request", resp["message"])
}

// ============================================================================
// DELETE /questions/:id
// ============================================================================

// TestDeleteQuestion_TwiceInARow — первое удаление 200, повторное 404
func TestDeleteQuestion_TwiceInARow(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "DELETE", "/questions/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["question_id"])

	w, resp = doJSON(t, router, "DELETE", "/questions/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "resource not found", resp["message"])
}

func TestDeleteQuestion_NonNumericID(t *testing.T) {
	questionRepo, categoryRepo := seededRepos()
	router := setupRouter(questionRepo, categoryRepo)

	w, resp := doJSON(t, router, "DELETE", "/questions/abc", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "resource not found", resp["message"])
}
