package dto

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту.
// Поле category — ID категории (0, если категория не назначена).
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(question *entity.Question) *QuestionResponse {
	if question == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         question.ID,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.CategoryOrZero(),
		Difficulty: question.Difficulty,
	}
}

// NewQuestionListResponse создает список DTO вопросов.
// Всегда возвращает непустой слайс, чтобы в JSON попал [], а не null.
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	response := make([]QuestionResponse, len(questions))
	for i := range questions {
		response[i] = *NewQuestionResponse(&questions[i])
	}
	return response
}

// QuestionPageResponse представляет ответ для страницы списка вопросов.
// Ключ categories присутствует в каждом пагинированном ответе,
// даже когда список категорий пуст.
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      []CategoryResponse `json:"categories"`
	CurrentCategory *CategoryResponse  `json:"current_category"`
}

// NewQuestionPageResponse создает ответ для страницы списка вопросов
func NewQuestionPageResponse(questions []entity.Question, total int, categories []entity.Category) *QuestionPageResponse {
	return &QuestionPageResponse{
		Success:         true,
		Questions:       NewQuestionListResponse(questions),
		TotalQuestions:  total,
		Categories:      NewCategoryListResponse(categories),
		CurrentCategory: nil,
	}
}

// CategoryQuestionsResponse представляет ответ для вопросов одной категории
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *CategoryResponse  `json:"current_category"`
}

// NewCategoryQuestionsResponse создает ответ для вопросов одной категории
func NewCategoryQuestionsResponse(questions []entity.Question, category *entity.Category) *CategoryQuestionsResponse {
	formatted := NewQuestionListResponse(questions)
	return &CategoryQuestionsResponse{
		Success:         true,
		Questions:       formatted,
		TotalQuestions:  len(formatted),
		CurrentCategory: NewCategoryResponse(category),
	}
}

// SearchQuestionsResponse представляет ответ на поисковый запрос
type SearchQuestionsResponse struct {
	Success        bool               `json:"success"`
	TotalQuestions int                `json:"total_questions"`
	Questions      []QuestionResponse `json:"questions"`
}

// NewSearchQuestionsResponse создает ответ с результатами поиска
func NewSearchQuestionsResponse(questions []entity.Question) *SearchQuestionsResponse {
	formatted := NewQuestionListResponse(questions)
	return &SearchQuestionsResponse{
		Success:        true,
		TotalQuestions: len(formatted),
		Questions:      formatted,
	}
}

// CreatedQuestionResponse представляет ответ на создание вопроса
type CreatedQuestionResponse struct {
	Success     bool              `json:"success"`
	NewQuestion *QuestionResponse `json:"new_question"`
}

// NewCreatedQuestionResponse создает ответ с созданным вопросом
func NewCreatedQuestionResponse(question *entity.Question) *CreatedQuestionResponse {
	return &CreatedQuestionResponse{
		Success:     true,
		NewQuestion: NewQuestionResponse(question),
	}
}

// DeletedQuestionResponse представляет ответ на удаление вопроса
type DeletedQuestionResponse struct {
	Success    bool `json:"success"`
	QuestionID uint `json:"question_id"`
}

// QuizQuestionResponse представляет ответ с очередным вопросом викторины.
// Question равен null, когда неиспользованных вопросов не осталось —
// это сигнал "викторина завершена", а не ошибка.
type QuizQuestionResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}
