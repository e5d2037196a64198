package service

import (
	"fmt"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// QuestionsPerPage — фиксированный размер страницы для списка вопросов
const QuestionsPerPage = 10

// QuestionService предоставляет методы для работы с вопросами и категориями
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// QuestionPage представляет одну страницу списка вопросов
type QuestionPage struct {
	Questions  []entity.Question
	Total      int
	Categories []entity.Category
}

// ListCategories возвращает все категории
func (s *QuestionService) ListCategories() ([]entity.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetQuestionsPage возвращает страницу вопросов по 1-based номеру страницы.
//
// Страница 1 валидна даже при пустой базе (возвращается пустой список),
// но страница > 1 при пустой базе — ErrNotFound. При непустой базе
// страница валидна, пока её начальный индекс меньше общего числа вопросов.
func (s *QuestionService) GetQuestionsPage(page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	total := len(questions)
	start := QuestionsPerPage * (page - 1)
	end := start + QuestionsPerPage

	if total == 0 {
		if page > 1 {
			return nil, apperrors.ErrNotFound
		}
		return &QuestionPage{
			Questions:  []entity.Question{},
			Total:      0,
			Categories: categories,
		}, nil
	}

	if start >= total {
		return nil, apperrors.ErrNotFound
	}
	if end > total {
		end = total
	}

	return &QuestionPage{
		Questions:  questions[start:end],
		Total:      total,
		Categories: categories,
	}, nil
}

// GetQuestionsByCategory возвращает вопросы заданной категории вместе с самой
// категорией. Возвращает ErrNotFound, если категории не существует.
func (s *QuestionService) GetQuestionsByCategory(categoryID uint) ([]entity.Question, *entity.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questionRepo.GetByCategoryID(categoryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}

	return questions, category, nil
}

// SearchQuestions возвращает вопросы, содержащие term как подстроку без учета
// регистра. Пустой term совпадает со всеми вопросами; отсутствие совпадений —
// это успех с пустым списком, а не ошибка.
func (s *QuestionService) SearchQuestions(term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// CreateQuestion создает новый вопрос с назначенной категорией
func (s *QuestionService) CreateQuestion(question, answer string, difficulty int, categoryID uint) (*entity.Question, error) {
	newQuestion := &entity.Question{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
		CategoryID: &categoryID,
	}

	if err := s.questionRepo.Create(newQuestion); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return newQuestion, nil
}

// DeleteQuestion удаляет вопрос по ID. Возвращает ErrNotFound, если вопроса нет.
func (s *QuestionService) DeleteQuestion(id uint) error {
	return s.questionRepo.Delete(id)
}
