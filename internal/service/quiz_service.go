package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// AllCategories — сентинел "все категории" для выбора следующего вопроса
const AllCategories uint = 0

// QuizService выбирает следующий вопрос викторины
type QuizService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	rng          *rand.Rand
}

// NewQuizService создает новый сервис викторины.
// rng может быть nil — тогда используется источник, затравленный текущим
// временем; тесты передают детерминированный источник.
func NewQuizService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	rng *rand.Rand,
) *QuizService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuizService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		rng:          rng,
	}
}

// NextQuestion возвращает случайный вопрос из пула, еще не встречавшийся
// в previousIDs. Пул — все вопросы при categoryID == AllCategories, иначе
// вопросы указанной категории (ErrNotFound, если категории не существует).
//
// Исчерпание пула — не ошибка: возвращается (nil, nil), что означает
// "викторина завершена". Выбор равновероятный и не зависит от прошлых
// вызовов сверх переданного списка исключений.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	var pool []entity.Question
	var err error

	if categoryID == AllCategories {
		pool, err = s.questionRepo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
	} else {
		if _, err = s.categoryRepo.GetByID(categoryID); err != nil {
			return nil, err
		}
		pool, err = s.questionRepo.GetByCategoryID(categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
		}
	}

	asked := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		asked[id] = struct{}{}
	}

	unused := make([]uint, 0, len(pool))
	for _, q := range pool {
		if _, ok := asked[q.ID]; !ok {
			unused = append(unused, q.ID)
		}
	}

	if len(unused) == 0 {
		return nil, nil
	}

	chosenID := unused[s.rng.Intn(len(unused))]
	question, err := s.questionRepo.GetByID(chosenID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch question %d: %w", chosenID, err)
	}
	return question, nil
}
