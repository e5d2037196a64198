package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	GetAll() ([]entity.Question, error)
	GetByID(id uint) (*entity.Question, error)
	GetByCategoryID(categoryID uint) ([]entity.Question, error)

	// Search возвращает вопросы, текст которых содержит term как подстроку
	// без учета регистра. Пустой term совпадает со всеми вопросами.
	Search(term string) ([]entity.Question, error)

	Create(question *entity.Question) error

	// Delete удаляет вопрос по ID. Возвращает ErrNotFound, если вопроса нет.
	Delete(id uint) error
}
