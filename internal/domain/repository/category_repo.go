package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	GetAll() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
	Create(category *entity.Category) error
}
