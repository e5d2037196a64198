package dto

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// CategoryResponse представляет категорию в формате для ответа клиенту
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// NewCategoryResponse создает DTO для категории
func NewCategoryResponse(category *entity.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:   category.ID,
		Type: category.Type,
	}
}

// NewCategoryListResponse создает список DTO категорий.
// Всегда возвращает непустой слайс, чтобы в JSON попал [], а не null.
func NewCategoryListResponse(categories []entity.Category) []CategoryResponse {
	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{ID: c.ID, Type: c.Type}
	}
	return response
}

// ListCategoriesResponse представляет ответ на запрос списка категорий
type ListCategoriesResponse struct {
	Success    bool               `json:"success"`
	Count      int                `json:"count"`
	Categories []CategoryResponse `json:"categories"`
}

// NewListCategoriesResponse создает ответ со списком всех категорий
func NewListCategoriesResponse(categories []entity.Category) *ListCategoriesResponse {
	formatted := NewCategoryListResponse(categories)
	return &ListCategoriesResponse{
		Success:    true,
		Count:      len(formatted),
		Categories: formatted,
	}
}
