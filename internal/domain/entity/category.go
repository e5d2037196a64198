package entity

// Category представляет категорию вопросов (например, "Science")
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null" json:"type"`

	// Обратная связь один-ко-многим; информационная, категорией не владеет
	Questions []Question `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
