package entity

// Question представляет один вопрос викторины
type Question struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"not null" json:"question"`
	Answer   string `gorm:"not null" json:"answer"`

	// Сложность хранится как есть; нигде не интерпретируется
	Difficulty int `json:"difficulty"`

	// Внешний ключ допускает NULL: вопрос может временно остаться без категории
	// (например, после удаления категории — FK настроен ON DELETE SET NULL)
	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// CategoryOrZero возвращает ID категории или 0, если категория не назначена
func (q *Question) CategoryOrZero() uint {
	if q.CategoryID == nil {
		return 0
	}
	return *q.CategoryID
}
