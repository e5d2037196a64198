package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yourusername/quiz-api/internal/config"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	pgRepo "github.com/yourusername/quiz-api/internal/repository/postgres"
	"github.com/yourusername/quiz-api/pkg/database"
)

// Одноразовая загрузка демонстрационных данных: шесть категорий и
// двенадцать вопросов, каждый вопрос получает случайную категорию.

var sampleCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

type sampleQuestion struct {
	question   string
	answer     string
	difficulty int
}

var sampleQuestions = []sampleQuestion{
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4},
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 4},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5},
	{"What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", 5},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", 6},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6},
	{"Who invented Peanut Butter?", "George Washington Carver", 4},
	{"What is the largest lake in Africa?", "Lake Victoria", 3},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3},
	{"The Taj Mahal is located in which Indian city?", "Agra", 3},
	{"Which Dutch graphic artist–initials M C was a creator of optical illusions?", "M.C. Escher", 3},
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Загружен .env файл")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Загружаем категории
	for _, label := range sampleCategories {
		category := &entity.Category{Type: label}
		if err := categoryRepo.Create(category); err != nil {
			log.Fatalf("Failed to insert category %q: %v", label, err)
		}
	}

	// Каждому вопросу назначаем случайную из существующих категорий
	categories, err := categoryRepo.GetAll()
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) == 0 {
		log.Fatal("No categories found after seeding")
	}

	for _, sample := range sampleQuestions {
		categoryID := categories[rng.Intn(len(categories))].ID
		question := &entity.Question{
			Question:   sample.question,
			Answer:     sample.answer,
			Difficulty: sample.difficulty,
			CategoryID: &categoryID,
		}
		if err := questionRepo.Create(question); err != nil {
			log.Fatalf("Failed to insert question %q: %v", sample.question, err)
		}
	}

	fmt.Printf("Seeded %d categories and %d questions\n", len(sampleCategories), len(sampleQuestions))
}
