package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sabor/internal/config"
	"sabor/internal/database"
	"sabor/internal/domain"
	"sabor/internal/repository"
)

var sampleRecipes = []struct {
	Title       string
	Difficulty  domain.Difficulty
	PrepTime    int
	State       string
	Ingredients []domain.Ingredient
	Steps       []string
}{
	{
		Title:      "Pão de Queijo",
		Difficulty: domain.DifficultyEasy,
		PrepTime:   40,
		State:      "MG",
		Ingredients: []domain.Ingredient{
			{Name: "polvilho azedo", Quantity: 500, MeasureUnit: "g"},
			{Name: "queijo minas", Quantity: 300, MeasureUnit: "g"},
			{Name: "ovo", Quantity: 3, MeasureUnit: "un"},
		},
		Steps: []string{
			"Escalde o polvilho com a água e o óleo fervendo.",
			"Misture o queijo ralado e os ovos até soltar das mãos.",
			"Modele as bolinhas e asse a 180C por 25 minutos.",
		},
	},
	{
		Title:      "Moqueca de Peixe",
		Difficulty: domain.DifficultyMedium,
		PrepTime:   60,
		State:      "BA",
		Ingredients: []domain.Ingredient{
			{Name: "peixe branco", Quantity: 800, MeasureUnit: "g"},
			{Name: "leite de coco", Quantity: 400, MeasureUnit: "ml"},
			{Name: "azeite de dendê", Quantity: 50, MeasureUnit: "ml"},
		},
		Steps: []string{
			"Tempere o peixe com limão, sal e alho.",
			"Monte camadas de peixe, cebola, tomate e pimentão na panela.",
			"Regue com leite de coco e dendê e cozinhe por 20 minutos.",
		},
	},
	{
		Title:      "Feijoada Completa",
		Difficulty: domain.DifficultyHard,
		PrepTime:   180,
		State:      "RJ",
		Ingredients: []domain.Ingredient{
			{Name: "feijão preto", Quantity: 1, MeasureUnit: "kg"},
			{Name: "carne seca", Quantity: 500, MeasureUnit: "g"},
			{Name: "linguiça calabresa", Quantity: 300, MeasureUnit: "g"},
		},
		Steps: []string{
			"Dessalgue as carnes de véspera trocando a água.",
			"Cozinhe o feijão com as carnes em fogo baixo.",
			"Finalize com a linguiça e sirva com couve e laranja.",
		},
	},
}

func main() {
	users := flag.Int("users", 10, "number of users to create")
	wipe := flag.Bool("wipe", true, "truncate existing data before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if *wipe {
		wipeData(db)
	}

	seeded := seedUsers(db, *users)
	seedRecipes(db, seeded)

	total, err := repository.NewRecipeRepository(db).Count(context.Background())
	if err != nil {
		log.Fatalf("count recipes: %v", err)
	}
	log.Printf("seed done: %d users, %d recipes", len(seeded), total)
}

// wipeData clears tables children first so foreign keys never dangle.
func wipeData(db *gorm.DB) {
	for _, model := range []any{
		&domain.Notification{},
		&domain.Report{},
		&domain.Favorite{},
		&domain.Rating{},
		&domain.Comment{},
		&domain.Media{},
		&domain.PreparationStep{},
		&domain.Ingredient{},
		&domain.Recipe{},
		&domain.Follow{},
		&domain.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			log.Fatalf("wipe: %v", err)
		}
	}
}

func seedUsers(db *gorm.DB, count int) []domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}

	states := []string{"SP", "RJ", "MG", "BA", "RS", "PE", "CE", ""}
	profiles := []domain.ProfileRole{domain.RoleComum, domain.RoleComum, domain.RoleAutor}

	users := make([]domain.User, 0, count)
	for i := 1; i <= count; i++ {
		u := domain.User{
			Username:     fmt.Sprintf("cozinheiro%d", i),
			Email:        fmt.Sprintf("cozinheiro%d@example.com", i),
			PasswordHash: string(hash),
			Profile:      profiles[rand.Intn(len(profiles))],
			State:        states[rand.Intn(len(states))],
			IsActive:     true,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("seed user %s: %v", u.Username, err)
		}
		users = append(users, u)
	}
	return users
}

func seedRecipes(db *gorm.DB, users []domain.User) {
	if len(users) == 0 {
		return
	}

	for _, sr := range sampleRecipes {
		author := users[rand.Intn(len(users))]

		r := domain.Recipe{
			AuthorID:   author.ID,
			Title:      sr.Title,
			Difficulty: sr.Difficulty,
			PrepTime:   sr.PrepTime,
			State:      sr.State,
		}
		if err := db.Create(&r).Error; err != nil {
			log.Fatalf("seed recipe %s: %v", sr.Title, err)
		}

		for _, ing := range sr.Ingredients {
			ing.RecipeID = r.ID
			if err := db.Create(&ing).Error; err != nil {
				log.Fatalf("seed ingredient: %v", err)
			}
		}
		for i, desc := range sr.Steps {
			st := domain.PreparationStep{RecipeID: r.ID, Order: i + 1, Description: desc}
			if err := db.Create(&st).Error; err != nil {
				log.Fatalf("seed step: %v", err)
			}
		}

		for _, u := range users {
			if u.ID == author.ID || rand.Intn(3) != 0 {
				continue
			}
			rt := domain.Rating{UserID: u.ID, RecipeID: r.ID, Rating: 3 + rand.Intn(3)}
			if err := db.Create(&rt).Error; err != nil {
				log.Fatalf("seed rating: %v", err)
			}
		}
	}
}
