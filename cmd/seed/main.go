package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tastebud-app/tastebud/internal/database"
	"github.com/tastebud-app/tastebud/internal/models"
)

// Seeds a handful of demo accounts and recipes for local development.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash demo password: %v", err)
	}

	users := []models.User{
		{FullName: "Ada Cook", Username: "adacook", Email: "ada@example.com", PasswordHash: string(hash), About: "Weeknight dinners, mostly."},
		{FullName: "Ben Baker", Username: "benbaker", Email: "ben@example.com", PasswordHash: string(hash), About: "Sourdough and stews."},
	}
	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("failed to seed user %s: %v", users[i].Email, err)
		}
	}

	recipes := []models.Recipe{
		{
			UserID:          users[0].ID,
			Title:           "Garlic Butter Pasta",
			Description:     "A ten minute pantry dinner.",
			PreparationTime: 10,
			Ingredients:     "spaghetti, butter, garlic, parmesan, parsley",
			Directions:      "Boil the pasta. Melt butter with garlic. Toss together with cheese.",
		},
		{
			UserID:          users[1].ID,
			Title:           "Beef and Barley Stew",
			Description:     "Slow simmered and better the next day.",
			PreparationTime: 120,
			Ingredients:     "beef chuck, barley, carrots, onion, stock, thyme",
			Directions:      "Brown the beef. Add vegetables and stock. Simmer until tender, then add barley.",
		},
	}
	for i := range recipes {
		err := db.Where("user_id = ? AND title = ?", recipes[i].UserID, recipes[i].Title).
			FirstOrCreate(&recipes[i]).Error
		if err != nil {
			log.Fatalf("failed to seed recipe %s: %v", recipes[i].Title, err)
		}
	}

	log.Printf("Seeded %d users and %d recipes", len(users), len(recipes))
}
