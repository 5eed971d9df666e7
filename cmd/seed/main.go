package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"marketplace/internal/auth"
	"marketplace/internal/items"
	"marketplace/internal/shared/config"
	"marketplace/internal/shared/database"
	"marketplace/internal/users"
)

func main() {
	fmt.Println("🌱 Starting Marketplace Database Seeder...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if err := seedItems(ctx, db); err != nil {
		log.Fatalf("Failed to seed items: %v", err)
	}

	fmt.Println("✅ Seeding completed! Database is ready for testing.")
}

// seedUsers creates the demo account if it does not exist yet.
func seedUsers(ctx context.Context, db *database.DB) error {
	repo := users.NewRepository(db.GetPostgreSQL())

	if _, err := repo.FindByEmail(ctx, "user1@example.com"); err == nil {
		fmt.Println("Demo user already present, skipping")
		return nil
	}

	hashed, err := auth.NewPasswordHasher().Hash("pass123")
	if err != nil {
		return err
	}

	user := &users.User{
		Email:          "user1@example.com",
		HashedPassword: hashed,
		Name:           "Demo User",
	}
	if err := repo.Create(ctx, user); err != nil {
		return err
	}

	fmt.Printf("Created demo user %s (id=%d)\n", user.Email, user.ID)
	return nil
}

// seedItems creates a starter catalog when the table is empty.
func seedItems(ctx context.Context, db *database.DB) error {
	repo := items.NewRepository(db.GetPostgreSQL())

	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("Items already present, skipping")
		return nil
	}

	starter := []items.Item{
		{Name: "Sports Shoes", Price: 250000},
		{Name: "Plain T-Shirt", Price: 75000},
		{Name: "Cap", Price: 50000},
	}
	for i := range starter {
		if err := repo.Create(ctx, &starter[i]); err != nil {
			return err
		}
	}

	fmt.Printf("Created %d starter items\n", len(starter))
	return nil
}
