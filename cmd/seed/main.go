package main

import (
	"context"
	"log"

	"miniter/internal/auth"
	"miniter/internal/config"
	"miniter/internal/db"
	"miniter/internal/model"
	"miniter/internal/repository"
	"miniter/internal/service"
)

// seedUser describes one demo account to create.
type seedUser struct {
	Name     string
	Email    string
	Profile  string
	Password string
	Tweets   []string
}

var seedUsers = []seedUser{
	{
		Name:     "sinbee",
		Email:    "sinbee@example.com",
		Profile:  "first user",
		Password: "sinbee-password",
		Tweets:   []string{"I am sinbee!", "hello timeline"},
	},
	{
		Name:     "gildong",
		Email:    "gildong@example.com",
		Profile:  "second user",
		Password: "gildong-password",
		Tweets:   []string{"first tweet from gildong"},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Tweet{}, &model.Follow{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	tweetRepo := repository.NewTweetRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)

	authService := service.NewAuthService(userRepo, auth.NewTokenService(cfg.JWTSecret))
	tweetService := service.NewTweetService(tweetRepo)
	followService := service.NewFollowService(followRepo)

	ctx := context.Background()
	created := make([]*model.User, 0, len(seedUsers))

	for _, su := range seedUsers {
		user, err := authService.SignUp(ctx, su.Name, su.Email, su.Profile, su.Password)
		if err == service.ErrEmailTaken {
			log.Printf("Skipping %s: already seeded", su.Email)
			existing, err := userRepo.FindByEmail(ctx, su.Email)
			if err != nil {
				log.Fatalf("Failed to load existing user %s: %v", su.Email, err)
			}
			created = append(created, existing)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}

		for _, text := range su.Tweets {
			if err := tweetService.Post(ctx, user.ID, text); err != nil {
				log.Fatalf("Failed to post tweet for %s: %v", su.Email, err)
			}
		}
		created = append(created, user)
		log.Printf("Seeded user %s (id=%d) with %d tweets", su.Name, user.ID, len(su.Tweets))
	}

	// Everyone follows the first seeded user.
	for _, user := range created[1:] {
		if err := followService.Follow(ctx, user.ID, created[0].ID); err != nil {
			log.Fatalf("Failed to create follow edge: %v", err)
		}
	}

	log.Println("Seed completed")
}
