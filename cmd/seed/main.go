package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/ghost-labs/ghost-auth/config"
	"github.com/ghost-labs/ghost-auth/internal/domain/entity"
	"github.com/ghost-labs/ghost-auth/internal/domain/repository"
	"github.com/ghost-labs/ghost-auth/internal/infrastructure/jsonstore"
	"github.com/ghost-labs/ghost-auth/pkg/helpers"
)

// Seeds a demo user into the file store so the API can be exercised without
// going through registration first.
func main() {
	username := flag.String("username", "demoUser", "username to seed")
	email := flag.String("email", "demo@example.com", "email to seed")
	password := flag.String("password", "Passw0rd!", "password to seed")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	store, err := jsonstore.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open data dir: %v", err)
	}
	users := store.Users()

	ctx := context.Background()
	if existing, err := users.FindConflict(ctx, *username, *email); err == nil {
		fmt.Printf("user already exists: id=%s username=%s\n", existing.ID, existing.Username)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("failed to check existing users: %v", err)
	}

	hash, err := helpers.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	u := &entity.User{
		ID:        uuid.NewString(),
		Username:  *username,
		Email:     *email,
		Password:  hash,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s email=%s password=%s\n", u.ID, u.Username, u.Email, *password)
}
