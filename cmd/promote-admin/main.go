package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/backend"
	"github.com/IngFreddyRosales/pokemon-frontend/internal/config"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
)

// promote-admin flips a user's admin flag through the backend API. It signs in
// with the admin credentials from ADMIN_NAME / ADMIN_PASSWORD, so it can run
// from anywhere the backend is reachable.
func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: promote-admin <email>")
		os.Exit(1)
	}

	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	adminName := os.Getenv("ADMIN_NAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminName == "" || adminPassword == "" {
		log.Fatal("ADMIN_NAME and ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
	})

	resp, err := client.Login(ctx, dto.LoginRequest{Name: adminName, Password: adminPassword})
	if err != nil {
		log.Fatalf("Failed to sign in: %v", err)
	}

	users, err := client.ListUsers(ctx, resp.Token)
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}

	for _, user := range users {
		if user.Email != email {
			continue
		}
		if user.IsAdmin {
			fmt.Printf("%s is already an admin\n", email)
			return
		}
		if err := client.UpdateUser(ctx, resp.Token, user.ID, map[string]any{"is_admin": true}); err != nil {
			log.Fatalf("Failed to update user: %v", err)
		}
		fmt.Printf("Successfully promoted %s to admin\n", email)
		return
	}

	log.Fatalf("No user found with email: %s", email)
}
