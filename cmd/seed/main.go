package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/devpad-api/config"
	"github.com/oksasatya/devpad-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@devpad.local"
	username := "demo_user"
	password := "password123"
	hash, err := helpers.NewBcryptHasher().Hash(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, username, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, "Demo User", email, username, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", userID, email, username, password)

	seedProjects := []struct {
		title string
		code  string
	}{
		{"Hello World", `{"files": [{"name": "main.go", "body": "package main"}]}`},
		{"Scratchpad", `["fmt.Println(1)", "fmt.Println(2)"]`},
	}
	for _, p := range seedProjects {
		var projectID string
		err = db.QueryRow(`
			INSERT INTO projects (user_id, title, code)
			VALUES ($1, $2, $3)
			RETURNING id
		`, userID, p.title, p.code).Scan(&projectID)
		if err != nil {
			log.Fatalf("failed to seed project %q: %v", p.title, err)
		}
		fmt.Printf("seeded project: id=%s title=%q\n", projectID, p.title)
	}
}
