package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"stagecraft/api/internal/adapter/repo"
	"stagecraft/api/internal/domain"
	"stagecraft/api/internal/infra"
)

// createadmin inserts an admin account directly, bypassing the one-shot
// /api/admin/setup endpoint. Use it to add further admins or to recover
// access to an existing installation.
func main() {
	var (
		emailFlag    string
		passwordFlag string
		nameFlag     string
		costFlag     int
	)

	flag.StringVar(&emailFlag, "email", "", "admin email address")
	flag.StringVar(&passwordFlag, "password", "", "admin password (min 6 characters)")
	flag.StringVar(&nameFlag, "name", "", "admin display name")
	flag.IntVar(&costFlag, "cost", 12, "bcrypt cost factor")
	flag.Parse()

	email := domain.NormalizeEmail(emailFlag)
	password := passwordFlag
	name := strings.TrimSpace(nameFlag)

	if email == "" || password == "" || name == "" {
		exitWithError(errors.New("-email, -password and -name are all required"))
	}
	if len(password) < 6 {
		exitWithError(errors.New("password must be at least 6 characters"))
	}

	_ = godotenv.Load()
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger(os.Getenv("APP_ENV"))
	runner := infra.NewSQLRunner(pool, logger)
	if err := infra.EnsureSchema(ctx, runner); err != nil {
		exitWithError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), costFlag)
	if err != nil {
		exitWithError(fmt.Errorf("hash password: %w", err))
	}

	admins := repo.NewAdminRepository(runner)
	admin, err := admins.Create(ctx, &domain.Admin{
		ID:           domain.NewID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	})
	if err != nil {
		exitWithError(fmt.Errorf("create admin: %w", err))
	}

	fmt.Printf("created admin %s (%s)\n", admin.Email, admin.ID)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "createadmin:", err)
	os.Exit(1)
}
