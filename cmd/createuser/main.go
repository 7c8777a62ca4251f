package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/fruitsales/backend/internal/domain/identity"
	"github.com/fruitsales/backend/internal/domain/shared"
	"github.com/fruitsales/backend/internal/infrastructure/config"
	"github.com/fruitsales/backend/internal/infrastructure/logger"
	"github.com/fruitsales/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	var (
		username string
		password string
		logLevel string
	)

	flag.StringVar(&username, "username", "", "Username for the new operator account")
	flag.StringVar(&password, "password", "", "Password (omit to be prompted)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(config.LogConfig{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if username == "" {
		log.Fatal("Username required. Usage: createuser -username <name>")
	}

	if password == "" {
		password, err = promptPassword()
		if err != nil {
			log.Fatal("Failed to read password", zap.Error(err))
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	repo := persistence.NewGormUserRepository(db.DB)
	ctx := context.Background()

	if _, err := repo.FindByUsername(ctx, username); err == nil {
		log.Fatal("User already exists", zap.String("username", username))
	} else if !errors.Is(err, shared.ErrNotFound) {
		log.Fatal("Failed to check existing user", zap.Error(err))
	}

	user, err := identity.NewUser(username, password)
	if err != nil {
		log.Fatal("Invalid user details", zap.Error(err))
	}

	if err := repo.Save(ctx, user); err != nil {
		log.Fatal("Failed to save user", zap.Error(err))
	}

	log.Info("User created",
		zap.String("username", user.Username),
		zap.String("id", user.ID.String()),
	)
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}

	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
