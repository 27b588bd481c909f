// Command userctl is a local administration tool: it creates and
// deletes accounts directly against the database, which is the only
// path for removing a user and their transactions.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/cauafjorge/personal-finance-tracker/internal/common"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/config"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/repomanager"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return errors.New("usage: userctl <add|del> -e email [-n full name]")
	}
	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	email := fs.String("e", "", "user email")
	fullName := fs.String("n", "", "full name (add only)")
	if err := fs.Parse(os.Args[2:]); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("email is required")
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	users := services.NewUserService(db, rm, cfg)

	switch command {
	case "add":
		return addUser(ctx, users, *email, *fullName)
	case "del":
		return delUser(ctx, db, rm, users, *email)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func addUser(ctx context.Context, users *services.UserService, email, fullName string) error {
	if fullName == "" {
		return errors.New("full name is required")
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	user, err := users.Register(ctx, email, password, fullName)
	if err != nil {
		return err
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
	return nil
}

func delUser(ctx context.Context, db *sql.DB, rm repomanager.RepositoryManager, users *services.UserService, email string) error {
	user, err := rm.Users(db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("no user with email %q", email)
		}
		return err
	}

	if err := users.DeleteUser(ctx, user.ID); err != nil {
		return err
	}

	fmt.Printf("deleted user %s and all owned transactions\n", email)
	return nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}
