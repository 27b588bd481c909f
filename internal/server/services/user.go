// Package services contains server-side business logic. This file
// implements UserService: registration, login and account removal.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/common"
	"github.com/cauafjorge/personal-finance-tracker/internal/dbx"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/auth"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/config"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/models"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// UserService provides account operations:
// - Register: create users with a bcrypt-hashed password
// - Login: verify credentials and mint a JWT
// - GetByID: resolve the subject of a verified token
// - DeleteUser: remove an account and all owned transactions atomically
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register creates a new user. A taken email yields
// common.ErrorAlreadyExists; bad input wraps common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", common.ErrorValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and returns a signed token. Unknown
// email and wrong password are indistinguishable; an unknown email
// still costs one bcrypt comparison so response timing does not leak
// account existence.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.VerifyDummy(password)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// GetByID loads a user by id. Used by the authentication gate after
// token verification.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// DeleteUser removes the user and every transaction they own in one
// database transaction, keeping the ownership invariant at delete time
// instead of relying on a declarative cascade.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Transactions(tx).DeleteAllForUser(ctx, id); err != nil {
			return fmt.Errorf("error deleting user transactions: %w", err)
		}
		return s.repomanager.Users(tx).Delete(ctx, id)
	})
}
