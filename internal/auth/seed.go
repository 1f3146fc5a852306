package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/internal/users"
	"github.com/velora-labs/storefront-backend/pkg/config"
	"github.com/velora-labs/storefront-backend/pkg/db"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	"github.com/velora-labs/storefront-backend/pkg/logger"
	"github.com/velora-labs/storefront-backend/pkg/security"
)

// EnsureDefaultAdmin creates the bootstrap admin account if no account with
// the configured email exists. Safe to run on every startup.
func EnsureDefaultAdmin(ctx context.Context, repo userRepository, cfg config.SeedConfig, passwordCfg config.PasswordConfig, logg *logger.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" {
		return fmt.Errorf("seed admin email is required")
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("seed admin password is required")
	}

	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking seed admin: %w", err)
	}

	passwordHash, err := security.HashPassword(cfg.AdminPassword, passwordCfg)
	if err != nil {
		return fmt.Errorf("hashing seed admin password: %w", err)
	}

	name := cfg.AdminName
	if name == "" {
		name = "Administrator"
	}

	if _, err := repo.Create(ctx, users.CreateUserDTO{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         enums.RoleAdmin,
	}); err != nil {
		// another instance may have won the insert race
		if db.IsUniqueViolation(err, "") {
			return nil
		}
		return fmt.Errorf("creating seed admin: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "email", email), "seeded default admin account")
	}
	return nil
}
