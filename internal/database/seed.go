package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// Seed account identity; the password comes from the environment.
const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "admin@luxe-travel.local"
)

// SeedAdmin creates the initial admin account when the users table is
// empty. Without at least one admin the dashboard is unreachable, so this
// runs on every startup and is a no-op once any user exists. The password
// comes from SEED_ADMIN_PASSWORD; when unset, seeding is skipped so a
// production deploy cannot end up with a known default credential.
func SeedAdmin(ctx context.Context, db *sql.DB, password string, bcryptCost int) error {
	var n int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if password == "" {
		log.Println("users table empty and SEED_ADMIN_PASSWORD unset; skipping admin seed")
		return nil
	}
	// The seed goes through the same validation as any other user write,
	// so a too-short SEED_ADMIN_PASSWORD fails loudly instead of creating
	// a weak admin account.
	if errs := seedUserErrs(password); !errs.OK() {
		return fmt.Errorf("seed admin rejected: %v", errs)
	}
	users := repository.NewUserRepo(db)
	u, err := users.Create(ctx, seedAdminUsername, seedAdminEmail, password, model.RoleAdmin, bcryptCost)
	if err != nil {
		return err
	}
	log.Printf("seeded admin user id=%d", u.ID)
	return nil
}

func seedUserErrs(password string) validate.Errors {
	return validate.User(seedAdminUsername, seedAdminEmail, password, string(model.RoleAdmin))
}
