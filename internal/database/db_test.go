package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/averose/luxe-travel-cms/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "cms",
		DBPass: "s3cret",
		DBHost: "db.internal",
		DBPort: "3306",
		DBName: "luxe_travel",
	}
	got := dsn(cfg)

	assert.Contains(t, got, "cms:s3cret@tcp(db.internal:3306)/luxe_travel")
	assert.Contains(t, got, "parseTime=true")
	assert.Contains(t, got, "charset=utf8mb4")
	// loc is omitted from the DSN because UTC is the driver default; the
	// explicit Loc in dsn() documents the intent.
	assert.NotContains(t, got, "loc=")

	t.Run("empty password", func(t *testing.T) {
		cfg.DBPass = ""
		assert.Contains(t, dsn(cfg), "cms@tcp(db.internal:3306)/luxe_travel")
	})
}
