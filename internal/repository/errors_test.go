package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, translate(nil))
	})

	t.Run("no rows becomes ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, translate(sql.ErrNoRows), ErrNotFound)
	})

	t.Run("duplicate key becomes ErrDuplicate", func(t *testing.T) {
		dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'bali-escape' for key 'uq_tours_slug'"}
		assert.ErrorIs(t, translate(dup), ErrDuplicate)
	})

	t.Run("wrapped duplicate key still detected", func(t *testing.T) {
		dup := fmt.Errorf("insert tour: %w", &mysql.MySQLError{Number: 1062})
		assert.ErrorIs(t, translate(dup), ErrDuplicate)
	})

	t.Run("other driver errors pass through", func(t *testing.T) {
		syntax := &mysql.MySQLError{Number: 1064, Message: "syntax error"}
		got := translate(syntax)
		assert.NotErrorIs(t, got, ErrDuplicate)
		assert.NotErrorIs(t, got, ErrNotFound)
		assert.Equal(t, error(syntax), got)
	})

	t.Run("plain errors pass through", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.Equal(t, err, translate(err))
	})
}
