// Package repository contains data access logic separated from HTTP
// handlers. Every read and mutation of persisted entities goes through one
// of the repos in this package; no business rules live here beyond what
// the schema enforces (uniqueness, foreign keys, timestamp stamping).
//
// This file defines sentinel errors shared by all repositories so handlers
// can map failures to HTTP status codes without inspecting driver errors.
package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a row does not exist. Handlers translate it
// into an HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (slug, username, email). Handlers translate it into an HTTP
// 409 with a field-level message instead of a generic 500.
var ErrDuplicate = errors.New("duplicate entry")

// translate maps driver-level errors onto the package sentinels. MySQL
// reports unique-key violations as error number 1062.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return ErrDuplicate
	}
	return err
}
