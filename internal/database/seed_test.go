package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedUserValidation(t *testing.T) {
	assert.True(t, seedUserErrs("a-strong-enough-password").OK())

	errs := seedUserErrs("short")
	assert.False(t, errs.OK())
	assert.Contains(t, errs, "password")
}
