package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleEditor, RoleTranslator, RoleViewer} {
		assert.True(t, ValidRole(string(r)), "ValidRole(%q)", r)
	}
	for _, s := range []string{"", "superuser", "Admin", "ADMIN"} {
		assert.False(t, ValidRole(s), "ValidRole(%q)", s)
	}
}

func TestDefaultRole(t *testing.T) {
	assert.True(t, ValidRole(string(DefaultRole)))
	// New accounts must never default to full access.
	assert.NotEqual(t, RoleAdmin, DefaultRole)
}
