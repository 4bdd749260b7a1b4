package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetBuilder(t *testing.T) {
	var b setBuilder
	assert.True(t, b.empty())

	b.add("slug", "bali-escape")
	b.add("status", "published")
	assert.False(t, b.empty())
	assert.Equal(t, "slug = ?, status = ?", b.clause())
	assert.Equal(t, []any{"bali-escape", "published"}, b.args)
}
