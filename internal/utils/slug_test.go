package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Luxury Maldives Escape", "luxury-maldives-escape"},
		{"Côte d'Azur — Private Villas", "cote-dazur-private-villas"},
		{"  Trim  me  ", "trim-me"},
		{"Tokyo & Kyoto: 7 Nights", "tokyo-kyoto-7-nights"},
		{"already-a-slug", "already-a-slug"},
		{"東京ツアー", ""}, // no ASCII representation
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "Slugify(%q)", c.in)
	}
}

func TestValidSlug(t *testing.T) {
	valid := []string{"a", "tours", "bali-7-nights", "x1-y2"}
	invalid := []string{"", "-leading", "trailing-", "double--hyphen", "Upper", "with space", "accénts"}

	for _, s := range valid {
		assert.True(t, ValidSlug(s), "ValidSlug(%q)", s)
	}
	for _, s := range invalid {
		assert.False(t, ValidSlug(s), "ValidSlug(%q)", s)
	}
}
