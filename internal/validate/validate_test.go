package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	assert.True(t, Login("admin", "secret").OK())

	errs := Login("", "")
	assert.False(t, errs.OK())
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "password")
}

func TestInquiry(t *testing.T) {
	assert.True(t, Inquiry("Jane Doe", "jane@example.com", "+1 555 0100").OK())

	t.Run("missing required fields", func(t *testing.T) {
		errs := Inquiry("", "", "")
		assert.Contains(t, errs, "full_name")
		assert.Contains(t, errs, "email")
	})

	t.Run("bad email", func(t *testing.T) {
		errs := Inquiry("Jane Doe", "not-an-email", "")
		assert.Contains(t, errs, "email")
		assert.NotContains(t, errs, "full_name")
	})
}

func TestUser(t *testing.T) {
	assert.True(t, User("alice", "alice@example.com", "longenough", "editor").OK())

	t.Run("short password", func(t *testing.T) {
		errs := User("alice", "alice@example.com", "short", "")
		assert.Contains(t, errs, "password")
	})

	t.Run("unknown role", func(t *testing.T) {
		errs := User("alice", "alice@example.com", "longenough", "superuser")
		assert.Contains(t, errs, "role")
	})
}

func TestPageAndPost(t *testing.T) {
	assert.True(t, Page("about-us", "About Us", "draft").OK())
	assert.True(t, Page("", "About Us", "").OK()) // slug derived, status defaulted

	assert.Contains(t, Page("Bad Slug!", "About Us", ""), "slug")
	assert.Contains(t, Page("ok", "About Us", "archived"), "status")
	assert.Contains(t, Post("ok", "", "draft"), "title_en")
}

func TestSection(t *testing.T) {
	assert.True(t, Section("hero", []byte(`{"heading":"Welcome"}`)).OK())

	assert.Contains(t, Section("", []byte(`{}`)), "type")
	assert.Contains(t, Section("hero", []byte(`{broken`)), "content")
	assert.Contains(t, Section("hero", nil), "content")
}

func TestCatalogAndGallery(t *testing.T) {
	assert.True(t, Catalog("bali-escape", "Bali Escape").OK())
	assert.Contains(t, Catalog("x", ""), "name_en")

	errs := Errors{}
	errs.Gallery([]byte(`["a.jpg","b.jpg"]`))
	assert.True(t, errs.OK())

	errs = Errors{}
	errs.Gallery([]byte(`{"not":"an array"}`))
	assert.Contains(t, errs, "gallery")

	errs = Errors{}
	errs.Gallery(nil) // optional
	assert.True(t, errs.OK())
}
