package validate

import (
	"encoding/json"
	"strings"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/utils"
)

// Login checks the credentials payload shape only; whether they match a
// user is the auth handler's concern.
func Login(username, password string) Errors {
	e := Errors{}
	e.require("username", username)
	e.require("password", password)
	return e
}

// User checks a user creation payload (seed/admin action).
func User(username, email, password, role string) Errors {
	e := Errors{}
	if e.require("username", username) {
		e.maxLen("username", username, 64)
	}
	if e.require("email", email) {
		e.email("email", email)
	}
	if e.require("password", password) {
		if len(password) < 8 {
			e.set("password", "password must be at least 8 characters")
		}
	}
	if role != "" && !model.ValidRole(role) {
		e.set("role", "role must be one of admin, editor, translator, viewer")
	}
	return e
}

// Inquiry checks a public inquiry submission.
func Inquiry(fullName, email, phone string) Errors {
	e := Errors{}
	if e.require("full_name", fullName) {
		e.maxLen("full_name", fullName, 200)
	}
	if e.require("email", email) {
		e.email("email", email)
	}
	e.maxLen("phone", phone, 40)
	return e
}

// Slug checks an explicitly provided slug. Empty is allowed here because
// handlers derive a slug from the title when it is omitted.
func (e Errors) Slug(slug string) {
	if slug != "" && !utils.ValidSlug(slug) {
		e.set("slug", "slug may contain only lowercase letters, digits and single hyphens")
	}
}

// Status checks a content status value.
func (e Errors) Status(status string) {
	if status != "" && !model.ValidStatus(status) {
		e.set("status", "status must be draft or published")
	}
}

// Page checks a page creation payload.
func Page(slug, titleEN, status string) Errors {
	e := Errors{}
	if e.require("title_en", titleEN) {
		e.maxLen("title_en", titleEN, 300)
	}
	e.Slug(slug)
	e.Status(status)
	return e
}

// Section checks a section payload. Content must be valid JSON since the
// frontend parses it blindly.
func Section(typ string, content []byte) Errors {
	e := Errors{}
	if e.require("type", typ) {
		e.maxLen("type", typ, 64)
	}
	if len(content) == 0 || !json.Valid(content) {
		e.set("content", "content must be a JSON object")
	}
	return e
}

// Post checks a post creation payload.
func Post(slug, titleEN, status string) Errors {
	e := Errors{}
	if e.require("title_en", titleEN) {
		e.maxLen("title_en", titleEN, 300)
	}
	e.Slug(slug)
	e.Status(status)
	return e
}

// Catalog checks the shared shape of categories, tours, packages and
// hotels: a name plus an optional explicit slug.
func Catalog(slug, nameEN string) Errors {
	e := Errors{}
	if e.require("name_en", nameEN) {
		e.maxLen("name_en", nameEN, 300)
	}
	e.Slug(slug)
	return e
}

// Gallery checks that an optional gallery payload is a JSON array of
// strings.
func (e Errors) Gallery(raw []byte) {
	if len(raw) == 0 {
		return
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		e.set("gallery", "gallery must be a JSON array of image URLs")
	}
}

// NonEmptyTrimmed reports whether v holds more than whitespace; used by
// handlers for optional updates where an empty value would wipe a
// required column.
func NonEmptyTrimmed(v string) bool { return strings.TrimSpace(v) != "" }
