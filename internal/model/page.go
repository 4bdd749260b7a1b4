package model

import (
	"encoding/json"
	"time"
)

// Content status values shared by pages and posts.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatus reports whether s is a known content status.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

// Page is a CMS-managed page identified by a unique slug. Titles carry an
// English value plus optional Spanish, French and Japanese translations.
// A page owns an ordered collection of sections.
type Page struct {
	ID              uint64    `json:"id"`
	Slug            string    `json:"slug"`
	TitleEN         string    `json:"title_en"`
	TitleES         string    `json:"title_es,omitempty"`
	TitleFR         string    `json:"title_fr,omitempty"`
	TitleJA         string    `json:"title_ja,omitempty"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Sections is populated on single-page reads, ordered by SortOrder.
	Sections []Section `json:"sections,omitempty"`
}

// Section is one block of a page. Content is an opaque structured payload
// interpreted by the frontend based on Type (hero, gallery, text, ...).
// SortOrder is significant: sections render in ascending order.
type Section struct {
	ID        uint64          `json:"id"`
	PageID    uint64          `json:"page_id"`
	Type      string          `json:"type"`
	Content   json.RawMessage `json:"content"`
	SortOrder int             `json:"sort_order"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
