package model

import (
	"encoding/json"
	"time"
)

// Category groups tours for navigation and filtering (e.g. "safari",
// "honeymoon"). Slug is unique.
type Category struct {
	ID            uint64    `json:"id"`
	Slug          string    `json:"slug"`
	NameEN        string    `json:"name_en"`
	NameES        string    `json:"name_es,omitempty"`
	NameFR        string    `json:"name_fr,omitempty"`
	NameJA        string    `json:"name_ja,omitempty"`
	DescriptionEN string    `json:"description_en,omitempty"`
	Image         string    `json:"image,omitempty"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Tour is a bookable itinerary shown on destination pages. Gallery holds a
// JSON array of image URLs. PriceCents avoids floating point money.
type Tour struct {
	ID            uint64          `json:"id"`
	Slug          string          `json:"slug"`
	NameEN        string          `json:"name_en"`
	NameES        string          `json:"name_es,omitempty"`
	NameFR        string          `json:"name_fr,omitempty"`
	NameJA        string          `json:"name_ja,omitempty"`
	DescriptionEN string          `json:"description_en,omitempty"`
	DescriptionES string          `json:"description_es,omitempty"`
	DescriptionFR string          `json:"description_fr,omitempty"`
	DescriptionJA string          `json:"description_ja,omitempty"`
	CategoryID    *uint64         `json:"category_id,omitempty"`
	Destination   string          `json:"destination,omitempty"`
	DurationDays  int             `json:"duration_days"`
	PriceCents    int64           `json:"price_cents"`
	Image         string          `json:"image,omitempty"`
	Gallery       json.RawMessage `json:"gallery,omitempty"`
	Featured      bool            `json:"featured"`
	Published     bool            `json:"published"`
	SortOrder     int             `json:"sort_order"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Package is a curated bundle (flights + hotel + tour) with its own
// pricing and marketing copy.
type Package struct {
	ID            uint64          `json:"id"`
	Slug          string          `json:"slug"`
	NameEN        string          `json:"name_en"`
	NameES        string          `json:"name_es,omitempty"`
	NameFR        string          `json:"name_fr,omitempty"`
	NameJA        string          `json:"name_ja,omitempty"`
	DescriptionEN string          `json:"description_en,omitempty"`
	Destination   string          `json:"destination,omitempty"`
	DurationDays  int             `json:"duration_days"`
	PriceCents    int64           `json:"price_cents"`
	Image         string          `json:"image,omitempty"`
	Gallery       json.RawMessage `json:"gallery,omitempty"`
	Featured      bool            `json:"featured"`
	Published     bool            `json:"published"`
	SortOrder     int             `json:"sort_order"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Hotel is a partner property featured on destination pages.
type Hotel struct {
	ID            uint64          `json:"id"`
	Slug          string          `json:"slug"`
	NameEN        string          `json:"name_en"`
	NameES        string          `json:"name_es,omitempty"`
	NameFR        string          `json:"name_fr,omitempty"`
	NameJA        string          `json:"name_ja,omitempty"`
	DescriptionEN string          `json:"description_en,omitempty"`
	Destination   string          `json:"destination,omitempty"`
	Stars         int             `json:"stars"`
	PriceCents    int64           `json:"price_cents"` // nightly rate
	Image         string          `json:"image,omitempty"`
	Gallery       json.RawMessage `json:"gallery,omitempty"`
	Featured      bool            `json:"featured"`
	Published     bool            `json:"published"`
	SortOrder     int             `json:"sort_order"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
