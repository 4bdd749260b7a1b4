package model

import "time"

// Post is a blog entry. Localized titles and bodies follow the same
// en/es/fr/ja convention as pages. A post becomes publicly visible when
// Status is "published"; PublishedAt records when that happened.
type Post struct {
	ID            uint64     `json:"id"`
	Slug          string     `json:"slug"`
	TitleEN       string     `json:"title_en"`
	TitleES       string     `json:"title_es,omitempty"`
	TitleFR       string     `json:"title_fr,omitempty"`
	TitleJA       string     `json:"title_ja,omitempty"`
	BodyEN        string     `json:"body_en"`
	BodyES        string     `json:"body_es,omitempty"`
	BodyFR        string     `json:"body_fr,omitempty"`
	BodyJA        string     `json:"body_ja,omitempty"`
	Excerpt       string     `json:"excerpt,omitempty"`
	FeaturedImage string     `json:"featured_image,omitempty"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	AuthorID      *uint64    `json:"author_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
