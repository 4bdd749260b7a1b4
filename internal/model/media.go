package model

import "time"

// Media is an uploaded file tracked in the media library. Filename is the
// stored (server-assigned) name; OriginalName preserves what the uploader
// sent. URL is the public path the frontend embeds.
type Media struct {
	ID           uint64    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	AltEN        string    `json:"alt_en,omitempty"`
	AltES        string    `json:"alt_es,omitempty"`
	AltFR        string    `json:"alt_fr,omitempty"`
	AltJA        string    `json:"alt_ja,omitempty"`
	Caption      string    `json:"caption,omitempty"`
	UploadedBy   *uint64   `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
