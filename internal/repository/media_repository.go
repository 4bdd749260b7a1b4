package repository

import (
	"context"
	"database/sql"

	"github.com/averose/luxe-travel-cms/internal/model"
)

// MediaRepo tracks uploaded files in the media library. The bytes
// themselves live on disk under the upload directory; rows hold metadata
// and the public URL.
type MediaRepo struct{ DB *sql.DB }

func NewMediaRepo(db *sql.DB) *MediaRepo { return &MediaRepo{DB: db} }

const mediaCols = `id, filename, original_name, mime_type, size, url,
	alt_en, alt_es, alt_fr, alt_ja, caption, uploaded_by, created_at`

// MediaUpdate carries the editable metadata fields. The stored file and
// its URL are immutable once uploaded.
type MediaUpdate struct {
	AltEN   *string
	AltES   *string
	AltFR   *string
	AltJA   *string
	Caption *string
}

// Create records an uploaded file.
func (r *MediaRepo) Create(ctx context.Context, m *model.Media) (*model.Media, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO media (filename, original_name, mime_type, size, url,
		 alt_en, alt_es, alt_fr, alt_ja, caption, uploaded_by)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		m.Filename, m.OriginalName, m.MimeType, m.Size, m.URL,
		m.AltEN, m.AltES, m.AltFR, m.AltJA, m.Caption, m.UploadedBy)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a media record.
func (r *MediaRepo) GetByID(ctx context.Context, id uint64) (*model.Media, error) {
	var m model.Media
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+mediaCols+" FROM media WHERE id = ?", id).
		Scan(&m.ID, &m.Filename, &m.OriginalName, &m.MimeType, &m.Size, &m.URL,
			&m.AltEN, &m.AltES, &m.AltFR, &m.AltJA, &m.Caption, &m.UploadedBy, &m.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// List returns the media library newest first.
func (r *MediaRepo) List(ctx context.Context) ([]*model.Media, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+mediaCols+" FROM media ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Media
	for rows.Next() {
		m := new(model.Media)
		if err := rows.Scan(&m.ID, &m.Filename, &m.OriginalName, &m.MimeType, &m.Size, &m.URL,
			&m.AltEN, &m.AltES, &m.AltFR, &m.AltJA, &m.Caption, &m.UploadedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update edits alt text and caption.
func (r *MediaRepo) Update(ctx context.Context, id uint64, u MediaUpdate) (*model.Media, error) {
	var b setBuilder
	if u.AltEN != nil {
		b.add("alt_en", *u.AltEN)
	}
	if u.AltES != nil {
		b.add("alt_es", *u.AltES)
	}
	if u.AltFR != nil {
		b.add("alt_fr", *u.AltFR)
	}
	if u.AltJA != nil {
		b.add("alt_ja", *u.AltJA)
	}
	if u.Caption != nil {
		b.add("caption", *u.Caption)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}
	args := append(b.args, id)
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE media SET "+b.clause()+" WHERE id = ?", args...); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a media record, reporting whether a row existed. The
// caller is responsible for unlinking the file on disk.
func (r *MediaRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM media WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the number of media records (stats endpoint).
func (r *MediaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM media").Scan(&n)
	return n, err
}
