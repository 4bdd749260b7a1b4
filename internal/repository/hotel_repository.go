package repository

import (
	"context"
	"database/sql"

	"github.com/averose/luxe-travel-cms/internal/model"
)

// HotelRepo persists partner hotels.
type HotelRepo struct{ DB *sql.DB }

func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{DB: db} }

const hotelCols = `id, slug, name_en, name_es, name_fr, name_ja, description_en,
	destination, stars, price_cents, image, gallery,
	featured, published, sort_order, created_at, updated_at`

// HotelUpdate carries the fields of a partial hotel update.
type HotelUpdate struct {
	Slug          *string
	NameEN        *string
	NameES        *string
	NameFR        *string
	NameJA        *string
	DescriptionEN *string
	Destination   *string
	Stars         *int
	PriceCents    *int64
	Image         *string
	Gallery       []byte
	Featured      *bool
	Published     *bool
	SortOrder     *int
}

// Create inserts a hotel. Returns ErrDuplicate when the slug is taken.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) (*model.Hotel, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO hotels (slug, name_en, name_es, name_fr, name_ja, description_en,
		 destination, stars, price_cents, image, gallery, featured, published, sort_order)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		h.Slug, h.NameEN, h.NameES, h.NameFR, h.NameJA, h.DescriptionEN,
		h.Destination, h.Stars, h.PriceCents, h.Image, nullJSON(h.Gallery),
		h.Featured, h.Published, h.SortOrder)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a hotel by id.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (*model.Hotel, error) {
	return scanHotel(r.DB.QueryRowContext(ctx,
		"SELECT "+hotelCols+" FROM hotels WHERE id = ?", id))
}

// GetBySlug fetches a hotel by slug; drafts hidden when publishedOnly.
func (r *HotelRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Hotel, error) {
	q := "SELECT " + hotelCols + " FROM hotels WHERE slug = ?"
	if publishedOnly {
		q += " AND published = 1"
	}
	return scanHotel(r.DB.QueryRowContext(ctx, q, slug))
}

// List returns hotels in sort order, then newest first.
func (r *HotelRepo) List(ctx context.Context, publishedOnly bool) ([]*model.Hotel, error) {
	q := "SELECT " + hotelCols + " FROM hotels"
	if publishedOnly {
		q += " WHERE published = 1"
	}
	q += " ORDER BY sort_order, created_at DESC, id DESC"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Hotel
	for rows.Next() {
		h := new(model.Hotel)
		var gallery []byte
		if err := rows.Scan(&h.ID, &h.Slug, &h.NameEN, &h.NameES, &h.NameFR, &h.NameJA,
			&h.DescriptionEN, &h.Destination, &h.Stars, &h.PriceCents,
			&h.Image, &gallery, &h.Featured, &h.Published, &h.SortOrder,
			&h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		h.Gallery = gallery
		out = append(out, h)
	}
	return out, rows.Err()
}

// Update applies a partial update and re-stamps updated_at.
func (r *HotelRepo) Update(ctx context.Context, id uint64, u HotelUpdate) (*model.Hotel, error) {
	var b setBuilder
	if u.Slug != nil {
		b.add("slug", *u.Slug)
	}
	if u.NameEN != nil {
		b.add("name_en", *u.NameEN)
	}
	if u.NameES != nil {
		b.add("name_es", *u.NameES)
	}
	if u.NameFR != nil {
		b.add("name_fr", *u.NameFR)
	}
	if u.NameJA != nil {
		b.add("name_ja", *u.NameJA)
	}
	if u.DescriptionEN != nil {
		b.add("description_en", *u.DescriptionEN)
	}
	if u.Destination != nil {
		b.add("destination", *u.Destination)
	}
	if u.Stars != nil {
		b.add("stars", *u.Stars)
	}
	if u.PriceCents != nil {
		b.add("price_cents", *u.PriceCents)
	}
	if u.Image != nil {
		b.add("image", *u.Image)
	}
	if u.Gallery != nil {
		b.add("gallery", u.Gallery)
	}
	if u.Featured != nil {
		b.add("featured", *u.Featured)
	}
	if u.Published != nil {
		b.add("published", *u.Published)
	}
	if u.SortOrder != nil {
		b.add("sort_order", *u.SortOrder)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}
	args := append(b.args, id)
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE hotels SET "+b.clause()+", updated_at = CURRENT_TIMESTAMP WHERE id = ?", args...); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a hotel, reporting whether a row existed.
func (r *HotelRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM hotels WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the number of hotels (stats endpoint).
func (r *HotelRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM hotels").Scan(&n)
	return n, err
}

func scanHotel(row *sql.Row) (*model.Hotel, error) {
	var h model.Hotel
	var gallery []byte
	if err := row.Scan(&h.ID, &h.Slug, &h.NameEN, &h.NameES, &h.NameFR, &h.NameJA,
		&h.DescriptionEN, &h.Destination, &h.Stars, &h.PriceCents,
		&h.Image, &gallery, &h.Featured, &h.Published, &h.SortOrder,
		&h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	h.Gallery = gallery
	return &h, nil
}
