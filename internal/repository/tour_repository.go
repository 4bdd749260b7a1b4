package repository

import (
	"context"
	"database/sql"

	"github.com/averose/luxe-travel-cms/internal/model"
)

// TourRepo persists tours. Public listings support filtering by category
// slug and only return published rows.
type TourRepo struct{ DB *sql.DB }

func NewTourRepo(db *sql.DB) *TourRepo { return &TourRepo{DB: db} }

const tourCols = `t.id, t.slug, t.name_en, t.name_es, t.name_fr, t.name_ja,
	t.description_en, t.description_es, t.description_fr, t.description_ja,
	t.category_id, t.destination, t.duration_days, t.price_cents,
	t.image, t.gallery, t.featured, t.published, t.sort_order, t.created_at, t.updated_at`

// TourFilter narrows List results. Zero values mean "no filter".
type TourFilter struct {
	CategorySlug  string
	PublishedOnly bool
	FeaturedOnly  bool
}

// TourUpdate carries the fields of a partial tour update.
type TourUpdate struct {
	Slug          *string
	NameEN        *string
	NameES        *string
	NameFR        *string
	NameJA        *string
	DescriptionEN *string
	DescriptionES *string
	DescriptionFR *string
	DescriptionJA *string
	CategoryID    *uint64
	Destination   *string
	DurationDays  *int
	PriceCents    *int64
	Image         *string
	Gallery       []byte
	Featured      *bool
	Published     *bool
	SortOrder     *int
}

// Create inserts a tour. Returns ErrDuplicate when the slug is taken.
func (r *TourRepo) Create(ctx context.Context, t *model.Tour) (*model.Tour, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO tours (slug, name_en, name_es, name_fr, name_ja,
		 description_en, description_es, description_fr, description_ja,
		 category_id, destination, duration_days, price_cents, image, gallery,
		 featured, published, sort_order)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		t.Slug, t.NameEN, t.NameES, t.NameFR, t.NameJA,
		t.DescriptionEN, t.DescriptionES, t.DescriptionFR, t.DescriptionJA,
		t.CategoryID, t.Destination, t.DurationDays, t.PriceCents, t.Image, nullJSON(t.Gallery),
		t.Featured, t.Published, t.SortOrder)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a tour by id.
func (r *TourRepo) GetByID(ctx context.Context, id uint64) (*model.Tour, error) {
	return scanTour(r.DB.QueryRowContext(ctx,
		"SELECT "+tourCols+" FROM tours t WHERE t.id = ?", id))
}

// GetBySlug fetches a tour by slug; drafts are hidden when publishedOnly.
func (r *TourRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Tour, error) {
	q := "SELECT " + tourCols + " FROM tours t WHERE t.slug = ?"
	args := []any{slug}
	if publishedOnly {
		q += " AND t.published = 1"
	}
	return scanTour(r.DB.QueryRowContext(ctx, q, args...))
}

// List returns tours honoring the filter, in explicit sort order then
// newest first.
func (r *TourRepo) List(ctx context.Context, f TourFilter) ([]*model.Tour, error) {
	q := "SELECT " + tourCols + " FROM tours t"
	var args []any
	if f.CategorySlug != "" {
		q += " JOIN categories c ON c.id = t.category_id AND c.slug = ?"
		args = append(args, f.CategorySlug)
	}
	q += " WHERE 1=1"
	if f.PublishedOnly {
		q += " AND t.published = 1"
	}
	if f.FeaturedOnly {
		q += " AND t.featured = 1"
	}
	q += " ORDER BY t.sort_order, t.created_at DESC, t.id DESC"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Tour
	for rows.Next() {
		t := new(model.Tour)
		var gallery []byte
		if err := rows.Scan(&t.ID, &t.Slug, &t.NameEN, &t.NameES, &t.NameFR, &t.NameJA,
			&t.DescriptionEN, &t.DescriptionES, &t.DescriptionFR, &t.DescriptionJA,
			&t.CategoryID, &t.Destination, &t.DurationDays, &t.PriceCents,
			&t.Image, &gallery, &t.Featured, &t.Published, &t.SortOrder,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Gallery = gallery
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update applies a partial update and re-stamps updated_at.
func (r *TourRepo) Update(ctx context.Context, id uint64, u TourUpdate) (*model.Tour, error) {
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
	if u.DescriptionES != nil {
		b.add("description_es", *u.DescriptionES)
	}
	if u.DescriptionFR != nil {
		b.add("description_fr", *u.DescriptionFR)
	}
	if u.DescriptionJA != nil {
		b.add("description_ja", *u.DescriptionJA)
	}
	if u.CategoryID != nil {
		b.add("category_id", *u.CategoryID)
	}
	if u.Destination != nil {
		b.add("destination", *u.Destination)
	}
	if u.DurationDays != nil {
		b.add("duration_days", *u.DurationDays)
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
		"UPDATE tours SET "+b.clause()+", updated_at = CURRENT_TIMESTAMP WHERE id = ?", args...); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a tour, reporting whether a row existed.
func (r *TourRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM tours WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the number of tours (stats endpoint).
func (r *TourRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM tours").Scan(&n)
	return n, err
}

func scanTour(row *sql.Row) (*model.Tour, error) {
	var t model.Tour
	var gallery []byte
	if err := row.Scan(&t.ID, &t.Slug, &t.NameEN, &t.NameES, &t.NameFR, &t.NameJA,
		&t.DescriptionEN, &t.DescriptionES, &t.DescriptionFR, &t.DescriptionJA,
		&t.CategoryID, &t.Destination, &t.DurationDays, &t.PriceCents,
		&t.Image, &gallery, &t.Featured, &t.Published, &t.SortOrder,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	t.Gallery = gallery
	return &t, nil
}

// nullJSON maps an empty payload to NULL so the JSON column stays NULL
// instead of holding an empty string MySQL would reject.
func nullJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return []byte(b)
}
