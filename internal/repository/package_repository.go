package repository

import (
	"context"
	"database/sql"

	"github.com/averose/luxe-travel-cms/internal/model"
)

// PackageRepo persists curated travel packages.
type PackageRepo struct{ DB *sql.DB }

func NewPackageRepo(db *sql.DB) *PackageRepo { return &PackageRepo{DB: db} }

const packageCols = `id, slug, name_en, name_es, name_fr, name_ja, description_en,
	destination, duration_days, price_cents, image, gallery,
	featured, published, sort_order, created_at, updated_at`

// PackageUpdate carries the fields of a partial package update.
type PackageUpdate struct {
	Slug          *string
	NameEN        *string
	NameES        *string
	NameFR        *string
	NameJA        *string
	DescriptionEN *string
	Destination   *string
	DurationDays  *int
	PriceCents    *int64
	Image         *string
	Gallery       []byte
	Featured      *bool
	Published     *bool
	SortOrder     *int
}

// Create inserts a package. Returns ErrDuplicate when the slug is taken.
func (r *PackageRepo) Create(ctx context.Context, p *model.Package) (*model.Package, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO packages (slug, name_en, name_es, name_fr, name_ja, description_en,
		 destination, duration_days, price_cents, image, gallery, featured, published, sort_order)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.Slug, p.NameEN, p.NameES, p.NameFR, p.NameJA, p.DescriptionEN,
		p.Destination, p.DurationDays, p.PriceCents, p.Image, nullJSON(p.Gallery),
		p.Featured, p.Published, p.SortOrder)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a package by id.
func (r *PackageRepo) GetByID(ctx context.Context, id uint64) (*model.Package, error) {
	return scanPackage(r.DB.QueryRowContext(ctx,
		"SELECT "+packageCols+" FROM packages WHERE id = ?", id))
}

// GetBySlug fetches a package by slug; drafts hidden when publishedOnly.
func (r *PackageRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Package, error) {
	q := "SELECT " + packageCols + " FROM packages WHERE slug = ?"
	if publishedOnly {
		q += " AND published = 1"
	}
	return scanPackage(r.DB.QueryRowContext(ctx, q, slug))
}

// List returns packages in sort order, then newest first.
func (r *PackageRepo) List(ctx context.Context, publishedOnly bool) ([]*model.Package, error) {
	q := "SELECT " + packageCols + " FROM packages"
	if publishedOnly {
		q += " WHERE published = 1"
	}
	q += " ORDER BY sort_order, created_at DESC, id DESC"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Package
	for rows.Next() {
		p := new(model.Package)
		var gallery []byte
		if err := rows.Scan(&p.ID, &p.Slug, &p.NameEN, &p.NameES, &p.NameFR, &p.NameJA,
			&p.DescriptionEN, &p.Destination, &p.DurationDays, &p.PriceCents,
			&p.Image, &gallery, &p.Featured, &p.Published, &p.SortOrder,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Gallery = gallery
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update applies a partial update and re-stamps updated_at.
func (r *PackageRepo) Update(ctx context.Context, id uint64, u PackageUpdate) (*model.Package, error) {
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
		"UPDATE packages SET "+b.clause()+", updated_at = CURRENT_TIMESTAMP WHERE id = ?", args...); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a package, reporting whether a row existed.
func (r *PackageRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM packages WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the number of packages (stats endpoint).
func (r *PackageRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM packages").Scan(&n)
	return n, err
}

func scanPackage(row *sql.Row) (*model.Package, error) {
	var p model.Package
	var gallery []byte
	if err := row.Scan(&p.ID, &p.Slug, &p.NameEN, &p.NameES, &p.NameFR, &p.NameJA,
		&p.DescriptionEN, &p.Destination, &p.DurationDays, &p.PriceCents,
		&p.Image, &gallery, &p.Featured, &p.Published, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	p.Gallery = gallery
	return &p, nil
}
