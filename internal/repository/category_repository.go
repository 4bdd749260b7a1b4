package repository

import (
	"context"
	"database/sql"

	"github.com/averose/luxe-travel-cms/internal/model"
)

// CategoryRepo persists tour categories.
type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

const categoryCols = `id, slug, name_en, name_es, name_fr, name_ja,
	description_en, image, sort_order, created_at, updated_at`

// CategoryUpdate carries the fields of a partial category update.
type CategoryUpdate struct {
	Slug          *string
	NameEN        *string
	NameES        *string
	NameFR        *string
	NameJA        *string
	DescriptionEN *string
	Image         *string
	SortOrder     *int
}

// Create inserts a category. Returns ErrDuplicate when the slug is taken.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO categories (slug, name_en, name_es, name_fr, name_ja, description_en, image, sort_order)
		 VALUES (?,?,?,?,?,?,?,?)`,
		c.Slug, c.NameEN, c.NameES, c.NameFR, c.NameJA, c.DescriptionEN, c.Image, c.SortOrder)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a category by id.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (*model.Category, error) {
	return scanCategory(r.DB.QueryRowContext(ctx,
		"SELECT "+categoryCols+" FROM categories WHERE id = ?", id))
}

// GetBySlug fetches a category by slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return scanCategory(r.DB.QueryRowContext(ctx,
		"SELECT "+categoryCols+" FROM categories WHERE slug = ?", slug))
}

// List returns categories in explicit sort order, then name.
func (r *CategoryRepo) List(ctx context.Context) ([]*model.Category, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+categoryCols+" FROM categories ORDER BY sort_order, name_en")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Category
	for rows.Next() {
		c := new(model.Category)
		if err := rows.Scan(&c.ID, &c.Slug, &c.NameEN, &c.NameES, &c.NameFR, &c.NameJA,
			&c.DescriptionEN, &c.Image, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update applies a partial update and re-stamps updated_at.
func (r *CategoryRepo) Update(ctx context.Context, id uint64, u CategoryUpdate) (*model.Category, error) {
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
	if u.Image != nil {
		b.add("image", *u.Image)
	}
	if u.SortOrder != nil {
		b.add("sort_order", *u.SortOrder)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}
	args := append(b.args, id)
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE categories SET "+b.clause()+", updated_at = CURRENT_TIMESTAMP WHERE id = ?", args...); err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a category. Tours referencing it keep a NULL category via
// the schema's ON DELETE SET NULL.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the number of categories (stats endpoint).
func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&n)
	return n, err
}

func scanCategory(row *sql.Row) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.Slug, &c.NameEN, &c.NameES, &c.NameFR, &c.NameJA,
		&c.DescriptionEN, &c.Image, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}
