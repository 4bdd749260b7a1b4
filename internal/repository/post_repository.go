package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/averose/luxe-travel-cms/internal/model"
)

// PostRepo persists blog posts.
type PostRepo struct{ DB *sql.DB }

func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{DB: db} }

const postCols = `id, slug, title_en, title_es, title_fr, title_ja,
	body_en, body_es, body_fr, body_ja, excerpt, featured_image,
	status, published_at, author_id, created_at, updated_at`

// PostUpdate carries the fields of a partial post update. Nil pointers
// leave the corresponding column untouched.
type PostUpdate struct {
	Slug          *string
	TitleEN       *string
	TitleES       *string
	TitleFR       *string
	TitleJA       *string
	BodyEN        *string
	BodyES        *string
	BodyFR        *string
	BodyJA        *string
	Excerpt       *string
	FeaturedImage *string
	Status        *string
}

// Create inserts a post. When the post is created already published and no
// publish timestamp is given, now is recorded.
func (r *PostRepo) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	if p.Status == model.StatusPublished && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO posts (slug, title_en, title_es, title_fr, title_ja,
		 body_en, body_es, body_fr, body_ja, excerpt, featured_image, status, published_at, author_id)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.Slug, p.TitleEN, p.TitleES, p.TitleFR, p.TitleJA,
		p.BodyEN, p.BodyES, p.BodyFR, p.BodyJA, p.Excerpt, p.FeaturedImage,
		p.Status, p.PublishedAt, p.AuthorID)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id uint64) (*model.Post, error) {
	return scanPost(r.DB.QueryRowContext(ctx,
		"SELECT "+postCols+" FROM posts WHERE id = ?", id))
}

// GetBySlug fetches a post by slug. Draft posts are hidden when
// publishedOnly is set.
func (r *PostRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Post, error) {
	q := "SELECT " + postCols + " FROM posts WHERE slug = ?"
	args := []any{slug}
	if publishedOnly {
		q += " AND status = ?"
		args = append(args, model.StatusPublished)
	}
	return scanPost(r.DB.QueryRowContext(ctx, q, args...))
}

// List returns posts newest first. publishedOnly restricts the result to
// the public surface.
func (r *PostRepo) List(ctx context.Context, publishedOnly bool) ([]*model.Post, error) {
	q := "SELECT " + postCols + " FROM posts"
	var args []any
	if publishedOnly {
		q += " WHERE status = ?"
		args = append(args, model.StatusPublished)
	}
	q += " ORDER BY created_at DESC, id DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Post
	for rows.Next() {
		p := new(model.Post)
		if err := rows.Scan(&p.ID, &p.Slug, &p.TitleEN, &p.TitleES, &p.TitleFR, &p.TitleJA,
			&p.BodyEN, &p.BodyES, &p.BodyFR, &p.BodyJA, &p.Excerpt, &p.FeaturedImage,
			&p.Status, &p.PublishedAt, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update applies a partial update and re-stamps updated_at. A transition
// to published records published_at when it was never set.
func (r *PostRepo) Update(ctx context.Context, id uint64, u PostUpdate) (*model.Post, error) {
	var b setBuilder
	if u.Slug != nil {
		b.add("slug", *u.Slug)
	}
	if u.TitleEN != nil {
		b.add("title_en", *u.TitleEN)
	}
	if u.TitleES != nil {
		b.add("title_es", *u.TitleES)
	}
	if u.TitleFR != nil {
		b.add("title_fr", *u.TitleFR)
	}
	if u.TitleJA != nil {
		b.add("title_ja", *u.TitleJA)
	}
	if u.BodyEN != nil {
		b.add("body_en", *u.BodyEN)
	}
	if u.BodyES != nil {
		b.add("body_es", *u.BodyES)
	}
	if u.BodyFR != nil {
		b.add("body_fr", *u.BodyFR)
	}
	if u.BodyJA != nil {
		b.add("body_ja", *u.BodyJA)
	}
	if u.Excerpt != nil {
		b.add("excerpt", *u.Excerpt)
	}
	if u.FeaturedImage != nil {
		b.add("featured_image", *u.FeaturedImage)
	}
	if u.Status != nil {
		b.add("status", *u.Status)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}
	args := append(b.args, id)
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE posts SET "+b.clause()+", updated_at = CURRENT_TIMESTAMP WHERE id = ?", args...); err != nil {
		return nil, translate(err)
	}
	if u.Status != nil && *u.Status == model.StatusPublished {
		if _, err := r.DB.ExecContext(ctx,
			"UPDATE posts SET published_at = CURRENT_TIMESTAMP WHERE id = ? AND published_at IS NULL", id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a post, reporting whether a row existed.
func (r *PostRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Count returns the number of posts (stats endpoint).
func (r *PostRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&n)
	return n, err
}

func scanPost(row *sql.Row) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(&p.ID, &p.Slug, &p.TitleEN, &p.TitleES, &p.TitleFR, &p.TitleJA,
		&p.BodyEN, &p.BodyES, &p.BodyFR, &p.BodyJA, &p.Excerpt, &p.FeaturedImage,
		&p.Status, &p.PublishedAt, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}
