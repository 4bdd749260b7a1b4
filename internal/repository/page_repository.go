package repository

import (
	"context"
	"database/sql"

	"github.com/averose/luxe-travel-cms/internal/model"
)

// PageRepo persists pages and their ordered sections. Sections belong to
// exactly one page; deleting a page removes its sections in the same
// transaction.
type PageRepo struct{ DB *sql.DB }

func NewPageRepo(db *sql.DB) *PageRepo { return &PageRepo{DB: db} }

const pageCols = "id, slug, title_en, title_es, title_fr, title_ja, meta_title, meta_description, status, created_at, updated_at"
const sectionCols = "id, page_id, type, content, sort_order, created_at, updated_at"

// PageUpdate carries the fields of a partial page update. Nil pointers
// leave the corresponding column untouched.
type PageUpdate struct {
	Slug            *string
	TitleEN         *string
	TitleES         *string
	TitleFR         *string
	TitleJA         *string
	MetaTitle       *string
	MetaDescription *string
	Status          *string
}

// Create inserts a page. Returns ErrDuplicate when the slug is taken.
func (r *PageRepo) Create(ctx context.Context, p *model.Page) (*model.Page, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO pages (slug, title_en, title_es, title_fr, title_ja, meta_title, meta_description, status)
		 VALUES (?,?,?,?,?,?,?,?)`,
		p.Slug, p.TitleEN, p.TitleES, p.TitleFR, p.TitleJA, p.MetaTitle, p.MetaDescription, p.Status)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a page with its sections in sort order.
func (r *PageRepo) GetByID(ctx context.Context, id uint64) (*model.Page, error) {
	p, err := r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+pageCols+" FROM pages WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	if p.Sections, err = r.listSections(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// GetBySlug fetches a page by slug with its sections. When publishedOnly
// is set, draft pages are reported as ErrNotFound (public surface).
func (r *PageRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Page, error) {
	q := "SELECT " + pageCols + " FROM pages WHERE slug = ?"
	args := []any{slug}
	if publishedOnly {
		q += " AND status = ?"
		args = append(args, model.StatusPublished)
	}
	p, err := r.scanOne(r.DB.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, err
	}
	if p.Sections, err = r.listSections(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all pages newest first, without sections.
func (r *PageRepo) List(ctx context.Context) ([]*model.Page, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+pageCols+" FROM pages ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Page
	for rows.Next() {
		p := new(model.Page)
		if err := scanPage(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update applies a partial update and re-stamps updated_at. The id and
// creation timestamp are never touched.
func (r *PageRepo) Update(ctx context.Context, id uint64, u PageUpdate) (*model.Page, error) {
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
	if u.MetaTitle != nil {
		b.add("meta_title", *u.MetaTitle)
	}
	if u.MetaDescription != nil {
		b.add("meta_description", *u.MetaDescription)
	}
	if u.Status != nil {
		b.add("status", *u.Status)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}
	args := append(b.args, id)
	res, err := r.DB.ExecContext(ctx,
		"UPDATE pages SET "+b.clause()+", updated_at = CURRENT_TIMESTAMP WHERE id = ?", args...)
	if err != nil {
		return nil, translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// zero rows can mean "no such id" or "no change"; distinguish
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a page and its sections. Returns false when no page
// matched; deleting an already-gone page is not an error.
func (r *PageRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sections WHERE page_id = ?", id); err != nil {
		return false, err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the number of pages (stats endpoint).
func (r *PageRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&n)
	return n, err
}

func (r *PageRepo) scanOne(row *sql.Row) (*model.Page, error) {
	var p model.Page
	if err := row.Scan(&p.ID, &p.Slug, &p.TitleEN, &p.TitleES, &p.TitleFR, &p.TitleJA,
		&p.MetaTitle, &p.MetaDescription, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func scanPage(rows *sql.Rows, p *model.Page) error {
	return rows.Scan(&p.ID, &p.Slug, &p.TitleEN, &p.TitleES, &p.TitleFR, &p.TitleJA,
		&p.MetaTitle, &p.MetaDescription, &p.Status, &p.CreatedAt, &p.UpdatedAt)
}

// ----- sections -----

// SectionUpdate carries the fields of a partial section update.
type SectionUpdate struct {
	Type      *string
	Content   []byte
	SortOrder *int
}

// CreateSection appends a section to a page. When SortOrder is zero the
// section is placed after the page's current last section.
func (r *PageRepo) CreateSection(ctx context.Context, s *model.Section) (*model.Section, error) {
	// Verify the owning page exists so a dangling section cannot be created.
	if _, err := r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+pageCols+" FROM pages WHERE id = ?", s.PageID)); err != nil {
		return nil, err
	}
	order := s.SortOrder
	if order == 0 {
		if err := r.DB.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(sort_order), 0) + 1 FROM sections WHERE page_id = ?",
			s.PageID).Scan(&order); err != nil {
			return nil, err
		}
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO sections (page_id, type, content, sort_order) VALUES (?,?,?,?)",
		s.PageID, s.Type, []byte(s.Content), order)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetSection(ctx, uint64(id))
}

// GetSection fetches a single section.
func (r *PageRepo) GetSection(ctx context.Context, id uint64) (*model.Section, error) {
	var s model.Section
	var content []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+sectionCols+" FROM sections WHERE id = ?", id).
		Scan(&s.ID, &s.PageID, &s.Type, &content, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	s.Content = content
	return &s, nil
}

// UpdateSection applies a partial update to a section.
func (r *PageRepo) UpdateSection(ctx context.Context, id uint64, u SectionUpdate) (*model.Section, error) {
	var b setBuilder
	if u.Type != nil {
		b.add("type", *u.Type)
	}
	if u.Content != nil {
		b.add("content", u.Content)
	}
	if u.SortOrder != nil {
		b.add("sort_order", *u.SortOrder)
	}
	if b.empty() {
		return r.GetSection(ctx, id)
	}
	args := append(b.args, id)
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE sections SET "+b.clause()+", updated_at = CURRENT_TIMESTAMP WHERE id = ?", args...); err != nil {
		return nil, translate(err)
	}
	return r.GetSection(ctx, id)
}

// DeleteSection removes a section, reporting whether a row existed.
func (r *PageRepo) DeleteSection(ctx context.Context, id uint64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM sections WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ReorderSections rewrites the sort order of a page's sections to match
// the given id sequence. Ids not belonging to the page are ignored by the
// WHERE clause rather than corrupting another page's ordering.
func (r *PageRepo) ReorderSections(ctx context.Context, pageID uint64, ids []uint64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, id := range ids {
		if _, err := tx.ExecContext(ctx,
			"UPDATE sections SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND page_id = ?",
			i+1, id, pageID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PageRepo) listSections(ctx context.Context, pageID uint64) ([]model.Section, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sectionCols+" FROM sections WHERE page_id = ? ORDER BY sort_order, id", pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Section{}
	for rows.Next() {
		var s model.Section
		var content []byte
		if err := rows.Scan(&s.ID, &s.PageID, &s.Type, &content, &s.SortOrder,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Content = content
		out = append(out, s)
	}
	return out, rows.Err()
}
