package repository

import (
	"context"
	"database/sql"

	"github.com/averose/luxe-travel-cms/internal/model"
)

// InquiryRepo persists travel inquiries. Inquiries are append-only: they
// are created by the public form and listed by admins, never updated.
type InquiryRepo struct{ DB *sql.DB }

func NewInquiryRepo(db *sql.DB) *InquiryRepo { return &InquiryRepo{DB: db} }

const inquiryCols = "id, full_name, email, phone, destination, preferred_dates, special_requests, created_at"

// Create inserts an inquiry and returns the stored row with its assigned
// id and creation timestamp.
func (r *InquiryRepo) Create(ctx context.Context, in *model.Inquiry) (*model.Inquiry, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO inquiries (full_name, email, phone, destination, preferred_dates, special_requests)
		 VALUES (?,?,?,?,?,?)`,
		in.FullName, in.Email, in.Phone, in.Destination, in.PreferredDates, in.SpecialRequests)
	if err != nil {
		return nil, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a single inquiry.
func (r *InquiryRepo) GetByID(ctx context.Context, id uint64) (*model.Inquiry, error) {
	var q model.Inquiry
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+inquiryCols+" FROM inquiries WHERE id = ?", id).
		Scan(&q.ID, &q.FullName, &q.Email, &q.Phone, &q.Destination,
			&q.PreferredDates, &q.SpecialRequests, &q.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

// List returns all inquiries newest first.
func (r *InquiryRepo) List(ctx context.Context) ([]*model.Inquiry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+inquiryCols+" FROM inquiries ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Inquiry
	for rows.Next() {
		q := new(model.Inquiry)
		if err := rows.Scan(&q.ID, &q.FullName, &q.Email, &q.Phone, &q.Destination,
			&q.PreferredDates, &q.SpecialRequests, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Count returns the number of stored inquiries (stats endpoint).
func (r *InquiryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM inquiries").Scan(&n)
	return n, err
}
