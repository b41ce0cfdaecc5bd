package mysql

import (
	"context"
	"database/sql"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const feedbackCols = "id, user_id, tour_id, itinerary_id, rating, category, comment, is_public, created_at"

func scanFeedback(row interface{ Scan(...any) error }) (*model.Feedback, error) {
	var (
		f                   model.Feedback
		tourID, itineraryID sql.NullInt64
	)
	err := row.Scan(&f.ID, &f.UserID, &tourID, &itineraryID, &f.Rating,
		&f.Category, &f.Comment, &f.IsPublic, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	f.TourID = idPtr(tourID)
	f.ItineraryID = idPtr(itineraryID)
	return &f, nil
}

func (s *Store) CreateFeedback(ctx context.Context, f *model.Feedback) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO feedback (user_id, tour_id, itinerary_id, rating, category, comment, is_public) VALUES (?,?,?,?,?,?,?)",
		f.UserID, nullID(f.TourID), nullID(f.ItineraryID), f.Rating,
		f.Category, f.Comment, f.IsPublic)
	if err != nil {
		// foreign key violations mean a referenced record is missing
		return store.ErrNotFound
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanFeedback(s.db.QueryRowContext(ctx,
		"SELECT "+feedbackCols+" FROM feedback WHERE id=?", id))
	if err != nil {
		return err
	}
	*f = *stored
	return nil
}

func (s *Store) ListFeedback(ctx context.Context, flt store.FeedbackFilter) ([]*model.Feedback, error) {
	q := "SELECT " + feedbackCols + " FROM feedback"
	var (
		conds []string
		args  []any
	)
	if flt.PublicOnly {
		conds = append(conds, "is_public=TRUE")
	}
	if flt.UserID != 0 {
		conds = append(conds, "user_id=?")
		args = append(args, flt.UserID)
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY id"
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Store) CreateInquiry(ctx context.Context, i *model.Inquiry) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO inquiries (full_name, email, subject, message, responded) VALUES (?,?,?,?,FALSE)",
		i.FullName, i.Email, i.Subject, i.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	i.ID = uint64(id)
	return s.db.QueryRowContext(ctx,
		"SELECT responded, created_at FROM inquiries WHERE id=?", i.ID).
		Scan(&i.Responded, &i.CreatedAt)
}

func (s *Store) ListInquiries(ctx context.Context) ([]*model.Inquiry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, full_name, email, subject, message, responded, created_at FROM inquiries ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Inquiry, 0)
	for rows.Next() {
		var i model.Inquiry
		if err := rows.Scan(&i.ID, &i.FullName, &i.Email, &i.Subject,
			&i.Message, &i.Responded, &i.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

func (s *Store) MarkInquiryResponded(ctx context.Context, id uint64) (*model.Inquiry, error) {
	_, err := s.db.ExecContext(ctx,
		"UPDATE inquiries SET responded=TRUE WHERE id=?", id)
	if err != nil {
		return nil, err
	}
	var i model.Inquiry
	err = s.db.QueryRowContext(ctx,
		"SELECT id, full_name, email, subject, message, responded, created_at FROM inquiries WHERE id=?", id).
		Scan(&i.ID, &i.FullName, &i.Email, &i.Subject, &i.Message, &i.Responded, &i.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &i, nil
}

func (s *Store) CreateTestimonial(ctx context.Context, t *model.Testimonial) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO testimonials (author, country, content, rating, approved) VALUES (?,?,?,?,FALSE)",
		t.Author, t.Country, t.Content, t.Rating)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return s.db.QueryRowContext(ctx,
		"SELECT approved, created_at FROM testimonials WHERE id=?", t.ID).
		Scan(&t.Approved, &t.CreatedAt)
}

func (s *Store) ListTestimonials(ctx context.Context, approvedOnly bool) ([]*model.Testimonial, error) {
	q := "SELECT id, author, country, content, rating, approved, created_at FROM testimonials"
	if approvedOnly {
		q += " WHERE approved=TRUE"
	}
	q += " ORDER BY id"
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Testimonial, 0)
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Country, &t.Content,
			&t.Rating, &t.Approved, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (s *Store) ApproveTestimonial(ctx context.Context, id uint64) (*model.Testimonial, error) {
	_, err := s.db.ExecContext(ctx,
		"UPDATE testimonials SET approved=TRUE WHERE id=?", id)
	if err != nil {
		return nil, err
	}
	var t model.Testimonial
	err = s.db.QueryRowContext(ctx,
		"SELECT id, author, country, content, rating, approved, created_at FROM testimonials WHERE id=?", id).
		Scan(&t.ID, &t.Author, &t.Country, &t.Content, &t.Rating, &t.Approved, &t.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (s *Store) DeleteTestimonial(ctx context.Context, id uint64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Stats(ctx context.Context) (*model.Stats, error) {
	var st model.Stats
	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM tours", &st.Tours},
		{"SELECT COUNT(*) FROM tour_operators", &st.Operators},
		{"SELECT COUNT(*) FROM bookings", &st.Bookings},
		{"SELECT COUNT(*) FROM bookings WHERE status='pending'", &st.PendingBookings},
		{"SELECT COUNT(*) FROM guides", &st.Guides},
		{"SELECT COUNT(*) FROM itineraries", &st.Itineraries},
		{"SELECT COUNT(*) FROM custom_tour_requests", &st.CustomRequests},
		{"SELECT COUNT(*) FROM festivals", &st.Festivals},
		{"SELECT COUNT(*) FROM hotels", &st.Hotels},
		{"SELECT COUNT(*) FROM users", &st.Users},
		{"SELECT COUNT(*) FROM feedback", &st.Feedback},
		{"SELECT COUNT(*) FROM inquiries", &st.Inquiries},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return nil, err
		}
	}
	return &st, nil
}

// Clear wipes every table in dependency order.
func (s *Store) Clear(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		tables := []string{
			"feedback", "testimonials", "inquiries", "refresh_tokens",
			"hotel_bookings", "hotel_rooms", "hotels",
			"festival_bookings", "festivals",
			"itinerary_days", "itineraries",
			"custom_tour_requests", "bookings", "guides",
			"tours", "tour_operators", "users",
		}
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return err
			}
		}
		return nil
	})
}
