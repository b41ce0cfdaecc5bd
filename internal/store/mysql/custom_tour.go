package mysql

import (
	"context"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const requestCols = "id, full_name, email, phone, duration_days, group_size, budget_cents, interests, destinations, status, admin_notes, created_at, updated_at"

func scanRequest(row interface{ Scan(...any) error }) (*model.CustomTourRequest, error) {
	var (
		r                       model.CustomTourRequest
		interests, destinations string
	)
	err := row.Scan(&r.ID, &r.FullName, &r.Email, &r.Phone, &r.DurationDays,
		&r.GroupSize, &r.BudgetCents, &interests, &destinations,
		&r.Status, &r.AdminNotes, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.Interests = decodeList(interests)
	r.Destinations = decodeList(destinations)
	return &r, nil
}

func (s *Store) CreateCustomTourRequest(ctx context.Context, r *model.CustomTourRequest) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_tour_requests (full_name, email, phone, duration_days, group_size, budget_cents, interests, destinations, status, admin_notes)
		 VALUES (?,?,?,?,?,?,?,?,?,'')`,
		r.FullName, r.Email, r.Phone, r.DurationDays, r.GroupSize,
		r.BudgetCents, encodeList(r.Interests), encodeList(r.Destinations),
		model.RequestPending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanRequest(s.db.QueryRowContext(ctx,
		"SELECT "+requestCols+" FROM custom_tour_requests WHERE id=?", id))
	if err != nil {
		return err
	}
	*r = *stored
	return nil
}

func (s *Store) GetCustomTourRequest(ctx context.Context, id uint64) (*model.CustomTourRequest, error) {
	r, err := scanRequest(s.db.QueryRowContext(ctx,
		"SELECT "+requestCols+" FROM custom_tour_requests WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return r, nil
}

func (s *Store) ListCustomTourRequests(ctx context.Context) ([]*model.CustomTourRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+requestCols+" FROM custom_tour_requests ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.CustomTourRequest, 0)
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateCustomTourRequestStatus(ctx context.Context, id uint64, status, notes string) (*model.CustomTourRequest, error) {
	if !model.ValidRequestStatus(status) {
		return nil, store.ErrInvalidStatus
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE custom_tour_requests SET status=?, admin_notes=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		status, notes, id)
	if err != nil {
		return nil, err
	}
	r, err := scanRequest(s.db.QueryRowContext(ctx,
		"SELECT "+requestCols+" FROM custom_tour_requests WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return r, nil
}
