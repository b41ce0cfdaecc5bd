package mysql

import (
	"context"
	"database/sql"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const tourCols = "id, operator_id, name, description, duration_days, price_cents, category, rating, highlights, is_active, created_at, updated_at"

func scanTour(row interface{ Scan(...any) error }) (*model.Tour, error) {
	var (
		t          model.Tour
		operatorID sql.NullInt64
		highlights string
	)
	err := row.Scan(&t.ID, &operatorID, &t.Name, &t.Description, &t.DurationDays,
		&t.PriceCents, &t.Category, &t.Rating, &highlights, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.OperatorID = idPtr(operatorID)
	t.Highlights = decodeList(highlights)
	return &t, nil
}

func (s *Store) CreateTour(ctx context.Context, t *model.Tour) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tours (operator_id, name, description, duration_days, price_cents, category, rating, highlights, is_active)
		 VALUES (?,?,?,?,?,?,?,?,TRUE)`,
		nullID(t.OperatorID), t.Name, t.Description, t.DurationDays,
		t.PriceCents, t.Category, t.Rating, encodeList(t.Highlights))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanTour(s.db.QueryRowContext(ctx,
		"SELECT "+tourCols+" FROM tours WHERE id=?", id))
	if err != nil {
		return err
	}
	*t = *stored
	return nil
}

func (s *Store) GetTour(ctx context.Context, id uint64) (*model.Tour, error) {
	t, err := scanTour(s.db.QueryRowContext(ctx,
		"SELECT "+tourCols+" FROM tours WHERE id=? AND is_active=TRUE", id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (s *Store) ListTours(ctx context.Context, f store.TourFilter) ([]*model.Tour, error) {
	q := "SELECT " + tourCols + " FROM tours"
	var (
		conds []string
		args  []any
	)
	if !f.IncludeInactive {
		conds = append(conds, "is_active=TRUE")
	}
	if f.Category != "" {
		conds = append(conds, "LOWER(category)=LOWER(?)")
		args = append(args, f.Category)
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
	out := make([]*model.Tour, 0)
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) UpdateTour(ctx context.Context, t *model.Tour) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tours SET operator_id=?, name=?, description=?, duration_days=?,
		 price_cents=?, category=?, rating=?, highlights=?, updated_at=CURRENT_TIMESTAMP
		 WHERE id=? AND is_active=TRUE`,
		nullID(t.OperatorID), t.Name, t.Description, t.DurationDays,
		t.PriceCents, t.Category, t.Rating, encodeList(t.Highlights), t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// distinguish "missing" from "same values": re-read the row
		if _, err := scanTour(s.db.QueryRowContext(ctx,
			"SELECT "+tourCols+" FROM tours WHERE id=? AND is_active=TRUE", t.ID)); err != nil {
			return notFound(err)
		}
	}
	stored, err := scanTour(s.db.QueryRowContext(ctx,
		"SELECT "+tourCols+" FROM tours WHERE id=?", t.ID))
	if err != nil {
		return notFound(err)
	}
	*t = *stored
	return nil
}

func (s *Store) DeactivateTour(ctx context.Context, id uint64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE tours SET is_active=FALSE, updated_at=CURRENT_TIMESTAMP WHERE id=? AND is_active=TRUE", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

const operatorCols = "id, name, website, specialties, rating, certifications, created_at, updated_at"

func scanOperator(row interface{ Scan(...any) error }) (*model.TourOperator, error) {
	var (
		o                    model.TourOperator
		specialties, certStr string
	)
	err := row.Scan(&o.ID, &o.Name, &o.Website, &specialties, &o.Rating,
		&certStr, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Specialties = decodeList(specialties)
	o.Certifications = decodeList(certStr)
	return &o, nil
}

func (s *Store) CreateOperator(ctx context.Context, o *model.TourOperator) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO tour_operators (name, website, specialties, rating, certifications) VALUES (?,?,?,?,?)",
		o.Name, o.Website, encodeList(o.Specialties), o.Rating, encodeList(o.Certifications))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanOperator(s.db.QueryRowContext(ctx,
		"SELECT "+operatorCols+" FROM tour_operators WHERE id=?", id))
	if err != nil {
		return err
	}
	*o = *stored
	return nil
}

func (s *Store) GetOperator(ctx context.Context, id uint64) (*model.TourOperator, error) {
	o, err := scanOperator(s.db.QueryRowContext(ctx,
		"SELECT "+operatorCols+" FROM tour_operators WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

func (s *Store) ListOperators(ctx context.Context) ([]*model.TourOperator, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+operatorCols+" FROM tour_operators ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.TourOperator, 0)
	for rows.Next() {
		o, err := scanOperator(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) UpdateOperator(ctx context.Context, o *model.TourOperator) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE tour_operators SET name=?, website=?, specialties=?, rating=?,
		 certifications=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		o.Name, o.Website, encodeList(o.Specialties), o.Rating,
		encodeList(o.Certifications), o.ID)
	if err != nil {
		return err
	}
	stored, err := scanOperator(s.db.QueryRowContext(ctx,
		"SELECT "+operatorCols+" FROM tour_operators WHERE id=?", o.ID))
	if err != nil {
		return notFound(err)
	}
	*o = *stored
	return nil
}

// DeleteOperator removes the operator and detaches its tours inside one
// transaction.
func (s *Store) DeleteOperator(ctx context.Context, id uint64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM tour_operators WHERE id=?", id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return store.ErrNotFound
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE tours SET operator_id=NULL, updated_at=CURRENT_TIMESTAMP WHERE operator_id=?", id)
		return err
	})
}
