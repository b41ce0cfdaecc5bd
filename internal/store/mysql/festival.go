package mysql

import (
	"context"
	"database/sql"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const festivalCols = "id, name, description, location, start_date, end_date, max_capacity, ticket_price_cents, created_at, updated_at"

func scanFestival(row interface{ Scan(...any) error }) (*model.Festival, error) {
	var f model.Festival
	err := row.Scan(&f.ID, &f.Name, &f.Description, &f.Location, &f.StartDate,
		&f.EndDate, &f.MaxCapacity, &f.TicketPriceCents, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) CreateFestival(ctx context.Context, f *model.Festival) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO festivals (name, description, location, start_date, end_date, max_capacity, ticket_price_cents)
		 VALUES (?,?,?,?,?,?,?)`,
		f.Name, f.Description, f.Location, f.StartDate, f.EndDate,
		f.MaxCapacity, f.TicketPriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanFestival(s.db.QueryRowContext(ctx,
		"SELECT "+festivalCols+" FROM festivals WHERE id=?", id))
	if err != nil {
		return err
	}
	*f = *stored
	return nil
}

func (s *Store) GetFestival(ctx context.Context, id uint64) (*model.Festival, error) {
	f, err := scanFestival(s.db.QueryRowContext(ctx,
		"SELECT "+festivalCols+" FROM festivals WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

func (s *Store) ListFestivals(ctx context.Context) ([]*model.Festival, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+festivalCols+" FROM festivals ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Festival, 0)
	for rows.Next() {
		f, err := scanFestival(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Store) UpdateFestival(ctx context.Context, f *model.Festival) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE festivals SET name=?, description=?, location=?, start_date=?,
		 end_date=?, max_capacity=?, ticket_price_cents=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		f.Name, f.Description, f.Location, f.StartDate, f.EndDate,
		f.MaxCapacity, f.TicketPriceCents, f.ID)
	if err != nil {
		return err
	}
	stored, err := scanFestival(s.db.QueryRowContext(ctx,
		"SELECT "+festivalCols+" FROM festivals WHERE id=?", f.ID))
	if err != nil {
		return notFound(err)
	}
	*f = *stored
	return nil
}

// DeleteFestival refuses to remove a festival with existing bookings.
func (s *Store) DeleteFestival(ctx context.Context, id uint64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM festival_bookings WHERE festival_id=?", id).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return store.ErrConflict
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM festivals WHERE id=?", id)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

const festBookingCols = "id, festival_id, reference, full_name, email, tickets, status, created_at"

func scanFestivalBooking(row interface{ Scan(...any) error }) (*model.FestivalBooking, error) {
	var b model.FestivalBooking
	err := row.Scan(&b.ID, &b.FestivalID, &b.Reference, &b.FullName, &b.Email,
		&b.Tickets, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateFestivalBooking locks the festival row, recounts sold tickets
// and inserts, all in one transaction, so the cap holds under
// concurrent requests.
func (s *Store) CreateFestivalBooking(ctx context.Context, b *model.FestivalBooking) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var capacity int
		err := tx.QueryRowContext(ctx,
			"SELECT max_capacity FROM festivals WHERE id=? FOR UPDATE", b.FestivalID).Scan(&capacity)
		if err != nil {
			return notFound(err)
		}
		var sold int
		err = tx.QueryRowContext(ctx,
			"SELECT COALESCE(SUM(tickets),0) FROM festival_bookings WHERE festival_id=? AND status<>?",
			b.FestivalID, model.BookingCancelled).Scan(&sold)
		if err != nil {
			return err
		}
		if capacity > 0 && sold+b.Tickets > capacity {
			return store.ErrCapacityFull
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO festival_bookings (festival_id, reference, full_name, email, tickets, status) VALUES (?,?,?,?,?,?)",
			b.FestivalID, b.Reference, b.FullName, b.Email, b.Tickets, model.BookingPending)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		stored, err := scanFestivalBooking(tx.QueryRowContext(ctx,
			"SELECT "+festBookingCols+" FROM festival_bookings WHERE id=?", id))
		if err != nil {
			return err
		}
		*b = *stored
		return nil
	})
}

func (s *Store) ListFestivalBookings(ctx context.Context, festivalID uint64) ([]*model.FestivalBooking, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+festBookingCols+" FROM festival_bookings WHERE festival_id=? ORDER BY id", festivalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.FestivalBooking, 0)
	for rows.Next() {
		b, err := scanFestivalBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
