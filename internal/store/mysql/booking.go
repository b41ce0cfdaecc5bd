package mysql

import (
	"context"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const bookingCols = "id, tour_id, reference, full_name, email, phone, travel_date, group_size, special_requests, status, created_at, updated_at"

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.TourID, &b.Reference, &b.FullName, &b.Email,
		&b.Phone, &b.TravelDate, &b.GroupSize, &b.SpecialRequests,
		&b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBooking inserts with status pending; the referenced tour must
// exist and be active.
func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT is_active FROM tours WHERE id=?", b.TourID).Scan(&exists)
	if err != nil || !exists {
		return store.ErrNotFound
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (tour_id, reference, full_name, email, phone, travel_date, group_size, special_requests, status)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		b.TourID, b.Reference, b.FullName, b.Email, b.Phone,
		b.TravelDate, b.GroupSize, b.SpecialRequests, model.BookingPending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanBooking(s.db.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id=?", id))
	if err != nil {
		return err
	}
	*b = *stored
	return nil
}

func (s *Store) GetBooking(ctx context.Context, id uint64) (*model.Booking, error) {
	b, err := scanBooking(s.db.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

func (s *Store) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+bookingCols+" FROM bookings ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id uint64, status string) (*model.Booking, error) {
	if !model.ValidBookingStatus(status) {
		return nil, store.ErrInvalidStatus
	}
	_, err := s.db.ExecContext(ctx,
		"UPDATE bookings SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", status, id)
	if err != nil {
		return nil, err
	}
	b, err := scanBooking(s.db.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}
