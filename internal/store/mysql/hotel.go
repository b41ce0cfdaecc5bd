package mysql

import (
	"context"
	"database/sql"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const hotelCols = "id, name, description, location, category, created_at, updated_at"

func scanHotel(row interface{ Scan(...any) error }) (*model.Hotel, error) {
	var h model.Hotel
	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Location, &h.Category,
		&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Store) CreateHotel(ctx context.Context, h *model.Hotel) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO hotels (name, description, location, category) VALUES (?,?,?,?)",
		h.Name, h.Description, h.Location, h.Category)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanHotel(s.db.QueryRowContext(ctx,
		"SELECT "+hotelCols+" FROM hotels WHERE id=?", id))
	if err != nil {
		return err
	}
	*h = *stored
	return nil
}

func (s *Store) GetHotel(ctx context.Context, id uint64) (*model.Hotel, error) {
	h, err := scanHotel(s.db.QueryRowContext(ctx,
		"SELECT "+hotelCols+" FROM hotels WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return h, nil
}

func (s *Store) ListHotels(ctx context.Context) ([]*model.Hotel, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+hotelCols+" FROM hotels ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Hotel, 0)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *Store) UpdateHotel(ctx context.Context, h *model.Hotel) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE hotels SET name=?, description=?, location=?, category=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		h.Name, h.Description, h.Location, h.Category, h.ID)
	if err != nil {
		return err
	}
	stored, err := scanHotel(s.db.QueryRowContext(ctx,
		"SELECT "+hotelCols+" FROM hotels WHERE id=?", h.ID))
	if err != nil {
		return notFound(err)
	}
	*h = *stored
	return nil
}

func (s *Store) DeleteHotel(ctx context.Context, id uint64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM hotel_bookings WHERE hotel_id=?", id).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return store.ErrConflict
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM hotel_rooms WHERE hotel_id=?", id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM hotels WHERE id=?", id)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

const roomCols = "id, hotel_id, room_type, price_per_night_cents, max_occupancy, total_rooms, created_at"

func scanRoom(row interface{ Scan(...any) error }) (*model.HotelRoom, error) {
	var r model.HotelRoom
	err := row.Scan(&r.ID, &r.HotelID, &r.RoomType, &r.PricePerNightCents,
		&r.MaxOccupancy, &r.TotalRooms, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) CreateHotelRoom(ctx context.Context, r *model.HotelRoom) error {
	var exists uint64
	if err := s.db.QueryRowContext(ctx,
		"SELECT id FROM hotels WHERE id=?", r.HotelID).Scan(&exists); err != nil {
		return notFound(err)
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO hotel_rooms (hotel_id, room_type, price_per_night_cents, max_occupancy, total_rooms) VALUES (?,?,?,?,?)",
		r.HotelID, r.RoomType, r.PricePerNightCents, r.MaxOccupancy, r.TotalRooms)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanRoom(s.db.QueryRowContext(ctx,
		"SELECT "+roomCols+" FROM hotel_rooms WHERE id=?", id))
	if err != nil {
		return err
	}
	*r = *stored
	return nil
}

func (s *Store) ListHotelRooms(ctx context.Context, hotelID uint64) ([]*model.HotelRoom, error) {
	var exists uint64
	if err := s.db.QueryRowContext(ctx,
		"SELECT id FROM hotels WHERE id=?", hotelID).Scan(&exists); err != nil {
		return nil, notFound(err)
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+roomCols+" FROM hotel_rooms WHERE hotel_id=? ORDER BY id", hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.HotelRoom, 0)
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateHotelRoom(ctx context.Context, r *model.HotelRoom) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE hotel_rooms SET room_type=?, price_per_night_cents=?, max_occupancy=?, total_rooms=? WHERE id=? AND hotel_id=?",
		r.RoomType, r.PricePerNightCents, r.MaxOccupancy, r.TotalRooms, r.ID, r.HotelID)
	if err != nil {
		return err
	}
	stored, err := scanRoom(s.db.QueryRowContext(ctx,
		"SELECT "+roomCols+" FROM hotel_rooms WHERE id=? AND hotel_id=?", r.ID, r.HotelID))
	if err != nil {
		return notFound(err)
	}
	*r = *stored
	return nil
}

func (s *Store) DeleteHotelRoom(ctx context.Context, hotelID, roomID uint64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM hotel_bookings WHERE room_id=?", roomID).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return store.ErrConflict
		}
		res, err := tx.ExecContext(ctx,
			"DELETE FROM hotel_rooms WHERE id=? AND hotel_id=?", roomID, hotelID)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

const hotelBookingCols = "id, hotel_id, room_id, reference, full_name, email, check_in, check_out, guests, status, created_at"

func scanHotelBooking(row interface{ Scan(...any) error }) (*model.HotelBooking, error) {
	var b model.HotelBooking
	err := row.Scan(&b.ID, &b.HotelID, &b.RoomID, &b.Reference, &b.FullName,
		&b.Email, &b.CheckIn, &b.CheckOut, &b.Guests, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateHotelBooking locks the room row, counts overlapping stays and
// inserts in one transaction.
func (s *Store) CreateHotelBooking(ctx context.Context, b *model.HotelBooking) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var (
			totalRooms   int
			maxOccupancy int
		)
		err := tx.QueryRowContext(ctx,
			"SELECT total_rooms, max_occupancy FROM hotel_rooms WHERE id=? AND hotel_id=? FOR UPDATE",
			b.RoomID, b.HotelID).Scan(&totalRooms, &maxOccupancy)
		if err != nil {
			return notFound(err)
		}
		if b.Guests > maxOccupancy {
			return store.ErrConflict
		}
		var occupied int
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM hotel_bookings
			 WHERE room_id=? AND status<>? AND check_in < ? AND check_out > ?`,
			b.RoomID, model.BookingCancelled, b.CheckOut, b.CheckIn).Scan(&occupied)
		if err != nil {
			return err
		}
		if occupied >= totalRooms {
			return store.ErrCapacityFull
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO hotel_bookings (hotel_id, room_id, reference, full_name, email, check_in, check_out, guests, status) VALUES (?,?,?,?,?,?,?,?,?)",
			b.HotelID, b.RoomID, b.Reference, b.FullName, b.Email,
			b.CheckIn, b.CheckOut, b.Guests, model.BookingPending)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		stored, err := scanHotelBooking(tx.QueryRowContext(ctx,
			"SELECT "+hotelBookingCols+" FROM hotel_bookings WHERE id=?", id))
		if err != nil {
			return err
		}
		*b = *stored
		return nil
	})
}

func (s *Store) ListHotelBookings(ctx context.Context, hotelID uint64) ([]*model.HotelBooking, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+hotelBookingCols+" FROM hotel_bookings WHERE hotel_id=? ORDER BY id", hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.HotelBooking, 0)
	for rows.Next() {
		b, err := scanHotelBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
