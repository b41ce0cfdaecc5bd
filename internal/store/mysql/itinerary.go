package mysql

import (
	"context"
	"database/sql"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const itineraryCols = "id, tour_id, name, start_date, end_date, guide_id, driver_id, max_participants, current_participants, status, created_at, updated_at"

func scanItinerary(row interface{ Scan(...any) error }) (*model.Itinerary, error) {
	var (
		it               model.Itinerary
		guideID, driverID sql.NullInt64
	)
	err := row.Scan(&it.ID, &it.TourID, &it.Name, &it.StartDate, &it.EndDate,
		&guideID, &driverID, &it.MaxParticipants, &it.CurrentParticipants,
		&it.Status, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.GuideID = idPtr(guideID)
	it.DriverID = idPtr(driverID)
	return &it, nil
}

func scanDay(row interface{ Scan(...any) error }) (*model.ItineraryDay, error) {
	var (
		d                 model.ItineraryDay
		activities, meals string
	)
	if err := row.Scan(&d.ID, &d.ItineraryID, &d.DayNumber, &activities, &d.Accommodation, &meals); err != nil {
		return nil, err
	}
	d.Activities = decodeList(activities)
	d.Meals = decodeList(meals)
	return &d, nil
}

// claimGuideTx flips a not_assigned guide to assigned with a row lock,
// so two itineraries cannot claim the same person concurrently.
func claimGuideTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	var status string
	err := tx.QueryRowContext(ctx,
		"SELECT status FROM guides WHERE id=? FOR UPDATE", id).Scan(&status)
	if err != nil {
		return notFound(err)
	}
	if status != model.GuideNotAssigned {
		return store.ErrGuideUnavailable
	}
	_, err = tx.ExecContext(ctx,
		"UPDATE guides SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		model.GuideAssigned, id)
	return err
}

// CreateItinerary inserts the itinerary, its days and the guide/driver
// status flips in one transaction. Any failure rolls everything back.
func (s *Store) CreateItinerary(ctx context.Context, it *model.Itinerary) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var active bool
		if err := tx.QueryRowContext(ctx,
			"SELECT is_active FROM tours WHERE id=?", it.TourID).Scan(&active); err != nil || !active {
			return store.ErrNotFound
		}
		if it.GuideID != nil {
			if err := claimGuideTx(ctx, tx, *it.GuideID); err != nil {
				return err
			}
		}
		if it.DriverID != nil {
			if err := claimGuideTx(ctx, tx, *it.DriverID); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO itineraries (tour_id, name, start_date, end_date, guide_id, driver_id, max_participants, current_participants, status)
			 VALUES (?,?,?,?,?,?,?,0,?)`,
			it.TourID, it.Name, it.StartDate, it.EndDate,
			nullID(it.GuideID), nullID(it.DriverID), it.MaxParticipants,
			model.ItineraryActive)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		it.ID = uint64(id)
		for i := range it.Days {
			d := &it.Days[i]
			d.ItineraryID = it.ID
			dayRes, err := tx.ExecContext(ctx,
				"INSERT INTO itinerary_days (itinerary_id, day_number, activities, accommodation, meals) VALUES (?,?,?,?,?)",
				d.ItineraryID, d.DayNumber, encodeList(d.Activities),
				d.Accommodation, encodeList(d.Meals))
			if err != nil {
				if isDuplicate(err) {
					return store.ErrConflict
				}
				return err
			}
			dayID, err := dayRes.LastInsertId()
			if err != nil {
				return err
			}
			d.ID = uint64(dayID)
		}
		stored, err := scanItinerary(tx.QueryRowContext(ctx,
			"SELECT "+itineraryCols+" FROM itineraries WHERE id=?", it.ID))
		if err != nil {
			return err
		}
		days := it.Days
		*it = *stored
		it.Days = days
		return nil
	})
	return err
}

// loadDays fetches day rows ordered by day number.
func (s *Store) loadDays(ctx context.Context, itineraryID uint64) ([]model.ItineraryDay, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, itinerary_id, day_number, activities, accommodation, meals
		 FROM itinerary_days WHERE itinerary_id=? ORDER BY day_number`, itineraryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.ItineraryDay
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (s *Store) GetItinerary(ctx context.Context, id uint64) (*model.Itinerary, error) {
	it, err := scanItinerary(s.db.QueryRowContext(ctx,
		"SELECT "+itineraryCols+" FROM itineraries WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	if it.Days, err = s.loadDays(ctx, id); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Store) ListItineraries(ctx context.Context, f store.ItineraryFilter) ([]*model.Itinerary, error) {
	q := "SELECT " + itineraryCols + " FROM itineraries"
	var (
		conds []string
		args  []any
	)
	if f.GuideID != 0 {
		conds = append(conds, "guide_id=?")
		args = append(args, f.GuideID)
	}
	if f.DriverID != 0 {
		conds = append(conds, "driver_id=?")
		args = append(args, f.DriverID)
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
	out := make([]*model.Itinerary, 0)
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, it := range out {
		if it.Days, err = s.loadDays(ctx, it.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UpdateItinerary persists the editable fields. Moving an active
// itinerary to completed or cancelled releases its guide and driver in
// the same transaction.
func (s *Store) UpdateItinerary(ctx context.Context, it *model.Itinerary) error {
	if !model.ValidItineraryStatus(it.Status) {
		return store.ErrInvalidStatus
	}
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		cur, err := scanItinerary(tx.QueryRowContext(ctx,
			"SELECT "+itineraryCols+" FROM itineraries WHERE id=? FOR UPDATE", it.ID))
		if err != nil {
			return notFound(err)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE itineraries SET name=?, start_date=?, end_date=?, max_participants=?,
			 status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
			it.Name, it.StartDate, it.EndDate, it.MaxParticipants, it.Status, it.ID)
		if err != nil {
			return err
		}
		if cur.Status == model.ItineraryActive && it.Status != model.ItineraryActive {
			for _, gid := range []*uint64{cur.GuideID, cur.DriverID} {
				if gid == nil {
					continue
				}
				_, err = tx.ExecContext(ctx,
					"UPDATE guides SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=? AND status=?",
					model.GuideNotAssigned, *gid, model.GuideAssigned)
				if err != nil {
					return err
				}
			}
		}
		stored, err := scanItinerary(tx.QueryRowContext(ctx,
			"SELECT "+itineraryCols+" FROM itineraries WHERE id=?", it.ID))
		if err != nil {
			return err
		}
		*it = *stored
		return nil
	})
	if err != nil {
		return err
	}
	it.Days, err = s.loadDays(ctx, it.ID)
	return err
}

// RegisterParticipants bumps the participant count behind a guarded
// UPDATE: the WHERE clause re-checks capacity so concurrent requests
// cannot oversubscribe.
func (s *Store) RegisterParticipants(ctx context.Context, id uint64, n int) (*model.Itinerary, error) {
	var it *model.Itinerary
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		cur, err := scanItinerary(tx.QueryRowContext(ctx,
			"SELECT "+itineraryCols+" FROM itineraries WHERE id=? FOR UPDATE", id))
		if err != nil {
			return notFound(err)
		}
		if cur.Status != model.ItineraryActive {
			return store.ErrConflict
		}
		if cur.MaxParticipants > 0 && cur.CurrentParticipants+n > cur.MaxParticipants {
			return store.ErrCapacityFull
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE itineraries SET current_participants=current_participants+?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
			n, id)
		if err != nil {
			return err
		}
		it, err = scanItinerary(tx.QueryRowContext(ctx,
			"SELECT "+itineraryCols+" FROM itineraries WHERE id=?", id))
		return err
	})
	if err != nil {
		return nil, err
	}
	if it.Days, err = s.loadDays(ctx, id); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Store) AddItineraryDay(ctx context.Context, d *model.ItineraryDay) error {
	var exists uint64
	if err := s.db.QueryRowContext(ctx,
		"SELECT id FROM itineraries WHERE id=?", d.ItineraryID).Scan(&exists); err != nil {
		return notFound(err)
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO itinerary_days (itinerary_id, day_number, activities, accommodation, meals) VALUES (?,?,?,?,?)",
		d.ItineraryID, d.DayNumber, encodeList(d.Activities), d.Accommodation, encodeList(d.Meals))
	if err != nil {
		if isDuplicate(err) {
			return store.ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return nil
}

func (s *Store) UpdateItineraryDay(ctx context.Context, d *model.ItineraryDay) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE itinerary_days SET day_number=?, activities=?, accommodation=?, meals=? WHERE id=? AND itinerary_id=?",
		d.DayNumber, encodeList(d.Activities), d.Accommodation, encodeList(d.Meals),
		d.ID, d.ItineraryID)
	if err != nil {
		if isDuplicate(err) {
			return store.ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		stored, err := scanDay(s.db.QueryRowContext(ctx,
			"SELECT id, itinerary_id, day_number, activities, accommodation, meals FROM itinerary_days WHERE id=? AND itinerary_id=?",
			d.ID, d.ItineraryID))
		if err != nil {
			return notFound(err)
		}
		*d = *stored
	}
	return nil
}

func (s *Store) DeleteItineraryDay(ctx context.Context, itineraryID, dayID uint64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM itinerary_days WHERE id=? AND itinerary_id=?", dayID, itineraryID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}
