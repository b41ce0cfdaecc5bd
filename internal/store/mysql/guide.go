package mysql

import (
	"context"
	"strings"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

const guideCols = "id, name, email, phone, registration_type, license_number, specializations, status, created_at, updated_at"

func scanGuide(row interface{ Scan(...any) error }) (*model.Guide, error) {
	var (
		g     model.Guide
		specs string
	)
	err := row.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.RegistrationType,
		&g.LicenseNumber, &specs, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.Specializations = decodeList(specs)
	return &g, nil
}

func (s *Store) CreateGuide(ctx context.Context, g *model.Guide) error {
	g.Email = strings.ToLower(strings.TrimSpace(g.Email))
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO guides (name, email, phone, registration_type, license_number, specializations, status)
		 VALUES (?,?,?,?,?,?,?)`,
		g.Name, g.Email, g.Phone, g.RegistrationType, g.LicenseNumber,
		encodeList(g.Specializations), model.GuideNotAssigned)
	if err != nil {
		if isDuplicate(err) {
			return store.ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := scanGuide(s.db.QueryRowContext(ctx,
		"SELECT "+guideCols+" FROM guides WHERE id=?", id))
	if err != nil {
		return err
	}
	*g = *stored
	return nil
}

func (s *Store) GetGuide(ctx context.Context, id uint64) (*model.Guide, error) {
	g, err := scanGuide(s.db.QueryRowContext(ctx,
		"SELECT "+guideCols+" FROM guides WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return g, nil
}

func (s *Store) GetGuideByEmail(ctx context.Context, email string) (*model.Guide, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	g, err := scanGuide(s.db.QueryRowContext(ctx,
		"SELECT "+guideCols+" FROM guides WHERE email=? LIMIT 1", email))
	if err != nil {
		return nil, notFound(err)
	}
	return g, nil
}

func (s *Store) ListGuides(ctx context.Context, f store.GuideFilter) ([]*model.Guide, error) {
	q := "SELECT " + guideCols + " FROM guides"
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		conds = append(conds, "status=?")
		args = append(args, f.Status)
	}
	if f.RegistrationType != "" {
		conds = append(conds, "registration_type=?")
		args = append(args, f.RegistrationType)
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
	out := make([]*model.Guide, 0)
	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) UpdateGuideStatus(ctx context.Context, id uint64, status string) (*model.Guide, error) {
	if !model.ValidGuideStatus(status) {
		return nil, store.ErrInvalidStatus
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE guides SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", status, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// a no-op update still needs the row to exist
		g, err := scanGuide(s.db.QueryRowContext(ctx,
			"SELECT "+guideCols+" FROM guides WHERE id=?", id))
		if err != nil {
			return nil, notFound(err)
		}
		return g, nil
	}
	g, err := scanGuide(s.db.QueryRowContext(ctx,
		"SELECT "+guideCols+" FROM guides WHERE id=?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return g, nil
}
