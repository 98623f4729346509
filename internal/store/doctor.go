package store

import (
	"context"

	"clinic-management-api/internal/model"
	"clinic-management-api/internal/timeslot"
)

func (s *Store) CreateDoctor(ctx context.Context, d *model.Doctor) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO doctors (id, user_id, first_name, last_name, specialty, qualifications, bio)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.UserID, d.FirstName, d.LastName, d.Specialty, d.Qualifications, d.Bio,
	)
	return err
}

func (s *Store) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	d := &model.Doctor{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, first_name, last_name, specialty, qualifications, bio, created_at, updated_at
		 FROM doctors WHERE id = $1`, id,
	).Scan(&d.ID, &d.UserID, &d.FirstName, &d.LastName, &d.Specialty, &d.Qualifications, &d.Bio,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}

	d.AvailableTimes, err = s.AvailableTimes(ctx, id)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) DoctorExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM doctors WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

func (s *Store) ListDoctors(ctx context.Context, specialty string) ([]model.Doctor, error) {
	q := `SELECT id, user_id, first_name, last_name, specialty, qualifications, bio, created_at, updated_at
	      FROM doctors`
	args := []any{}
	if specialty != "" {
		q += ` WHERE specialty = $1`
		args = append(args, specialty)
	}
	q += ` ORDER BY last_name, first_name`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Doctor
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.FirstName, &d.LastName, &d.Specialty, &d.Qualifications, &d.Bio,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// AvailableTimes returns the doctor's slot template in configured
// order, which is the order slots were added in.
func (s *Store) AvailableTimes(ctx context.Context, doctorID string) ([]timeslot.Slot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT available_time FROM doctor_available_times
		 WHERE doctor_id = $1 ORDER BY position`, doctorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []timeslot.Slot
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		slot, err := timeslot.Parse(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, slot)
	}
	return out, rows.Err()
}

// AddAvailableTime appends a slot to the end of the doctor's template.
func (s *Store) AddAvailableTime(ctx context.Context, doctorID string, slot timeslot.Slot) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO doctor_available_times (doctor_id, available_time, position)
		 SELECT $1, $2, COALESCE(MAX(position)+1, 0)
		 FROM doctor_available_times WHERE doctor_id = $1`,
		doctorID, slot.String(),
	)
	return err
}
