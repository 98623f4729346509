package store

import (
	"context"

	"clinic-management-api/internal/model"
)

func (s *Store) CreatePatient(ctx context.Context, p *model.Patient) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO patients (id, user_id, first_name, last_name, phone) VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Phone,
	)
	return err
}

func (s *Store) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	p := &model.Patient{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, first_name, last_name, phone, created_at, updated_at
		 FROM patients WHERE id = $1`, id,
	).Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *Store) PatientExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}
