package store

import (
	"context"

	"clinic-management-api/internal/model"
)

const prescriptionCols = `id, appointment_id, patient_id, doctor_id, medication, dosage, instructions, created_at, updated_at`

func (s *Store) CreatePrescription(ctx context.Context, p *model.Prescription) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO prescriptions (id, appointment_id, patient_id, doctor_id, medication, dosage, instructions)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.AppointmentID, p.PatientID, p.DoctorID, p.Medication, p.Dosage, p.Instructions,
	)
	return err
}

func (s *Store) GetPrescription(ctx context.Context, id string) (*model.Prescription, error) {
	p := &model.Prescription{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions WHERE id = $1`, id,
	).Scan(&p.ID, &p.AppointmentID, &p.PatientID, &p.DoctorID, &p.Medication, &p.Dosage,
		&p.Instructions, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *Store) PrescriptionsByPatient(ctx context.Context, patientID string) ([]model.Prescription, error) {
	return s.listPrescriptions(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions
		 WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
}

func (s *Store) PrescriptionsByDoctor(ctx context.Context, doctorID string) ([]model.Prescription, error) {
	return s.listPrescriptions(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions
		 WHERE doctor_id = $1 ORDER BY created_at DESC`, doctorID)
}

func (s *Store) listPrescriptions(ctx context.Context, q string, args ...any) ([]model.Prescription, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Prescription
	for rows.Next() {
		var p model.Prescription
		if err := rows.Scan(
			&p.ID, &p.AppointmentID, &p.PatientID, &p.DoctorID, &p.Medication, &p.Dosage,
			&p.Instructions, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
