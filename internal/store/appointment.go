package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"clinic-management-api/internal/model"
)

const appointmentCols = `id, patient_id, doctor_id, appointment_datetime, status, reason, created_at, updated_at`

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, patient_id, doctor_id, appointment_datetime, status, reason)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentTime, a.Status, a.Reason,
	)
	return err
}

func (s *Store) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE appointments SET status=$1, reason=$2, updated_at=NOW() WHERE id=$3`,
		a.Status, a.Reason, a.ID,
	)
	return err
}

func (s *Store) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id,
	).Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentTime, &a.Status, &a.Reason,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (s *Store) AppointmentsByPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments
		 WHERE patient_id = $1 ORDER BY appointment_datetime`, patientID,
	)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows)
}

func (s *Store) AppointmentsByDoctor(ctx context.Context, doctorID string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments
		 WHERE doctor_id = $1 ORDER BY appointment_datetime`, doctorID,
	)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows)
}

// AppointmentsByDoctorBetween returns all of a doctor's appointments in
// [from, to), every status included.
func (s *Store) AppointmentsByDoctorBetween(ctx context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments
		 WHERE doctor_id = $1
		   AND appointment_datetime >= $2 AND appointment_datetime < $3
		 ORDER BY appointment_datetime`, doctorID, from, to,
	)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows)
}

func scanAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentTime, &a.Status, &a.Reason,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
