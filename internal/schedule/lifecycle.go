package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clinic-management-api/internal/model"
)

// Request books a new appointment. The patient and doctor must resolve
// (checked in that order) and the time must be strictly in the future.
// The appointment starts in status REQUESTED.
func (s *Service) Request(ctx context.Context, patientID, doctorID string, when time.Time, reason string) (*model.Appointment, error) {
	ok, err := s.patients.PatientExists(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("patient lookup: %w", err)
	}
	if !ok {
		return nil, ErrUnknownPatient
	}

	ok, err = s.doctors.DoctorExists(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("doctor lookup: %w", err)
	}
	if !ok {
		return nil, ErrUnknownDoctor
	}

	if !when.After(s.clock.Now()) {
		return nil, ErrPastAppointmentTime
	}

	a := &model.Appointment{
		ID:              uuid.New().String(),
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentTime: when,
		Status:          model.StatusRequested,
		Reason:          reason,
	}
	if err := s.appointments.CreateAppointment(ctx, a); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return a, nil
}

// Confirm moves an appointment to SCHEDULED.
func (s *Service) Confirm(ctx context.Context, id string) (*model.Appointment, error) {
	return s.setStatus(ctx, id, model.StatusScheduled)
}

// Cancel moves an appointment to CANCELED. Cancellation is a status
// change, never a row removal.
func (s *Service) Cancel(ctx context.Context, id string) (*model.Appointment, error) {
	return s.setStatus(ctx, id, model.StatusCanceled)
}

func (s *Service) setStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	a, err := s.appointments.GetAppointment(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("appointment lookup: %w", err)
	}

	// The current status is deliberately not checked: confirming a
	// canceled appointment moves it back to SCHEDULED. Callers rely on
	// re-confirmation being accepted.
	a.Status = status
	if err := s.appointments.UpdateAppointment(ctx, a); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return a, nil
}

// FindByID returns model.ErrNotFound when the id does not resolve.
func (s *Service) FindByID(ctx context.Context, id string) (*model.Appointment, error) {
	return s.appointments.GetAppointment(ctx, id)
}

func (s *Service) FindByPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	return s.appointments.AppointmentsByPatient(ctx, patientID)
}

func (s *Service) FindByDoctor(ctx context.Context, doctorID string) ([]model.Appointment, error) {
	return s.appointments.AppointmentsByDoctor(ctx, doctorID)
}
