// Package schedule owns the appointment lifecycle and the availability
// computation for doctors.
package schedule

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/model"
	"clinic-management-api/internal/timeslot"
)

var (
	ErrUnknownPatient      = errors.New("patient not found")
	ErrUnknownDoctor       = errors.New("doctor not found")
	ErrPastAppointmentTime = errors.New("appointment time must be in the future")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// Clock is injected so the future-time validation in Request is
// testable without the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type PatientStore interface {
	PatientExists(ctx context.Context, id string) (bool, error)
}

type DoctorStore interface {
	DoctorExists(ctx context.Context, id string) (bool, error)
	// AvailableTimes returns the doctor's recurring slot template in
	// configured order.
	AvailableTimes(ctx context.Context, doctorID string) ([]timeslot.Slot, error)
}

type AppointmentStore interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	UpdateAppointment(ctx context.Context, a *model.Appointment) error
	// GetAppointment returns model.ErrNotFound when the id does not resolve.
	GetAppointment(ctx context.Context, id string) (*model.Appointment, error)
	AppointmentsByPatient(ctx context.Context, patientID string) ([]model.Appointment, error)
	AppointmentsByDoctor(ctx context.Context, doctorID string) ([]model.Appointment, error)
	AppointmentsByDoctorBetween(ctx context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error)
}

type Service struct {
	patients     PatientStore
	doctors      DoctorStore
	appointments AppointmentStore
	clock        Clock
}

// New wires the service. A nil clock means the system clock.
func New(patients PatientStore, doctors DoctorStore, appointments AppointmentStore, clock Clock) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &Service{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		clock:        clock,
	}
}
