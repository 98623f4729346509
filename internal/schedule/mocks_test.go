package schedule

import (
	"context"
	"time"

	"clinic-management-api/internal/model"
	"clinic-management-api/internal/timeslot"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

// memStore is an in-memory stand-in for the postgres store, good enough
// for exercising the lifecycle and availability paths.
type memStore struct {
	patients     map[string]struct{}
	doctors      map[string]struct{}
	templates    map[string][]timeslot.Slot
	appointments map[string]*model.Appointment
	insertOrder  []string
}

func newMemStore() *memStore {
	return &memStore{
		patients:     make(map[string]struct{}),
		doctors:      make(map[string]struct{}),
		templates:    make(map[string][]timeslot.Slot),
		appointments: make(map[string]*model.Appointment),
	}
}

func (m *memStore) addPatient(id string) { m.patients[id] = struct{}{} }

func (m *memStore) addDoctor(id string, template ...string) {
	m.doctors[id] = struct{}{}
	for _, raw := range template {
		slot, err := timeslot.Parse(raw)
		if err != nil {
			panic("bad template slot in test: " + raw)
		}
		m.templates[id] = append(m.templates[id], slot)
	}
}

func (m *memStore) PatientExists(_ context.Context, id string) (bool, error) {
	_, ok := m.patients[id]
	return ok, nil
}

func (m *memStore) DoctorExists(_ context.Context, id string) (bool, error) {
	_, ok := m.doctors[id]
	return ok, nil
}

func (m *memStore) AvailableTimes(_ context.Context, doctorID string) ([]timeslot.Slot, error) {
	return m.templates[doctorID], nil
}

func (m *memStore) CreateAppointment(_ context.Context, a *model.Appointment) error {
	cp := *a
	m.appointments[a.ID] = &cp
	m.insertOrder = append(m.insertOrder, a.ID)
	return nil
}

func (m *memStore) UpdateAppointment(_ context.Context, a *model.Appointment) error {
	if _, ok := m.appointments[a.ID]; !ok {
		return model.ErrNotFound
	}
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *memStore) GetAppointment(_ context.Context, id string) (*model.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) AppointmentsByPatient(_ context.Context, patientID string) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, id := range m.insertOrder {
		if a := m.appointments[id]; a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) AppointmentsByDoctor(_ context.Context, doctorID string) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, id := range m.insertOrder {
		if a := m.appointments[id]; a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) AppointmentsByDoctorBetween(_ context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, id := range m.insertOrder {
		a := m.appointments[id]
		if a.DoctorID != doctorID {
			continue
		}
		if a.AppointmentTime.Before(from) || !a.AppointmentTime.Before(to) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}
