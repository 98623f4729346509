package schedule

import (
	"context"
	"fmt"
	"time"

	"clinic-management-api/internal/timeslot"
)

// FreeSlots returns every template slot that is not in the booked set,
// in the template's own order. Booked slots outside the template are
// ignored. Neither input is mutated.
func FreeSlots(template []timeslot.Slot, booked map[timeslot.Slot]struct{}) []timeslot.Slot {
	free := make([]timeslot.Slot, 0, len(template))
	for _, slot := range template {
		if _, taken := booked[slot]; !taken {
			free = append(free, slot)
		}
	}
	return free
}

// AvailableSlots computes the bookable slots for a doctor on a calendar
// date. Every appointment falling on that date occupies its slot, no
// matter its status — canceled ones included, matching the behavior
// callers already depend on.
func (s *Service) AvailableSlots(ctx context.Context, doctorID string, date time.Time) ([]timeslot.Slot, error) {
	ok, err := s.doctors.DoctorExists(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("doctor lookup: %w", err)
	}
	if !ok {
		return nil, ErrUnknownDoctor
	}

	template, err := s.doctors.AvailableTimes(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("availability template: %w", err)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	appts, err := s.appointments.AppointmentsByDoctorBetween(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("appointments on date: %w", err)
	}

	booked := make(map[timeslot.Slot]struct{}, len(appts))
	for _, a := range appts {
		booked[timeslot.FromTime(a.AppointmentTime)] = struct{}{}
	}
	return FreeSlots(template, booked), nil
}
