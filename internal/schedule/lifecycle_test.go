package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-management-api/internal/model"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	st := newMemStore()
	st.addPatient("p1")
	st.addDoctor("d1", "09:00", "09:30", "10:00")
	return New(st, st, st, fixedClock{testNow}), st
}

func TestRequestCreatesRequested(t *testing.T) {
	svc, st := newTestService(t)

	when := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	a, err := svc.Request(context.Background(), "p1", "d1", when, "checkup")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if a.ID == "" {
		t.Fatal("empty id")
	}
	if a.Status != model.StatusRequested {
		t.Fatalf("status: got %s, want %s", a.Status, model.StatusRequested)
	}
	if a.Reason != "checkup" {
		t.Errorf("reason: got %q", a.Reason)
	}

	saved, err := st.GetAppointment(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("persisted lookup: %v", err)
	}
	if saved.Status != model.StatusRequested {
		t.Fatalf("persisted status: got %s", saved.Status)
	}
}

// A requested appointment occupies its slot immediately, before any
// staff confirmation.
func TestRequestOccupiesSlot(t *testing.T) {
	svc, _ := newTestService(t)

	when := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	if _, err := svc.Request(context.Background(), "p1", "d1", when, ""); err != nil {
		t.Fatalf("request: %v", err)
	}

	free, err := svc.AvailableSlots(context.Background(), "d1", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	assertSlots(t, free, "09:00", "10:00")
}

func TestRequestPastTime(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Request(context.Background(), "p1", "d1", testNow.Add(-time.Hour), "")
	if !errors.Is(err, ErrPastAppointmentTime) {
		t.Fatalf("want ErrPastAppointmentTime, got %v", err)
	}
}

// Exactly "now" is not in the future.
func TestRequestAtCurrentMoment(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Request(context.Background(), "p1", "d1", testNow, "")
	if !errors.Is(err, ErrPastAppointmentTime) {
		t.Fatalf("want ErrPastAppointmentTime, got %v", err)
	}
}

// References are validated patient first, then doctor.
func TestRequestValidationOrder(t *testing.T) {
	svc, _ := newTestService(t)
	future := testNow.Add(24 * time.Hour)

	_, err := svc.Request(context.Background(), "nobody", "ghost", future, "")
	if !errors.Is(err, ErrUnknownPatient) {
		t.Fatalf("both unknown: want ErrUnknownPatient, got %v", err)
	}

	_, err = svc.Request(context.Background(), "p1", "ghost", future, "")
	if !errors.Is(err, ErrUnknownDoctor) {
		t.Fatalf("known patient, unknown doctor: want ErrUnknownDoctor, got %v", err)
	}
}

func TestRequestPastTimeWithUnknownRefs(t *testing.T) {
	svc, _ := newTestService(t)

	// Reference checks come first, so unknown patient wins over past time.
	_, err := svc.Request(context.Background(), "nobody", "d1", testNow.Add(-time.Hour), "")
	if !errors.Is(err, ErrUnknownPatient) {
		t.Fatalf("want ErrUnknownPatient, got %v", err)
	}
}

func TestConfirmThenCancel(t *testing.T) {
	svc, _ := newTestService(t)

	a, err := svc.Request(context.Background(), "p1", "d1", testNow.Add(24*time.Hour), "")
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	confirmed, err := svc.Confirm(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != model.StatusScheduled {
		t.Fatalf("after confirm: got %s", confirmed.Status)
	}

	canceled, err := svc.Cancel(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if canceled.Status != model.StatusCanceled {
		t.Fatalf("after cancel: got %s", canceled.Status)
	}
}

func TestConfirmNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Confirm(context.Background(), "missing"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("confirm: want ErrAppointmentNotFound, got %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "missing"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("cancel: want ErrAppointmentNotFound, got %v", err)
	}
}

// Confirm does not guard on the current status: confirming a canceled
// appointment resurrects it to SCHEDULED. Intentionally preserved;
// see DESIGN.md before tightening this.
func TestConfirmOverwritesCanceled(t *testing.T) {
	svc, st := newTestService(t)

	a, err := svc.Request(context.Background(), "p1", "d1", testNow.Add(24*time.Hour), "")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), a.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	revived, err := svc.Confirm(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("confirm after cancel: %v", err)
	}
	if revived.Status != model.StatusScheduled {
		t.Fatalf("got %s, want %s", revived.Status, model.StatusScheduled)
	}

	saved, _ := st.GetAppointment(context.Background(), a.ID)
	if saved.Status != model.StatusScheduled {
		t.Fatalf("persisted: got %s", saved.Status)
	}
}

func TestFindByID(t *testing.T) {
	svc, _ := newTestService(t)

	a, _ := svc.Request(context.Background(), "p1", "d1", testNow.Add(time.Hour), "")
	got, err := svc.FindByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("got %s, want %s", got.ID, a.ID)
	}

	if _, err := svc.FindByID(context.Background(), "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("want model.ErrNotFound, got %v", err)
	}
}

func TestFindByPatientAndDoctor(t *testing.T) {
	svc, st := newTestService(t)
	st.addPatient("p2")

	if _, err := svc.Request(context.Background(), "p1", "d1", testNow.Add(time.Hour), ""); err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := svc.Request(context.Background(), "p2", "d1", testNow.Add(2*time.Hour), ""); err != nil {
		t.Fatalf("request: %v", err)
	}

	byPatient, err := svc.FindByPatient(context.Background(), "p1")
	if err != nil {
		t.Fatalf("by patient: %v", err)
	}
	if len(byPatient) != 1 {
		t.Fatalf("by patient: got %d", len(byPatient))
	}

	byDoctor, err := svc.FindByDoctor(context.Background(), "d1")
	if err != nil {
		t.Fatalf("by doctor: %v", err)
	}
	if len(byDoctor) != 2 {
		t.Fatalf("by doctor: got %d", len(byDoctor))
	}
}
