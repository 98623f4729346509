package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clinic-management-api/internal/model"
	"clinic-management-api/internal/schedule"
)

type requestAppointmentBody struct {
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Reason          string    `json:"reason"`
}

func (h *Handler) RequestAppointment(w http.ResponseWriter, r *http.Request) {
	var req requestAppointmentBody
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.PatientID == "" || req.DoctorID == "" {
		writeError(w, http.StatusBadRequest, "patient_id and doctor_id required")
		return
	}
	if req.AppointmentTime.IsZero() {
		writeError(w, http.StatusBadRequest, "appointment_time required")
		return
	}

	a, err := h.schedule.Request(r.Context(), req.PatientID, req.DoctorID, req.AppointmentTime, req.Reason)
	switch {
	case errors.Is(err, schedule.ErrUnknownPatient),
		errors.Is(err, schedule.ErrUnknownDoctor),
		errors.Is(err, schedule.ErrPastAppointmentTime):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	a, err := h.schedule.FindByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, model.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.schedule.Confirm)
}

func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.schedule.Cancel)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) (*model.Appointment, error)) {
	a, err := op(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, schedule.ErrAppointmentNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, a)
}
