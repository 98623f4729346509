package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clinic-management-api/internal/model"
	"clinic-management-api/internal/schedule"
	"clinic-management-api/internal/timeslot"
)

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.store.ListDoctors(r.Context(), r.URL.Query().Get("specialty"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if doctors == nil {
		doctors = []model.Doctor{}
	}
	writeJSON(w, http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	d, err := h.store.GetDoctor(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, model.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) DoctorAppointments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.requireDoctor(w, r, id) {
		return
	}

	appts, err := h.schedule.FindByDoctor(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if appts == nil {
		appts = []model.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *Handler) DoctorAvailability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.requireDoctor(w, r, id) {
		return
	}

	template, err := h.store.AvailableTimes(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if template == nil {
		template = []timeslot.Slot{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"available_times": template})
}

type addAvailabilityBody struct {
	Time string `json:"time"`
}

func (h *Handler) AddDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	var req addAvailabilityBody
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	slot, err := timeslot.Parse(req.Time)
	if err != nil {
		writeError(w, http.StatusBadRequest, "time must be HH:MM")
		return
	}

	id := chi.URLParam(r, "id")
	if !h.requireDoctor(w, r, id) {
		return
	}

	if err := h.store.AddAvailableTime(r.Context(), id, slot); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"time": slot.String()})
}

// DoctorFreeSlots answers "what can I book" for one doctor and date.
func (h *Handler) DoctorFreeSlots(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	free, err := h.schedule.AvailableSlots(r.Context(), chi.URLParam(r, "id"), date)
	if errors.Is(err, schedule.ErrUnknownDoctor) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":  date.Format("2006-01-02"),
		"slots": free,
	})
}

func (h *Handler) requireDoctor(w http.ResponseWriter, r *http.Request, id string) bool {
	ok, err := h.store.DoctorExists(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return false
	}
	return true
}
