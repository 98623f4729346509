package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"clinic-management-api/internal/model"
)

type createPrescriptionBody struct {
	AppointmentID string `json:"appointment_id"`
	Medication    string `json:"medication"`
	Dosage        string `json:"dosage"`
	Instructions  string `json:"instructions"`
}

// CreatePrescription writes a prescription against an existing
// appointment; the patient and doctor are taken from it.
func (h *Handler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	var req createPrescriptionBody
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.AppointmentID == "" || req.Medication == "" {
		writeError(w, http.StatusBadRequest, "appointment_id and medication required")
		return
	}

	appt, err := h.schedule.FindByID(r.Context(), req.AppointmentID)
	if errors.Is(err, model.ErrNotFound) {
		writeError(w, http.StatusBadRequest, "unknown appointment")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	p := &model.Prescription{
		ID:            uuid.New().String(),
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorID:      appt.DoctorID,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		Instructions:  req.Instructions,
	}
	if err := h.store.CreatePrescription(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetPrescription(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, model.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) PrescriptionsByPatient(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.PrescriptionsByPatient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if out == nil {
		out = []model.Prescription{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) PrescriptionsByDoctor(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.PrescriptionsByDoctor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if out == nil {
		out = []model.Prescription{}
	}
	writeJSON(w, http.StatusOK, out)
}
