package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"clinic-management-api/internal/auth"
	"clinic-management-api/internal/middleware"
	"clinic-management-api/internal/model"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Register creates a patient account. Doctor accounts are provisioned
// out of band.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		writeError(w, http.StatusBadRequest, "all fields required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password too short")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.FirstName + " " + req.LastName,
		Role:         model.RolePatient,
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		// unique violation = dup email, but don't reveal that
		writeError(w, http.StatusConflict, "registration failed")
		return
	}

	p := &model.Patient{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := h.store.CreatePatient(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	tok, err := auth.MakeToken(u.ID, u.Role, h.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"user_id":    u.ID,
		"patient_id": p.ID,
		"token":      tok,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password required")
		return
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	tok, err := auth.MakeToken(u.ID, u.Role, h.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	rawRefresh, refreshHash, err := auth.GenerateRefreshToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if _, err := h.store.CreateRefreshToken(r.Context(), u.ID, refreshHash, time.Now().Add(refreshTokenTTL)); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":         tok,
		"refresh_token": rawRefresh,
		"user_id":       u.ID,
		"name":          u.Name,
		"role":          u.Role,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decode(r, &req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh_token required")
		return
	}

	rt, err := h.store.RefreshTokenByHash(r.Context(), auth.HashRefreshToken(req.RefreshToken))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	if rt.Revoked || time.Now().After(rt.ExpiresAt) {
		// a revoked token turning up again suggests theft
		_ = h.store.RevokeAllRefreshTokens(r.Context(), rt.UserID)
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	u, err := h.store.UserByID(r.Context(), rt.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	rawRefresh, refreshHash, err := auth.GenerateRefreshToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	newID := uuid.New().String()
	if err := h.store.RotateRefreshToken(r.Context(), rt.ID, newID, u.ID, refreshHash, time.Now().Add(refreshTokenTTL)); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	tok, err := auth.MakeToken(u.ID, u.Role, h.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":         tok,
		"refresh_token": rawRefresh,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UserID(r.Context())
	if err := h.store.RevokeAllRefreshTokens(r.Context(), uid); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
