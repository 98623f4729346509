package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"clinic-management-api/internal/middleware"
	"clinic-management-api/internal/schedule"
	"clinic-management-api/internal/store"
)

type Handler struct {
	store    *store.Store
	schedule *schedule.Service
	secret   string
	log      *zap.Logger
}

func New(st *store.Store, sched *schedule.Service, secret string, log *zap.Logger) *Handler {
	return &Handler{store: st, schedule: sched, secret: secret, log: log}
}

// Routes builds the full API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(h.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         86400,
	}))

	rl := middleware.NewRateLimiter(5, 10)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(rl)).Post("/register", h.Register)
			r.With(middleware.RateLimit(rl)).Post("/login", h.Login)
			r.Post("/refresh", h.Refresh)
			r.With(middleware.Auth(h.secret)).Post("/logout", h.Logout)
		})

		// everything below requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(h.secret))

			r.Route("/doctors", func(r chi.Router) {
				r.Get("/", h.ListDoctors)
				r.Get("/{id}", h.GetDoctor)
				r.Get("/{id}/appointments", h.DoctorAppointments)
				r.Get("/{id}/availability", h.DoctorAvailability)
				r.Post("/{id}/availability", h.AddDoctorAvailability)
				r.Get("/{id}/slots", h.DoctorFreeSlots)
			})

			r.Route("/patients", func(r chi.Router) {
				r.Get("/{id}", h.GetPatient)
				r.Get("/{id}/appointments", h.PatientAppointments)
			})

			r.Route("/appointments", func(r chi.Router) {
				r.Post("/", h.RequestAppointment)
				r.Get("/{id}", h.GetAppointment)
				r.Post("/{id}/confirm", h.ConfirmAppointment)
				r.Post("/{id}/cancel", h.CancelAppointment)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				r.Post("/", h.CreatePrescription)
				r.Get("/{id}", h.GetPrescription)
				r.Get("/patient/{id}", h.PrescriptionsByPatient)
				r.Get("/doctor/{id}", h.PrescriptionsByDoctor)
			})
		})
	})

	return r
}
