// Package api exposes the aggregation engine over HTTP. Routes and payload
// shapes follow the public dashboard contract; all parameter validation
// lives in core so the handlers stay thin.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/bayviewlabs/safetylens/core"
)

// Handler bundles the service with the request logger.
type Handler struct {
	svc *core.Service
	log zerolog.Logger
}

// NewHandler returns a Handler for the given service.
func NewHandler(svc *core.Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// NewRouter wires all routes and middleware into a chi router.
func NewRouter(h *Handler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsMiddleware(corsOrigins))

	r.Get("/healthz", h.Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/incidents/timeline", h.IncidentTimeline)
		r.Get("/neighborhood/top", h.TopNeighborhoods)
		r.Get("/neighborhoods/danger-analysis", h.DangerAnalysis)
		r.Get("/fire/primary_situation", h.FireSituations)
		r.Get("/fire/incomplete_inspections", h.IncompleteInspections)
		r.Get("/fire/top-neighborhoods", h.TopFireNeighborhoods)
		r.Get("/sffd/response-times", h.ResponseTimes)

		r.Post("/311-requests", h.CreateServiceRequest)
		r.Post("/sfpd_incidents", h.CreatePoliceIncident)
		r.Post("/fire-incidents", h.CreateFireIncident)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/incident_type_breakdown", h.TypeBreakdown)
		r.Get("/monthly_incidents", h.MonthlyIncidents)
		r.Get("/top_crime_categories", h.TopCrimeCategories)
	})

	return r
}
