package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not an integer.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// queryIntPtr is like queryInt but distinguishes "absent" from a value.
func queryIntPtr(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// IncidentTimeline serves GET /api/incidents/timeline.
func (h *Handler) IncidentTimeline(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	source := r.URL.Query().Get("source")
	prioritizeCoords := strings.EqualFold(r.URL.Query().Get("prioritize_coords"), "true")

	result, err := h.svc.Timeline(r.Context(), source, limit, prioritizeCoords)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// TopNeighborhoods serves GET /api/neighborhood/top.
func (h *Handler) TopNeighborhoods(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", contract.DefaultNeighborhoodLimit)
	minIncidents := queryIntPtr(r, "min_incidents")

	result, err := h.svc.TopNeighborhoods(r.Context(), limit, minIncidents)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// DangerAnalysis serves GET /api/neighborhoods/danger-analysis.
func (h *Handler) DangerAnalysis(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	topN := queryInt(r, "top_n", contract.DefaultDangerTopN)

	result, err := h.svc.DangerAnalysis(r.Context(), q.Get("neighborhood"), q.Get("time_period"), q.Get("day_type"), topN)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// TypeBreakdown serves GET /stats/incident_type_breakdown.
func (h *Handler) TypeBreakdown(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.TypeBreakdown(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// MonthlyIncidents serves GET /stats/monthly_incidents.
func (h *Handler) MonthlyIncidents(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.MonthlyIncidents(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// TopCrimeCategories serves GET /stats/top_crime_categories. An empty
// dataset yields an empty object rather than an empty list.
func (h *Handler) TopCrimeCategories(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", contract.DefaultCategoryLimit)

	cats, err := h.svc.TopCrimeCategories(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(cats) == 0 {
		h.writeJSON(w, http.StatusOK, map[string]any{})
		return
	}

	byCategory := make(map[string]int, len(cats))
	for _, c := range cats {
		byCategory[c.Category] = c.Count
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"top_crime_categories":      byCategory,
		"total_categories_returned": len(cats),
	})
}

// FireSituations serves GET /api/fire/primary_situation.
func (h *Handler) FireSituations(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.svc.FireSituationActions(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(pairs) == 0 {
		h.writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	h.writeJSON(w, http.StatusOK, pairs)
}

// IncompleteInspections serves GET /api/fire/incomplete_inspections.
func (h *Handler) IncompleteInspections(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", contract.DefaultInspectionLimit)

	records, err := h.svc.IncompleteInspections(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(records) == 0 {
		h.writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}

// TopFireNeighborhoods serves GET /api/fire/top-neighborhoods.
func (h *Handler) TopFireNeighborhoods(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", contract.DefaultYearlyLimit)
	years := queryInt(r, "years", contract.DefaultYearlyYears)

	ranked, summary, err := h.svc.TopFireNeighborhoods(r.Context(), limit, years)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if summary == nil {
		h.writeJSON(w, http.StatusOK, map[string]any{
			"data":    []schema.YearNeighborhood{},
			"summary": map[string]string{"message": "No fire incident data available"},
		})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"data":    ranked,
		"summary": summary,
	})
}

// ResponseTimes serves GET /api/sffd/response-times.
func (h *Handler) ResponseTimes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := queryInt(r, "limit", contract.DefaultResponseLimit)
	sortBy := q.Get("sort_by")
	if sortBy == "" {
		sortBy = string(schema.SortAvgResponse)
	}
	order := q.Get("order")
	if order == "" {
		order = string(schema.OrderDesc)
	}

	stats, err := h.svc.ResponseTimes(r.Context(), limit, sortBy, order)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(stats) == 0 {
		h.writeJSON(w, http.StatusOK, map[string]any{
			"data":    []schema.ResponseTimeStat{},
			"summary": map[string]string{"message": "No call types found with at least 5 incidents"},
		})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"data": stats,
		"summary": map[string]any{
			"limit":         limit,
			"sort_by":       sortBy + "_minutes",
			"order":         order,
			"total_records": len(stats),
		},
	})
}

// createdBody is the write-path success envelope.
type createdBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func decodeBody(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return contract.NewInvalidParameter("Invalid JSON body")
	}
	return nil
}

// CreateServiceRequest serves POST /api/311-requests.
func (h *Handler) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	var in schema.ServiceRequestInput
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	row, err := h.svc.CreateServiceRequest(r.Context(), &in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createdBody{
		Success: true,
		Message: "311 service request created successfully",
		Data:    row,
	})
}

// CreatePoliceIncident serves POST /api/sfpd_incidents.
func (h *Handler) CreatePoliceIncident(w http.ResponseWriter, r *http.Request) {
	var in schema.PoliceIncidentInput
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	row, err := h.svc.CreatePoliceIncident(r.Context(), &in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createdBody{
		Success: true,
		Message: "SFPD incident created successfully",
		Data:    row,
	})
}

// CreateFireIncident serves POST /api/fire-incidents.
func (h *Handler) CreateFireIncident(w http.ResponseWriter, r *http.Request) {
	var in schema.FireIncidentInput
	if err := decodeBody(r, &in); err != nil {
		h.writeError(w, err)
		return
	}
	row, err := h.svc.CreateFireIncident(r.Context(), &in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createdBody{
		Success: true,
		Message: "Fire Incident created successfully",
		Data:    row,
	})
}
