package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bayviewlabs/safetylens/core"
	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
)

func newTestRouter(store *contract.MockStore) http.Handler {
	h := NewHandler(core.NewService(store, nil), zerolog.Nop())
	return NewRouter(h, nil)
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	store := &contract.MockStore{}
	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestIncidentTimeline(t *testing.T) {
	larceny := "Larceny"
	store := &contract.MockStore{}
	store.On("UnifiedIncidents", mock.Anything, mock.Anything).Return([]schema.CanonicalIncident{
		{SourceTable: schema.SourcePoliceIncidents, IncidentTime: "2024-01-02 12:00:00", IncidentType: &larceny},
	}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/incidents/timeline?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body schema.TimelineResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, 1, body.Sources[schema.SourcePoliceIncidents])
	store.AssertExpectations(t)
}

func TestIncidentTimeline_PrioritizeCoordsCaseInsensitive(t *testing.T) {
	store := &contract.MockStore{}
	store.On("UnifiedIncidents", mock.Anything, contract.TimelineOptions{PrioritizeCoordinates: true}).
		Return([]schema.CanonicalIncident{}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/incidents/timeline?prioritize_coords=True", "")
	require.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestIncidentTimeline_InvalidSource(t *testing.T) {
	store := &contract.MockStore{}
	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/incidents/timeline?source=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid source table"}`, rec.Body.String())
	store.AssertNotCalled(t, "UnifiedIncidents", mock.Anything, mock.Anything)
}

func TestTopNeighborhoods_InvalidLimit(t *testing.T) {
	store := &contract.MockStore{}
	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/neighborhood/top?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid limit parameter. Must be positive integer."}`, rec.Body.String())
}

func TestTopNeighborhoods(t *testing.T) {
	category := "Graffiti"
	store := &contract.MockStore{}
	store.On("NeighborhoodRows", mock.Anything).Return([]schema.NeighborhoodRow{
		{SourceTable: schema.SourceServiceRequests, IncidentType: &category, Neighborhood: "SOMA"},
		{SourceTable: schema.SourcePoliceIncidents, IncidentType: &category, Neighborhood: "SOMA"},
	}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/neighborhood/top", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body schema.TopNeighborhoodsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "SOMA", body.Data[0].Neighborhood)
	assert.Equal(t, 2, body.Data[0].IncidentCount)
	assert.Equal(t, 2, body.Data[0].DataSources)
}

func TestDangerAnalysis_InvalidTimePeriod(t *testing.T) {
	store := &contract.MockStore{}
	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/neighborhoods/danger-analysis?time_period=Dawn", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid time_period")
}

func TestTopCrimeCategories_Empty(t *testing.T) {
	store := &contract.MockStore{}
	store.On("CrimeCategories", mock.Anything).Return([]string{}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/stats/top_crime_categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestTopCrimeCategories(t *testing.T) {
	store := &contract.MockStore{}
	store.On("CrimeCategories", mock.Anything).Return([]string{"Larceny", "Larceny", "Assault"}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/stats/top_crime_categories?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"top_crime_categories": {"Larceny": 2, "Assault": 1},
		"total_categories_returned": 2
	}`, rec.Body.String())
}

func TestResponseTimes_NoData(t *testing.T) {
	store := &contract.MockStore{}
	store.On("ResponseRecords", mock.Anything).Return([]schema.ResponseRecord{}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/sffd/response-times", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"data": [],
		"summary": {"message": "No call types found with at least 5 incidents"}
	}`, rec.Body.String())
}

func TestResponseTimes_InvalidSortBy(t *testing.T) {
	store := &contract.MockStore{}
	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/sffd/response-times?sort_by=median_response", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid 'sort_by' parameter")
}

func TestTopFireNeighborhoods_NoData(t *testing.T) {
	store := &contract.MockStore{}
	store.On("FireYearRows", mock.Anything).Return([]schema.YearRow{}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/fire/top-neighborhoods", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"data": [],
		"summary": {"message": "No fire incident data available"}
	}`, rec.Body.String())
}

func TestTopFireNeighborhoods_InvalidYears(t *testing.T) {
	store := &contract.MockStore{}
	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/fire/top-neighborhoods?years=9", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid 'year' parameter. Must be between 1 and 5."}`, rec.Body.String())
}

func TestTopFireNeighborhoods_YearsWidensWindow(t *testing.T) {
	store := &contract.MockStore{}
	store.On("FireYearRows", mock.Anything).Return([]schema.YearRow{
		{Neighborhood: "Mission", IncidentTime: "2024-02-01"},
		{Neighborhood: "Sunset", IncidentTime: "2020-03-01"},
	}, nil)

	// Default window of 3 keeps only the 2024 row.
	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/fire/top-neighborhoods", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data    []schema.YearNeighborhood `json:"data"`
		Summary schema.YearlySummary      `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, 2024, body.Data[0].Year)
	assert.Equal(t, 3, body.Summary.YearsRequested)

	// years=5 reaches back to the 2020 row.
	rec = doRequest(t, newTestRouter(store), http.MethodGet, "/api/fire/top-neighborhoods?years=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, 5, body.Summary.YearsRequested)
}

func TestIncompleteInspections_Empty(t *testing.T) {
	store := &contract.MockStore{}
	store.On("IncompleteInspections", mock.Anything, 10).Return([]schema.InspectionRecord{}, nil)

	rec := doRequest(t, newTestRouter(store), http.MethodGet, "/api/fire/incomplete_inspections", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestCreatePoliceIncident(t *testing.T) {
	store := &contract.MockStore{}
	store.On("IdentifierExists", mock.Anything, schema.SourcePoliceIncidents, mock.Anything).Return(false, nil)
	store.On("InsertPoliceIncident", mock.Anything, mock.Anything).Return(nil)

	body := `{"category": "Larceny", "descript": "Theft", "address": "789 Oak St"}`
	rec := doRequest(t, newTestRouter(store), http.MethodPost, "/api/sfpd_incidents", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Message string                   `json:"message"`
		Data    schema.PoliceIncidentRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "SFPD incident created successfully", resp.Message)
	assert.NotEmpty(t, resp.Data.UniqueKey)
	assert.NotEmpty(t, resp.Data.Timestamp)
	store.AssertExpectations(t)
}

func TestCreatePoliceIncident_MissingField(t *testing.T) {
	store := &contract.MockStore{}
	body := `{"category": "Larceny", "address": "789 Oak St"}`
	rec := doRequest(t, newTestRouter(store), http.MethodPost, "/api/sfpd_incidents", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required field 'descript'"}`, rec.Body.String())
	store.AssertNotCalled(t, "InsertPoliceIncident", mock.Anything, mock.Anything)
}

func TestCreateServiceRequest_BadJSON(t *testing.T) {
	store := &contract.MockStore{}
	rec := doRequest(t, newTestRouter(store), http.MethodPost, "/api/311-requests", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())
}

func TestCreateFireIncident(t *testing.T) {
	store := &contract.MockStore{}
	store.On("IdentifierExists", mock.Anything, schema.SourceFireIncidents, mock.Anything).Return(false, nil)
	store.On("InsertFireIncident", mock.Anything, mock.Anything).Return(nil)

	body := `{
		"Address": "1 Fire Rd",
		"Incident Date": "2024-01-03 08:00:00",
		"Primary Situation": "111 Building fire",
		"Analysis Neighborhood": "Sunset"
	}`
	rec := doRequest(t, newTestRouter(store), http.MethodPost, "/api/fire-incidents", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fire Incident created successfully")
	store.AssertExpectations(t)
}

func TestCORSHeaders(t *testing.T) {
	store := &contract.MockStore{}
	h := NewHandler(core.NewService(store, nil), zerolog.Nop())
	router := NewRouter(h, []string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/api/incidents/timeline", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/incidents/timeline", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
