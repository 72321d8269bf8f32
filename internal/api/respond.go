package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/bayviewlabs/safetylens/internal/contract"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps service errors onto HTTP statuses: caller mistakes are
// 400, everything else is 500. The message text is part of the contract.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if contract.IsInvalidParameter(err) || contract.IsMissingField(err) {
		status = http.StatusBadRequest
	} else {
		h.log.Error().Err(err).Msg("request failed")
	}
	h.writeJSON(w, status, errorBody{Error: err.Error()})
}
