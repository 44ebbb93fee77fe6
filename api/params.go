package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tcgcombos/combo-backend/errs"
)

// parseIDParam reads a numeric URL parameter. Missing or non-numeric values
// are a bad request.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

// parseQueryInt reads a positive integer query parameter, falling back to a
// default when absent or malformed.
func parseQueryInt(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
