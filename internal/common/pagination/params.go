package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Offset int // Number of records to skip
	Limit  int // Maximum number of records to return
}

// ParseQueryParams parses offset/limit parameters from the request query
// string. Missing parameters fall back to the configured defaults.
//
// Query parameters:
//   - offset: number of records to skip (>= 0)
//   - limit: maximum records to return (1..config.MaxLimit)
//
// Returns an error if parameters are present but invalid.
func ParseQueryParams(r *http.Request, cfg Config) (Params, error) {
	params := Params{
		Offset: 0,
		Limit:  cfg.DefaultLimit,
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return params, fmt.Errorf("invalid query parameter: offset must be a non-negative integer")
		}
		params.Offset = offset
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > cfg.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", cfg.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}
