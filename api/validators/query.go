package validators

import (
	"net/http"
	"strconv"
)

// PageParam parses the ?page query parameter, defaulting to 1.
func PageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
