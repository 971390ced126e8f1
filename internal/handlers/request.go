package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/example/video-platform/internal/platform/api"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// decodeJSON reads up to maxRequestBodyBytes from r.Body and decodes JSON
// into dst. On failure it writes a 400 response and returns false.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, dst *T) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(dst); err != nil {
		api.BadRequest(w, "Invalid JSON body.")
		return false
	}
	return true
}

// pageParams reads page and limit from the query string, falling back to
// the defaults (page 1, limit 10) on absent or unusable values.
func pageParams(r *http.Request) (page, limit int) {
	page, limit = 1, 10
	if v := strings.TrimSpace(r.URL.Query().Get("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			limit = n
		}
	}
	return page, limit
}

// checkUUID validates the identifier shape of ids arriving on the wire.
func checkUUID(id string) error {
	_, err := uuid.Parse(id)
	return err
}
