package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/service/catalog"
)

// parseQuery reads page, limit and name from the query string. Absent
// numbers stay zero so the catalog applies its defaults.
func parseQuery(r *http.Request) (catalog.Query, error) {
	values := r.URL.Query()

	page, err := intParam(values.Get("page"), "page")
	if err != nil {
		return catalog.Query{}, err
	}
	limit, err := intParam(values.Get("limit"), "limit")
	if err != nil {
		return catalog.Query{}, err
	}

	return catalog.Query{Page: page, Limit: limit, Name: values.Get("name")}, nil
}

func intParam(raw, name string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", catalog.ErrInvalidQuery, name)
	}
	return n, nil
}

// getPathID returns the {id} path parameter.
func getPathID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", fmt.Errorf("%w: id is required", domain.ErrInvalidID)
	}
	return id, nil
}
