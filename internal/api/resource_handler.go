package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/swapi-gateway/internal/api/shared"
	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/service/catalog"
)

// ResourceHandler serves the list and by-id endpoints of every resource kind.
type ResourceHandler struct {
	catalog *catalog.Service
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(catalogService *catalog.Service) *ResourceHandler {
	return &ResourceHandler{catalog: catalogService}
}

// Routes mounts GET / and GET /{id} for every resource kind under its path.
func (h *ResourceHandler) Routes(r chi.Router) {
	r.Get(domain.KindFilm.Path(), listHandler(h.catalog.FindFilms))
	r.Get(domain.KindFilm.Path()+"/{id}", detailHandler(h.catalog.FindFilmByID))

	r.Get(domain.KindPerson.Path(), listHandler(h.catalog.FindPeople))
	r.Get(domain.KindPerson.Path()+"/{id}", detailHandler(h.catalog.FindPersonByID))

	r.Get(domain.KindStarship.Path(), listHandler(h.catalog.FindStarships))
	r.Get(domain.KindStarship.Path()+"/{id}", detailHandler(h.catalog.FindStarshipByID))

	r.Get(domain.KindVehicle.Path(), listHandler(h.catalog.FindVehicles))
	r.Get(domain.KindVehicle.Path()+"/{id}", detailHandler(h.catalog.FindVehicleByID))
}

func listHandler[T any](find func(context.Context, catalog.Query) (domain.PagedResult[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		page, err := find(r.Context(), q)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(page))
	}
}

func detailHandler[P any](find func(context.Context, string) (*catalog.Detail[P], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := getPathID(r)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		detail, err := find(r.Context(), id)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		shared.RespondWithJSON(w, r, http.StatusOK, DetailResponse[domain.Record[P]]{
			Message: detail.Message,
			Result:  detail.Record,
		})
	}
}
