package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/metrics"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
)

// Detail is a single record together with the upstream message.
type Detail[P any] struct {
	Message string
	Record  domain.Record[P]
}

// Find lists kind according to q and enriches every reference into a full record.
func Find[P any](ctx context.Context, s *Service, kind domain.ResourceKind, q Query) (domain.PagedResult[domain.Record[P]], error) {
	page, err := s.List(ctx, kind, q)
	if err != nil {
		return domain.PagedResult[domain.Record[P]]{}, err
	}

	records, err := enrich[P](ctx, s, kind, page.Items)
	if err != nil {
		return domain.PagedResult[domain.Record[P]]{}, err
	}

	return domain.PagedResult[domain.Record[P]]{
		Message:    page.Message,
		Items:      records,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Previous:   page.Previous,
		Next:       page.Next,
	}, nil
}

// Get fetches one record of kind by its upstream id.
func Get[P any](ctx context.Context, s *Service, kind domain.ResourceKind, id string) (*Detail[P], error) {
	return fetch[P](ctx, s, kind, id)
}

// enrich fetches the full record for each item concurrently, bounded by the
// service concurrency. Output order matches input order. The first failure
// cancels the remaining lookups and is returned.
func enrich[P any](ctx context.Context, s *Service, kind domain.ResourceKind, items []domain.ListItem) ([]domain.Record[P], error) {
	out := make([]domain.Record[P], len(items))
	if len(items) == 0 {
		return out, nil
	}
	metrics.EnrichmentItems.Observe(float64(len(items)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			detail, err := fetch[P](gctx, s, kind, item.ExternalID)
			if err != nil {
				return err
			}
			out[i] = detail.Record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "enrichment failed",
			"resource", kind.String(), "items", len(items), "error", err)
		return nil, err
	}
	return out, nil
}

func fetch[P any](ctx context.Context, s *Service, kind domain.ResourceKind, id string) (*Detail[P], error) {
	env, err := s.upstream.Get(ctx, kind, id)
	if err != nil {
		return nil, translate(err, kind, id)
	}
	if env == nil || env.Result == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNoData, kind.Label(), id)
	}

	var rec domain.Record[P]
	if err := json.Unmarshal(env.Result, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding %s %s: %w", ErrUpstreamInvalid, kind.Label(), id, err)
	}
	return &Detail[P]{Message: env.Message, Record: rec}, nil
}

// FindFilms lists films.
func (s *Service) FindFilms(ctx context.Context, q Query) (domain.PagedResult[domain.Film], error) {
	return Find[domain.FilmProperties](ctx, s, domain.KindFilm, q)
}

// FindFilmByID fetches one film.
func (s *Service) FindFilmByID(ctx context.Context, id string) (*Detail[domain.FilmProperties], error) {
	return Get[domain.FilmProperties](ctx, s, domain.KindFilm, id)
}

// FindPeople lists people.
func (s *Service) FindPeople(ctx context.Context, q Query) (domain.PagedResult[domain.Person], error) {
	return Find[domain.PersonProperties](ctx, s, domain.KindPerson, q)
}

// FindPersonByID fetches one person.
func (s *Service) FindPersonByID(ctx context.Context, id string) (*Detail[domain.PersonProperties], error) {
	return Get[domain.PersonProperties](ctx, s, domain.KindPerson, id)
}

// FindStarships lists starships.
func (s *Service) FindStarships(ctx context.Context, q Query) (domain.PagedResult[domain.Starship], error) {
	return Find[domain.StarshipProperties](ctx, s, domain.KindStarship, q)
}

// FindStarshipByID fetches one starship.
func (s *Service) FindStarshipByID(ctx context.Context, id string) (*Detail[domain.StarshipProperties], error) {
	return Get[domain.StarshipProperties](ctx, s, domain.KindStarship, id)
}

// FindVehicles lists vehicles.
func (s *Service) FindVehicles(ctx context.Context, q Query) (domain.PagedResult[domain.Vehicle], error) {
	return Find[domain.VehicleProperties](ctx, s, domain.KindVehicle, q)
}

// FindVehicleByID fetches one vehicle.
func (s *Service) FindVehicleByID(ctx context.Context, id string) (*Detail[domain.VehicleProperties], error) {
	return Get[domain.VehicleProperties](ctx, s, domain.KindVehicle, id)
}
