package catalog

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phrazzld/swapi-gateway/internal/config"
	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/platform/swapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichPreservesOrder(t *testing.T) {
	// Responses complete in the order 3, 1, 2.
	delays := map[string]time.Duration{
		"3": 0,
		"1": 40 * time.Millisecond,
		"2": 80 * time.Millisecond,
	}
	var completed []string
	done := make(chan string, 3)

	up := &mockUpstream{
		GetFn: func(_ context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error) {
			time.Sleep(delays[id])
			done <- id
			return detailFor(kind, id), nil
		},
	}
	s := newTestService(t, up)

	records, err := enrich[domain.PersonProperties](context.Background(), s, domain.KindPerson, items("2", "1", "3"))
	require.NoError(t, err)
	close(done)
	for id := range done {
		completed = append(completed, id)
	}

	assert.Equal(t, []string{"3", "1", "2"}, completed)
	require.Len(t, records, 3)
	assert.Equal(t, "2", records[0].ExternalID)
	assert.Equal(t, "people-2", records[0].Properties.Name)
	assert.Equal(t, "1", records[1].ExternalID)
	assert.Equal(t, "3", records[2].ExternalID)
	assert.Equal(t, "A Person", records[2].Description)
}

func TestEnrichEmptyInput(t *testing.T) {
	up := &mockUpstream{}
	s := newTestService(t, up)

	for _, in := range [][]domain.ListItem{nil, {}} {
		records, err := enrich[domain.FilmProperties](context.Background(), s, domain.KindFilm, in)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	}
	assert.Zero(t, up.getCallCount())
}

func TestEnrichRespectsConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	up := &mockUpstream{
		GetFn: func(_ context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return detailFor(kind, id), nil
		},
	}
	s, err := NewService(up, config.CatalogConfig{Concurrency: 2, MaxLimit: 100}, nil)
	require.NoError(t, err)

	records, err := enrich[domain.VehicleProperties](context.Background(), s, domain.KindVehicle,
		items("1", "2", "3", "4", "5", "6", "7", "8"))
	require.NoError(t, err)
	assert.Len(t, records, 8)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Equal(t, 8, up.getCallCount())
}

func TestEnrichFailsWholeRequestOnItemFailure(t *testing.T) {
	var cancelled atomic.Int32
	up := &mockUpstream{
		GetFn: func(ctx context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error) {
			if id == "2" {
				return nil, &swapi.StatusError{StatusCode: http.StatusNotFound, Kind: kind, ID: id}
			}
			select {
			case <-ctx.Done():
				cancelled.Add(1)
				return nil, errors.Join(swapi.ErrUnavailable, ctx.Err())
			case <-time.After(2 * time.Second):
				return detailFor(kind, id), nil
			}
		},
	}
	s := newTestService(t, up)

	start := time.Now()
	records, err := enrich[domain.StarshipProperties](context.Background(), s, domain.KindStarship, items("1", "2", "3"))
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Less(t, time.Since(start), time.Second)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, domain.KindStarship, nf.Kind)
	assert.Equal(t, "2", nf.ID)
	assert.Equal(t, int32(2), cancelled.Load())
}

func TestGetNotFoundIsKindSpecific(t *testing.T) {
	tests := []struct {
		kind    domain.ResourceKind
		want    error
		message string
	}{
		{domain.KindFilm, ErrFilmNotFound, "Film with ID 99 not found."},
		{domain.KindPerson, ErrPersonNotFound, "Person with ID 99 not found."},
		{domain.KindStarship, ErrStarshipNotFound, "Starship with ID 99 not found."},
		{domain.KindVehicle, ErrVehicleNotFound, "Vehicle with ID 99 not found."},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			up := &mockUpstream{
				GetFn: func(_ context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error) {
					return nil, &swapi.StatusError{StatusCode: http.StatusNotFound, Kind: kind, ID: id}
				},
			}
			_, err := Get[map[string]any](context.Background(), newTestService(t, up), tt.kind, "99")
			require.Error(t, err)

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, tt.message, err.Error())
			for _, other := range []error{ErrFilmNotFound, ErrPersonNotFound, ErrStarshipNotFound, ErrVehicleNotFound} {
				if other != tt.want {
					assert.False(t, errors.Is(err, other))
				}
			}
		})
	}
}

func TestGetRateLimitedCarriesKindAndID(t *testing.T) {
	up := &mockUpstream{
		GetFn: func(_ context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error) {
			return nil, &swapi.StatusError{StatusCode: http.StatusTooManyRequests, Kind: kind, ID: id}
		},
	}
	_, err := newTestService(t, up).FindVehicleByID(context.Background(), "14")
	require.Error(t, err)

	var rl *RateLimitedError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, domain.KindVehicle, rl.Kind)
	assert.Equal(t, "14", rl.ID)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, "Too Many Requests to SWAPI for vehicles ID 14. Please try again later.", err.Error())
}

func TestGetNoData(t *testing.T) {
	for name, env := range map[string]*swapi.DetailEnvelope{
		"nil envelope": nil,
		"null result":  {Message: "ok"},
	} {
		t.Run(name, func(t *testing.T) {
			up := &mockUpstream{
				GetFn: func(context.Context, domain.ResourceKind, string) (*swapi.DetailEnvelope, error) {
					return env, nil
				},
			}
			_, err := newTestService(t, up).FindFilmByID(context.Background(), "1")
			assert.ErrorIs(t, err, ErrNoData)
		})
	}
}

func TestGetUndecodableResult(t *testing.T) {
	up := &mockUpstream{
		GetFn: func(context.Context, domain.ResourceKind, string) (*swapi.DetailEnvelope, error) {
			return &swapi.DetailEnvelope{Message: "ok", Result: []byte(`"not an object"`)}, nil
		},
	}
	_, err := newTestService(t, up).FindPersonByID(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUpstreamInvalid)
}

func TestFindByID(t *testing.T) {
	up := &mockUpstream{}
	s := newTestService(t, up)

	film, err := s.FindFilmByID(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "ok", film.Message)
	assert.Equal(t, "films-4", film.Record.Properties.Title)
	assert.Equal(t, "4", film.Record.ExternalID)

	ship, err := s.FindStarshipByID(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, "starships-9", ship.Record.Properties.Name)
}

func TestFindEnrichesPage(t *testing.T) {
	up := &mockUpstream{
		ListPageFn: func(context.Context, domain.ResourceKind, int, int) (*swapi.PageEnvelope, error) {
			return &swapi.PageEnvelope{
				Message:      "ok",
				TotalRecords: 82,
				TotalPages:   9,
				Next:         strPtr("next"),
				Items:        items("1", "4", "10"),
			}, nil
		},
	}
	s := newTestService(t, up)

	page, err := s.FindPeople(context.Background(), Query{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 82, page.TotalCount)
	assert.Equal(t, 9, page.TotalPages)
	assert.Equal(t, "next", *page.Next)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "people-1", page.Items[0].Properties.Name)
	assert.Equal(t, "people-4", page.Items[1].Properties.Name)
	assert.Equal(t, "people-10", page.Items[2].Properties.Name)
}

func TestFindSearchEnriches(t *testing.T) {
	up := &mockUpstream{
		SearchFn: func(context.Context, domain.ResourceKind, string) (*swapi.SearchEnvelope, error) {
			return &swapi.SearchEnvelope{Message: "ok", Items: items("12", "2")}, nil
		},
	}
	page, err := newTestService(t, up).FindStarships(context.Background(), Query{Name: "star", Limit: 500})
	require.NoError(t, err)

	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "12", page.Items[0].ExternalID)
	assert.Equal(t, "2", page.Items[1].ExternalID)
}

func TestFindEmptyPageMakesNoDetailCalls(t *testing.T) {
	up := &mockUpstream{
		ListPageFn: func(context.Context, domain.ResourceKind, int, int) (*swapi.PageEnvelope, error) {
			return nil, nil
		},
	}
	page, err := newTestService(t, up).FindVehicles(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, NoDataMessage, page.Message)
	assert.Empty(t, page.Items)
	assert.Zero(t, up.getCallCount())
}

func TestFindFilmsPropagatesRateLimit(t *testing.T) {
	up := &mockUpstream{
		ListPageFn: func(context.Context, domain.ResourceKind, int, int) (*swapi.PageEnvelope, error) {
			return &swapi.PageEnvelope{Message: "ok", Items: items("1")}, nil
		},
		GetFn: func(_ context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error) {
			return nil, &swapi.StatusError{StatusCode: http.StatusTooManyRequests, Kind: kind, ID: id}
		},
	}
	_, err := newTestService(t, up).FindFilms(context.Background(), Query{})

	var rl *RateLimitedError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, domain.KindFilm, rl.Kind)
	assert.Equal(t, "1", rl.ID)
}
