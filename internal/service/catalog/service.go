package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/swapi-gateway/internal/config"
	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
	"github.com/phrazzld/swapi-gateway/internal/platform/swapi"
)

// NoDataMessage is the page message used when the upstream sent no body.
const NoDataMessage = "No data received"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Upstream is the subset of the upstream client the catalog depends on.
type Upstream interface {
	ListPage(ctx context.Context, kind domain.ResourceKind, page, limit int) (*swapi.PageEnvelope, error)
	Search(ctx context.Context, kind domain.ResourceKind, query string) (*swapi.SearchEnvelope, error)
	Get(ctx context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error)
}

// Query selects a page or a name search. A non-blank Name selects search
// mode, in which Page and Limit are ignored.
type Query struct {
	Page  int
	Limit int
	Name  string
}

// SearchTerm returns the trimmed name, empty in page mode.
func (q Query) SearchTerm() string {
	return strings.TrimSpace(q.Name)
}

// Service reads the upstream catalog on behalf of API handlers.
type Service struct {
	upstream    Upstream
	logger      *slog.Logger
	concurrency int
	maxLimit    int
}

// NewService creates a catalog service.
func NewService(upstream Upstream, cfg config.CatalogConfig, logger *slog.Logger) (*Service, error) {
	if upstream == nil {
		return nil, fmt.Errorf("upstream cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	maxLimit := cfg.MaxLimit
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &Service{
		upstream:    upstream,
		logger:      logger.With(slog.String("component", "catalog_service")),
		concurrency: concurrency,
		maxLimit:    maxLimit,
	}, nil
}

// normalize fills in page-mode defaults and validates ranges.
func (s *Service) normalize(q Query) (Query, error) {
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Page < 1 {
		return q, fmt.Errorf("%w: page must be at least 1", ErrInvalidQuery)
	}
	if q.Limit < 1 || q.Limit > s.maxLimit {
		return q, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidQuery, s.maxLimit)
	}
	return q, nil
}

// List returns one normalized page of references for kind.
//
// In search mode the page holds every match: TotalCount is the number of
// matches and TotalPages is 1. In page mode the upstream totals and links
// are passed through. A missing body yields an empty page, not an error.
func (s *Service) List(ctx context.Context, kind domain.ResourceKind, q Query) (domain.PagedResult[domain.ListItem], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if term := q.SearchTerm(); term != "" {
		log.DebugContext(ctx, "searching catalog", "resource", kind.String(), "search", term)

		env, err := s.upstream.Search(ctx, kind, term)
		if err != nil {
			return domain.PagedResult[domain.ListItem]{}, translate(err, kind, "")
		}
		if env == nil {
			return domain.EmptyPage[domain.ListItem](NoDataMessage), nil
		}
		return domain.PagedResult[domain.ListItem]{
			Message:    env.Message,
			Items:      env.Items,
			TotalCount: len(env.Items),
			TotalPages: 1,
		}, nil
	}

	q, err := s.normalize(q)
	if err != nil {
		return domain.PagedResult[domain.ListItem]{}, err
	}

	log.DebugContext(ctx, "listing catalog page",
		"resource", kind.String(), "page", q.Page, "limit", q.Limit)

	env, err := s.upstream.ListPage(ctx, kind, q.Page, q.Limit)
	if err != nil {
		return domain.PagedResult[domain.ListItem]{}, translate(err, kind, "")
	}
	if env == nil {
		return domain.EmptyPage[domain.ListItem](NoDataMessage), nil
	}
	return domain.PagedResult[domain.ListItem]{
		Message:    env.Message,
		Items:      env.Items,
		TotalCount: env.TotalRecords,
		TotalPages: env.TotalPages,
		Previous:   env.Previous,
		Next:       env.Next,
	}, nil
}
