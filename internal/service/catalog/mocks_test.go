package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/phrazzld/swapi-gateway/internal/domain"
	"github.com/phrazzld/swapi-gateway/internal/platform/swapi"
)

// mockUpstream implements Upstream with overridable functions and records calls.
type mockUpstream struct {
	ListPageFn func(ctx context.Context, kind domain.ResourceKind, page, limit int) (*swapi.PageEnvelope, error)
	SearchFn   func(ctx context.Context, kind domain.ResourceKind, query string) (*swapi.SearchEnvelope, error)
	GetFn      func(ctx context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error)

	mu          sync.Mutex
	listCalls   []listCall
	searchCalls []string
	getCalls    []string
}

type listCall struct {
	Page  int
	Limit int
}

func (m *mockUpstream) ListPage(ctx context.Context, kind domain.ResourceKind, page, limit int) (*swapi.PageEnvelope, error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, listCall{Page: page, Limit: limit})
	m.mu.Unlock()
	if m.ListPageFn == nil {
		return nil, fmt.Errorf("unexpected ListPage call")
	}
	return m.ListPageFn(ctx, kind, page, limit)
}

func (m *mockUpstream) Search(ctx context.Context, kind domain.ResourceKind, query string) (*swapi.SearchEnvelope, error) {
	m.mu.Lock()
	m.searchCalls = append(m.searchCalls, query)
	m.mu.Unlock()
	if m.SearchFn == nil {
		return nil, fmt.Errorf("unexpected Search call")
	}
	return m.SearchFn(ctx, kind, query)
}

func (m *mockUpstream) Get(ctx context.Context, kind domain.ResourceKind, id string) (*swapi.DetailEnvelope, error) {
	m.mu.Lock()
	m.getCalls = append(m.getCalls, id)
	m.mu.Unlock()
	if m.GetFn == nil {
		return detailFor(kind, id), nil
	}
	return m.GetFn(ctx, kind, id)
}

func (m *mockUpstream) getCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.getCalls)
}

// detailFor builds a detail envelope whose record name is "<kind>-<id>".
func detailFor(kind domain.ResourceKind, id string) *swapi.DetailEnvelope {
	nameKey := "name"
	if kind == domain.KindFilm {
		nameKey = "title"
	}
	raw, _ := json.Marshal(map[string]any{
		"uid":         id,
		"description": "A " + kind.Label(),
		"properties":  map[string]any{nameKey: kind.String() + "-" + id},
	})
	return &swapi.DetailEnvelope{Message: "ok", Result: raw}
}

func items(ids ...string) []domain.ListItem {
	out := make([]domain.ListItem, len(ids))
	for i, id := range ids {
		out[i] = domain.ListItem{ExternalID: id, DisplayName: "item " + id}
	}
	return out
}

func strPtr(s string) *string { return &s }
