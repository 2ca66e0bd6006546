package swapi

import (
	"encoding/json"

	"github.com/phrazzld/swapi-gateway/internal/domain"
)

// PageEnvelope is the upstream answer to a paginated list call.
type PageEnvelope struct {
	Message      string
	TotalRecords int
	TotalPages   int
	Previous     *string
	Next         *string
	Items        []domain.ListItem
}

// SearchEnvelope is the upstream answer to a search call.
type SearchEnvelope struct {
	Message string
	Items   []domain.ListItem
}

// DetailEnvelope is the upstream answer to a by-id call. Result is nil when
// the upstream sent no record.
type DetailEnvelope struct {
	Message string
	Result  json.RawMessage
}

type pageWire struct {
	Message      string     `json:"message"`
	TotalRecords int        `json:"total_records"`
	TotalPages   int        `json:"total_pages"`
	Previous     *string    `json:"previous"`
	Next         *string    `json:"next"`
	Results      []itemWire `json:"results"`
}

// searchWire accepts both "result" (what the upstream sends for searches)
// and "results".
type searchWire struct {
	Message string     `json:"message"`
	Result  []itemWire `json:"result"`
	Results []itemWire `json:"results"`
}

type detailWire struct {
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// itemWire covers both the flat list shape {uid,name,url} and the search
// shape {uid,properties:{name|title,url}}.
type itemWire struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Properties *struct {
		Name  string `json:"name"`
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"properties"`
}

func (w itemWire) toDomain() domain.ListItem {
	item := domain.ListItem{
		ExternalID:  w.UID,
		DisplayName: firstNonEmpty(w.Name, w.Title),
		SelfURL:     w.URL,
	}
	if w.Properties != nil {
		if item.DisplayName == "" {
			item.DisplayName = firstNonEmpty(w.Properties.Name, w.Properties.Title)
		}
		if item.SelfURL == "" {
			item.SelfURL = w.Properties.URL
		}
	}
	return item
}

func toItems(in []itemWire) []domain.ListItem {
	if in == nil {
		return nil
	}
	out := make([]domain.ListItem, len(in))
	for i, w := range in {
		out[i] = w.toDomain()
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
