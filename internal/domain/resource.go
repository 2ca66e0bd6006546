package domain

import (
	"fmt"
	"strings"
)

// ResourceKind identifies one of the upstream collections proxied by the gateway.
type ResourceKind int

const (
	KindFilm ResourceKind = iota + 1
	KindPerson
	KindStarship
	KindVehicle
)

// AllResourceKinds lists every supported kind in route order.
var AllResourceKinds = []ResourceKind{KindFilm, KindPerson, KindStarship, KindVehicle}

// String returns the plural collection name, e.g. "films".
func (k ResourceKind) String() string {
	switch k {
	case KindFilm:
		return "films"
	case KindPerson:
		return "people"
	case KindStarship:
		return "starships"
	case KindVehicle:
		return "vehicles"
	default:
		return fmt.Sprintf("ResourceKind(%d)", int(k))
	}
}

// Path returns the collection path segment with a leading slash, e.g. "/films".
func (k ResourceKind) Path() string {
	return "/" + k.String()
}

// Label returns the singular, human-readable name used in error messages.
func (k ResourceKind) Label() string {
	switch k {
	case KindFilm:
		return "Film"
	case KindPerson:
		return "Person"
	case KindStarship:
		return "Starship"
	case KindVehicle:
		return "Vehicle"
	default:
		return "Resource"
	}
}

// Valid reports whether k is one of the supported kinds.
func (k ResourceKind) Valid() bool {
	return k >= KindFilm && k <= KindVehicle
}

// ParseResourceKind maps a plural collection name to its ResourceKind.
func ParseResourceKind(name string) (ResourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "films":
		return KindFilm, nil
	case "people":
		return KindPerson, nil
	case "starships":
		return KindStarship, nil
	case "vehicles":
		return KindVehicle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownResourceKind, name)
	}
}
