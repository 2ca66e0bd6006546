package domain

// ListItem is a lightweight reference returned by list and search calls.
// It carries only enough to fetch the full record.
type ListItem struct {
	ExternalID  string
	DisplayName string
	SelfURL     string
}

// Record is a full upstream record of one kind.
type Record[P any] struct {
	Properties  P      `json:"properties"`
	Description string `json:"description"`
	ExternalID  string `json:"uid"`
}

// FilmProperties holds the attributes of a film.
type FilmProperties struct {
	Title        string   `json:"title"`
	EpisodeID    int      `json:"episode_id"`
	OpeningCrawl string   `json:"opening_crawl"`
	Director     string   `json:"director"`
	Producer     string   `json:"producer"`
	ReleaseDate  string   `json:"release_date"`
	Characters   []string `json:"characters"`
	Planets      []string `json:"planets"`
	Starships    []string `json:"starships"`
	Vehicles     []string `json:"vehicles"`
	Species      []string `json:"species"`
	Created      string   `json:"created"`
	Edited       string   `json:"edited"`
	URL          string   `json:"url"`
}

// PersonProperties holds the attributes of a person.
type PersonProperties struct {
	Name      string `json:"name"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	HairColor string `json:"hair_color"`
	SkinColor string `json:"skin_color"`
	EyeColor  string `json:"eye_color"`
	BirthYear string `json:"birth_year"`
	Gender    string `json:"gender"`
	Homeworld string `json:"homeworld"`
	Created   string `json:"created"`
	Edited    string `json:"edited"`
	URL       string `json:"url"`
}

// StarshipProperties holds the attributes of a starship.
type StarshipProperties struct {
	Name                 string   `json:"name"`
	Model                string   `json:"model"`
	StarshipClass        string   `json:"starship_class"`
	Manufacturer         string   `json:"manufacturer"`
	CostInCredits        string   `json:"cost_in_credits"`
	Length               string   `json:"length"`
	Crew                 string   `json:"crew"`
	Passengers           string   `json:"passengers"`
	MaxAtmospheringSpeed string   `json:"max_atmosphering_speed"`
	HyperdriveRating     string   `json:"hyperdrive_rating"`
	MGLT                 string   `json:"MGLT"`
	CargoCapacity        string   `json:"cargo_capacity"`
	Consumables          string   `json:"consumables"`
	Pilots               []string `json:"pilots"`
	Films                []string `json:"films"`
	Created              string   `json:"created"`
	Edited               string   `json:"edited"`
	URL                  string   `json:"url"`
}

// VehicleProperties holds the attributes of a vehicle.
type VehicleProperties struct {
	Name                 string   `json:"name"`
	Model                string   `json:"model"`
	VehicleClass         string   `json:"vehicle_class"`
	Manufacturer         string   `json:"manufacturer"`
	CostInCredits        string   `json:"cost_in_credits"`
	Length               string   `json:"length"`
	Crew                 string   `json:"crew"`
	Passengers           string   `json:"passengers"`
	MaxAtmospheringSpeed string   `json:"max_atmosphering_speed"`
	CargoCapacity        string   `json:"cargo_capacity"`
	Consumables          string   `json:"consumables"`
	Pilots               []string `json:"pilots"`
	Films                []string `json:"films"`
	Created              string   `json:"created"`
	Edited               string   `json:"edited"`
	URL                  string   `json:"url"`
}

type (
	Film     = Record[FilmProperties]
	Person   = Record[PersonProperties]
	Starship = Record[StarshipProperties]
	Vehicle  = Record[VehicleProperties]
)

// PagedResult is the normalized page returned for every list and search request.
//
// In page mode TotalCount, TotalPages, Previous and Next come from the upstream
// unchanged. In search mode TotalCount equals len(Items) and TotalPages is 1.
type PagedResult[T any] struct {
	Message    string
	Items      []T
	TotalCount int
	TotalPages int
	Previous   *string
	Next       *string
}

// EmptyPage returns the page used when the upstream sent no usable body.
func EmptyPage[T any](message string) PagedResult[T] {
	return PagedResult[T]{Message: message, Items: []T{}}
}
