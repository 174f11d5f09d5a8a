package catalog

import (
	"fmt"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// Title is the subset of a movie or show record the CLI displays.
type Title struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	MediaType    string  `json:"media_type,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average,omitempty"`
	Seasons      []struct {
		SeasonNumber int    `json:"season_number"`
		EpisodeCount int    `json:"episode_count"`
		Name         string `json:"name"`
	} `json:"seasons,omitempty"`
}

// DisplayName is the movie title or the show name.
func (t *Title) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// IsMovie guesses from media_type, falling back to which name field is set.
func (t *Title) IsMovie() bool {
	switch t.MediaType {
	case "movie":
		return true
	case "tv":
		return false
	default:
		return t.Title != ""
	}
}

// IsPerson reports whether a multi-search hit is a person rather than a title.
func (t *Title) IsPerson() bool {
	return t.MediaType == "person"
}

// Year is the first four characters of the release or first-air date.
func (t *Title) Year() string {
	date := t.ReleaseDate
	if date == "" {
		date = t.FirstAirDate
	}
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// ContentID is the identifier in string form, as playback expects it.
func (t *Title) ContentID() string {
	return strconv.Itoa(t.ID)
}

// String is "Name (Year)" or just the name when the year is unknown.
func (t *Title) String() string {
	if year := t.Year(); year != "" {
		return fmt.Sprintf("%s (%s)", t.DisplayName(), year)
	}
	return t.DisplayName()
}

// Episode is one entry of a season listing.
type Episode struct {
	EpisodeNumber int     `json:"episode_number"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date"`
	VoteAverage   float64 `json:"vote_average"`
}

// Season is the episode listing for one season of a show.
type Season struct {
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name"`
	Episodes     []Episode `json:"episodes"`
}

// CastMember is one credited performer.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

// Credits is the cast list of a movie.
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// Decode maps a decoded payload (or any part of it) onto out, a pointer to
// one of the view models. Unknown fields are ignored.
func Decode(input any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

// Titles decodes the "results" list of a paged response. A response without
// results yields an empty slice.
func Titles(resp Response) ([]*Title, error) {
	raw, ok := resp["results"]
	if !ok || raw == nil {
		return []*Title{}, nil
	}

	var titles []*Title
	if err := Decode(raw, &titles); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}

	return titles, nil
}

// DecodeTitle decodes a details payload.
func DecodeTitle(resp Response) (*Title, error) {
	var title Title
	if err := Decode(map[string]any(resp), &title); err != nil {
		return nil, fmt.Errorf("decode title: %w", err)
	}
	return &title, nil
}
