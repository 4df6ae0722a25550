// Package movies holds the movie result shape returned by the review server
// and the helpers the card renderer derives from it.
package movies

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const (
	// PosterBaseURL prefixes a movie's poster_path.
	PosterBaseURL = "https://image.tmdb.org/t/p/w200"
	// TrailerBaseURL prefixes a movie's youtube_id.
	TrailerBaseURL = "https://www.youtube.com/watch?v="
)

// ID is a movie identifier. The server emits numeric ids for TMDb movies and
// string ids for anything else; both decode into the same value.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Movie is one item of a movie listing. Every field except ID is optional.
type Movie struct {
	ID           ID       `json:"id"`
	Title        string   `json:"title,omitempty"`
	Name         string   `json:"name,omitempty"`
	PosterPath   string   `json:"poster_path,omitempty"`
	VoteAverage  *float64 `json:"vote_average,omitempty"`
	ReleaseDate  string   `json:"release_date,omitempty"`
	FirstAirDate string   `json:"first_air_date,omitempty"`
	Overview     string   `json:"overview,omitempty"`
	YouTubeID    string   `json:"youtube_id,omitempty"`
	GenreIDs     []int    `json:"genre_ids,omitempty"`
}

// DisplayTitle falls back from title to name to "Untitled".
func (m Movie) DisplayTitle() string {
	if t := strings.TrimSpace(m.Title); t != "" {
		return t
	}
	if n := strings.TrimSpace(m.Name); n != "" {
		return n
	}
	return "Untitled"
}

// Year is the first four characters of the release (or first air) date, or
// an em dash when neither is present.
func (m Movie) Year() string {
	date := m.ReleaseDate
	if date == "" {
		date = m.FirstAirDate
	}
	if len(date) >= 4 {
		return date[:4]
	}
	if date != "" {
		return date
	}
	return "—"
}

// Rating formats vote_average, or "N/A" when it is missing or zero.
func (m Movie) Rating() string {
	if m.VoteAverage == nil || *m.VoteAverage == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(*m.VoteAverage, 'f', -1, 64)
}

// PosterURL is the absolute poster location, or empty when there is none.
func (m Movie) PosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return PosterBaseURL + m.PosterPath
}

// TrailerURL is the trailer location, or empty when the server found none.
func (m Movie) TrailerURL() string {
	if m.YouTubeID == "" {
		return ""
	}
	return TrailerBaseURL + m.YouTubeID
}

// DetailsPath is the server's movie detail page.
func (m Movie) DetailsPath() string {
	return "/movie/" + string(m.ID)
}
