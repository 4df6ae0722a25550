package movies

import (
	"strings"

	"golang.org/x/text/cases"
)

// KnownGenres is the fixed vocabulary a free-text query is matched against.
var KnownGenres = []string{
	"action", "adventure", "animation", "comedy", "crime", "documentary",
	"drama", "family", "fantasy", "history", "horror", "music",
	"mystery", "romance", "science fiction", "sci-fi", "tv movie",
	"thriller", "war", "western",
}

var (
	folder     = cases.Fold()
	genreIndex = buildGenreIndex()
)

func buildGenreIndex() map[string]string {
	idx := make(map[string]string, len(KnownGenres))
	for _, g := range KnownGenres {
		idx[folder.String(g)] = g
	}
	return idx
}

// MatchGenre reports whether text equals one of KnownGenres ignoring case,
// and returns the canonical lower-case token.
func MatchGenre(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	g, ok := genreIndex[folder.String(text)]
	return g, ok
}
