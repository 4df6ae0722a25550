package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/ziadkadry99/moviemood/internal/page"
)

// pageInfoResponse tells the front end which regions to lay out.
type pageInfoResponse struct {
	Detail     bool          `json:"detail"`
	MovieID    string        `json:"movie_id,omitempty"`
	MovieTitle string        `json:"movie_title,omitempty"`
	LoggedIn   bool          `json:"logged_in"`
	Features   page.Features `json:"features"`
}

func (d *Dashboard) handlePageInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pageInfoResponse{
		Detail:     d.base.IsDetail(),
		MovieID:    string(d.base.MovieID),
		MovieTitle: d.base.MovieTitle,
		LoggedIn:   d.base.LoggedIn,
		Features:   page.FeaturesFor(d.base),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
