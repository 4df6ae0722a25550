package query

import (
	"context"

	"github.com/ziadkadry99/moviemood/internal/movies"
	"github.com/ziadkadry99/moviemood/internal/render"
)

// ShowSimilar switches to recommendation mode for id. Pagination is hidden
// and the last search or filter is kept for the next paginated query.
func (o *Orchestrator) ShowSimilar(ctx context.Context, id movies.ID) (State, render.Results) {
	return o.Run(ctx, KindRecommendation, Params{MovieID: id}, 1)
}
