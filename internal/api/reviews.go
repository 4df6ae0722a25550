package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Paths of the review endpoints.
const (
	PathReviews      = "/filter_reviews"
	PathAddReview    = "/add_review"
	PathDeleteReview = "/delete_review/"
)

// Reviews lists stored reviews.
func (c *Client) Reviews(ctx context.Context, f ReviewFilter) ([]Review, error) {
	q := url.Values{}
	if f.MovieTitle != "" {
		q.Set("movie_title", f.MovieTitle)
	}
	if f.Sentiment != "" {
		q.Set("sentiment", f.Sentiment)
	}
	if f.DateOrder != "" {
		q.Set("date_order", f.DateOrder)
	}
	if f.MinWords > 0 {
		q.Set("min_wordcount", strconv.Itoa(f.MinWords))
	}
	var out []Review
	if err := c.getJSON(ctx, PathReviews, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddReview submits a review and returns the server's analysed copy.
func (c *Client) AddReview(ctx context.Context, title, text string) (*Review, error) {
	var raw struct {
		Review
		ack
	}
	err := c.send(ctx, http.MethodPost, PathAddReview, reviewRequest{MovieTitle: title, ReviewText: text}, &raw)
	if err != nil {
		return nil, err
	}
	if err := checkAck(raw.ack); err != nil {
		return nil, err
	}
	return &raw.Review, nil
}

// DeleteReview removes a review by id.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	var a ack
	if err := c.send(ctx, http.MethodDelete, PathDeleteReview+url.PathEscape(id), nil, &a); err != nil {
		return err
	}
	return checkAck(a)
}
