package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Paths of the analytics endpoints.
const (
	PathStats     = "/api/stats"
	PathWordCloud = "/api/wordcloud"
)

// Stats fetches sentiment counts, globally or for one movie title.
func (c *Client) Stats(ctx context.Context, movieTitle string) (Counts, error) {
	q := url.Values{}
	if movieTitle != "" {
		q.Set("movie_title", movieTitle)
	}
	var out Counts
	if err := c.getJSON(ctx, PathStats, q, &out); err != nil {
		return Counts{}, err
	}
	return out, nil
}

// WordCloudURL is the word cloud image location with a cache-busting
// timestamp and an optional movie title.
func (c *Client) WordCloudURL(movieTitle string, at time.Time) string {
	u := c.baseURL + PathWordCloud + "?t=" + strconv.FormatInt(at.UnixMilli(), 10)
	if movieTitle != "" {
		u += "&movie_title=" + url.QueryEscape(movieTitle)
	}
	return u
}

// OpenWordCloud starts downloading the word cloud image. The caller closes
// the body. Size is -1 when the server does not announce it.
func (c *Client) OpenWordCloud(ctx context.Context, movieTitle string) (io.ReadCloser, int64, error) {
	target := c.WordCloudURL(movieTitle, time.Now())
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, &TransportError{Method: http.MethodGet, URL: target, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set(RequestIDHeader, uuid.New().String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Method: http.MethodGet, URL: target, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, 0, &ServerError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	return resp.Body, resp.ContentLength, nil
}
