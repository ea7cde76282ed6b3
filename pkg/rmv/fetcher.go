package rmv

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	resty "gopkg.in/resty.v1"
)

// Fetcher retrieves the raw body behind a URL. Transport failures must be
// reported as errors; the body is returned regardless of the status code.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type httpFetcher struct {
	client *resty.Client
}

func newHTTPFetcher(timeout time.Duration) *httpFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "curl/7.54.1")

	return &httpFetcher{client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("status", resp.StatusCode()).Msg("Response from RMV API")

	return resp.Body(), nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Error().Err(err).Msg("Can not load data from RMV API")

		return nil, fmt.Errorf("%w: %s", APIConnectionError, err)
	}

	return body, nil
}
