package rmv

import (
	"context"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/rmvtransport/pkg/util"
	"golang.org/x/exp/slices"
)

// Client queries the RMV departure board and stop search. It holds no state
// between calls and is safe for concurrent use.
type Client struct {
	timeout time.Duration
	baseURL string
	fetcher Fetcher
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithFetcher replaces the HTTP transport.
func WithFetcher(fetcher Fetcher) Option {
	return func(c *Client) {
		c.fetcher = fetcher
	}
}

func NewClient(options ...Option) *Client {
	c := &Client{
		timeout: DefaultTimeout,
		baseURL: DefaultBaseURL,
	}

	for _, option := range options {
		option(c)
	}

	if c.fetcher == nil {
		c.fetcher = newHTTPFetcher(c.timeout)
	}

	return c
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// GetDepartures fetches the departure board for q.StationID.
func (c *Client) GetDepartures(ctx context.Context, q DepartureQuery) (*DepartureBoard, error) {
	url, filter, err := BuildDepartureURL(c.baseURL, q)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("url", url).Msg("Querying RMV departure board")

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	document, err := parseXML(body)
	if err != nil {
		return nil, err
	}

	now, err := referenceTime(document)
	if err != nil {
		log.Debug().Msgf("XML contains unexpected data %s", util.TrimString(pretty.Sprint(document), 100))
		return nil, err
	}

	station, err := stationName(document)
	if err != nil {
		log.Debug().Msgf("XML contains unexpected data %s", util.TrimString(pretty.Sprint(document.SBRes), 100))
		return nil, err
	}

	journeyNodes, err := journeyList(document)
	if err != nil {
		log.Debug().Msgf("Extract journeys: %s", util.TrimString(pretty.Sprint(document.SBRes), 100))
		return nil, err
	}

	journeys := make([]Journey, 0, len(journeyNodes))
	for _, node := range journeyNodes {
		journey, err := newJourney(node, now)
		if err != nil {
			return nil, err
		}

		journeys = append(journeys, journey)
	}

	return NewDepartureBoard(station, q.StationID, filter, now, journeys, q.maxJourneys()), nil
}

// SearchStation looks up stations by name, keyed by their external id.
func (c *Client) SearchStation(ctx context.Context, name string, maxResults int) (map[string]StationSuggestion, error) {
	suggestions, err := c.SearchStationOrdered(ctx, name, maxResults)
	if err != nil {
		return nil, err
	}

	stations := map[string]StationSuggestion{}
	for _, suggestion := range suggestions {
		stations[suggestion.ID] = suggestion
	}

	return stations, nil
}

// SearchStationOrdered is SearchStation keeping the upstream ranking.
func (c *Client) SearchStationOrdered(ctx context.Context, name string, maxResults int) ([]StationSuggestion, error) {
	url, err := BuildSearchURL(c.baseURL, name, maxResults)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("url", url).Msg("Querying RMV stop search")

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	suggestions, err := ParseStationSuggestions(body, maxResults)
	if err != nil {
		log.Debug().Msgf("Error in JSON: %s...", util.TrimString(string(body), 100))
		return nil, err
	}

	return suggestions, nil
}

// SortedStationIDs returns the keys of a SearchStation result in ascending order.
func SortedStationIDs(stations map[string]StationSuggestion) []string {
	ids := make([]string, 0, len(stations))
	for id := range stations {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
