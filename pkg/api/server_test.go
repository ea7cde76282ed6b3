package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/rmvtransport/pkg/dataaggregator"
	rmvsource "github.com/travigo/rmvtransport/pkg/dataaggregator/source/rmv"
	"github.com/travigo/rmvtransport/pkg/rmv"
)

type routeFetcher struct {
	departures string
	stations   string
	err        error
}

func (f routeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	name := f.departures
	if strings.Contains(url, rmv.GetStopPath) {
		name = f.stations
	}

	return os.ReadFile(filepath.Join("..", "rmv", "testdata", name))
}

func setupAggregator(t *testing.T, fetcher rmv.Fetcher) {
	t.Helper()

	previous := dataaggregator.GlobalAggregator
	t.Cleanup(func() {
		dataaggregator.GlobalAggregator = previous
	})

	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}
	dataaggregator.GlobalAggregator.RegisterSource(rmvsource.Source{
		Client: rmv.NewClient(rmv.WithFetcher(fetcher)),
	})
}

func request(t *testing.T, target string) (int, map[string]any, []any) {
	t.Helper()

	resp, err := NewApp().Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if strings.HasPrefix(string(body), "[") {
		var list []any
		require.NoError(t, json.Unmarshal(body, &list))
		return resp.StatusCode, nil, list
	}

	var object map[string]any
	require.NoError(t, json.Unmarshal(body, &object))
	return resp.StatusCode, object, nil
}

func TestVersion(t *testing.T) {
	status, body, _ := request(t, "/core/version")

	assert.Equal(t, 200, status)
	assert.Equal(t, "v0.1", body["version"])
}

func TestStationDepartures(t *testing.T) {
	setupAggregator(t, routeFetcher{departures: "request.xml", stations: "stops.response"})

	status, body, _ := request(t, "/core/stations/3006904/departures?count=2&products=Bus,S")
	require.Equal(t, 200, status)

	assert.Equal(t, "Wiesbaden Dernsches Gelände", body["station"])
	assert.Equal(t, "0001001", body["filter"])

	journeys := body["journeys"].([]any)
	require.Len(t, journeys, 2)

	first := journeys[0].(map[string]any)
	assert.Equal(t, "16", first["number"])
	assert.Equal(t, float64(2), first["minutes"])
	assert.NotContains(t, first, "stops")
}

func TestStationDeparturesDetailed(t *testing.T) {
	setupAggregator(t, routeFetcher{departures: "request.xml", stations: "stops.response"})

	status, body, _ := request(t, "/core/stations/3006904/departures?detailed=true")
	require.Equal(t, 200, status)

	journeys := body["journeys"].([]any)
	require.Len(t, journeys, 5)

	second := journeys[1].(map[string]any)
	assert.Equal(t, "S", second["product"])
	assert.Len(t, second["stops"], 2)
	assert.Equal(t, "Bauarbeiten: \"Kochbrunnen\" ohne Halt", second["info"])
}

func TestStationDeparturesErrors(t *testing.T) {
	tests := []struct {
		name     string
		fetcher  routeFetcher
		target   string
		expected int
	}{
		{
			name:     "invalid count",
			fetcher:  routeFetcher{departures: "request.xml"},
			target:   "/core/stations/3006904/departures?count=many",
			expected: 400,
		},
		{
			name:     "unknown product",
			fetcher:  routeFetcher{departures: "request.xml"},
			target:   "/core/stations/3006904/departures?products=Zeppelin",
			expected: 400,
		},
		{
			name:     "upstream unreachable",
			fetcher:  routeFetcher{err: errors.New("connection refused")},
			target:   "/core/stations/3006904/departures",
			expected: 504,
		},
		{
			name:     "broken document",
			fetcher:  routeFetcher{departures: "unknown_issue.xml"},
			target:   "/core/stations/3006904/departures",
			expected: 502,
		},
		{
			name:     "no journeys",
			fetcher:  routeFetcher{departures: "request_no_journeys.xml"},
			target:   "/core/stations/3006904/departures",
			expected: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupAggregator(t, tt.fetcher)

			status, body, _ := request(t, tt.target)

			assert.Equal(t, tt.expected, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSearchStations(t *testing.T) {
	setupAggregator(t, routeFetcher{stations: "stops.response"})

	status, _, stations := request(t, "/core/stations?name=Frankfurt&count=2")
	require.Equal(t, 200, status)

	require.Len(t, stations, 2)
	first := stations[0].(map[string]any)
	assert.Equal(t, "003000010", first["id"])
	assert.Equal(t, "Frankfurt (Main) Hauptbahnhof", first["name"])
	assert.InDelta(t, 50.106808, first["lat"], 0.000001)
}

func TestSearchStationsMissingName(t *testing.T) {
	setupAggregator(t, routeFetcher{stations: "stops.response"})

	status, body, _ := request(t, "/core/stations")

	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "invalid argument")
}
