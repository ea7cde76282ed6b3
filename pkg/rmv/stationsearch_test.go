package rmv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCoordinates(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{value: "50113963", expected: 50.113963},
		{value: "5011396", expected: 5.011396},
		{value: "8662653", expected: 8.662653},
		{value: "50106808", expected: 50.106808},
		{value: "123456789", expected: 12.3456789},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			coordinate, err := ConvertCoordinates(tt.value)

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, coordinate, 1e-9)
		})
	}
}

func TestConvertCoordinatesInvalid(t *testing.T) {
	for _, value := range []string{"", "5", "50.11396x"} {
		_, err := ConvertCoordinates(value)
		assert.ErrorIs(t, err, DataError, value)
	}
}

func TestParseStationSuggestions(t *testing.T) {
	suggestions, err := ParseStationSuggestions(readFixture(t, "stops.response"), 25)
	require.NoError(t, err)
	require.Len(t, suggestions, 3)

	assert.Equal(t, "003000010", suggestions[0].ID)
	assert.Equal(t, "Frankfurt (Main) Hauptbahnhof", suggestions[0].Name)
	assert.InDelta(t, 50.106808, suggestions[0].Lat, 1e-9)
	assert.InDelta(t, 8.662653, suggestions[0].Long, 1e-9)

	assert.Equal(t, "003000002", suggestions[2].ID)
	assert.InDelta(t, 50.113963, suggestions[2].Lat, 1e-9)
}

func TestParseStationSuggestionsTruncates(t *testing.T) {
	suggestions, err := ParseStationSuggestions(readFixture(t, "stops.response"), 2)
	require.NoError(t, err)

	assert.Len(t, suggestions, 2)
}

func TestParseStationSuggestionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "no object", data: "SLs.showSuggestion();"},
		{name: "broken json", data: `SLs.sls={"suggestions":[{"extId":}]};`},
		{name: "missing suggestions", data: `SLs.sls={"error":"no match"};`},
		{name: "bad coordinate", data: `{"suggestions":[{"extId":"1","value":"A","xcoord":"","ycoord":"50113963"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStationSuggestions([]byte(tt.data), 25)

			assert.ErrorIs(t, err, DataError)
		})
	}
}
