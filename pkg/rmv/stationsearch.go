package rmv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type StationSuggestion struct {
	ID   string  `json:"id" groups:"basic"`
	Name string  `json:"name" groups:"basic"`
	Lat  float64 `json:"lat" groups:"basic"`
	Long float64 `json:"long" groups:"basic"`
}

type suggestionsResponse struct {
	Suggestions *[]suggestion `json:"suggestions"`
}

type suggestion struct {
	ExtID  string `json:"extId"`
	Value  string `json:"value"`
	XCoord string `json:"xcoord"`
	YCoord string `json:"ycoord"`
}

// ParseStationSuggestions extracts the JSON object embedded in a stop search
// response and maps its suggestions in upstream order.
func ParseStationSuggestions(data []byte, maxResults int) ([]StationSuggestion, error) {
	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no json object in search response", DataError)
	}

	var response suggestionsResponse
	if err := json.Unmarshal(data[start:end+1], &response); err != nil {
		return nil, fmt.Errorf("%w: %s", DataError, err)
	}
	if response.Suggestions == nil {
		return nil, fmt.Errorf("%w: search response has no suggestions", DataError)
	}

	items := *response.Suggestions
	if maxResults > 0 && len(items) > maxResults {
		items = items[:maxResults]
	}

	suggestions := []StationSuggestion{}
	for _, item := range items {
		lat, err := ConvertCoordinates(item.YCoord)
		if err != nil {
			return nil, err
		}
		long, err := ConvertCoordinates(item.XCoord)
		if err != nil {
			return nil, err
		}

		suggestions = append(suggestions, StationSuggestion{
			ID:   item.ExtID,
			Name: item.Value,
			Lat:  lat,
			Long: long,
		})
	}

	return suggestions, nil
}

// ConvertCoordinates turns the compact upstream coordinate digits into degrees.
// Values shorter than 8 characters have one integer digit, longer ones two.
func ConvertCoordinates(value string) (float64, error) {
	if len(value) < 2 {
		return 0, fmt.Errorf("%w: invalid coordinate %q", DataError, value)
	}

	split := 2
	if len(value) < 8 {
		split = 1
	}

	coordinate, err := strconv.ParseFloat(value[:split]+"."+value[split:], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid coordinate %q", DataError, value)
	}

	return coordinate, nil
}
