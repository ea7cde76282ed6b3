package rmv

import (
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/exp/slices"
)

// DepartureQuery describes one departure board request.
type DepartureQuery struct {
	StationID   string
	DirectionID string
	MaxJourneys int
	Products    []string
}

func (q DepartureQuery) maxJourneys() int {
	if q.MaxJourneys <= 0 {
		return DefaultMaxJourneys
	}

	return q.MaxJourneys
}

func (q DepartureQuery) products() []string {
	if len(q.Products) == 0 {
		return AllProducts
	}

	return q.Products
}

// EncodeProductFilter returns the products bitmask as the upstream expects it:
// binary, least significant bit first, without padding.
func EncodeProductFilter(products []string) (string, error) {
	weights := map[int]bool{}

	for _, product := range products {
		weight, exists := Products[product]
		if !exists {
			return "", fmt.Errorf("%w: unknown product %q", InvalidArgumentError, product)
		}

		weights[weight] = true
	}

	sum := 0
	for weight := range weights {
		sum += weight
	}

	encoded := []byte(strconv.FormatInt(int64(sum), 2))
	slices.Reverse(encoded)

	return string(encoded), nil
}

// DecodeProductFilter returns the weight sum an encoded filter represents.
func DecodeProductFilter(encoded string) (int, error) {
	sum := 0

	for position, bit := range encoded {
		switch bit {
		case '1':
			sum += 1 << position
		case '0':
		default:
			return 0, fmt.Errorf("%w: invalid filter %q", InvalidArgumentError, encoded)
		}
	}

	return sum, nil
}

func baseURL(base string, path string) string {
	return base + path + "dn?"
}

// BuildDepartureURL returns the station board URL for the query along with the
// encoded products filter.
func BuildDepartureURL(base string, q DepartureQuery) (string, string, error) {
	if q.StationID == "" {
		return "", "", fmt.Errorf("%w: station id must be provided", InvalidArgumentError)
	}

	filter, err := EncodeProductFilter(q.products())
	if err != nil {
		return "", "", err
	}

	params := url.Values{}
	params.Set("selectDate", "today")
	params.Set("time", "now")
	params.Set("input", q.StationID)
	params.Set("maxJourneys", strconv.Itoa(q.maxJourneys()))
	params.Set("boardType", "dep")
	params.Set("productsFilter", filter)
	params.Set("disableEquivs", "discard_nearby")
	params.Set("output", "xml")
	params.Set("start", "yes")

	if q.DirectionID != "" {
		params.Set("dirInput", q.DirectionID)
	}

	return baseURL(base, StationBoardPath) + params.Encode(), filter, nil
}

// BuildSearchURL returns the stop search URL for a station name.
func BuildSearchURL(base string, name string, maxResults int) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: station name must be provided", InvalidArgumentError)
	}

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	params := url.Values{}
	params.Set("getstop", "1")
	params.Set("REQ0JourneyStopsS0A", strconv.Itoa(maxResults))
	params.Set("REQ0JourneyStopsS0G", name)

	return baseURL(base, GetStopPath) + params.Encode(), nil
}
