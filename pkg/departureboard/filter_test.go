package departureboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/rmvtransport/pkg/rmv"
)

func testBoard() *rmv.DepartureBoard {
	return &rmv.DepartureBoard{
		Station:   "Wiesbaden Hauptbahnhof",
		StationID: "3006907",
		Journeys: []rmv.Journey{
			{Product: "S", Number: "8", Delay: 3, RealDeparture: 4, Stops: []rmv.Stop{{Station: "Mainz Hauptbahnhof"}}},
			{Product: "Bus", Number: "6", Delay: 0, RealDeparture: 7},
			{Product: "S", Number: "1", Delay: 0, RealDeparture: 12},
			{Product: "RB", Number: "10", Delay: 5, RealDeparture: 15},
		},
	}
}

func journeyNumbers(board *rmv.DepartureBoard) []string {
	var numbers []string
	for _, journey := range board.Journeys {
		numbers = append(numbers, journey.Number)
	}

	return numbers
}

func TestJourneyFilter(t *testing.T) {
	tests := []struct {
		code     string
		expected []string
	}{
		{code: `Product == "S"`, expected: []string{"8", "1"}},
		{code: `Delay > 0`, expected: []string{"8", "10"}},
		{code: `Minutes >= 7 && Product != "RB"`, expected: []string{"6", "1"}},
		{code: `"Mainz Hauptbahnhof" in Stops`, expected: []string{"8"}},
		{code: `Product == "ICE"`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			filter, err := CompileFilter(tt.code)
			require.NoError(t, err)

			board := testBoard()
			require.NoError(t, filter.Apply(board))

			assert.Equal(t, tt.expected, journeyNumbers(board))
		})
	}
}

func TestCompileFilterInvalid(t *testing.T) {
	for _, code := range []string{`Product ==`, `Minutes + 1`, `Colour == "red"`} {
		_, err := CompileFilter(code)
		assert.ErrorIs(t, err, rmv.InvalidArgumentError, code)
	}
}
