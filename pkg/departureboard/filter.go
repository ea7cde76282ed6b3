package departureboard

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/rmvtransport/pkg/rmv"
	"github.com/travigo/rmvtransport/pkg/util"
)

// filterEnv is what a --filter expression sees of a journey.
type filterEnv struct {
	Product   string
	Number    string
	Name      string
	Direction string
	Platform  string
	Delay     int
	Minutes   int
	Stops     []string
}

func newFilterEnv(journey rmv.Journey) filterEnv {
	env := filterEnv{
		Product:   journey.Product,
		Number:    journey.Number,
		Name:      journey.Name,
		Direction: journey.Direction,
		Platform:  journey.Platform,
		Delay:     journey.Delay,
		Minutes:   journey.RealDeparture,
	}

	for _, stop := range journey.Stops {
		env.Stops = append(env.Stops, stop.Station)
	}

	return env
}

type JourneyFilter struct {
	program *vm.Program
}

// CompileFilter compiles a boolean expression such as
// `Product == "S" && Minutes >= 5`.
func CompileFilter(code string) (*JourneyFilter, error) {
	program, err := expr.Compile(code, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: filter %q: %s", rmv.InvalidArgumentError, code, err)
	}

	return &JourneyFilter{program: program}, nil
}

func (f *JourneyFilter) Match(journey rmv.Journey) (bool, error) {
	output, err := expr.Run(f.program, newFilterEnv(journey))
	if err != nil {
		return false, err
	}

	return output.(bool), nil
}

// Apply drops the journeys of board not matching the filter.
func (f *JourneyFilter) Apply(board *rmv.DepartureBoard) error {
	var runError error

	util.InPlaceFilter(&board.Journeys, func(journey rmv.Journey) bool {
		if runError != nil {
			return false
		}

		matches, err := f.Match(journey)
		if err != nil {
			runError = err
		}

		return matches
	})

	return runError
}
