package departureboard

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/rmvtransport/pkg/dataaggregator/global"
	"github.com/travigo/rmvtransport/pkg/rmv"
	"github.com/travigo/rmvtransport/pkg/util"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "format",
		Value: FormatText,
		Usage: "output format (text, json, csv)",
	}
}

func timeoutFlag() *cli.DurationFlag {
	return &cli.DurationFlag{
		Name:  "timeout",
		Usage: "upstream request timeout, overrides RMVTRANSPORT_TIMEOUT",
	}
}

func newClient(c *cli.Context) *rmv.Client {
	var options []rmv.Option
	if c.IsSet("timeout") {
		options = append(options, rmv.WithTimeout(c.Duration("timeout")))
	}

	return global.NewClient(options...)
}

func checkFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w: unknown format %s", rmv.InvalidArgumentError, format)
	}

	return nil
}

// departureQueries builds one query per station argument plus the selected preset.
func departureQueries(c *cli.Context) ([]rmv.DepartureQuery, error) {
	products := util.RemoveDuplicateStrings(c.StringSlice("product"), []string{})

	var queries []rmv.DepartureQuery
	for _, stationID := range util.RemoveDuplicateStrings(c.Args().Slice(), []string{}) {
		queries = append(queries, rmv.DepartureQuery{
			StationID:   stationID,
			DirectionID: c.String("direction"),
			MaxJourneys: c.Int("max"),
			Products:    products,
		})
	}

	if presetName := c.String("preset"); presetName != "" {
		presets, err := LoadPresets(c.String("presets"))
		if err != nil {
			return nil, err
		}

		preset, err := FindPreset(presets, presetName)
		if err != nil {
			return nil, err
		}

		queries = append(queries, preset.Query())
	}

	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: no station given", rmv.InvalidArgumentError)
	}

	return queries, nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "departures",
		Usage:     "Show the departure board of one or more stations",
		ArgsUsage: "<station-id>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "direction",
				Usage: "only journeys heading to this station id",
			},
			&cli.IntFlag{
				Name:  "max",
				Value: rmv.DefaultMaxJourneys,
				Usage: "maximum number of journeys per station",
			},
			&cli.StringSliceFlag{
				Name:  "product",
				Usage: fmt.Sprintf("products to include, one of %v", rmv.AllProducts),
			},
			&cli.StringFlag{
				Name:  "filter",
				Usage: "expression journeys must match, e.g. 'Delay > 0 && Product == \"S\"'",
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "retry connection failures this many times",
			},
			&cli.StringFlag{
				Name:  "preset",
				Usage: "name of a preset query to add",
			},
			&cli.StringFlag{
				Name:    "presets",
				Value:   "presets.yaml",
				Usage:   "presets file",
				EnvVars: []string{"RMVTRANSPORT_PRESETS"},
			},
			formatFlag(),
			timeoutFlag(),
		},
		Action: func(c *cli.Context) error {
			format := c.String("format")
			if err := checkFormat(format); err != nil {
				return err
			}

			queries, err := departureQueries(c)
			if err != nil {
				return err
			}

			var filter *JourneyFilter
			if c.String("filter") != "" {
				filter, err = CompileFilter(c.String("filter"))
				if err != nil {
					return err
				}
			}

			boards, err := GetDepartureBoards(c.Context, newClient(c), queries, c.Int("retries"))
			if err != nil {
				return err
			}

			if filter != nil {
				for _, board := range boards {
					if err := filter.Apply(board); err != nil {
						return err
					}
				}
			}

			log.Debug().Int("stations", len(boards)).Msg("Loaded departure boards")

			return WriteBoards(c.App.Writer, format, boards)
		},
	}
}

func RegisterStationsCLI() *cli.Command {
	return &cli.Command{
		Name:      "stations",
		Usage:     "Search stations by name",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "max",
				Value: rmv.DefaultMaxResults,
				Usage: "maximum number of stations",
			},
			formatFlag(),
			timeoutFlag(),
		},
		Action: func(c *cli.Context) error {
			format := c.String("format")
			if err := checkFormat(format); err != nil {
				return err
			}

			stations, err := newClient(c).SearchStationOrdered(c.Context, c.Args().First(), c.Int("max"))
			if err != nil {
				return err
			}

			return WriteStations(c.App.Writer, format, stations)
		},
	}
}
