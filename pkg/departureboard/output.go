package departureboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/jinzhu/copier"
	"github.com/travigo/rmvtransport/pkg/rmv"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

var Formats = []string{FormatText, FormatJSON, FormatCSV}

// journeyRow is the flat CSV shape of one journey.
type journeyRow struct {
	StationID string `csv:"station_id"`
	Station   string `csv:"station"`
	Product   string `csv:"product"`
	Number    string `csv:"number"`
	Name      string `csv:"name"`
	TrainID   string `csv:"train_id"`
	Direction string `csv:"direction"`
	Time      string `csv:"departure"`
	Delay     int    `csv:"delay"`
	Minutes   int    `csv:"minutes"`
	Platform  string `csv:"platform"`
	Info      string `csv:"info"`
	StopNames string `csv:"stops"`
}

func journeyRows(boards []*rmv.DepartureBoard) ([]*journeyRow, error) {
	rows := []*journeyRow{}

	for _, board := range boards {
		for _, journey := range board.Journeys {
			row := &journeyRow{}
			if err := copier.Copy(row, &journey); err != nil {
				return nil, err
			}

			row.StationID = board.StationID
			row.Station = board.Station
			row.Time = journey.RealDepartureTime.Format("2006-01-02 15:04:05")
			row.Minutes = journey.RealDeparture

			var stops []string
			for _, stop := range journey.Stops {
				stops = append(stops, stop.Station)
			}
			row.StopNames = strings.Join(stops, ", ")

			rows = append(rows, row)
		}
	}

	return rows, nil
}

func WriteBoards(w io.Writer, format string, boards []*rmv.DepartureBoard) error {
	switch format {
	case FormatText:
		for _, board := range boards {
			if err := board.Print(w); err != nil {
				return err
			}
		}

		return nil
	case FormatJSON:
		return writeJSON(w, boards)
	case FormatCSV:
		rows, err := journeyRows(boards)
		if err != nil {
			return err
		}

		return gocsv.Marshal(rows, w)
	default:
		return fmt.Errorf("%w: unknown format %s", rmv.InvalidArgumentError, format)
	}
}

type stationRow struct {
	ID   string  `csv:"id"`
	Name string  `csv:"name"`
	Lat  float64 `csv:"lat"`
	Long float64 `csv:"long"`
}

func WriteStations(w io.Writer, format string, stations []rmv.StationSuggestion) error {
	switch format {
	case FormatText:
		for _, station := range stations {
			if _, err := fmt.Fprintf(w, "%s %s (%f, %f)\n", station.ID, station.Name, station.Lat, station.Long); err != nil {
				return err
			}
		}

		return nil
	case FormatJSON:
		return writeJSON(w, stations)
	case FormatCSV:
		rows := []*stationRow{}
		if err := copier.Copy(&rows, &stations); err != nil {
			return err
		}

		return gocsv.Marshal(rows, w)
	default:
		return fmt.Errorf("%w: unknown format %s", rmv.InvalidArgumentError, format)
	}
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}
