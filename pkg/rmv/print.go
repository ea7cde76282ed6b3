package rmv

import (
	"fmt"
	"io"
	"strings"
)

const separator = "-------------"

// String renders the board in the plain text layout used by the command line.
func (b *DepartureBoard) String() string {
	lines := []string{fmt.Sprintf("%s - %s", b.Station, b.Now.Format("2006-01-02 15:04:05"))}

	for _, j := range b.Journeys {
		stations := make([]string, 0, len(j.Stops))
		for _, stop := range j.Stops {
			stations = append(stations, stop.Station)
		}

		lines = append(lines,
			separator,
			fmt.Sprintf("%s: %s (%s)", j.Product, j.Number, j.TrainID),
			fmt.Sprintf("Richtung: %s", j.Direction),
			fmt.Sprintf("Abfahrt in %d min.", j.RealDeparture),
			fmt.Sprintf("Abfahrt %s (+%d)", j.Departure.Format("15:04:05"), j.Delay),
			fmt.Sprintf("Nächste Haltestellen: %s", strings.Join(stations, ", ")),
		)

		if j.Info != "" {
			lines = append(lines,
				fmt.Sprintf("Hinweis: %s", j.Info),
				fmt.Sprintf("Hinweis (lang): %s", j.InfoLong),
			)
		}

		lines = append(lines, fmt.Sprintf("Icon: %s", j.Icon))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (b *DepartureBoard) Print(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}
