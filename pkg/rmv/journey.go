package rmv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/rmvtransport/pkg/util"
	"golang.org/x/net/html"
)

// Lookback is how far in the past a clock time may lie before it is read as
// belonging to the next day.
const Lookback = time.Hour

var oneDay = mustParseISO8601("P1D")

func mustParseISO8601(value string) iso8601.Duration {
	d, err := iso8601.ParseISO8601(value)
	if err != nil {
		panic(err)
	}

	return d
}

type Stop struct {
	Index     string `json:"index" groups:"detailed"`
	StationID string `json:"stationId" groups:"detailed"`
	Station   string `json:"station" groups:"detailed"`
}

// Journey is a single departure from the queried station. It is built once
// from its source node and never modified afterwards.
type Journey struct {
	Product   string `json:"product" groups:"basic,detailed"`
	Number    string `json:"number" groups:"basic,detailed"`
	Name      string `json:"name" groups:"basic,detailed"`
	TrainID   string `json:"trainId" groups:"basic,detailed"`
	Direction string `json:"direction" groups:"basic,detailed"`

	Departure         time.Time `json:"departure" groups:"basic,detailed"`
	Delay             int       `json:"delay" groups:"basic,detailed"`
	RealDepartureTime time.Time `json:"realDepartureTime" groups:"basic,detailed"`
	RealDeparture     int       `json:"minutes" groups:"basic,detailed"`

	Platform string `json:"platform,omitempty" groups:"basic,detailed"`
	Info     string `json:"info,omitempty" groups:"detailed"`
	InfoLong string `json:"infoLong,omitempty" groups:"detailed"`

	Stops []Stop `json:"stops" groups:"detailed"`
	Icon  string `json:"icon" groups:"basic,detailed"`
}

func newJourney(node journeyXML, now time.Time) (Journey, error) {
	attributes := journeyAttributes(node)

	if node.MainStop == nil || node.MainStop.Dep == nil {
		return Journey{}, fmt.Errorf("%w: journey %s has no departure", DataError, node.TrainID)
	}
	dep := node.MainStop.Dep

	departure, err := scheduledDeparture(dep.Time, now)
	if err != nil {
		return Journey{}, err
	}

	delay, err := parseDelay(dep.Delay)
	if err != nil {
		return Journey{}, err
	}

	realDepartureTime := departure.Add(time.Duration(delay) * time.Minute)
	product := attributes["CATEGORY"]

	journey := Journey{
		Product:   product,
		Number:    attributes["NUMBER"],
		Name:      attributes["NAME"],
		TrainID:   node.TrainID,
		Direction: attributes["DIRECTION"],

		Departure:         departure,
		Delay:             delay,
		RealDepartureTime: realDepartureTime,
		RealDeparture:     int(math.Round(realDepartureTime.Sub(now).Seconds() / 60)),

		Platform: optionalText(dep.Platform),
		Stops:    passList(node.PassList),
		Icon:     IconURL(product),
	}

	if len(node.InfoTexts) > 0 {
		info := node.InfoTexts[0]

		journey.Info = html.UnescapeString(optionalText(info.Text))
		journey.InfoLong = strings.ReplaceAll(html.UnescapeString(optionalText(info.TextLong)), "<br />", "\n")
	}

	return journey, nil
}

// journeyAttributes resolves the NORMAL variant of every attribute type.
// Types without a NORMAL variant resolve to an empty string.
func journeyAttributes(node journeyXML) map[string]string {
	attributes := map[string]string{}

	for _, journeyAttribute := range node.Attributes {
		attribute := journeyAttribute.Attribute
		if _, exists := attributes[attribute.Type]; exists {
			continue
		}

		value := ""
		for _, variant := range attribute.Variants {
			if variant.Type == "NORMAL" {
				value = strings.TrimSpace(variant.Text)
				break
			}
		}

		attributes[attribute.Type] = value
	}

	return attributes
}

// scheduledDeparture places an HH:MM clock time into the day window starting
// Lookback before now.
func scheduledDeparture(clock string, now time.Time) (time.Time, error) {
	clockTime, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid departure time %q", DataError, clock)
	}

	departure := util.AddTimeToDate(now, clockTime)

	windowStart := now.Add(-Lookback)
	windowEnd := oneDay.Shift(windowStart)

	if departure.Before(windowStart) {
		departure = oneDay.Shift(departure)
	} else if !departure.Before(windowEnd) {
		departure = departure.AddDate(0, 0, -1)
	}

	return departure, nil
}

func parseDelay(delay *string) (int, error) {
	value := optionalText(delay)
	if value == "" || value == "-" {
		return 0, nil
	}

	minutes, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid delay %q", DataError, value)
	}

	return minutes, nil
}

func passList(basicStops []basicStopXML) []Stop {
	stops := []Stop{}

	for _, basicStop := range basicStops {
		stop := Stop{Index: basicStop.Index}

		if basicStop.Location != nil && basicStop.Location.Station != nil {
			station := basicStop.Location.Station

			stop.StationID = strings.TrimSpace(station.ExternalID)
			if station.HafasName != nil {
				stop.Station = strings.TrimSpace(station.HafasName.Text)
			}
		}

		stops = append(stops, stop)
	}

	return stops
}

func optionalText(value *string) string {
	if value == nil {
		return ""
	}

	return strings.TrimSpace(*value)
}

// IconURL returns the product icon, falling back to FallbackProduct for
// categories the product table does not know.
func IconURL(product string) string {
	weight, exists := Products[product]
	if !exists {
		weight = Products[FallbackProduct]
	}

	return fmt.Sprintf(IconURLFormat, weight)
}
