package rmv

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

type DepartureBoard struct {
	Station   string    `json:"station" groups:"basic,detailed"`
	StationID string    `json:"stationId" groups:"basic,detailed"`
	Filter    string    `json:"filter" groups:"basic,detailed"`
	Now       time.Time `json:"now" groups:"basic,detailed"`
	Journeys  []Journey `json:"journeys" groups:"basic,detailed"`
}

// NewDepartureBoard orders journeys by minutes until departure, keeping the
// upstream order for equal minutes, and keeps at most maxJourneys of them.
func NewDepartureBoard(station string, stationID string, filter string, now time.Time, journeys []Journey, maxJourneys int) *DepartureBoard {
	sorted := slices.Clone(journeys)
	slices.SortStableFunc(sorted, func(a, b Journey) int {
		return cmp.Compare(a.RealDeparture, b.RealDeparture)
	})

	if maxJourneys >= 0 && len(sorted) > maxJourneys {
		sorted = sorted[:maxJourneys]
	}
	if sorted == nil {
		sorted = []Journey{}
	}

	return &DepartureBoard{
		Station:   station,
		StationID: stationID,
		Filter:    filter,
		Now:       now,
		Journeys:  sorted,
	}
}

func referenceTime(document *resC) (time.Time, error) {
	if document.SBRes == nil || document.SBRes.SBReq == nil || document.SBRes.SBReq.StartT == nil {
		return time.Time{}, fmt.Errorf("%w: response has no reference time", DataError)
	}
	startT := document.SBRes.SBReq.StartT

	now, err := time.ParseInLocation("20060102 15:04", fmt.Sprintf("%s %s", startT.Date, startT.Time), Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid reference time %s %s", DataError, startT.Date, startT.Time)
	}

	return now, nil
}

func stationName(document *resC) (string, error) {
	request := document.SBRes.SBReq

	if request.Start == nil || request.Start.Station == nil || request.Start.Station.HafasName == nil {
		return "", fmt.Errorf("%w: response has no station", DataError)
	}

	return strings.TrimSpace(request.Start.Station.HafasName.Text), nil
}

func journeyList(document *resC) ([]journeyXML, error) {
	if document.SBRes == nil || document.SBRes.JourneyList == nil {
		upstreamError := document.Err
		if upstreamError == nil && document.SBRes != nil {
			upstreamError = document.SBRes.Err
		}

		if upstreamError != nil {
			return nil, fmt.Errorf("%w: %s %s", RMVError, upstreamError.Code, upstreamError.Text)
		}

		return nil, fmt.Errorf("%w: response has no journey list", RMVError)
	}

	return document.SBRes.JourneyList.Journeys, nil
}
