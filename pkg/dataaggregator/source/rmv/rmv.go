package rmv

import (
	"context"
	"reflect"

	"github.com/travigo/rmvtransport/pkg/dataaggregator/query"
	"github.com/travigo/rmvtransport/pkg/dataaggregator/source"
	"github.com/travigo/rmvtransport/pkg/rmv"
)

type Source struct {
	Client *rmv.Client
}

func (s Source) GetName() string {
	return "Rhein-Main-Verkehrsverbund"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(rmv.DepartureBoard{}),
		reflect.TypeOf([]rmv.StationSuggestion{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.DepartureBoard:
		return s.departureBoardQuery(q)
	case query.StationSearch:
		return s.stationSearchQuery(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) departureBoardQuery(q query.DepartureBoard) (interface{}, error) {
	board, err := s.Client.GetDepartures(context.Background(), rmv.DepartureQuery{
		StationID:   q.StationID,
		DirectionID: q.DirectionID,
		MaxJourneys: q.Count,
		Products:    q.Products,
	})
	if err != nil {
		return nil, err
	}

	return board, nil
}

func (s Source) stationSearchQuery(q query.StationSearch) (interface{}, error) {
	count := q.Count
	if count <= 0 {
		count = rmv.DefaultMaxResults
	}

	suggestions, err := s.Client.SearchStationOrdered(context.Background(), q.Name, count)
	if err != nil {
		return nil, err
	}

	return suggestions, nil
}
