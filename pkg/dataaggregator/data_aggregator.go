package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/travigo/rmvtransport/pkg/dataaggregator/source"
)

var NoMatchingSourceError = errors.New("Failed to find a matching Data Source for type")

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup resolves query against the global aggregator.
func Lookup[T any](query any) (T, error) {
	return LookupIn[T](&GlobalAggregator, query)
}

// LookupIn asks each source supporting T in registration order. A source
// answering UnsupportedSourceError hands the query on to the next one.
func LookupIn[T any](a *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range a.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, returnError := dataSource.Lookup(query)

		if errors.Is(returnError, source.UnsupportedSourceError) {
			continue
		}

		if returnValue == nil {
			return empty, returnError
		}

		value, ok := returnValue.(T)
		if !ok {
			return empty, NoMatchingSourceError
		}

		return value, returnError
	}

	return empty, NoMatchingSourceError
}
