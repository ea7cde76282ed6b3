package dataaggregator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/rmvtransport/pkg/dataaggregator/source"
)

type testBoard struct {
	Name string
}

type testSource struct {
	name     string
	supports []reflect.Type
	value    interface{}
	err      error
	calls    int
}

func (s *testSource) GetName() string {
	return s.name
}

func (s *testSource) Supports() []reflect.Type {
	return s.supports
}

func (s *testSource) Lookup(q any) (interface{}, error) {
	s.calls++
	return s.value, s.err
}

func TestLookupIn(t *testing.T) {
	boardType := reflect.TypeOf(testBoard{})
	otherType := reflect.TypeOf("")

	t.Run("first supporting source answers", func(t *testing.T) {
		other := &testSource{name: "other", supports: []reflect.Type{otherType}, value: "nope"}
		first := &testSource{name: "first", supports: []reflect.Type{boardType}, value: &testBoard{Name: "first"}}
		second := &testSource{name: "second", supports: []reflect.Type{boardType}, value: &testBoard{Name: "second"}}

		aggregator := Aggregator{}
		aggregator.RegisterSource(other)
		aggregator.RegisterSource(first)
		aggregator.RegisterSource(second)

		board, err := LookupIn[*testBoard](&aggregator, "query")

		assert.NoError(t, err)
		assert.Equal(t, "first", board.Name)
		assert.Equal(t, 0, other.calls)
		assert.Equal(t, 0, second.calls)
	})

	t.Run("unsupported query falls through", func(t *testing.T) {
		first := &testSource{name: "first", supports: []reflect.Type{boardType}, err: source.UnsupportedSourceError}
		second := &testSource{name: "second", supports: []reflect.Type{boardType}, value: &testBoard{Name: "second"}}

		aggregator := Aggregator{}
		aggregator.RegisterSource(first)
		aggregator.RegisterSource(second)

		board, err := LookupIn[*testBoard](&aggregator, "query")

		assert.NoError(t, err)
		assert.Equal(t, "second", board.Name)
		assert.Equal(t, 1, first.calls)
	})

	t.Run("source error is returned", func(t *testing.T) {
		lookupError := errors.New("broken")
		first := &testSource{name: "first", supports: []reflect.Type{boardType}, err: lookupError}

		aggregator := Aggregator{}
		aggregator.RegisterSource(first)

		board, err := LookupIn[*testBoard](&aggregator, "query")

		assert.ErrorIs(t, err, lookupError)
		assert.Nil(t, board)
	})

	t.Run("no matching source", func(t *testing.T) {
		aggregator := Aggregator{}
		aggregator.RegisterSource(&testSource{name: "other", supports: []reflect.Type{otherType}})

		_, err := LookupIn[*testBoard](&aggregator, "query")

		assert.ErrorIs(t, err, NoMatchingSourceError)
	})
}

func TestLookupGlobal(t *testing.T) {
	previous := GlobalAggregator
	t.Cleanup(func() {
		GlobalAggregator = previous
	})

	GlobalAggregator = Aggregator{}
	GlobalAggregator.RegisterSource(&testSource{
		name:     "global",
		supports: []reflect.Type{reflect.TypeOf([]string{})},
		value:    []string{"a", "b"},
	})

	values, err := Lookup[[]string]("query")

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)
}
