package rmv

import "errors"

var (
	InvalidArgumentError = errors.New("invalid argument")
	APIConnectionError   = errors.New("can not load data from RMV API")
	DataError            = errors.New("unexpected data in RMV API response")
	RMVError             = errors.New("RMV API returned no departures")
)
