package query

type DepartureBoard struct {
	StationID   string
	DirectionID string
	Count       int
	Products    []string
}
