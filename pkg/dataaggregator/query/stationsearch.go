package query

type StationSearch struct {
	Name  string
	Count int
}
