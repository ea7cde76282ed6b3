package rmv

import (
	"time"

	_ "time/tzdata"
)

const (
	DefaultBaseURL = "https://www.rmv.de/auskunft/bin/jp/"

	StationBoardPath = "stboard.exe/"
	GetStopPath      = "ajax-getstop.exe/"

	DefaultTimeout     = 10 * time.Second
	DefaultMaxJourneys = 20
	DefaultMaxResults  = 25

	// MaxRetries bounds the number of parse attempts on a single response.
	MaxRetries = 5

	IconURLFormat = "https://www.rmv.de/auskunft/s/n/img/products/%d_pic.png"

	// FallbackProduct supplies the icon for categories missing from Products.
	FallbackProduct = "Bus"
)

// Products maps upstream product names to their filter weight.
// IC and EC share a weight, as do R, RB and RE.
var Products = map[string]int{
	"ICE":    1,
	"IC":     2,
	"EC":     2,
	"R":      4,
	"RB":     4,
	"RE":     4,
	"S":      8,
	"U-Bahn": 16,
	"Tram":   32,
	"Bus":    64,
	"Bus2":   128,
	"Fähre":  256,
	"Taxi":   512,
	"Bahn":   1024,
}

// AllProducts lists every known product in weight order.
var AllProducts = []string{
	"ICE", "IC", "EC", "R", "RB", "RE", "S", "U-Bahn", "Tram", "Bus", "Bus2", "Fähre", "Taxi", "Bahn",
}

// KnownXMLIssues holds the malformed fragments the upstream is known to emit
// and their replacement.
var KnownXMLIssues = map[string]string{
	"<Arr getIn=false>": "<Arr >",
}

// Location is the zone the upstream reports its clock times in.
var Location = mustLoadLocation("Europe/Berlin")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}

	return loc
}
