package raildata

import (
	"time"
)

// Query describes a single station-pair lookup over one calendar day.
// Hours are raw clock hours (0-23); the pair is not cross-validated, an
// arrival hour before the departure hour just produces an empty window upstream.
type Query struct {
	DepartureStation   string
	DestinationStation string

	DepartureHour int8
	ArrivalHour   int8

	Date time.Time
}
