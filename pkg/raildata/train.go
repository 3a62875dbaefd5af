package raildata

import (
	"time"

	"golang.org/x/exp/slices"
)

// Timetable tokens are "HHMM" clock values with no date component
const stopTimeLayout = "1504"

// Stop is a single calling point on a train run. Time fields can be empty
// when the recording system has no value for them (eg. origin has no arrival).
type Stop struct {
	Location string

	ScheduledDeparture string
	ScheduledArrival   string

	ActualDeparture string
	ActualArrival   string

	LateCancReason string
}

// TrainRecord is the stop-by-stop record of one specific train run
type TrainRecord struct {
	ServiceDate  string
	OperatorCode string
	RID          string

	Stops []Stop
}

// DepartureStop returns the first stop of the run, which is assumed to be the origin
func (record *TrainRecord) DepartureStop() (Stop, bool) {
	if len(record.Stops) == 0 {
		return Stop{}, false
	}

	return record.Stops[0], true
}

// DestinationStop finds the first stop matching the location code exactly
func (record *TrainRecord) DestinationStop(location string) (Stop, bool) {
	index := slices.IndexFunc(record.Stops, func(stop Stop) bool {
		return stop.Location == location
	})

	if index == -1 {
		return Stop{}, false
	}

	return record.Stops[index], true
}

// TotalDelay is the signed difference between the actual and scheduled arrival
// at the given destination. Negative means the train arrived early. Returns
// false when the stop is missing or either time token fails to parse - an
// unknown delay, not an error.
//
// Both tokens are time-of-day only, so a run crossing midnight between its
// scheduled and actual arrival produces a spurious large value.
func (record *TrainRecord) TotalDelay(location string) (time.Duration, bool) {
	destination, found := record.DestinationStop(location)
	if !found {
		return 0, false
	}

	actualArrival, err := time.Parse(stopTimeLayout, destination.ActualArrival)
	if err != nil {
		return 0, false
	}

	scheduledArrival, err := time.Parse(stopTimeLayout, destination.ScheduledArrival)
	if err != nil {
		return 0, false
	}

	return actualArrival.Sub(scheduledArrival), true
}

// WasDelayed reports whether the run arrived at the destination at least
// threshold late. An unknown delay is never counted as delayed.
func (record *TrainRecord) WasDelayed(location string, threshold time.Duration) bool {
	delay, known := record.TotalDelay(location)

	return known && delay >= threshold
}
