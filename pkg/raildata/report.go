package raildata

import (
	"time"
)

// DelayedTrainReport is the per-train output of a delay lookup
type DelayedTrainReport struct {
	Departure   Stop
	Destination Stop

	Delay time.Duration
}

// DelayMinutes is the delay rounded down to whole minutes for display
func (report *DelayedTrainReport) DelayMinutes() int64 {
	return int64(report.Delay.Minutes())
}
