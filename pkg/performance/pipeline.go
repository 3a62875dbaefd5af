package performance

import (
	"errors"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"

	"github.com/raildelay/raildelay/pkg/raildata"
	"github.com/raildelay/raildelay/pkg/util"
)

// DefaultThreshold is the arrival delay at which a train counts as delayed
const DefaultThreshold = 15 * time.Minute

var ErrNoCandidateIdentifiers = errors.New("service has no candidate RID")

// ResolutionStrategy picks which RID of a matched service gets resolved into
// a train record
type ResolutionStrategy func(summary raildata.ServiceSummary) (string, error)

// FirstCandidate resolves a service through the first RID it was matched to.
// Re-timed or repeated runs behind the same scheduled slot are ignored.
func FirstCandidate(summary raildata.ServiceSummary) (string, error) {
	if len(summary.RIDs) == 0 {
		return "", ErrNoCandidateIdentifiers
	}

	return summary.RIDs[0], nil
}

// Run executes a full delay lookup: aggregate query, per-service record
// resolution via FirstCandidate, then threshold filtering. Strictly
// sequential; the first failure aborts the whole run with no partial output.
// Report order follows the order the gateway returned the services in.
func Run(gateway Gateway, query raildata.Query, threshold time.Duration) ([]raildata.DelayedTrainReport, error) {
	summaries, err := FindServices(gateway, query)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("services", len(summaries)).Msgf("%# v", pretty.Formatter(summaries))

	var records []raildata.TrainRecord
	for _, summary := range summaries {
		rid, err := FirstCandidate(summary)
		if err != nil {
			return nil, err
		}

		record, err := ResolveTrainRecord(gateway, rid)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	util.InPlaceFilter(&records, func(record raildata.TrainRecord) bool {
		return record.WasDelayed(query.DestinationStation, threshold)
	})

	var reports []raildata.DelayedTrainReport
	for _, record := range records {
		departure, _ := record.DepartureStop()
		destination, _ := record.DestinationStop(query.DestinationStation)
		delay, _ := record.TotalDelay(query.DestinationStation)

		reports = append(reports, raildata.DelayedTrainReport{
			Departure:   departure,
			Destination: destination,
			Delay:       delay,
		})
	}

	return reports, nil
}
