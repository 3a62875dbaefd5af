package performance

import (
	"fmt"

	"github.com/raildelay/raildelay/pkg/raildata"
)

// ResolveTrainRecord fetches the full stop-by-stop record for one train run.
// Exactly one request per call; any gateway failure is terminal for the run.
func ResolveTrainRecord(gateway Gateway, rid string) (raildata.TrainRecord, error) {
	response, err := gateway.ServiceDetails(rid)
	if err != nil {
		return raildata.TrainRecord{}, fmt.Errorf("resolving train record %s failed: %w", rid, err)
	}

	details := response.ServiceAttributesDetails

	record := raildata.TrainRecord{
		ServiceDate:  details.DateOfService,
		OperatorCode: details.TocCode,
		RID:          details.RID,
	}

	for _, location := range details.Locations {
		record.Stops = append(record.Stops, raildata.Stop{
			Location: location.Location,

			ScheduledDeparture: location.ScheduledDeparture,
			ScheduledArrival:   location.ScheduledArrival,

			ActualDeparture: location.ActualDeparture,
			ActualArrival:   location.ActualArrival,

			LateCancReason: location.LateCancReason,
		})
	}

	return record, nil
}
