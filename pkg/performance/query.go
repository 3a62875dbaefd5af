package performance

import (
	"fmt"

	"github.com/raildelay/raildelay/pkg/hsp"
	"github.com/raildelay/raildelay/pkg/raildata"
)

// FindServices runs the aggregate metrics lookup for a query and returns the
// matched services in the order the gateway supplied them.
func FindServices(gateway Gateway, query raildata.Query) ([]raildata.ServiceSummary, error) {
	formattedDate := query.Date.Format("2006-01-02")

	response, err := gateway.ServiceMetrics(hsp.ServiceMetricsParams{
		Days: string(raildata.DayTypeFor(query.Date)),

		// The query always spans exactly one calendar day
		FromDate: formattedDate,
		ToDate:   formattedDate,

		FromLocation: query.DepartureStation,
		ToLocation:   query.DestinationStation,

		FromTime: hourToken(query.DepartureHour),
		ToTime:   hourToken(query.ArrivalHour),
	})
	if err != nil {
		return nil, fmt.Errorf("service metrics lookup failed: %w", err)
	}

	var summaries []raildata.ServiceSummary
	for _, service := range response.Services {
		attributes := service.ServiceAttributesMetrics

		summaries = append(summaries, raildata.ServiceSummary{
			OriginLocation:      attributes.OriginLocation,
			DestinationLocation: attributes.DestinationLocation,

			ScheduledDeparture: attributes.ScheduledDeparture,
			ScheduledArrival:   attributes.ScheduledArrival,

			OperatorCode:    attributes.TocCode,
			MatchedServices: attributes.MatchedServices,

			RIDs: attributes.RIDs,
		})
	}

	return summaries, nil
}

// hourToken renders an hour as the upstream "HHMM" window bound. This is the
// raw hour with "00" appended, so hour 9 becomes "900" while hour 14 becomes
// "1400" - the digit-count mismatch matches what the upstream API accepts.
func hourToken(hour int8) string {
	return fmt.Sprintf("%d00", hour)
}
