package raildata

// ServiceSummary is one matched scheduled service from the aggregate metrics
// lookup. RIDs is never empty; a service re-timed or repeated across the date
// range carries one RID per underlying train run.
type ServiceSummary struct {
	OriginLocation      string
	DestinationLocation string

	ScheduledDeparture string
	ScheduledArrival   string

	OperatorCode    string
	MatchedServices string

	RIDs []string
}
