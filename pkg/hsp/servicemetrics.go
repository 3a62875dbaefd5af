package hsp

// ServiceMetricsParams is the body of a serviceMetrics request. Time tokens
// are "HHMM" clock values and both dates are "YYYY-MM-DD".
type ServiceMetricsParams struct {
	Days string `json:"days"`

	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`

	FromLocation string `json:"from_loc"`
	ToLocation   string `json:"to_loc"`

	FromTime string `json:"from_time"`
	ToTime   string `json:"to_time"`
}

type ServiceMetricsResponse struct {
	Header   ServiceMetricsHeader `json:"header"`
	Services []Service            `json:"Services"`
}

type ServiceMetricsHeader struct {
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
}

type Service struct {
	ServiceAttributesMetrics ServiceAttributes `json:"serviceAttributesMetrics"`
	Metrics                  []ServiceMetric   `json:"Metrics"`
}

type ServiceAttributes struct {
	OriginLocation      string `json:"origin_location"`
	DestinationLocation string `json:"destination_location"`

	ScheduledDeparture string `json:"gbtt_ptd"`
	ScheduledArrival   string `json:"gbtt_pta"`

	TocCode         string `json:"toc_code"`
	MatchedServices string `json:"matched_services"`

	RIDs []string `json:"rids"`
}

type ServiceMetric struct {
	ToleranceValue   string `json:"tolerance_value"`
	NumNotTolerance  string `json:"num_not_tolerance"`
	NumTolerance     string `json:"num_tolerance"`
	PercentTolerance string `json:"percent_tolerance"`
	GlobalTolerance  bool   `json:"global_tolerance"`
}

// ServiceMetrics looks up the aggregate performance records for a station
// pair over a date range
func (c *Client) ServiceMetrics(params ServiceMetricsParams) (*ServiceMetricsResponse, error) {
	var response ServiceMetricsResponse
	if err := c.post("serviceMetrics", params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
