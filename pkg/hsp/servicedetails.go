package hsp

type serviceDetailsParams struct {
	RID string `json:"rid"`
}

type ServiceDetailsResponse struct {
	ServiceAttributesDetails ServiceDetails `json:"serviceAttributesDetails"`
}

type ServiceDetails struct {
	DateOfService string `json:"date_of_service"`
	TocCode       string `json:"toc_code"`
	RID           string `json:"rid"`

	Locations []ServiceLocation `json:"locations"`
}

type ServiceLocation struct {
	Location string `json:"location"`

	ScheduledDeparture string `json:"gbtt_ptd"`
	ScheduledArrival   string `json:"gbtt_pta"`

	ActualDeparture string `json:"actual_td"`
	ActualArrival   string `json:"actual_ta"`

	LateCancReason string `json:"late_canc_reason"`
}

// ServiceDetails fetches the stop-by-stop record of one train run by its RID
func (c *Client) ServiceDetails(rid string) (*ServiceDetailsResponse, error) {
	var response ServiceDetailsResponse
	if err := c.post("serviceDetails", serviceDetailsParams{RID: rid}, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
