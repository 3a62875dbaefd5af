package performance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raildelay/raildelay/pkg/hsp"
	"github.com/raildelay/raildelay/pkg/raildata"
)

func TestFindServicesRequestParams(t *testing.T) {
	gateway := &stubGateway{
		metricsResponse: &hsp.ServiceMetricsResponse{},
	}

	query := raildata.Query{
		DepartureStation:   "PAD",
		DestinationStation: "BRI",
		DepartureHour:      9,
		ArrivalHour:        14,
		Date:               time.Date(2023, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	_, err := FindServices(gateway, query)
	require.NoError(t, err)

	require.Len(t, gateway.metricsParams, 1)
	params := gateway.metricsParams[0]

	assert.Equal(t, "SATURDAY", params.Days)
	assert.Equal(t, "2023-03-11", params.FromDate)
	assert.Equal(t, "2023-03-11", params.ToDate)
	assert.Equal(t, "PAD", params.FromLocation)
	assert.Equal(t, "BRI", params.ToLocation)

	// Raw hour with "00" appended, so single-digit hours give a 3-digit token
	assert.Equal(t, "900", params.FromTime)
	assert.Equal(t, "1400", params.ToTime)
}

func TestFindServicesPreservesOrder(t *testing.T) {
	gateway := &stubGateway{
		metricsResponse: &hsp.ServiceMetricsResponse{
			Services: []hsp.Service{
				metricsService("R3"),
				metricsService("R1"),
				metricsService("R2"),
			},
		},
	}

	summaries, err := FindServices(gateway, testQuery())
	require.NoError(t, err)

	require.Len(t, summaries, 3)
	assert.Equal(t, []string{"R3"}, summaries[0].RIDs)
	assert.Equal(t, []string{"R1"}, summaries[1].RIDs)
	assert.Equal(t, []string{"R2"}, summaries[2].RIDs)
}

func TestFindServicesSummaryFields(t *testing.T) {
	gateway := &stubGateway{
		metricsResponse: &hsp.ServiceMetricsResponse{
			Services: []hsp.Service{metricsService("A123", "B456")},
		},
	}

	summaries, err := FindServices(gateway, testQuery())
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	summary := summaries[0]
	assert.Equal(t, "PAD", summary.OriginLocation)
	assert.Equal(t, "BRI", summary.DestinationLocation)
	assert.Equal(t, "1130", summary.ScheduledDeparture)
	assert.Equal(t, "1230", summary.ScheduledArrival)
	assert.Equal(t, "GW", summary.OperatorCode)
	assert.Equal(t, []string{"A123", "B456"}, summary.RIDs)
}

func TestFindServicesGatewayFailure(t *testing.T) {
	gateway := &stubGateway{metricsErr: errors.New("401 unauthorized")}

	_, err := FindServices(gateway, testQuery())
	assert.Error(t, err)
}

func TestHourToken(t *testing.T) {
	assert.Equal(t, "000", hourToken(0))
	assert.Equal(t, "900", hourToken(9))
	assert.Equal(t, "1000", hourToken(10))
	assert.Equal(t, "2300", hourToken(23))
}
