package performance

import (
	"github.com/raildelay/raildelay/pkg/hsp"
)

// Gateway is the slice of the HSP client the pipeline needs. *hsp.Client
// satisfies it; tests substitute a stub.
type Gateway interface {
	ServiceMetrics(params hsp.ServiceMetricsParams) (*hsp.ServiceMetricsResponse, error)
	ServiceDetails(rid string) (*hsp.ServiceDetailsResponse, error)
}
