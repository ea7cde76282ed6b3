package global

import (
	"github.com/travigo/rmvtransport/pkg/dataaggregator"
	rmvsource "github.com/travigo/rmvtransport/pkg/dataaggregator/source/rmv"
	"github.com/travigo/rmvtransport/pkg/rmv"
	"github.com/travigo/rmvtransport/pkg/util"
)

func Setup() {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	dataaggregator.GlobalAggregator.RegisterSource(rmvsource.Source{
		Client: NewClient(),
	})
}

// NewClient builds an RMV client from RMVTRANSPORT_TIMEOUT and RMVTRANSPORT_BASE_URL.
// Options passed in override the environment.
func NewClient(overrides ...rmv.Option) *rmv.Client {
	env := util.GetEnvironmentVariables()

	options := []rmv.Option{
		rmv.WithTimeout(util.GetEnvironmentDuration("RMVTRANSPORT_TIMEOUT", rmv.DefaultTimeout)),
	}

	if env["RMVTRANSPORT_BASE_URL"] != "" {
		options = append(options, rmv.WithBaseURL(env["RMVTRANSPORT_BASE_URL"]))
	}

	return rmv.NewClient(append(options, overrides...)...)
}
