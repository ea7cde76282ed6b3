package global

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/rmvtransport/pkg/dataaggregator"
	"github.com/travigo/rmvtransport/pkg/rmv"
)

func TestNewClient(t *testing.T) {
	t.Setenv("RMVTRANSPORT_TIMEOUT", "3s")

	assert.Equal(t, 3*time.Second, NewClient().Timeout())

	t.Setenv("RMVTRANSPORT_TIMEOUT", "soon")

	assert.Equal(t, rmv.DefaultTimeout, NewClient().Timeout())

	assert.Equal(t, time.Second, NewClient(rmv.WithTimeout(time.Second)).Timeout())
}

func TestSetup(t *testing.T) {
	Setup()

	assert.Len(t, dataaggregator.GlobalAggregator.Sources, 1)
	assert.Equal(t, "Rhein-Main-Verkehrsverbund", dataaggregator.GlobalAggregator.Sources[0].GetName())
}
