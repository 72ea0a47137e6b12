package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestObserveRecordsSuccessAndFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewWithRegistry(reg)

	err := Observe(p, 128, func() (int, string, error) { return 3, "", nil })
	require.NoError(t, err)

	sentinel := errors.New("boom")
	err = Observe(p, 64, func() (int, string, error) { return 0, "Invalid", sentinel })
	require.ErrorIs(t, err, sentinel)

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metricFamilies)
}

func TestNoopRecorderDiscardsObservations(t *testing.T) {
	var n Noop
	require.NotPanics(t, func() {
		n.VerifyAttempted()
		n.VerifySucceeded(0, 0)
		n.VerifyFailed("Invalid", 0)
		n.ProofBytes(0)
	})
}
