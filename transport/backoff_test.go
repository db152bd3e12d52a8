package transport

import (
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sahib/wsmq/config"
	"github.com/stretchr/testify/require"
)

func TestReconnectBackOffEnabled(t *testing.T) {
	cfg, err := config.NewBuilder().Endpoint("ws://host").Build()
	require.NoError(t, err)

	bo := ReconnectBackOff(cfg)
	exp, ok := bo.(*backoff.ExponentialBackOff)
	require.True(t, ok)
	require.Equal(t, 30*time.Second, exp.MaxElapsedTime)
	require.NotEqual(t, backoff.Stop, bo.NextBackOff())
}

func TestReconnectBackOffDisabled(t *testing.T) {
	cfg, err := config.NewBuilder().
		Endpoint("ws://host").
		ReconnectEnabled(false).
		Build()
	require.NoError(t, err)

	bo := ReconnectBackOff(cfg)
	require.Equal(t, backoff.Stop, bo.NextBackOff())
}
