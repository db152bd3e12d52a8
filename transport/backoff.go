package transport

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sahib/wsmq/config"
)

// ReconnectBackOff returns the wait policy a consumer should use between
// connection attempts. If reconnecting is disabled in `cfg`, the policy
// stops after the first failure.
func ReconnectBackOff(cfg config.MessagingConfig) backoff.BackOff {
	if !cfg.ReconnectEnabled() {
		return &backoff.StopBackOff{}
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	return bo
}
