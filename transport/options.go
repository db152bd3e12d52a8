package transport

import (
	"fmt"
	"time"
)

// Options are the keepalive settings a consumer should apply to the
// websocket connection it opens from a Dialer.
type Options struct {
	PingInterval time.Duration
	PongTimeout  time.Duration
}

func (o *Options) Validate() error {
	if o.PingInterval < time.Second {
		return fmt.Errorf("ping_interval must be at least 1s")
	}

	if o.PongTimeout < time.Second {
		return fmt.Errorf("pong_timeout must be at least 1s")
	}

	return nil
}

func DefaultOptions() Options {
	return Options{
		PingInterval: 5 * time.Second,
		PongTimeout:  15 * time.Second,
	}
}
