// Package transport turns a built MessagingConfig into ready-to-use
// connection inputs. It never opens a connection itself; that is left
// to the messaging client.
package transport

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sahib/wsmq/config"
)

// Dialer builds a websocket dialer with the proxy and trust store of
// `cfg` applied. The caller dials cfg.EndpointURI() with it.
func Dialer(cfg config.MessagingConfig, opts Options) (*websocket.Dialer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: opts.PongTimeout,
	}

	if proxy, ok := cfg.Proxy(); ok {
		if err := proxy.Validate(); err != nil {
			return nil, err
		}

		dialer.Proxy = http.ProxyURL(proxy.URL())
	}

	if trustStore, ok := cfg.TrustStore(); ok {
		tlsConfig, err := trustStore.TLSConfig()
		if err != nil {
			return nil, err
		}

		dialer.TLSClientConfig = tlsConfig
	}

	return dialer, nil
}
