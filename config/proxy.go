package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// ProxyConfig describes an HTTP proxy between the client and the endpoint.
// The builder stores it as-is; consumers call Validate() before use.
type ProxyConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (p ProxyConfig) Validate() error {
	if p.Host == "" {
		return fmt.Errorf("%w: proxy host", ErrMissingArgument)
	}

	if p.Port <= 0 || p.Port > 65535 {
		return fmt.Errorf("%w: proxy port out of range: %d", ErrInvalidArgument, p.Port)
	}

	return nil
}

// URL renders the proxy address in the form expected by
// http.ProxyURL-style proxy callbacks.
func (p ProxyConfig) URL() *url.URL {
	u := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
	}

	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}

	return u
}
