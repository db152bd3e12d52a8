// Package config builds the immutable configuration of a websocket
// messaging client: a validated and normalized endpoint URI plus
// reconnect, proxy and trust store settings.
package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var allowedSchemes = []string{"wss", "ws"}

const wsPath = "/ws/"

// wsPathPattern is matched against the full URI string, not only the path
// component. An endpoint that carries a version suffix anywhere in its
// string form counts as already versioned.
var wsPathPattern = regexp.MustCompile(`/ws/(1|2)/?`)

// MessagingConfig is the frozen result of a Builder. It is safe to share
// between goroutines; all accessors return copies.
type MessagingConfig struct {
	schemaVersion SchemaVersion
	endpointURI   url.URL
	reconnect     bool
	proxy         *ProxyConfig
	trustStore    *TrustStoreConfig
}

func (c MessagingConfig) SchemaVersion() SchemaVersion {
	return c.schemaVersion
}

// EndpointURI is the normalized endpoint. Its path is guaranteed to end
// in the websocket path segment matching SchemaVersion.
func (c MessagingConfig) EndpointURI() *url.URL {
	u := c.endpointURI
	return &u
}

func (c MessagingConfig) ReconnectEnabled() bool {
	return c.reconnect
}

// Proxy returns the proxy settings, if any were configured.
func (c MessagingConfig) Proxy() (ProxyConfig, bool) {
	if c.proxy == nil {
		return ProxyConfig{}, false
	}

	return *c.proxy, true
}

// TrustStore returns the trust store settings, if any were configured.
func (c MessagingConfig) TrustStore() (TrustStoreConfig, bool) {
	if c.trustStore == nil {
		return TrustStoreConfig{}, false
	}

	return *c.trustStore, true
}

// Builder collects the inputs for a MessagingConfig. Setters are fluent;
// the first setter that fails poisons the builder and Build() returns
// that error. Other fields can still be set in the meantime.
type Builder struct {
	schemaVersion SchemaVersion
	endpointURI   *url.URL
	reconnect     bool
	proxy         *ProxyConfig
	trustStore    *TrustStoreConfig
	err           error
}

func NewBuilder() *Builder {
	return &Builder{
		schemaVersion: LatestSchemaVersion,
		reconnect:     true,
	}
}

func (b *Builder) saveErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) SchemaVersion(v SchemaVersion) *Builder {
	if v == SchemaVersionInvalid {
		b.saveErr(fmt.Errorf("%w: schema version", ErrMissingArgument))
		return b
	}

	if err := v.Validate(); err != nil {
		b.saveErr(err)
		return b
	}

	b.schemaVersion = v
	return b
}

// Endpoint parses and stores the endpoint URI. The URI is stored as given;
// path normalization happens in Build().
func (b *Builder) Endpoint(endpoint string) *Builder {
	if endpoint == "" {
		b.saveErr(fmt.Errorf("%w: endpoint", ErrMissingArgument))
		return b
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		b.saveErr(fmt.Errorf("%w: parse endpoint: %v", ErrInvalidArgument, err))
		return b
	}

	var allowed bool
	for _, scheme := range allowedSchemes {
		if u.Scheme == scheme {
			allowed = true
			break
		}
	}

	if !allowed {
		b.saveErr(fmt.Errorf(
			"%w: scheme %q not allowed for endpoint URI, must be one of %v",
			ErrInvalidArgument, u.Scheme, allowedSchemes,
		))
		return b
	}

	b.endpointURI = u
	return b
}

func (b *Builder) ReconnectEnabled(on bool) *Builder {
	b.reconnect = on
	return b
}

func (b *Builder) Proxy(p *ProxyConfig) *Builder {
	if p == nil {
		b.saveErr(fmt.Errorf("%w: proxy configuration", ErrMissingArgument))
		return b
	}

	cpy := *p
	b.proxy = &cpy
	return b
}

func (b *Builder) TrustStore(t *TrustStoreConfig) *Builder {
	if t == nil {
		b.saveErr(fmt.Errorf("%w: trust store configuration", ErrMissingArgument))
		return b
	}

	cpy := *t
	b.trustStore = &cpy
	return b
}

// Build normalizes the endpoint path and returns the frozen configuration.
// It does not mutate the builder, so calling it again yields an equal result.
func (b *Builder) Build() (MessagingConfig, error) {
	if b.err != nil {
		return MessagingConfig{}, b.err
	}

	if b.endpointURI == nil {
		return MessagingConfig{}, fmt.Errorf("%w: endpoint", ErrMissingArgument)
	}

	endpoint, err := normalizeEndpoint(b.endpointURI, b.schemaVersion)
	if err != nil {
		return MessagingConfig{}, err
	}

	return MessagingConfig{
		schemaVersion: b.schemaVersion,
		endpointURI:   *endpoint,
		reconnect:     b.reconnect,
		proxy:         b.proxy,
		trustStore:    b.trustStore,
	}, nil
}

// normalizeEndpoint makes sure the endpoint path ends in the websocket
// path segment for `version`. If the URI carries no version suffix yet,
// one is appended. If it does, the embedded version has to agree with
// `version`.
func normalizeEndpoint(base *url.URL, version SchemaVersion) (*url.URL, error) {
	trimmed := strings.TrimRight(base.Path, "/")

	if !wsPathPattern.MatchString(base.String()) {
		// Resolving drops query and fragment of the base URI.
		return base.ResolveReference(&url.URL{
			Path: trimmed + wsPath + version.String(),
		}), nil
	}

	// The versions in the regex are single digits, so comparing the last
	// character of the path is enough.
	var pathVersion string
	if trimmed != "" {
		pathVersion = trimmed[len(trimmed)-1:]
	}

	if pathVersion != version.String() {
		return nil, fmt.Errorf(
			"%w: schema version %s and endpoint path version %q do not match; "+
				"remove the ws path from the endpoint or use the matching schema version",
			ErrInvalidArgument, version, pathVersion,
		)
	}

	u := *base
	u.Path = trimmed
	u.RawPath = ""
	return &u, nil
}
