package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TrustStoreConfig points to a PEM bundle of CA certificates that the
// client should trust instead of the system pool. The builder stores it
// as-is; consumers call Validate() or TLSConfig() before use.
type TrustStoreConfig struct {
	Location string
}

func (t TrustStoreConfig) Validate() error {
	if t.Location == "" {
		return fmt.Errorf("%w: trust store location", ErrMissingArgument)
	}

	return nil
}

// TLSConfig loads the bundle and returns a TLS config with the contained
// certificates as root CAs.
func (t TrustStoreConfig) TLSConfig() (*tls.Config, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	pemData, err := os.ReadFile(t.Location)
	if err != nil {
		return nil, fmt.Errorf("read trust store: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemData) {
		return nil, fmt.Errorf("%w: no certificates in %s", ErrInvalidArgument, t.Location)
	}

	return &tls.Config{RootCAs: pool}, nil
}
