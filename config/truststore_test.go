package config

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeTestCA(t *testing.T) string {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "wsmq-test-ca"},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ca.pem")
	pemData := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, os.WriteFile(path, pemData, 0o600))
	return path
}

func TestTrustStoreTLSConfig(t *testing.T) {
	ts := TrustStoreConfig{Location: writeTestCA(t)}

	tlsConfig, err := ts.TLSConfig()
	require.NoError(t, err)
	require.NotNil(t, tlsConfig.RootCAs)
}

func TestTrustStoreTLSConfigFail(t *testing.T) {
	_, err := TrustStoreConfig{}.TLSConfig()
	require.ErrorIs(t, err, ErrMissingArgument)

	_, err = TrustStoreConfig{Location: "/does/not/exist.pem"}.TLSConfig()
	require.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not a certificate"), 0o600))

	_, err = TrustStoreConfig{Location: garbage}.TLSConfig()
	require.ErrorIs(t, err, ErrInvalidArgument)
}
