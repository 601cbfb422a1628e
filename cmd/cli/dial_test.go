package main

import (
	"context"
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
)

func writeCA(t *testing.T) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "vidshare-test"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "ca.pem")
	if err := os.WriteFile(p, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func Test_bearerCreds(t *testing.T) {
	b := bearerCreds{token: "abc", secure: true}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil || md["authorization"] != "Bearer abc" {
		t.Fatalf("metadata: %v %v", md, err)
	}
	if !b.RequireTransportSecurity() {
		t.Fatal("secure creds must require TLS")
	}
	if (bearerCreds{token: "abc"}).RequireTransportSecurity() {
		t.Fatal("plaintext creds must not require TLS")
	}
}

func Test_transport_creds(t *testing.T) {
	cases := []struct {
		name  string
		tr    transport
		proto string
	}{
		{"plaintext", transport{plaintext: true}, "insecure"},
		{"skip verify", transport{skipCheck: true}, "tls"},
		{"system roots", transport{}, "tls"},
		{"custom CA", transport{caPath: writeCA(t)}, "tls"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cr, err := c.tr.creds()
			if err != nil {
				t.Fatalf("creds: %v", err)
			}
			if got := cr.Info().SecurityProtocol; got != c.proto {
				t.Fatalf("protocol = %q, want %q", got, c.proto)
			}
		})
	}
}

func Test_transport_creds_Errors(t *testing.T) {
	if _, err := (transport{caPath: filepath.Join(t.TempDir(), "missing.pem")}).creds(); err == nil {
		t.Fatal("want error for missing CA file")
	}
	bad := filepath.Join(t.TempDir(), "bad.pem")
	if err := os.WriteFile(bad, []byte("not a cert"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := (transport{caPath: bad}).creds(); err == nil {
		t.Fatal("want error for bad CA file")
	}
}

func Test_dial_Lazy(t *testing.T) {
	// grpc.NewClient does not connect until the first call
	conn, err := dial("127.0.0.1:1", transport{plaintext: true}, "tok")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	_ = conn.Close()

	if _, err := dial("127.0.0.1:1", transport{caPath: "/nonexistent"}, ""); err == nil {
		t.Fatal("want error for bad transport")
	}
}
