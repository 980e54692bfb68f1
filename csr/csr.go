// Package csr generates TLS private key and certificate signing
// request pairs with the lab's fixed subject.
package csr

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
)

// DefaultBits is the RSA key size used when the caller does not pick one.
const DefaultBits = 4096

var ErrNoCommonName = errors.New("common name is required")

func subject(cn string) pkix.Name {
	return pkix.Name{
		CommonName:   cn,
		Organization: []string{"Open Computing Facility"},
		Locality:     []string{"Berkeley"},
		Province:     []string{"California"},
		Country:      []string{"US"},
	}
}

// Generate returns a PEM private key and a PEM CSR for cn, with sans
// as additional DNS names.
func Generate(cn string, bits int, sans []string) (keyPEM, csrPEM []byte, err error) {
	if cn == "" {
		return nil, nil, ErrNoCommonName
	}
	if bits == 0 {
		bits = DefaultBits
	}

	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, err
	}

	template := x509.CertificateRequest{
		Subject:            subject(cn),
		SignatureAlgorithm: x509.SHA256WithRSA,
		DNSNames:           sans,
	}
	der, err := x509.CreateCertificateRequest(rand.Reader, &template, key)
	if err != nil {
		return nil, nil, err
	}

	keyPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	csrPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE REQUEST",
		Bytes: der,
	})
	return keyPEM, csrPEM, nil
}
