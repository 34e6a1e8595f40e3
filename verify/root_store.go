// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package verify

import (
	"crypto/x509"

	"github.com/pkg/errors"
)

// Collection of trust anchors shared read-only between sessions.
type RootCertStore struct {
	pool *x509.CertPool
}

func EmptyRootCertStore() RootCertStore {
	return RootCertStore{pool: x509.NewCertPool()}
}

func SystemRootCertStore() (RootCertStore, error) {
	pool, err := x509.SystemCertPool()
	if err != nil {
		return RootCertStore{}, errors.Wrap(err, "loading system trust anchors")
	}
	return RootCertStore{pool: pool}, nil
}

func (s *RootCertStore) AddPEM(pemCerts []byte) bool {
	return s.pool.AppendCertsFromPEM(pemCerts)
}

func (s *RootCertStore) Add(cert *x509.Certificate) {
	s.pool.AddCert(cert)
}

// VerifyServerChain parses the DER entries (leaf first), validates the
// chain against the store for the given host name, and returns the leaf.
func (s *RootCertStore) VerifyServerChain(chainDER [][]byte, hostname string) (*x509.Certificate, error) {
	if len(chainDER) == 0 {
		return nil, errors.New("certificate chain is empty")
	}
	leaf, err := x509.ParseCertificate(chainDER[0])
	if err != nil {
		return nil, errors.Wrap(err, "parsing leaf certificate")
	}
	intermediates := x509.NewCertPool()
	for i, der := range chainDER[1:] {
		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing chain certificate %d", i+1)
		}
		intermediates.AddCert(cert)
	}
	_, err = leaf.Verify(x509.VerifyOptions{
		DNSName:       hostname,
		Roots:         s.pool,
		Intermediates: intermediates,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "validating chain for %q", hostname)
	}
	return leaf, nil
}
