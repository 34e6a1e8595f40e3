// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"github.com/tinytls/tinytls/ciphersuite"
	"github.com/tinytls/tinytls/tlsrand"
	"github.com/tinytls/tinytls/verify"
)

// Config is immutable after construction and shared by pointer between
// any number of sessions; concurrent reads need no locking because
// nothing ever writes.
type Config struct {
	// cipher suites in preference order
	CipherSuites []ciphersuite.Suite

	// trust anchors for server chain validation
	Roots verify.RootCertStore

	Rnd tlsrand.Rand
}

func NewConfig(roots verify.RootCertStore) *Config {
	return &Config{
		CipherSuites: ciphersuite.DefaultSuites(),
		Roots:        roots,
		Rnd:          tlsrand.CryptoRand(),
	}
}
