// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package ciphersuite

import (
	"crypto/cipher"
	"hash"
)

type ID uint16

const (
	// ECDHE suites only, static RSA key exchange is not coming back
	TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256       ID = 0xC02F
	TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384       ID = 0xC030
	TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256 ID = 0xCCA8

	// [rfc5746] advertised to signal we never renegotiate.
	// This is a signalling value, not a suite: GetSuite never resolves it.
	TLS_EMPTY_RENEGOTIATION_INFO_SCSV ID = 0x00FF
)

func (id ID) String() string {
	switch id {
	case TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256:
		return "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256"
	case TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384:
		return "TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384"
	case TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256:
		return "TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256"
	case TLS_EMPTY_RENEGOTIATION_INFO_SCSV:
		return "TLS_EMPTY_RENEGOTIATION_INFO_SCSV"
	default:
		return "<unknown>"
	}
}

type KeyExchange byte

const (
	KeyExchangeECDHE KeyExchange = 1
)

type Suite interface {
	ID() ID
	KeyExchange() KeyExchange
	// used for the handshake transcript hash and the PRF. Unfortunately, allocates.
	NewHasher() hash.Hash
	NewHMAC(key []byte) hash.Hash
	HashLen() int
	// bulk cipher key schedule geometry, consumed by the record layer
	KeyLen() int
	FixedIVLen() int
	NewAEAD(key []byte) cipher.AEAD
}

var suite_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256 Suite = &impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256{}
var suite_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384 Suite = &impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384{}
var suite_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256 Suite = &impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256{}

// GetSuite returns nil for identifiers we do not implement,
// including the renegotiation sentinel. Callers must treat nil
// as a negotiation failure, never as a default.
func GetSuite(num ID) Suite {
	switch num {
	case TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256:
		return suite_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256
	case TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384:
		return suite_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384
	case TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256:
		return suite_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256
	}
	return nil
}

// DefaultSuites returns the built-in preference order.
func DefaultSuites() []Suite {
	return []Suite{
		suite_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
		suite_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		suite_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	}
}
