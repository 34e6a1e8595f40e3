// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package ciphersuite

import (
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"hash"
)

type impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256 struct {
}

func (s *impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256) ID() ID {
	return TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256
}

func (s *impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256) KeyExchange() KeyExchange {
	return KeyExchangeECDHE
}

func (s *impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256) NewHasher() hash.Hash {
	return sha256.New()
}

func (s *impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256) NewHMAC(key []byte) hash.Hash {
	return hmac.New(sha256.New, key)
}

func (s *impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256) HashLen() int { return sha256.Size }

func (s *impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256) KeyLen() int { return 32 }

// ChaCha20-Poly1305 uses the whole 12-byte nonce as implicit IV [rfc7905]
func (s *impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256) FixedIVLen() int { return 12 }

func (s *impl_TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256) NewAEAD(key []byte) cipher.AEAD {
	return NewChacha20Poly1305(key)
}
