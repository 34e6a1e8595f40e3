// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package ciphersuite

import (
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"hash"
)

type impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256 struct {
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256) ID() ID {
	return TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256) KeyExchange() KeyExchange {
	return KeyExchangeECDHE
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256) NewHasher() hash.Hash {
	return sha256.New()
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256) NewHMAC(key []byte) hash.Hash {
	return hmac.New(sha256.New, key)
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256) HashLen() int { return sha256.Size }

func (s *impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256) KeyLen() int { return 16 }

// GCM in TLS 1.2 has a 4-byte implicit IV, explicit part travels per record
func (s *impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256) FixedIVLen() int { return 4 }

func (s *impl_TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256) NewAEAD(key []byte) cipher.AEAD {
	return NewGCMCipher(NewAesCipher(key))
}
