// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package ciphersuite

import (
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha512"
	"hash"
)

type impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384 struct {
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384) ID() ID {
	return TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384) KeyExchange() KeyExchange {
	return KeyExchangeECDHE
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384) NewHasher() hash.Hash {
	return sha512.New384()
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384) NewHMAC(key []byte) hash.Hash {
	return hmac.New(sha512.New384, key)
}

func (s *impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384) HashLen() int { return sha512.Size384 }

func (s *impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384) KeyLen() int { return 32 }

func (s *impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384) FixedIVLen() int { return 4 }

func (s *impl_TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384) NewAEAD(key []byte) cipher.AEAD {
	return NewGCMCipher(NewAesCipher(key))
}
