// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

// TLS 1.2 pseudorandom function, P_hash based [rfc5246:5]

// TODO - rewrite to avoid allocations

package keys

import (
	"github.com/tinytls/tinytls/ciphersuite"
)

func pHash(suite ciphersuite.Suite, secret, seed []byte, outLength int) []byte {
	result := make([]byte, 0, outLength+suite.HashLen())
	// A(1) = HMAC(secret, seed), A(i+1) = HMAC(secret, A(i))
	hm := suite.NewHMAC(secret)
	_, _ = hm.Write(seed)
	a := hm.Sum(nil)
	for len(result) < outLength {
		hm = suite.NewHMAC(secret)
		_, _ = hm.Write(a)
		_, _ = hm.Write(seed)
		result = hm.Sum(result)

		hm = suite.NewHMAC(secret)
		_, _ = hm.Write(a)
		a = hm.Sum(nil)
	}
	return result[:outLength]
}

func PRF(suite ciphersuite.Suite, secret []byte, label string, seed []byte, outLength int) []byte {
	labelSeed := make([]byte, 0, len(label)+len(seed))
	labelSeed = append(labelSeed, label...)
	labelSeed = append(labelSeed, seed...)
	return pHash(suite, secret, labelSeed, outLength)
}
