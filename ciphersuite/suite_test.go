// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package ciphersuite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSuite(t *testing.T) {
	for _, id := range []ID{
		TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
	} {
		suite := GetSuite(id)
		require.NotNil(t, suite, id.String())
		require.Equal(t, id, suite.ID())
		require.Equal(t, KeyExchangeECDHE, suite.KeyExchange())
	}
	require.Nil(t, GetSuite(TLS_EMPTY_RENEGOTIATION_INFO_SCSV))
	require.Nil(t, GetSuite(0x1301)) // TLS 1.3 suite, not ours
}

func TestSuiteGeometry(t *testing.T) {
	for _, tt := range []struct {
		id      ID
		hashLen int
		keyLen  int
		ivLen   int
	}{
		{TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256, 32, 16, 4},
		{TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384, 48, 32, 4},
		{TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256, 32, 32, 12},
	} {
		suite := GetSuite(tt.id)
		require.Equal(t, tt.hashLen, suite.HashLen(), tt.id.String())
		require.Equal(t, tt.keyLen, suite.KeyLen(), tt.id.String())
		require.Equal(t, tt.ivLen, suite.FixedIVLen(), tt.id.String())
		require.Equal(t, tt.hashLen, suite.NewHasher().Size())
		require.Equal(t, tt.hashLen, suite.NewHMAC([]byte("key")).Size())

		aead := suite.NewAEAD(make([]byte, tt.keyLen))
		require.Equal(t, 12, aead.NonceSize())
	}
}

func TestDefaultSuitesPreferenceOrder(t *testing.T) {
	suites := DefaultSuites()
	require.Len(t, suites, 3)
	require.Equal(t, TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256, suites[0].ID())
	require.Equal(t, TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384, suites[1].ID())
	require.Equal(t, TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256, suites[2].ID())
}

func TestHashSnapshot(t *testing.T) {
	suite := GetSuite(TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256)
	hasher := suite.NewHasher()
	_, _ = hasher.Write([]byte("transcript so far"))

	var snap Hash
	snap.SetSum(hasher)
	require.Equal(t, suite.HashLen(), snap.Len())

	// snapshot must not disturb the running hash
	_, _ = hasher.Write([]byte("more"))
	var snap2 Hash
	snap2.SetSum(hasher)
	require.NotEqual(t, snap.GetValue(), snap2.GetValue())
}
