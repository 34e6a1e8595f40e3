// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinytls/tinytls/ciphersuite"
)

func TestClientHelloRoundTrip(t *testing.T) {
	msg := MsgClientHello{
		CipherSuites: []ciphersuite.ID{
			ciphersuite.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
			ciphersuite.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			ciphersuite.TLS_EMPTY_RENEGOTIATION_INFO_SCSV,
		},
	}
	for i := range msg.Random {
		msg.Random[i] = byte(i * 3)
	}
	msg.Extensions.ServerNameSet = true
	msg.Extensions.ServerName = "host.example"
	msg.Extensions.SupportedGroupsSet = true
	msg.Extensions.SupportedGroups.Add(GroupX25519)
	msg.Extensions.SignatureAlgorithmsSet = true
	msg.Extensions.SignatureAlgorithms.Add(RSA_PKCS1_SHA256)
	msg.Extensions.SignatureAlgorithms.Add(ECDSA_SECP256R1_SHA256)
	msg.Extensions.ECPointFormatsSet = true

	var parsed MsgClientHello
	require.NoError(t, parsed.Parse(msg.Write(nil)))
	require.Equal(t, msg.Random, parsed.Random)
	require.Equal(t, msg.CipherSuites, parsed.CipherSuites)
	require.True(t, parsed.Extensions.ServerNameSet)
	require.Equal(t, "host.example", parsed.Extensions.ServerName)
	require.True(t, parsed.Extensions.SupportedGroupsSet)
	require.Equal(t, msg.Extensions.SupportedGroups, parsed.Extensions.SupportedGroups)
	require.Equal(t, msg.Extensions.SignatureAlgorithms, parsed.Extensions.SignatureAlgorithms)
	require.True(t, parsed.Extensions.ECPointFormatsSet)
}

func TestServerHelloParse(t *testing.T) {
	msg := MsgServerHello{CipherSuite: ciphersuite.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384}
	msg.Random[0] = 0xFF

	var parsed MsgServerHello
	require.NoError(t, parsed.Parse(msg.Write(nil)))
	require.Equal(t, msg.Random, parsed.Random)
	require.Equal(t, msg.CipherSuite, parsed.CipherSuite)

	// trailing garbage rejected
	require.Error(t, parsed.Parse(append(msg.Write(nil), 0)))
	// truncated rejected
	require.Error(t, parsed.Parse(msg.Write(nil)[:10]))
}

func TestCertificateRoundTrip(t *testing.T) {
	var msg MsgCertificate
	msg.Certificates[0] = []byte("leaf der bytes")
	msg.Certificates[1] = []byte("intermediate der bytes")
	msg.CertificatesLength = 2

	var parsed MsgCertificate
	require.NoError(t, parsed.Parse(msg.Write(nil)))
	require.Equal(t, 2, parsed.CertificatesLength)
	require.Equal(t, [][]byte{[]byte("leaf der bytes"), []byte("intermediate der bytes")}, parsed.Chain())
}

func TestServerKeyExchangeRoundTrip(t *testing.T) {
	msg := MsgServerKeyExchange{
		Group:     GroupX25519,
		PublicKey: []byte{1, 2, 3, 4},
		Scheme:    RSA_PSS_RSAE_SHA256,
		Signature: []byte{9, 8, 7},
	}
	body := msg.Write(nil)

	var parsed MsgServerKeyExchange
	require.NoError(t, parsed.Parse(body))
	require.Equal(t, GroupX25519, parsed.Group)
	require.Equal(t, msg.PublicKey, parsed.PublicKey)
	require.Equal(t, msg.Scheme, parsed.Scheme)
	require.Equal(t, msg.Signature, parsed.Signature)
	// params cover curve_type, group and public key, exactly the signed prefix
	require.Equal(t, body[:4+len(msg.PublicKey)], parsed.Params)

	// non named_curve rejected
	bad := append([]byte{}, body...)
	bad[0] = 1
	require.ErrorIs(t, parsed.Parse(bad), ErrServerKeyExchangeCurveType)
}

func TestServerHelloDoneParse(t *testing.T) {
	var msg MsgServerHelloDone
	require.NoError(t, msg.Parse(nil))
	require.Error(t, msg.Parse([]byte{0}))
}

func TestFinishedRoundTrip(t *testing.T) {
	var msg MsgFinished
	for i := range msg.VerifyData {
		msg.VerifyData[i] = byte(i)
	}
	var parsed MsgFinished
	require.NoError(t, parsed.Parse(msg.Write(nil)))
	require.Equal(t, msg.VerifyData, parsed.VerifyData)

	require.Error(t, parsed.Parse(make([]byte, 11)))
	require.Error(t, parsed.Parse(make([]byte, 13)))
}

func TestWriteRecordLayout(t *testing.T) {
	msg := Message{
		ContentType: ContentTypeHandshake,
		MsgType:     MsgTypeClientHello,
		Body:        []byte{0xAA, 0xBB},
	}
	wire := msg.WriteRecord(nil)
	require.Equal(t, []byte{
		byte(ContentTypeHandshake), 3, 3, // record header
		0, 6, // record length: 4 byte handshake header + 2 byte body
		byte(MsgTypeClientHello), 0, 0, 2, // handshake header
		0xAA, 0xBB,
	}, wire)
}

func TestAddToHashRejectsNonHandshake(t *testing.T) {
	msg := Message{ContentType: ContentTypeChangeCipherSpec, Body: []byte{1}}
	require.Panics(t, func() { msg.AddToHash(nil) })
}
