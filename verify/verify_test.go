// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package verify

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tinytls/tinytls/handshake"
)

func testCertificate(t *testing.T, key crypto.Signer, hostname string) *x509.Certificate {
	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: hostname},
		DNSNames:              []string{hostname},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, key.Public(), key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return cert
}

func TestVerifyServerChain(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	cert := testCertificate(t, key, "good.example")

	store := EmptyRootCertStore()
	store.Add(cert)

	leaf, err := store.VerifyServerChain([][]byte{cert.Raw}, "good.example")
	require.NoError(t, err)
	require.Equal(t, cert.Raw, leaf.Raw)

	_, err = store.VerifyServerChain([][]byte{cert.Raw}, "bad.example")
	require.Error(t, err)

	_, err = store.VerifyServerChain(nil, "good.example")
	require.Error(t, err)

	_, err = store.VerifyServerChain([][]byte{[]byte("not der")}, "good.example")
	require.Error(t, err)

	empty := EmptyRootCertStore()
	_, err = empty.VerifyServerChain([][]byte{cert.Raw}, "good.example")
	require.Error(t, err)
}

func TestKeyExchangeSignatureInput(t *testing.T) {
	clientRandom := [32]byte{1}
	serverRandom := [32]byte{2}
	params := []byte{3, 4, 5}
	data := KeyExchangeSignatureInput(clientRandom, serverRandom, params)
	require.Len(t, data, 67)
	require.Equal(t, clientRandom[:], data[:32])
	require.Equal(t, serverRandom[:], data[32:64])
	require.Equal(t, params, data[64:])
}

func TestVerifyKeyExchangeSignatureRSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	cert := testCertificate(t, key, "rsa.example")
	data := []byte("signed server params")
	digest := sha256.Sum256(data)

	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	require.NoError(t, err)
	require.NoError(t, VerifyKeyExchangeSignature(cert, handshake.RSA_PKCS1_SHA256, data, sig))
	require.Error(t, VerifyKeyExchangeSignature(cert, handshake.RSA_PKCS1_SHA256, []byte("other"), sig))

	pssSig, err := rsa.SignPSS(rand.Reader, key, crypto.SHA256, digest[:], nil)
	require.NoError(t, err)
	require.NoError(t, VerifyKeyExchangeSignature(cert, handshake.RSA_PSS_RSAE_SHA256, data, pssSig))

	// scheme and signature must agree
	require.Error(t, VerifyKeyExchangeSignature(cert, handshake.RSA_PSS_RSAE_SHA256, data, sig))
}

func TestVerifyKeyExchangeSignatureECDSA(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	cert := testCertificate(t, key, "ecdsa.example")
	data := []byte("signed server params")
	digest := sha256.Sum256(data)

	sig, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	require.NoError(t, err)
	require.NoError(t, VerifyKeyExchangeSignature(cert, handshake.ECDSA_SECP256R1_SHA256, data, sig))
	require.Error(t, VerifyKeyExchangeSignature(cert, handshake.ECDSA_SECP256R1_SHA256, []byte("other"), sig))

	// RSA scheme with an ECDSA certificate
	require.ErrorIs(t,
		VerifyKeyExchangeSignature(cert, handshake.RSA_PKCS1_SHA256, data, sig),
		ErrCertificateWrongPublicKeyType)
}

func TestVerifyKeyExchangeSignatureUnsupportedScheme(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	cert := testCertificate(t, key, "rsa.example")
	err = VerifyKeyExchangeSignature(cert, handshake.SignatureScheme(0x0201), []byte("data"), []byte("sig"))
	require.ErrorIs(t, err, ErrSignatureSchemeUnsupported)
}
