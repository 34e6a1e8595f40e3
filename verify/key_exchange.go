// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package verify

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"errors"

	"github.com/tinytls/tinytls/handshake"
)

var ErrCertificateWrongPublicKeyType = errors.New("certificate has wrong public key type for signature scheme")
var ErrSignatureSchemeUnsupported = errors.New("signature scheme unsupported")

// KeyExchangeSignatureInput is what the server signed:
// client_random + server_random + ServerECDHParams wire bytes [rfc5246:7.4.3].
func KeyExchangeSignatureInput(clientRandom, serverRandom [32]byte, params []byte) []byte {
	data := make([]byte, 0, 64+len(params))
	data = append(data, clientRandom[:]...)
	data = append(data, serverRandom[:]...)
	return append(data, params...)
}

func hashForScheme(scheme handshake.SignatureScheme) (crypto.Hash, bool) {
	switch scheme {
	case handshake.RSA_PKCS1_SHA256, handshake.RSA_PSS_RSAE_SHA256, handshake.ECDSA_SECP256R1_SHA256:
		return crypto.SHA256, true
	case handshake.RSA_PKCS1_SHA384, handshake.RSA_PSS_RSAE_SHA384, handshake.ECDSA_SECP384R1_SHA384:
		return crypto.SHA384, true
	case handshake.RSA_PKCS1_SHA512:
		return crypto.SHA512, true
	}
	return 0, false
}

// VerifyKeyExchangeSignature checks the ServerKeyExchange signature with
// the leaf certificate's public key. Rejection is fatal for the session.
func VerifyKeyExchangeSignature(leaf *x509.Certificate, scheme handshake.SignatureScheme, data, signature []byte) error {
	hashAlg, ok := hashForScheme(scheme)
	if !ok {
		return ErrSignatureSchemeUnsupported
	}
	hasher := hashAlg.New()
	_, _ = hasher.Write(data)
	digest := hasher.Sum(nil)

	switch scheme {
	case handshake.RSA_PKCS1_SHA256, handshake.RSA_PKCS1_SHA384, handshake.RSA_PKCS1_SHA512:
		publicKey, ok := leaf.PublicKey.(*rsa.PublicKey)
		if !ok {
			return ErrCertificateWrongPublicKeyType
		}
		return rsa.VerifyPKCS1v15(publicKey, hashAlg, digest, signature)
	case handshake.RSA_PSS_RSAE_SHA256, handshake.RSA_PSS_RSAE_SHA384:
		publicKey, ok := leaf.PublicKey.(*rsa.PublicKey)
		if !ok {
			return ErrCertificateWrongPublicKeyType
		}
		return rsa.VerifyPSS(publicKey, hashAlg, digest, signature, nil)
	case handshake.ECDSA_SECP256R1_SHA256, handshake.ECDSA_SECP384R1_SHA384:
		publicKey, ok := leaf.PublicKey.(*ecdsa.PublicKey)
		if !ok {
			return ErrCertificateWrongPublicKeyType
		}
		if !ecdsa.VerifyASN1(publicKey, digest, signature) {
			return errors.New("ecdsa signature verification failed")
		}
		return nil
	}
	return ErrSignatureSchemeUnsupported
}
