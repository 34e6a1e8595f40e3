// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package keys

import (
	"errors"

	"golang.org/x/crypto/curve25519"

	"github.com/tinytls/tinytls/tlsrand"
)

var ErrBadPeerPublicKey = errors.New("peer x25519 public key rejected")

// Ephemeral x25519 key pair for one ECDHE exchange.
type KeyShare struct {
	Secret [32]byte
	Public [32]byte
}

func GenerateX25519(rnd tlsrand.Rand) KeyShare {
	var ks KeyShare
	rnd.Read(ks.Secret[:])
	public, err := curve25519.X25519(ks.Secret[:], curve25519.Basepoint)
	if err != nil {
		panic("x25519 basepoint multiplication failed: " + err.Error())
	}
	copy(ks.Public[:], public)
	return ks
}

// SharedSecret is the ECDHE pre-master secret [rfc8422:5.10].
func (ks *KeyShare) SharedSecret(peerPublic []byte) ([]byte, error) {
	shared, err := curve25519.X25519(ks.Secret[:], peerPublic)
	if err != nil {
		return nil, ErrBadPeerPublicKey
	}
	return shared, nil
}
