// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"crypto/x509"
	"hash"

	"github.com/tinytls/tinytls/ciphersuite"
	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/keys"
	"github.com/tinytls/tinytls/tlsrand"
)

// Everything the handshake accumulates between hello and traffic.
// Fields fill in progressively; the initialization order is part of the
// protocol and touching a field before its step panics rather than
// silently defaulting.
//
// Initialization order:
//  1. hostname, client random           - at session start
//  2. clientHelloRaw                    - first outbound message, buffered
//  3. suite, transcriptHasher           - immediately after ServerHello
//  4. serverCertChain, serverLeaf       - after Certificate
//  5. serverKxParams/scheme/sig, peer key - after ServerKeyExchange
//  6. master secret, key block          - after ServerHelloDone flight
type handshakeContext struct {
	hostname string

	// wire form of our hello, buffered because the transcript hash
	// algorithm is unknown until the suite is negotiated
	clientHelloRaw []byte

	suite            ciphersuite.Suite // nil until negotiated
	transcriptHasher hash.Hash         // nil until suite is known

	serverCertChain [][]byte
	serverLeaf      *x509.Certificate

	serverKxParams    []byte
	serverKxScheme    handshake.SignatureScheme
	serverKxSignature []byte
	serverPublicKey   []byte

	secrets keys.SessionSecrets

	// pending record protection keys, picked up by the record layer
	// when ChangeCipherSpec commits them
	clientWriteKeys ciphersuite.SymmetricKeys
	serverWriteKeys ciphersuite.SymmetricKeys

	clientRandomSet bool
}

func newHandshakeContext(hostname string) *handshakeContext {
	return &handshakeContext{
		hostname: hostname,
		secrets:  keys.ForClient(),
	}
}

// client random is generated exactly once, before the first outbound message
func (hctx *handshakeContext) generateClientRandom(rnd tlsrand.Rand) {
	if hctx.clientRandomSet {
		panic("client random generated twice")
	}
	rnd.Read(hctx.secrets.ClientRandom[:])
	hctx.clientRandomSet = true
}

// startTranscript runs exactly once, immediately after cipher-suite
// negotiation. The buffered ClientHello is the first message hashed, so
// the accumulator observes the full exchange from the beginning.
func (hctx *handshakeContext) startTranscript(suite ciphersuite.Suite) {
	if hctx.transcriptHasher != nil {
		panic("transcript hash initialized twice")
	}
	if len(hctx.clientHelloRaw) == 0 {
		panic("transcript started before client hello was built")
	}
	hctx.suite = suite
	hctx.transcriptHasher = suite.NewHasher()
	_, _ = hctx.transcriptHasher.Write(hctx.clientHelloRaw)
}

// hashMessage feeds one message, in wire order, sent and received alike.
// Calling it before startTranscript is a bug in the state machine.
func (hctx *handshakeContext) hashMessage(msg *handshake.Message) {
	if hctx.transcriptHasher == nil {
		panic("message hashed before transcript hash was initialized")
	}
	msg.AddToHash(hctx.transcriptHasher)
}

// transcriptHash snapshots the running hash without disturbing it.
func (hctx *handshakeContext) transcriptHash() ciphersuite.Hash {
	if hctx.transcriptHasher == nil {
		panic("transcript hash requested before initialization")
	}
	var h ciphersuite.Hash
	h.SetSum(hctx.transcriptHasher)
	return h
}
