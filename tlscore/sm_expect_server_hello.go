// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"github.com/tinytls/tinytls/ciphersuite"
	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/tlserrors"
)

type smExpectServerHello struct {
}

func (*smExpectServerHello) expectation() expectation {
	return expectation{
		contentType: handshake.ContentTypeHandshake,
		msgTypes:    []handshake.MsgType{handshake.MsgTypeServerHello},
	}
}

// ServerHello fixes the cipher suite. Negotiation happens before any
// transcript state exists, so a rejected hello leaves the session
// exactly as NewSession built it.
func (*smExpectServerHello) handle(sess *Session, msg *handshake.Message) (ConnState, error) {
	var hello handshake.MsgServerHello
	if err := hello.Parse(msg.Body); err != nil {
		return sess.stateID, tlserrors.ErrServerHelloParsing
	}
	if hello.CipherSuite == ciphersuite.TLS_EMPTY_RENEGOTIATION_INFO_SCSV {
		// the sentinel is a signal, not a suite, a peer selecting it is broken
		return sess.stateID, tlserrors.ErrCipherSuiteSentinelSelected
	}
	suite := sess.FindCipherSuite(hello.CipherSuite)
	if suite == nil {
		return sess.stateID, tlserrors.ErrCipherSuiteNotConfigured
	}
	sess.hctx.secrets.ServerRandom = hello.Random
	sess.hctx.startTranscript(suite)
	sess.hctx.hashMessage(msg)
	return StateAwaitCertificate, nil
}
