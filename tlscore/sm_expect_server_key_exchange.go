// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"errors"

	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/tlserrors"
	"github.com/tinytls/tinytls/verify"
)

type smExpectServerKeyExchange struct {
}

func (*smExpectServerKeyExchange) expectation() expectation {
	return expectation{
		contentType: handshake.ContentTypeHandshake,
		msgTypes:    []handshake.MsgType{handshake.MsgTypeServerKeyExchange},
	}
}

// The signature covers client_random || server_random || raw params, so
// the raw param bytes must survive parsing untouched.
func (*smExpectServerKeyExchange) handle(sess *Session, msg *handshake.Message) (ConnState, error) {
	var skx handshake.MsgServerKeyExchange
	if err := skx.Parse(msg.Body); err != nil {
		return sess.stateID, tlserrors.ErrServerKeyExchangeParsing
	}
	if skx.Group != handshake.GroupX25519 {
		return sess.stateID, tlserrors.ErrKeyExchangeGroupUnsupported
	}
	signed := verify.KeyExchangeSignatureInput(
		sess.hctx.secrets.ClientRandom, sess.hctx.secrets.ServerRandom, skx.Params)
	if err := verify.VerifyKeyExchangeSignature(sess.hctx.serverLeaf, skx.Scheme, signed, skx.Signature); err != nil {
		if errors.Is(err, verify.ErrSignatureSchemeUnsupported) {
			return sess.stateID, tlserrors.ErrSignatureSchemeUnsupported
		}
		return sess.stateID, tlserrors.ErrKeyExchangeSignatureInvalid
	}
	sess.hctx.serverKxParams = skx.Params
	sess.hctx.serverKxScheme = skx.Scheme
	sess.hctx.serverKxSignature = skx.Signature
	sess.hctx.serverPublicKey = skx.PublicKey
	sess.hctx.hashMessage(msg)
	return StateAwaitServerHelloDone, nil
}
