// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/tlserrors"
)

type smExpectCertificate struct {
}

func (*smExpectCertificate) expectation() expectation {
	return expectation{
		contentType: handshake.ContentTypeHandshake,
		msgTypes:    []handshake.MsgType{handshake.MsgTypeCertificate},
	}
}

func (*smExpectCertificate) handle(sess *Session, msg *handshake.Message) (ConnState, error) {
	var cert handshake.MsgCertificate
	if err := cert.Parse(msg.Body); err != nil {
		return sess.stateID, tlserrors.ErrCertificateParsing
	}
	if cert.CertificatesLength == 0 {
		return sess.stateID, tlserrors.ErrCertificateChainEmpty
	}
	chain := cert.Chain()
	leaf, err := sess.config.Roots.VerifyServerChain(chain, sess.hctx.hostname)
	if err != nil {
		return sess.stateID, tlserrors.ErrCertificateInvalid
	}
	sess.hctx.serverCertChain = chain
	sess.hctx.serverLeaf = leaf
	sess.hctx.hashMessage(msg)
	return StateAwaitServerKeyExchange, nil
}
