// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/tlserrors"
)

type smExpectChangeCipherSpec struct {
}

func (*smExpectChangeCipherSpec) expectation() expectation {
	return expectation{
		contentType: handshake.ContentTypeChangeCipherSpec,
	}
}

// ChangeCipherSpec carries a single fixed byte and is excluded from the
// transcript. It commits the server write keys derived from the key block.
func (*smExpectChangeCipherSpec) handle(sess *Session, msg *handshake.Message) (ConnState, error) {
	if len(msg.Body) != 1 || msg.Body[0] != 1 {
		return sess.stateID, tlserrors.ErrChangeCipherSpecParsing
	}
	sess.hctx.clientWriteKeys, sess.hctx.serverWriteKeys = sess.hctx.secrets.KeyBlock(sess.hctx.suite)
	return StateAwaitFinished, nil
}
