// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"crypto/hmac"

	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/tlserrors"
)

type smExpectFinished struct {
}

func (*smExpectFinished) expectation() expectation {
	return expectation{
		contentType: handshake.ContentTypeHandshake,
		msgTypes:    []handshake.MsgType{handshake.MsgTypeFinished},
	}
}

// The expected verify_data is computed over the transcript as it stood
// when the message arrived, so the snapshot must be taken before the
// Finished message itself is hashed.
func (*smExpectFinished) handle(sess *Session, msg *handshake.Message) (ConnState, error) {
	var fin handshake.MsgFinished
	if err := fin.Parse(msg.Body); err != nil {
		return sess.stateID, tlserrors.ErrFinishedParsing
	}
	transcript := sess.hctx.transcriptHash()
	expected := sess.hctx.secrets.ComputeServerFinished(sess.hctx.suite, transcript.GetValue())
	if !hmac.Equal(expected[:], fin.VerifyData[:]) {
		return sess.stateID, tlserrors.ErrFinishedVerificationFailed
	}
	sess.hctx.hashMessage(msg)
	return StateTraffic, nil
}
