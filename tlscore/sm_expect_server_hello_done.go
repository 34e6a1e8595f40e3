// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/keys"
	"github.com/tinytls/tinytls/tlserrors"
)

type smExpectServerHelloDone struct {
}

func (*smExpectServerHelloDone) expectation() expectation {
	return expectation{
		contentType: handshake.ContentTypeHandshake,
		msgTypes:    []handshake.MsgType{handshake.MsgTypeServerHelloDone},
	}
}

// ServerHelloDone triggers the whole client flight: ClientKeyExchange,
// ChangeCipherSpec, Finished. All three are queued atomically, the
// transport drains them later. ChangeCipherSpec is not a handshake
// message and never enters the transcript.
func (*smExpectServerHelloDone) handle(sess *Session, msg *handshake.Message) (ConnState, error) {
	var done handshake.MsgServerHelloDone
	if err := done.Parse(msg.Body); err != nil {
		return sess.stateID, tlserrors.ErrServerHelloDoneParsing
	}
	sess.hctx.hashMessage(msg)

	share := keys.GenerateX25519(sess.config.Rnd)
	preMaster, err := share.SharedSecret(sess.hctx.serverPublicKey)
	if err != nil {
		return sess.stateID, tlserrors.ErrPeerKeyShareInvalid
	}
	sess.hctx.secrets.InitFromPreMaster(sess.hctx.suite, preMaster)

	ckx := handshake.MsgClientKeyExchange{PublicKey: share.Public[:]}
	ckxMsg := handshake.Message{
		ContentType: handshake.ContentTypeHandshake,
		MsgType:     handshake.MsgTypeClientKeyExchange,
		Body:        ckx.Write(nil),
	}
	sess.hctx.hashMessage(&ckxMsg)
	sess.sendQueue.PushBack(ckxMsg)

	sess.sendQueue.PushBack(handshake.Message{
		ContentType: handshake.ContentTypeChangeCipherSpec,
		Body:        []byte{1},
	})

	transcript := sess.hctx.transcriptHash()
	fin := handshake.MsgFinished{
		VerifyData: sess.hctx.secrets.ComputeClientFinished(sess.hctx.suite, transcript.GetValue()),
	}
	finMsg := handshake.Message{
		ContentType: handshake.ContentTypeHandshake,
		MsgType:     handshake.MsgTypeFinished,
		Body:        fin.Write(nil),
	}
	sess.hctx.hashMessage(&finMsg)
	sess.sendQueue.PushBack(finMsg)

	return StateAwaitChangeCipherSpec, nil
}
