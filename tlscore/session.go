// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/tinytls/tinytls/ciphersuite"
	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/queue"
	"github.com/tinytls/tinytls/record"
	"github.com/tinytls/tinytls/tlserrors"
)

// Session drives one client handshake end to end. It owns the
// transcript, the deframer and the outbound queue; the caller owns the
// socket and pumps bytes through ReadTLS/WriteTLS.
//
// A session is single-threaded by contract: it is never shared between
// concurrent operations. Concurrent connections each get their own
// session over the same Config. Dropping a session at any point is
// safe, there is no cleanup handshake.
type Session struct {
	// trace identity for the caller's logs, no protocol meaning
	ID uuid.UUID

	config *Config
	hctx   *handshakeContext

	deframer  record.Deframer
	sendQueue queue.FIFO[handshake.Message]

	stateID ConnState
}

// NewSession builds the transcript bound to hostname, generates the
// client random, queues the ClientHello and starts waiting for
// ServerHello. The only failure mode is randomness exhaustion, which
// the rand provider escalates itself.
func NewSession(config *Config, hostname string) *Session {
	sess := &Session{
		ID:      uuid.New(),
		config:  config,
		hctx:    newHandshakeContext(hostname),
		stateID: StateAwaitServerHello,
	}
	sess.hctx.generateClientRandom(config.Rnd)
	sess.emitClientHello()
	return sess
}

func (sess *Session) String() string {
	return fmt.Sprintf("session %s [%s]", sess.ID, sess.stateID)
}

func (sess *Session) State() ConnState { return sess.stateID }

func (sess *Session) HandshakeComplete() bool { return sess.stateID == StateTraffic }

// CipherSuites returns the advertised identifiers: the configured
// suites in preference order, then the no-renegotiation sentinel.
// The sentinel is advertised for protocol compliance only; a peer
// selecting it fails negotiation.
func (sess *Session) CipherSuites() []ciphersuite.ID {
	ret := make([]ciphersuite.ID, 0, len(sess.config.CipherSuites)+1)
	for _, suite := range sess.config.CipherSuites {
		ret = append(ret, suite.ID())
	}
	return append(ret, ciphersuite.TLS_EMPTY_RENEGOTIATION_INFO_SCSV)
}

// FindCipherSuite scans the configured list only, never anything the
// peer proposes outside it. nil means negotiation failure, not default.
func (sess *Session) FindCipherSuite(id ciphersuite.ID) ciphersuite.Suite {
	for _, suite := range sess.config.CipherSuites {
		if suite.ID() == id {
			return suite
		}
	}
	return nil
}

// WantsRead is the transport's signal that we accept more bytes. The
// handshake always wants input; once traffic keys are up the record
// layer takes over the socket.
func (sess *Session) WantsRead() bool {
	return sess.stateID != StateTraffic
}

// WantsWrite is the sole backpressure signal to the transport loop.
func (sess *Session) WantsWrite() bool {
	return !sess.sendQueue.Empty()
}

// ReadTLS feeds raw transport bytes into the deframer. IO errors pass
// through verbatim. Complete messages pile up until ProcessIncoming.
func (sess *Session) ReadTLS(rd io.Reader) (int, error) {
	return sess.deframer.Read(rd)
}

// WriteTLS pops at most one queued message, encodes it and writes it in
// full. The message leaves the queue only once the sink accepted it, so
// a failed write never loses or half-serializes a message. An empty
// queue is a successful no-op.
func (sess *Session) WriteTLS(wr io.Writer) error {
	if sess.sendQueue.Empty() {
		return nil
	}
	msg := sess.sendQueue.Front()
	data := msg.WriteRecord(nil)
	if _, err := wr.Write(data); err != nil {
		return err // message stays queued, transport error passes through
	}
	_, _ = sess.sendQueue.PopFront()
	return nil
}

// ProcessIncoming dequeues deframed messages FIFO, wire arrival order,
// and feeds each to the state machine, stopping at the first failure.
func (sess *Session) ProcessIncoming() error {
	for {
		msg, ok := sess.deframer.Frames.PopFront()
		if !ok {
			return nil
		}
		if err := sess.processMessage(&msg); err != nil {
			return err
		}
	}
}

// processMessage consumes one decoded message: expectation check first,
// handler second, state commit last. A rejected message mutates nothing
// and the handshake aborts on the first failure, never retries.
func (sess *Session) processMessage(msg *handshake.Message) error {
	if msg.ContentType == handshake.ContentTypeAlert {
		var alert record.Alert
		if err := alert.Parse(msg.Body); err != nil {
			return tlserrors.ErrAlertParsing
		}
		return tlserrors.ErrAlertReceived
	}
	handler := sess.handler()
	if err := handler.expectation().check(msg); err != nil {
		return err
	}
	newState, err := handler.handle(sess, msg)
	if err != nil {
		return err
	}
	sess.stateID = newState
	return nil
}

func (sess *Session) emitClientHello() {
	msg := handshake.MsgClientHello{
		CipherSuites: sess.CipherSuites(),
	}
	msg.Random = sess.hctx.secrets.ClientRandom
	sess.addExtensions(&msg.Extensions)

	m := handshake.Message{
		ContentType: handshake.ContentTypeHandshake,
		MsgType:     handshake.MsgTypeClientHello,
		Body:        msg.Write(nil),
	}
	// the transcript hash algorithm is not known yet, buffer the wire
	// form so startTranscript can replay it
	sess.hctx.clientHelloRaw = m.WireForm(nil)
	sess.sendQueue.PushBack(m)
}

// addExtensions is a pure function of configuration and host identity.
func (sess *Session) addExtensions(exts *handshake.ExtensionsSet) {
	if sess.hctx.hostname != "" {
		exts.ServerNameSet = true
		exts.ServerName = sess.hctx.hostname
	}
	exts.SupportedGroupsSet = true
	exts.SupportedGroups.Add(handshake.GroupX25519)
	exts.ECPointFormatsSet = true
	exts.SignatureAlgorithmsSet = true
	exts.SignatureAlgorithms.Add(handshake.ECDSA_SECP256R1_SHA256)
	exts.SignatureAlgorithms.Add(handshake.ECDSA_SECP384R1_SHA384)
	exts.SignatureAlgorithms.Add(handshake.RSA_PSS_RSAE_SHA256)
	exts.SignatureAlgorithms.Add(handshake.RSA_PSS_RSAE_SHA384)
	exts.SignatureAlgorithms.Add(handshake.RSA_PKCS1_SHA256)
	exts.SignatureAlgorithms.Add(handshake.RSA_PKCS1_SHA384)
	exts.SignatureAlgorithms.Add(handshake.RSA_PKCS1_SHA512)
}

// VerifyData snapshots the transcript hash, the opaque payload both
// sides compare to prove they observed an identical message sequence.
func (sess *Session) VerifyData() []byte {
	h := sess.hctx.transcriptHash()
	return append([]byte{}, h.GetValue()...)
}

// KeyBlock hands the negotiated record protection keys to the record
// layer. Valid only after the handshake reached the Finished exchange.
func (sess *Session) KeyBlock() (client, server ciphersuite.SymmetricKeys) {
	return sess.hctx.clientWriteKeys, sess.hctx.serverWriteKeys
}
