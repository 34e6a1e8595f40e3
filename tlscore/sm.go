// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlscore

import (
	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/tlserrors"
)

type ConnState byte

// Transitions are one-directional down this list, no state is revisited
// within a handshake. Traffic is terminal for the state machine.
const (
	StateAwaitServerHello       ConnState = 0
	StateAwaitCertificate       ConnState = 1
	StateAwaitServerKeyExchange ConnState = 2
	StateAwaitServerHelloDone   ConnState = 3
	StateAwaitChangeCipherSpec  ConnState = 4
	StateAwaitFinished          ConnState = 5
	StateTraffic                ConnState = 6
)

func (s ConnState) String() string {
	switch s {
	case StateAwaitServerHello:
		return "AwaitServerHello"
	case StateAwaitCertificate:
		return "AwaitCertificate"
	case StateAwaitServerKeyExchange:
		return "AwaitServerKeyExchange"
	case StateAwaitServerHelloDone:
		return "AwaitServerHelloDone"
	case StateAwaitChangeCipherSpec:
		return "AwaitChangeCipherSpec"
	case StateAwaitFinished:
		return "AwaitFinished"
	case StateTraffic:
		return "Traffic"
	default:
		return "<unknown>"
	}
}

// What a handler is willing to accept in its state. Checked before the
// handler runs, so a rejected message mutates nothing.
type expectation struct {
	invalid     bool // sentinel: no message is ever acceptable
	contentType handshake.ContentType
	msgTypes    []handshake.MsgType
}

func (e expectation) check(msg *handshake.Message) error {
	if e.invalid {
		return tlserrors.ErrUnexpectedState
	}
	if msg.ContentType != e.contentType {
		if msg.ContentType == handshake.ContentTypeApplicationData {
			return tlserrors.ErrApplicationDataBeforeTraffic
		}
		return tlserrors.ErrUnexpectedContentType
	}
	if msg.ContentType != handshake.ContentTypeHandshake {
		return nil
	}
	for _, t := range e.msgTypes {
		if msg.MsgType == t {
			return nil
		}
	}
	return tlserrors.ErrUnexpectedHandshakeType
}

type stateHandler interface {
	expectation() expectation
	handle(sess *Session, msg *handshake.Message) (ConnState, error)
}

// index in global table, one handler per reachable state
var handshakeHandlers = [...]stateHandler{
	StateAwaitServerHello:       &smExpectServerHello{},
	StateAwaitCertificate:       &smExpectCertificate{},
	StateAwaitServerKeyExchange: &smExpectServerKeyExchange{},
	StateAwaitServerHelloDone:   &smExpectServerHelloDone{},
	StateAwaitChangeCipherSpec:  &smExpectChangeCipherSpec{},
	StateAwaitFinished:          &smExpectFinished{},
	StateTraffic:                &smInvalidState{},
}

// smInvalidState guards states with no handshake handler against
// illegal direct dispatch. It accepts nothing.
type smInvalidState struct {
}

func (*smInvalidState) expectation() expectation {
	return expectation{invalid: true}
}

func (*smInvalidState) handle(sess *Session, msg *handshake.Message) (ConnState, error) {
	return sess.stateID, tlserrors.ErrUnexpectedState
}

func (sess *Session) handler() stateHandler {
	if int(sess.stateID) >= len(handshakeHandlers) {
		return &smInvalidState{}
	}
	return handshakeHandlers[sess.stateID]
}
