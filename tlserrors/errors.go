// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package tlserrors

import (
	"fmt"
)

// we do not allocate on error returning path,
// so all errors are completely static

type Category byte

const (
	// received message does not match the current state's expectation
	CategoryProtocolViolation Category = 1
	// message bytes cannot be parsed into the expected structure
	CategoryDecodeFailure Category = 2
	// no mutually acceptable cipher suite, or peer selected outside advertised list
	CategoryNegotiationFailure Category = 3
)

func (c Category) String() string {
	switch c {
	case CategoryProtocolViolation:
		return "protocol violation"
	case CategoryDecodeFailure:
		return "decode failure"
	case CategoryNegotiationFailure:
		return "negotiation failure"
	default:
		return "<unknown>"
	}
}

// All handshake errors are fatal: the session aborts and is never resumed.
// Transport errors are not represented here, they pass through verbatim.
type Error struct {
	category Category
	code     int
	text     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tinytls (%s): %d %s", e.category, e.code, e.text)
}

func (e *Error) Category() Category { return e.category }

func New(category Category, code int, text string) error {
	return &Error{
		category: category,
		code:     code,
		text:     text,
	}
}

// IsCategory reports whether err is a handshake error of the given category.
// Callers use it to log malformed input separately from ordering violations.
func IsCategory(err error, category Category) bool {
	e, ok := err.(*Error)
	return ok && e.category == category
}

var ErrUnexpectedState = New(CategoryProtocolViolation, -101, "message dispatched in a state with no handler")
var ErrUnexpectedContentType = New(CategoryProtocolViolation, -102, "record content type not acceptable in current state")
var ErrUnexpectedHandshakeType = New(CategoryProtocolViolation, -103, "handshake message type not acceptable in current state")
var ErrApplicationDataBeforeTraffic = New(CategoryProtocolViolation, -104, "application data received before handshake finished")
var ErrAlertReceived = New(CategoryProtocolViolation, -105, "fatal alert received from peer")

var ErrServerHelloParsing = New(CategoryDecodeFailure, -201, "ServerHello message failed to parse")
var ErrCertificateParsing = New(CategoryDecodeFailure, -202, "Certificate message failed to parse")
var ErrServerKeyExchangeParsing = New(CategoryDecodeFailure, -203, "ServerKeyExchange message failed to parse")
var ErrServerHelloDoneParsing = New(CategoryDecodeFailure, -204, "ServerHelloDone message failed to parse")
var ErrChangeCipherSpecParsing = New(CategoryDecodeFailure, -205, "ChangeCipherSpec message failed to parse")
var ErrFinishedParsing = New(CategoryDecodeFailure, -206, "Finished message failed to parse")
var ErrRecordHeaderParsing = New(CategoryDecodeFailure, -207, "record header failed to parse")
var ErrRecordOverflow = New(CategoryDecodeFailure, -208, "record length exceeds protocol limit")
var ErrHandshakeHeaderParsing = New(CategoryDecodeFailure, -209, "handshake message header failed to parse")
var ErrAlertParsing = New(CategoryDecodeFailure, -210, "alert payload failed to parse")

var ErrCipherSuiteNotConfigured = New(CategoryNegotiationFailure, -301, "peer selected cipher suite outside advertised list")
var ErrCipherSuiteSentinelSelected = New(CategoryNegotiationFailure, -302, "peer selected the renegotiation sentinel as a cipher suite")
var ErrKeyExchangeGroupUnsupported = New(CategoryNegotiationFailure, -303, "peer offered unsupported key exchange group")
var ErrSignatureSchemeUnsupported = New(CategoryNegotiationFailure, -304, "peer signature scheme unsupported")

var ErrCertificateChainEmpty = New(CategoryProtocolViolation, -401, "certificate chain is empty")
var ErrCertificateInvalid = New(CategoryProtocolViolation, -402, "certificate chain validation failed")
var ErrKeyExchangeSignatureInvalid = New(CategoryProtocolViolation, -403, "server key exchange signature invalid")
var ErrFinishedVerificationFailed = New(CategoryProtocolViolation, -404, "finished message verification failed")
var ErrPeerKeyShareInvalid = New(CategoryProtocolViolation, -405, "peer ephemeral public key rejected")
