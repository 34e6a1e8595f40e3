// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"encoding/binary"
	"errors"

	"github.com/tinytls/tinytls/ciphersuite"
	"github.com/tinytls/tinytls/format"
)

var ErrClientHelloVersion = errors.New("client hello wrong protocol version")
var ErrClientHelloCompressionMethod = errors.New("client hello wrong compression methods")

type MsgClientHello struct {
	Random [32]byte
	// legacy session_id is always empty, we do not resume
	CipherSuites []ciphersuite.ID
	Extensions   ExtensionsSet
}

func (msg *MsgClientHello) MessageKind() string { return "handshake" }
func (msg *MsgClientHello) MessageName() string { return "ClientHello" }

func (msg *MsgClientHello) Parse(body []byte) (err error) {
	offset := 0
	if offset, err = format.ParserReadUint16Const(body, offset, VersionTLS12, ErrClientHelloVersion); err != nil {
		return err
	}
	if offset, err = format.ParserReadFixedBytes(body, offset, msg.Random[:]); err != nil {
		return err
	}
	var sessionID []byte
	if offset, sessionID, err = format.ParserReadByteLength(body, offset); err != nil {
		return err
	}
	_ = sessionID // checked for length bound by the byte-length read, otherwise ignored
	var cipherSuitesBody []byte
	if offset, cipherSuitesBody, err = format.ParserReadUint16Length(body, offset); err != nil {
		return err
	}
	msg.CipherSuites = msg.CipherSuites[:0]
	suitesOffset := 0
	for suitesOffset < len(cipherSuitesBody) {
		var suite uint16
		if suitesOffset, suite, err = format.ParserReadUint16(cipherSuitesBody, suitesOffset); err != nil {
			return err
		}
		msg.CipherSuites = append(msg.CipherSuites, ciphersuite.ID(suite))
	}
	var compressionMethods []byte
	if offset, compressionMethods, err = format.ParserReadByteLength(body, offset); err != nil {
		return err
	}
	if len(compressionMethods) != 1 || compressionMethods[0] != 0 {
		return ErrClientHelloCompressionMethod
	}
	return msg.Extensions.Parse(body[offset:])
}

func (msg *MsgClientHello) Write(body []byte) []byte {
	body = binary.BigEndian.AppendUint16(body, VersionTLS12)

	body = append(body, msg.Random[:]...)

	body = append(body, 0) // empty legacy session_id

	body, mark := format.MarkUint16Offset(body)
	for _, suite := range msg.CipherSuites {
		body = binary.BigEndian.AppendUint16(body, uint16(suite))
	}
	format.FillUint16Offset(body, mark)

	body = append(body, 1, 0) // compression_methods: null only

	body = msg.Extensions.Write(body)

	return body
}
