// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"encoding/binary"
	"errors"

	"github.com/tinytls/tinytls/ciphersuite"
	"github.com/tinytls/tinytls/format"
)

var ErrServerHelloVersion = errors.New("server hello wrong protocol version")
var ErrServerHelloCompressionMethod = errors.New("server hello wrong compression method")

type MsgServerHello struct {
	Random [32]byte
	// session_id is parsed but not stored, we do not resume
	CipherSuite ciphersuite.ID
	Extensions  ExtensionsSet
}

func (msg *MsgServerHello) MessageKind() string { return "handshake" }
func (msg *MsgServerHello) MessageName() string { return "ServerHello" }

func (msg *MsgServerHello) Parse(body []byte) (err error) {
	offset := 0
	if offset, err = format.ParserReadUint16Const(body, offset, VersionTLS12, ErrServerHelloVersion); err != nil {
		return err
	}
	if offset, err = format.ParserReadFixedBytes(body, offset, msg.Random[:]); err != nil {
		return err
	}
	var sessionID []byte
	if offset, sessionID, err = format.ParserReadByteLength(body, offset); err != nil {
		return err
	}
	_ = sessionID
	var suite uint16
	if offset, suite, err = format.ParserReadUint16(body, offset); err != nil {
		return err
	}
	msg.CipherSuite = ciphersuite.ID(suite)
	if offset, err = format.ParserReadByteConst(body, offset, 0, ErrServerHelloCompressionMethod); err != nil {
		return err
	}
	if offset == len(body) { // extensions block is optional
		msg.Extensions = ExtensionsSet{}
		return nil
	}
	return msg.Extensions.Parse(body[offset:])
}

func (msg *MsgServerHello) Write(body []byte) []byte {
	body = binary.BigEndian.AppendUint16(body, VersionTLS12)
	body = append(body, msg.Random[:]...)
	body = append(body, 0) // empty session_id
	body = binary.BigEndian.AppendUint16(body, uint16(msg.CipherSuite))
	body = append(body, 0) // null compression
	return body
}
