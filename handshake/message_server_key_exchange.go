// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"encoding/binary"
	"errors"

	"github.com/tinytls/tinytls/format"
)

var ErrServerKeyExchangeCurveType = errors.New("server key exchange curve type is not named_curve")

// ECDHE server params plus the signature over them [rfc4492:5.4].
// Params keeps the raw wire bytes of the ServerECDHParams because the
// signature covers client_random + server_random + exactly these bytes.
type MsgServerKeyExchange struct {
	Params    []byte
	Group     NamedGroup
	PublicKey []byte

	Scheme    SignatureScheme
	Signature []byte
}

func (msg *MsgServerKeyExchange) MessageKind() string { return "handshake" }
func (msg *MsgServerKeyExchange) MessageName() string { return "ServerKeyExchange" }

func (msg *MsgServerKeyExchange) Parse(body []byte) (err error) {
	offset := 0
	if offset, err = format.ParserReadByteConst(body, offset, 3, ErrServerKeyExchangeCurveType); err != nil {
		return err
	}
	var group uint16
	if offset, group, err = format.ParserReadUint16(body, offset); err != nil {
		return err
	}
	msg.Group = NamedGroup(group)
	if offset, msg.PublicKey, err = format.ParserReadByteLength(body, offset); err != nil {
		return err
	}
	msg.Params = body[:offset]
	var scheme uint16
	if offset, scheme, err = format.ParserReadUint16(body, offset); err != nil {
		return err
	}
	msg.Scheme = SignatureScheme(scheme)
	if offset, msg.Signature, err = format.ParserReadUint16Length(body, offset); err != nil {
		return err
	}
	return format.ParserReadFinish(body, offset)
}

func (msg *MsgServerKeyExchange) Write(body []byte) []byte {
	body = append(body, 3) // curve_type named_curve
	body = binary.BigEndian.AppendUint16(body, uint16(msg.Group))
	body, mark := format.MarkByteOffset(body)
	body = append(body, msg.PublicKey...)
	format.FillByteOffset(body, mark)
	body = binary.BigEndian.AppendUint16(body, uint16(msg.Scheme))
	body, sigMark := format.MarkUint16Offset(body)
	body = append(body, msg.Signature...)
	format.FillUint16Offset(body, sigMark)
	return body
}
