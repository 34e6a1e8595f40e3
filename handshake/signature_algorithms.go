// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"encoding/binary"

	"github.com/tinytls/tinytls/format"
)

type SignatureScheme uint16

const (
	RSA_PKCS1_SHA256   SignatureScheme = 0x0401
	RSA_PKCS1_SHA384   SignatureScheme = 0x0501
	RSA_PKCS1_SHA512   SignatureScheme = 0x0601
	ECDSA_SECP256R1_SHA256 SignatureScheme = 0x0403
	ECDSA_SECP384R1_SHA384 SignatureScheme = 0x0503
	RSA_PSS_RSAE_SHA256 SignatureScheme = 0x0804
	RSA_PSS_RSAE_SHA384 SignatureScheme = 0x0805
)

const MaxSignatureAlgorithms = 16

type SignatureAlgorithms struct {
	SchemesLength int
	Schemes       [MaxSignatureAlgorithms]SignatureScheme
}

func (msg *SignatureAlgorithms) Parse(body []byte) (err error) {
	offset := 0
	var schemesBody []byte
	if offset, schemesBody, err = format.ParserReadUint16Length(body, offset); err != nil {
		return err
	}
	if err = format.ParserReadFinish(body, offset); err != nil {
		return err
	}
	msg.SchemesLength = 0
	schemesOffset := 0
	for schemesOffset < len(schemesBody) {
		var scheme uint16
		if schemesOffset, scheme, err = format.ParserReadUint16(schemesBody, schemesOffset); err != nil {
			return err
		}
		if msg.SchemesLength < len(msg.Schemes) {
			msg.Schemes[msg.SchemesLength] = SignatureScheme(scheme)
			msg.SchemesLength++
		}
	}
	return nil
}

func (msg *SignatureAlgorithms) Write(body []byte) []byte {
	body, mark := format.MarkUint16Offset(body)
	for i := 0; i < msg.SchemesLength; i++ {
		body = binary.BigEndian.AppendUint16(body, uint16(msg.Schemes[i]))
	}
	format.FillUint16Offset(body, mark)
	return body
}

func (msg *SignatureAlgorithms) Add(scheme SignatureScheme) {
	if msg.SchemesLength >= len(msg.Schemes) {
		panic("too many signature algorithms")
	}
	msg.Schemes[msg.SchemesLength] = scheme
	msg.SchemesLength++
}
