// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"github.com/tinytls/tinytls/format"
)

// ECDHE client key exchange: just our ephemeral public point [rfc4492:5.7]
type MsgClientKeyExchange struct {
	PublicKey []byte
}

func (msg *MsgClientKeyExchange) MessageKind() string { return "handshake" }
func (msg *MsgClientKeyExchange) MessageName() string { return "ClientKeyExchange" }

func (msg *MsgClientKeyExchange) Parse(body []byte) (err error) {
	offset := 0
	if offset, msg.PublicKey, err = format.ParserReadByteLength(body, offset); err != nil {
		return err
	}
	return format.ParserReadFinish(body, offset)
}

func (msg *MsgClientKeyExchange) Write(body []byte) []byte {
	body, mark := format.MarkByteOffset(body)
	body = append(body, msg.PublicKey...)
	format.FillByteOffset(body, mark)
	return body
}
