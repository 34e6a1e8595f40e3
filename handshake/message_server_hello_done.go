// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"github.com/tinytls/tinytls/format"
)

// ServerHelloDone has an empty body [rfc5246:7.4.5]
type MsgServerHelloDone struct {
}

func (msg *MsgServerHelloDone) MessageKind() string { return "handshake" }
func (msg *MsgServerHelloDone) MessageName() string { return "ServerHelloDone" }

func (msg *MsgServerHelloDone) Parse(body []byte) error {
	return format.ParserReadFinish(body, 0)
}

func (msg *MsgServerHelloDone) Write(body []byte) []byte {
	return body
}
