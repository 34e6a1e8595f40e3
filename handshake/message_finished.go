// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"errors"

	"github.com/tinytls/tinytls/format"
)

// verify_data is 12 bytes for every TLS 1.2 suite we implement [rfc5246:7.4.9]
const FinishedVerifyDataLength = 12

var ErrFinishedVerifyDataLength = errors.New("finished verify_data has wrong length")

type MsgFinished struct {
	VerifyData [FinishedVerifyDataLength]byte
}

func (msg *MsgFinished) MessageKind() string { return "handshake" }
func (msg *MsgFinished) MessageName() string { return "Finished" }

func (msg *MsgFinished) Parse(body []byte) (err error) {
	if len(body) != FinishedVerifyDataLength {
		return ErrFinishedVerifyDataLength
	}
	offset, err := format.ParserReadFixedBytes(body, 0, msg.VerifyData[:])
	if err != nil {
		return err
	}
	return format.ParserReadFinish(body, offset)
}

func (msg *MsgFinished) Write(body []byte) []byte {
	return append(body, msg.VerifyData[:]...)
}
