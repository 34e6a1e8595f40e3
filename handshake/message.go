// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/tinytls/tinytls/format"
)

const VersionTLS12 = 0x0303

// One complete message as the deframer yields it: either a handshake
// message (Body is the body without the 4-byte header), or a
// ChangeCipherSpec/Alert payload.
type Message struct {
	ContentType ContentType
	MsgType     MsgType // meaningful only for ContentTypeHandshake
	Body        []byte
}

func (msg *Message) String() string {
	if msg.ContentType == ContentTypeHandshake {
		return fmt.Sprintf("%s(%d bytes)", MsgTypeToName(msg.MsgType), len(msg.Body))
	}
	return fmt.Sprintf("%s(%d bytes)", ContentTypeToName(msg.ContentType), len(msg.Body))
}

// The transcript observes the exact wire form: 4-byte handshake header
// plus body. Only handshake messages are ever hashed, CCS is not part
// of the transcript [rfc5246:7.4.9].
func (msg *Message) AddToHash(transcriptHasher hash.Hash) {
	if msg.ContentType != ContentTypeHandshake {
		panic("only handshake messages belong to the transcript")
	}
	if len(msg.Body) > 0xFFFFFF {
		panic("message body too large")
	}
	var header [4]byte
	first4Bytes := (uint32(msg.MsgType) << 24) + uint32(len(msg.Body)) // widening, safe due to check above
	binary.BigEndian.PutUint32(header[:], first4Bytes)
	_, _ = transcriptHasher.Write(header[:])
	_, _ = transcriptHasher.Write(msg.Body)
}

// WireForm appends the message as it travels inside a record:
// handshake header + body for handshake messages, raw body otherwise.
func (msg *Message) WireForm(body []byte) []byte {
	if msg.ContentType != ContentTypeHandshake {
		return append(body, msg.Body...)
	}
	body = append(body, byte(msg.MsgType))
	body = format.AppendUint24(body, uint32(len(msg.Body)))
	return append(body, msg.Body...)
}

// WriteRecord appends the full plaintext record: 5-byte record header,
// then the wire form. Encoding is total, it cannot fail.
func (msg *Message) WriteRecord(body []byte) []byte {
	body = append(body, byte(msg.ContentType))
	body = binary.BigEndian.AppendUint16(body, VersionTLS12)
	body, mark := format.MarkUint16Offset(body)
	body = msg.WireForm(body)
	format.FillUint16Offset(body, mark)
	return body
}
