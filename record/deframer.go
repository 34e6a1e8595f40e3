// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package record

import (
	"encoding/binary"
	"io"

	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/queue"
	"github.com/tinytls/tinytls/tlserrors"
)

const RecordHeaderLength = 5

// ciphertext expansion allowance on top of the 2^14 plaintext limit [rfc5246:6.2.3]
const MaxRecordPayloadLength = 16384 + 2048

// same bound crypto/tls uses, generous enough for real certificate chains
const MaxHandshakeMessageLength = 65536

const readChunkSize = 4096

// Deframer turns a raw byte stream into complete, ordered messages.
// Records may split one handshake message or carry several, both are
// reassembled here; Frames never holds a partial message.
type Deframer struct {
	buffer []byte // undecoded record bytes
	hsBuf  []byte // handshake content joined across records

	Frames queue.FIFO[handshake.Message]
}

// Read pulls one chunk from rd and cuts every complete message out of
// the accumulated bytes. Returns bytes consumed; IO errors pass through
// verbatim, framing errors are decode failures.
func (d *Deframer) Read(rd io.Reader) (int, error) {
	var chunk [readChunkSize]byte
	n, err := rd.Read(chunk[:])
	if n > 0 {
		d.buffer = append(d.buffer, chunk[:n]...)
		if popErr := d.popFrames(); popErr != nil {
			return n, popErr
		}
	}
	return n, err
}

// ReadBytes is the same cutting step for callers that already hold a buffer.
func (d *Deframer) ReadBytes(data []byte) (int, error) {
	d.buffer = append(d.buffer, data...)
	if err := d.popFrames(); err != nil {
		return len(data), err
	}
	return len(data), nil
}

func (d *Deframer) popFrames() error {
	for {
		if len(d.buffer) < RecordHeaderLength {
			return nil // partial header, wait for more bytes
		}
		contentType := handshake.ContentType(d.buffer[0])
		switch contentType {
		case handshake.ContentTypeChangeCipherSpec, handshake.ContentTypeAlert,
			handshake.ContentTypeHandshake, handshake.ContentTypeApplicationData:
		default:
			return tlserrors.ErrRecordHeaderParsing
		}
		version := binary.BigEndian.Uint16(d.buffer[1:])
		if version>>8 != 3 { // accept any 3.x on read, we write 3.3
			return tlserrors.ErrRecordHeaderParsing
		}
		length := int(binary.BigEndian.Uint16(d.buffer[3:]))
		if length > MaxRecordPayloadLength {
			return tlserrors.ErrRecordOverflow
		}
		if len(d.buffer) < RecordHeaderLength+length {
			return nil // partial body, wait for more bytes
		}
		payload := d.buffer[RecordHeaderLength : RecordHeaderLength+length]
		if err := d.onRecord(contentType, payload); err != nil {
			return err
		}
		d.buffer = d.buffer[RecordHeaderLength+length:]
	}
}

func (d *Deframer) onRecord(contentType handshake.ContentType, payload []byte) error {
	if contentType != handshake.ContentTypeHandshake {
		if len(d.hsBuf) != 0 {
			// a handshake message must not be interleaved with other content [rfc5246:6.2.1]
			return tlserrors.ErrHandshakeHeaderParsing
		}
		body := append([]byte{}, payload...)
		d.Frames.PushBack(handshake.Message{ContentType: contentType, Body: body})
		return nil
	}
	d.hsBuf = append(d.hsBuf, payload...)
	for {
		if len(d.hsBuf) < 4 {
			return nil
		}
		header := binary.BigEndian.Uint32(d.hsBuf)
		msgType := handshake.MsgType(header >> 24)
		bodyLength := int(header & 0xFFFFFF)
		if bodyLength > MaxHandshakeMessageLength {
			return tlserrors.ErrHandshakeHeaderParsing
		}
		if len(d.hsBuf) < 4+bodyLength {
			return nil // message continues in the next record
		}
		body := append([]byte{}, d.hsBuf[4:4+bodyLength]...)
		d.Frames.PushBack(handshake.Message{
			ContentType: handshake.ContentTypeHandshake,
			MsgType:     msgType,
			Body:        body,
		})
		d.hsBuf = d.hsBuf[4+bodyLength:]
	}
}

// HasPartial reports whether bytes of an incomplete record or message
// are pending. Useful for detecting truncated streams.
func (d *Deframer) HasPartial() bool {
	return len(d.buffer) != 0 || len(d.hsBuf) != 0
}
