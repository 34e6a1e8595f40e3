// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package record

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinytls/tinytls/handshake"
	"github.com/tinytls/tinytls/tlserrors"
)

func hsMessage(msgType handshake.MsgType, body []byte) handshake.Message {
	return handshake.Message{
		ContentType: handshake.ContentTypeHandshake,
		MsgType:     msgType,
		Body:        body,
	}
}

func TestDeframerSingleRecord(t *testing.T) {
	msg := hsMessage(handshake.MsgTypeServerHello, []byte{1, 2, 3})
	var d Deframer
	_, err := d.ReadBytes(msg.WriteRecord(nil))
	require.NoError(t, err)

	got, ok := d.Frames.PopFront()
	require.True(t, ok)
	require.Equal(t, msg, got)
	require.False(t, d.HasPartial())
}

func TestDeframerByteAtATime(t *testing.T) {
	msg := hsMessage(handshake.MsgTypeCertificate, bytes.Repeat([]byte{0xAB}, 300))
	wire := msg.WriteRecord(nil)
	var d Deframer
	for i := range wire {
		_, err := d.ReadBytes(wire[i : i+1])
		require.NoError(t, err)
		if i < len(wire)-1 {
			require.True(t, d.Frames.Empty())
		}
	}
	got, ok := d.Frames.PopFront()
	require.True(t, ok)
	require.Equal(t, msg, got)
}

func TestDeframerCoalescedMessages(t *testing.T) {
	// two handshake messages inside one record
	a := hsMessage(handshake.MsgTypeServerHello, []byte{1})
	b := hsMessage(handshake.MsgTypeServerHelloDone, nil)
	payload := a.WireForm(nil)
	payload = b.WireForm(payload)

	wire := []byte{byte(handshake.ContentTypeHandshake)}
	wire = binary.BigEndian.AppendUint16(wire, handshake.VersionTLS12)
	wire = binary.BigEndian.AppendUint16(wire, uint16(len(payload)))
	wire = append(wire, payload...)

	var d Deframer
	_, err := d.ReadBytes(wire)
	require.NoError(t, err)
	require.Equal(t, 2, d.Frames.Len())

	got, _ := d.Frames.PopFront()
	require.Equal(t, handshake.MsgTypeServerHello, got.MsgType)
	got, _ = d.Frames.PopFront()
	require.Equal(t, handshake.MsgTypeServerHelloDone, got.MsgType)
	require.Empty(t, got.Body)
}

func TestDeframerFragmentedMessage(t *testing.T) {
	// one handshake message split across two records
	msg := hsMessage(handshake.MsgTypeCertificate, bytes.Repeat([]byte{7}, 100))
	payload := msg.WireForm(nil)
	half := len(payload) / 2

	makeRecord := func(fragment []byte) []byte {
		wire := []byte{byte(handshake.ContentTypeHandshake)}
		wire = binary.BigEndian.AppendUint16(wire, handshake.VersionTLS12)
		wire = binary.BigEndian.AppendUint16(wire, uint16(len(fragment)))
		return append(wire, fragment...)
	}

	var d Deframer
	_, err := d.ReadBytes(makeRecord(payload[:half]))
	require.NoError(t, err)
	require.True(t, d.Frames.Empty())
	require.True(t, d.HasPartial())

	_, err = d.ReadBytes(makeRecord(payload[half:]))
	require.NoError(t, err)
	got, ok := d.Frames.PopFront()
	require.True(t, ok)
	require.Equal(t, msg, got)
	require.False(t, d.HasPartial())
}

func TestDeframerRejectsInterleavedContent(t *testing.T) {
	msg := hsMessage(handshake.MsgTypeCertificate, bytes.Repeat([]byte{7}, 100))
	payload := msg.WireForm(nil)

	wire := []byte{byte(handshake.ContentTypeHandshake)}
	wire = binary.BigEndian.AppendUint16(wire, handshake.VersionTLS12)
	wire = binary.BigEndian.AppendUint16(wire, uint16(50))
	wire = append(wire, payload[:50]...)
	ccs := handshake.Message{ContentType: handshake.ContentTypeChangeCipherSpec, Body: []byte{1}}
	wire = ccs.WriteRecord(wire)

	var d Deframer
	_, err := d.ReadBytes(wire)
	require.ErrorIs(t, err, tlserrors.ErrHandshakeHeaderParsing)
}

func TestDeframerRejectsBadContentType(t *testing.T) {
	wire := []byte{99, 3, 3, 0, 0}
	var d Deframer
	_, err := d.ReadBytes(wire)
	require.ErrorIs(t, err, tlserrors.ErrRecordHeaderParsing)
}

func TestDeframerRejectsBadVersion(t *testing.T) {
	wire := []byte{byte(handshake.ContentTypeHandshake), 2, 0, 0, 0}
	var d Deframer
	_, err := d.ReadBytes(wire)
	require.ErrorIs(t, err, tlserrors.ErrRecordHeaderParsing)
}

func TestDeframerAcceptsAny3xVersion(t *testing.T) {
	msg := hsMessage(handshake.MsgTypeServerHello, []byte{1})
	payload := msg.WireForm(nil)
	wire := []byte{byte(handshake.ContentTypeHandshake), 3, 1} // TLS 1.0 record version
	wire = binary.BigEndian.AppendUint16(wire, uint16(len(payload)))
	wire = append(wire, payload...)

	var d Deframer
	_, err := d.ReadBytes(wire)
	require.NoError(t, err)
	require.Equal(t, 1, d.Frames.Len())
}

func TestDeframerRejectsOversizedRecord(t *testing.T) {
	wire := []byte{byte(handshake.ContentTypeHandshake), 3, 3}
	wire = binary.BigEndian.AppendUint16(wire, uint16(MaxRecordPayloadLength+1))
	var d Deframer
	_, err := d.ReadBytes(wire)
	require.ErrorIs(t, err, tlserrors.ErrRecordOverflow)
}

func TestDeframerReadFromReader(t *testing.T) {
	a := hsMessage(handshake.MsgTypeServerHello, []byte{1})
	b := handshake.Message{ContentType: handshake.ContentTypeAlert, Body: []byte{2, 40}}
	wire := a.WriteRecord(nil)
	wire = b.WriteRecord(wire)

	var d Deframer
	rd := bytes.NewReader(wire)
	n, err := d.Read(rd)
	require.NoError(t, err)
	require.Equal(t, len(wire), n)
	require.Equal(t, 2, d.Frames.Len())

	got, _ := d.Frames.PopFront()
	require.Equal(t, handshake.ContentTypeHandshake, got.ContentType)
	got, _ = d.Frames.PopFront()
	require.Equal(t, handshake.ContentTypeAlert, got.ContentType)
	require.Equal(t, []byte{2, 40}, got.Body)
}
