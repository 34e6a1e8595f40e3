// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"errors"

	"github.com/tinytls/tinytls/format"
)

// Certificate chain, leaf first, raw DER entries [rfc5246:7.4.2].
// Cryptographic validation is the verify package's business.
type MsgCertificate struct {
	CertificatesLength int
	Certificates       [MaxCertificateChainLength][]byte
}

const MaxCertificateChainLength = 16

var ErrCertificateChainTooLong = errors.New("certificate chain longer than supported")

func (msg *MsgCertificate) MessageKind() string { return "handshake" }
func (msg *MsgCertificate) MessageName() string { return "Certificate" }

func (msg *MsgCertificate) Parse(body []byte) (err error) {
	offset := 0
	var chainBody []byte
	if offset, chainBody, err = format.ParserReadUint24Length(body, offset); err != nil {
		return err
	}
	if err = format.ParserReadFinish(body, offset); err != nil {
		return err
	}
	msg.CertificatesLength = 0
	chainOffset := 0
	for chainOffset < len(chainBody) {
		var entry []byte
		if chainOffset, entry, err = format.ParserReadUint24Length(chainBody, chainOffset); err != nil {
			return err
		}
		if msg.CertificatesLength >= len(msg.Certificates) {
			return ErrCertificateChainTooLong
		}
		msg.Certificates[msg.CertificatesLength] = entry
		msg.CertificatesLength++
	}
	return nil
}

func (msg *MsgCertificate) Write(body []byte) []byte {
	body, mark := format.MarkUint24Offset(body)
	var entryMark int
	for i := 0; i < msg.CertificatesLength; i++ {
		body, entryMark = format.MarkUint24Offset(body)
		body = append(body, msg.Certificates[i]...)
		format.FillUint24Offset(body, entryMark)
	}
	format.FillUint24Offset(body, mark)
	return body
}

// Chain returns the parsed entries as a slice, leaf first.
func (msg *MsgCertificate) Chain() [][]byte {
	return msg.Certificates[:msg.CertificatesLength]
}
