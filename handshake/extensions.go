// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"encoding/binary"
	"errors"

	"github.com/tinytls/tinytls/format"
)

const (
	EXTENSION_SERVER_NAME          = 0x0000
	EXTENSION_SUPPORTED_GROUPS     = 0x000a
	EXTENSION_EC_POINT_FORMATS     = 0x000b
	EXTENSION_SIGNATURE_ALGORITHMS = 0x000d
	EXTENSION_RENEGOTIATION_INFO   = 0xff01
)

// after parsing, slices inside point to the record buffer, so must not be retained
type ExtensionsSet struct {
	ServerNameSet bool
	ServerName    string

	SupportedGroupsSet bool
	SupportedGroups    SupportedGroups

	SignatureAlgorithmsSet bool
	SignatureAlgorithms    SignatureAlgorithms

	ECPointFormatsSet bool

	RenegotiationInfoSet bool
	RenegotiationInfo    []byte
}

// Parse consumes the whole extensions block including its uint16 length prefix.
func (msg *ExtensionsSet) Parse(body []byte) (err error) {
	offset := 0
	var inside []byte
	if offset, inside, err = format.ParserReadUint16Length(body, offset); err != nil {
		return err
	}
	if err = format.ParserReadFinish(body, offset); err != nil {
		return err
	}
	return msg.parseInside(inside)
}

func (msg *ExtensionsSet) parseInside(body []byte) (err error) {
	offset := 0
	for offset < len(body) {
		var extensionType uint16
		if offset, extensionType, err = format.ParserReadUint16(body, offset); err != nil {
			return err
		}
		var extensionBody []byte
		if offset, extensionBody, err = format.ParserReadUint16Length(body, offset); err != nil {
			return err
		}
		switch extensionType { // skip unknown/not needed
		case EXTENSION_SERVER_NAME:
			if err := msg.parseServerName(extensionBody); err != nil {
				return err
			}
			msg.ServerNameSet = true
		case EXTENSION_SUPPORTED_GROUPS:
			if err := msg.SupportedGroups.Parse(extensionBody); err != nil {
				return err
			}
			msg.SupportedGroupsSet = true
		case EXTENSION_SIGNATURE_ALGORITHMS:
			if err := msg.SignatureAlgorithms.Parse(extensionBody); err != nil {
				return err
			}
			msg.SignatureAlgorithmsSet = true
		case EXTENSION_EC_POINT_FORMATS:
			msg.ECPointFormatsSet = true
		case EXTENSION_RENEGOTIATION_INFO:
			// we advertise the SCSV instead of this extension and never renegotiate,
			// so the contents are recorded but never acted upon
			msg.RenegotiationInfo = extensionBody
			msg.RenegotiationInfoSet = true
		}
	}
	return format.ParserReadFinish(body, offset)
}

func (msg *ExtensionsSet) writeExtension(body []byte, extensionType uint16, writeBody func([]byte) []byte) []byte {
	body = binary.BigEndian.AppendUint16(body, extensionType)
	body, mark := format.MarkUint16Offset(body)
	body = writeBody(body)
	format.FillUint16Offset(body, mark)
	return body
}

func (msg *ExtensionsSet) Write(body []byte) []byte {
	body, mark := format.MarkUint16Offset(body)
	if msg.ServerNameSet {
		body = msg.writeExtension(body, EXTENSION_SERVER_NAME, msg.writeServerName)
	}
	if msg.SupportedGroupsSet {
		body = msg.writeExtension(body, EXTENSION_SUPPORTED_GROUPS, msg.SupportedGroups.Write)
	}
	if msg.ECPointFormatsSet {
		body = msg.writeExtension(body, EXTENSION_EC_POINT_FORMATS, func(b []byte) []byte {
			return append(b, 1, 0) // uncompressed only
		})
	}
	if msg.SignatureAlgorithmsSet {
		body = msg.writeExtension(body, EXTENSION_SIGNATURE_ALGORITHMS, msg.SignatureAlgorithms.Write)
	}
	format.FillUint16Offset(body, mark)
	return body
}

var ErrServerNameType = errors.New("server name list entry is not host_name")

func (msg *ExtensionsSet) parseServerName(body []byte) (err error) {
	offset := 0
	var list []byte
	if offset, list, err = format.ParserReadUint16Length(body, offset); err != nil {
		return err
	}
	if err = format.ParserReadFinish(body, offset); err != nil {
		return err
	}
	listOffset := 0
	if listOffset, err = format.ParserReadByteConst(list, listOffset, 0, ErrServerNameType); err != nil {
		return err
	}
	var name []byte
	if listOffset, name, err = format.ParserReadUint16Length(list, listOffset); err != nil {
		return err
	}
	if err = format.ParserReadFinish(list, listOffset); err != nil {
		return err
	}
	msg.ServerName = string(name)
	return nil
}

// server_name extension carries a list, but only host_name(0) exists [rfc6066:3]
func (msg *ExtensionsSet) writeServerName(body []byte) []byte {
	body, mark := format.MarkUint16Offset(body)
	body = append(body, 0) // name_type host_name
	body, nameMark := format.MarkUint16Offset(body)
	body = append(body, msg.ServerName...)
	format.FillUint16Offset(body, nameMark)
	format.FillUint16Offset(body, mark)
	return body
}
