// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package handshake

import (
	"encoding/binary"

	"github.com/tinytls/tinytls/format"
)

type NamedGroup uint16

const (
	GroupSECP256R1 NamedGroup = 0x0017
	GroupX25519    NamedGroup = 0x001d
)

const MaxSupportedGroups = 8

type SupportedGroups struct {
	GroupsLength int
	Groups       [MaxSupportedGroups]NamedGroup
}

func (msg *SupportedGroups) Parse(body []byte) (err error) {
	offset := 0
	var groupsBody []byte
	if offset, groupsBody, err = format.ParserReadUint16Length(body, offset); err != nil {
		return err
	}
	if err = format.ParserReadFinish(body, offset); err != nil {
		return err
	}
	msg.GroupsLength = 0
	groupsOffset := 0
	for groupsOffset < len(groupsBody) {
		var group uint16
		if groupsOffset, group, err = format.ParserReadUint16(groupsBody, groupsOffset); err != nil {
			return err
		}
		if msg.GroupsLength < len(msg.Groups) { // excess groups are legal, we simply do not remember them
			msg.Groups[msg.GroupsLength] = NamedGroup(group)
			msg.GroupsLength++
		}
	}
	return nil
}

func (msg *SupportedGroups) Write(body []byte) []byte {
	body, mark := format.MarkUint16Offset(body)
	for i := 0; i < msg.GroupsLength; i++ {
		body = binary.BigEndian.AppendUint16(body, uint16(msg.Groups[i]))
	}
	format.FillUint16Offset(body, mark)
	return body
}

func (msg *SupportedGroups) Add(group NamedGroup) {
	if msg.GroupsLength >= len(msg.Groups) {
		panic("too many supported groups")
	}
	msg.Groups[msg.GroupsLength] = group
	msg.GroupsLength++
}
