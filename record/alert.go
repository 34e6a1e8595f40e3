// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package record

import (
	"errors"
	"fmt"
)

type AlertLevel byte

const (
	AlertLevelWarning AlertLevel = 1
	AlertLevelFatal   AlertLevel = 2
)

var ErrAlertParsing = errors.New("alert record must be exactly 2 bytes")

type Alert struct {
	Level       AlertLevel
	Description byte
}

func (a *Alert) Parse(body []byte) error {
	if len(body) != 2 {
		return ErrAlertParsing
	}
	a.Level = AlertLevel(body[0])
	a.Description = body[1]
	return nil
}

func (a Alert) IsFatal() bool { return a.Level == AlertLevelFatal }

func (a Alert) String() string {
	level := "warning"
	if a.IsFatal() {
		level = "fatal"
	}
	return fmt.Sprintf("alert(%s, %d)", level, a.Description)
}
