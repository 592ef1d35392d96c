// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/vterm_csi.go
// Summary: CSI command dispatch for the virtual terminal.
// Usage: Called by Parser once a CSI sequence reaches its final letter.

package parser

import (
	"strconv"
	"strings"
)

// ProcessCSI applies a complete CSI sequence. params is the raw text between
// "ESC [" and the command letter. Unsupported commands are consumed silently.
func (v *VTerm) ProcessCSI(command rune, params string) {
	switch command {
	case 'm':
		v.handleSGR(params)
	case 'A':
		v.MoveCursorUp(countParam(params))
	case 'B':
		v.MoveCursorDown(countParam(params))
	case 'C':
		v.MoveCursorForward(countParam(params))
	case 'D':
		v.MoveCursorBackward(countParam(params))
	case 'H', 'f':
		row, col := positionParams(params)
		v.SetCursorPos(row, col)
	case 'J':
		v.ClearScreenMode(modeParam(params))
	case 'K':
		v.ClearLine(modeParam(params))
	default:
		if v.UnhandledSequence != nil {
			v.UnhandledSequence(command, params)
		}
	}
}

// countParam parses a cursor movement count. Empty or unparseable input
// means 1; an explicit 0 means no movement.
func countParam(params string) int {
	n, err := strconv.Atoi(params)
	if err != nil || n < 0 {
		return 1
	}
	return n
}

// modeParam parses an erase mode. Empty or unparseable input means 0.
func modeParam(params string) int {
	n, err := strconv.Atoi(params)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// positionParams parses "row;col" (1-based) into 0-based coordinates.
// Missing or unparseable parts mean 1.
func positionParams(params string) (row, col int) {
	parts := strings.Split(params, ";")
	row = oneBased(parts[0])
	if len(parts) > 1 {
		col = oneBased(parts[1])
	}
	return row, col
}

func oneBased(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}
