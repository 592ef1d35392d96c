// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/vterm_sgr.go
// Summary: SGR (Select Graphic Rendition) - text attributes and colors.
// Usage: Part of VTerm terminal emulator.

package parser

import (
	"strconv"
	"strings"
)

// handleSGR processes the raw parameter string of an SGR sequence.
// Unknown or unparseable codes are skipped; the remaining codes still apply.
func (v *VTerm) handleSGR(params string) {
	if params == "" {
		v.ResetAttributes()
		return
	}
	fields := strings.Split(params, ";")
	for i := 0; i < len(fields); i++ {
		p, ok := sgrNumber(fields[i])
		if !ok {
			continue
		}
		switch {
		case p == 0:
			v.ResetAttributes()
		case p == 1:
			v.SetAttribute(AttrBold)
		case p == 3:
			v.SetAttribute(AttrItalic)
		case p == 4:
			v.SetAttribute(AttrUnderline)
		case p == 22:
			v.ClearAttribute(AttrBold)
		case p == 23:
			v.ClearAttribute(AttrItalic)
		case p == 24:
			v.ClearAttribute(AttrUnderline)
		case p >= 30 && p <= 37:
			v.currentFG = Standard(p - 30)
		case p == 39:
			v.currentFG = v.theme.FG
		case p >= 40 && p <= 47:
			v.currentBG = Standard(p - 40)
		case p == 49:
			v.currentBG = v.theme.BG
		case p >= 90 && p <= 97:
			v.currentFG = Bright(p - 90)
		case p >= 100 && p <= 107:
			v.currentBG = Bright(p - 100)
		case p == 38, p == 48:
			c, consumed, ok := extendedColor(fields[i+1:])
			if ok {
				if p == 38 {
					v.currentFG = c
				} else {
					v.currentBG = c
				}
			}
			i += consumed
		default:
			// Unsupported rendition (blink, reverse, fonts...): ignored.
		}
	}
}

// extendedColor decodes the arguments following 38 or 48: "5;N" or "2;R;G;B".
// It returns how many fields were consumed. A known mode with enough fields
// consumes them all even when a value is out of range; an unknown or
// truncated mode consumes only the mode field.
func extendedColor(rest []string) (RGB, int, bool) {
	if len(rest) == 0 {
		return RGB{}, 0, false
	}
	mode, ok := sgrNumber(rest[0])
	switch {
	case ok && mode == 5 && len(rest) >= 2:
		n, ok := sgrNumber(rest[1])
		if !ok || n > 255 {
			return RGB{}, 2, false
		}
		return Palette256(uint8(n)), 2, true
	case ok && mode == 2 && len(rest) >= 4:
		var ch [3]uint8
		for j := range ch {
			n, ok := sgrNumber(rest[1+j])
			if !ok || n > 255 {
				return RGB{}, 4, false
			}
			ch[j] = uint8(n)
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, 4, true
	}
	return RGB{}, 1, false
}

// sgrNumber parses one SGR field. An empty field means 0.
func sgrNumber(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// SetAttribute sets a text attribute (bold, italic, underline).
func (v *VTerm) SetAttribute(a Attribute) { v.currentAttr |= a }

// ClearAttribute clears a text attribute.
func (v *VTerm) ClearAttribute(a Attribute) { v.currentAttr &^= a }

// SetForeground sets the active foreground color.
func (v *VTerm) SetForeground(c RGB) { v.currentFG = c }

// SetBackground sets the active background color.
func (v *VTerm) SetBackground(c RGB) { v.currentBG = c }

// ResetAttributes resets all text attributes and restores the theme colors.
func (v *VTerm) ResetAttributes() {
	v.currentFG = v.theme.FG
	v.currentBG = v.theme.BG
	v.currentAttr = 0
}
