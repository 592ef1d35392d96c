// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/parser.go
// Summary: Escape sequence state machine feeding a VTerm.
// Usage: One Parser per render pass; Process is called once per recorded chunk.
// Notes: Recorded chunks never split an escape sequence, so parser state does
// not carry across Process calls. The VTerm and its pen do.

package parser

import "strings"

type State int

const (
	StateGround State = iota
	StateEscape
	StateCSI
)

// String names the state for debugging output.
func (s State) String() string {
	switch s {
	case StateGround:
		return "ground"
	case StateEscape:
		return "escape"
	case StateCSI:
		return "csi"
	}
	return "unknown"
}

type Parser struct {
	state  State
	vterm  *VTerm
	params strings.Builder
}

func NewParser(v *VTerm) *Parser {
	return &Parser{
		state: StateGround,
		vterm: v,
	}
}

// VTerm returns the terminal the parser writes into.
func (p *Parser) VTerm() *VTerm { return p.vterm }

// State returns the current parser state.
func (p *Parser) State() State { return p.state }

// Process feeds one recorded chunk through the state machine. Any sequence
// left incomplete by the previous call is dropped first.
func (p *Parser) Process(chunk string) {
	p.reset()
	for _, r := range chunk {
		p.Parse(r)
	}
}

func (p *Parser) reset() {
	p.state = StateGround
	p.params.Reset()
}

// Parse advances the state machine by one rune.
func (p *Parser) Parse(r rune) {
	switch p.state {
	case StateGround:
		switch r {
		case '\x1b':
			p.state = StateEscape
		case '\n':
			p.vterm.LineFeed()
		case '\r':
			p.vterm.CarriageReturn()
		case '\b':
			p.vterm.Backspace()
		case '\t':
			p.vterm.Tab()
		default:
			if isPrintable(r) {
				p.vterm.PlaceChar(r)
			}
		}
	case StateEscape:
		if r == '[' {
			p.state = StateCSI
			p.params.Reset()
			return
		}
		// Non-CSI escapes (charset selection, keypad modes, save cursor)
		// are unsupported; the byte after ESC is swallowed with it.
		p.state = StateGround
	case StateCSI:
		if isASCIILetter(r) {
			p.vterm.ProcessCSI(r, p.params.String())
			p.reset()
			return
		}
		p.params.WriteRune(r)
	}
}

// isPrintable rejects the C0 controls without a grid operation and DEL.
func isPrintable(r rune) bool {
	return r >= ' ' && r != 0x7f
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// StripEscapes returns the printable text of s with every escape sequence
// removed, using the same state machine as Parser. Newlines and tabs are kept.
func StripEscapes(s string) string {
	var b strings.Builder
	state := StateGround
	for _, r := range s {
		switch state {
		case StateGround:
			switch {
			case r == '\x1b':
				state = StateEscape
			case r == '\n' || r == '\t':
				b.WriteRune(r)
			case isPrintable(r):
				b.WriteRune(r)
			}
		case StateEscape:
			if r == '[' {
				state = StateCSI
			} else {
				state = StateGround
			}
		case StateCSI:
			if isASCIILetter(r) {
				state = StateGround
			}
		}
	}
	return b.String()
}
