// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/capture/shell.go
// Summary: Shell and terminal size discovery.

package capture

import (
	"bytes"
	"os"
	"os/exec"
	"syscall"
	"unicode/utf8"

	"golang.org/x/term"
)

var hangupSignal = syscall.SIGHUP

// ResolveShell picks the shell to record: the configured one, then $SHELL,
// then bash, then sh.
func ResolveShell(configured string) string {
	if configured != "" {
		return configured
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	if path, err := exec.LookPath("bash"); err == nil {
		return path
	}
	return "/bin/sh"
}

// TerminalSize returns the size of f when it is a terminal, otherwise the
// given defaults.
func TerminalSize(f *os.File, defWidth, defHeight int) (width, height int) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return defWidth, defHeight
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defWidth, defHeight
	}
	return w, h
}

// maxHeldEscape bounds how much of an unfinished escape sequence is carried
// into the next read.
const maxHeldEscape = 64

// splitChunk returns the part of b that can be recorded as one frame, with
// invalid bytes replaced, and the trailing bytes to carry into the next read:
// an incomplete rune or an escape sequence still waiting for its final letter.
func splitChunk(b []byte) (string, []byte) {
	cut := len(b)
	// A rune is at most 4 bytes, so only the last 3 can be a partial one.
	for i := len(b) - 1; i >= 0 && i >= len(b)-3; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				cut = i
			}
			break
		}
	}
	if i := openEscape(b[:cut]); i >= 0 {
		cut = i
	}
	rest := append([]byte(nil), b[cut:]...)
	return toValid(b[:cut]), rest
}

// openEscape returns the index of an escape sequence left unterminated at the
// end of b, or -1. Sequences longer than maxHeldEscape are not held.
func openEscape(b []byte) int {
	start := max(len(b)-maxHeldEscape, 0)
	i := bytes.LastIndexByte(b[start:], 0x1b)
	if i < 0 {
		return -1
	}
	i += start
	seq := b[i+1:]
	if len(seq) == 0 {
		return i
	}
	if seq[0] != '[' {
		return -1
	}
	for _, c := range seq[1:] {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return -1
		}
	}
	return i
}

func toValid(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return string(out)
}
