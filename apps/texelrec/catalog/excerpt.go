// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/catalog/excerpt.go
// Summary: One-line context around a search hit.

package catalog

import (
	"strings"
	"unicode/utf8"
)

// Excerpt returns up to context runes on each side of the first
// case-insensitive occurrence of query in text, flattened to one line.
// Without a match it returns the start of text.
func Excerpt(text, query string, context int) string {
	runes := []rune(text)
	lower := []rune(strings.ToLower(text))
	start := 0
	end := len(runes)
	if len(lower) == len(runes) {
		if i := strings.Index(string(lower), strings.ToLower(query)); i >= 0 {
			hit := utf8.RuneCountInString(string(lower)[:i])
			start = hit - context
			end = hit + utf8.RuneCountInString(query) + context
		} else {
			end = 2 * context
		}
	}
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	out := strings.Join(strings.Fields(string(runes[start:end])), " ")
	if start > 0 {
		out = "…" + out
	}
	if end < len(runes) {
		out += "…"
	}
	return out
}
