// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/glyph/glyph_data.go
// Summary: Hand-drawn 7-row bitmaps for printable ASCII.
// Notes: '#' is a lit pixel, '.' is unlit. Rows of one glyph share a width.

package glyph

var fallbackRows = [Height]string{
	"#####",
	"#...#",
	"#.#.#",
	"#.#.#",
	"#.#.#",
	"#...#",
	"#####",
}

var glyphRows = map[rune][Height]string{
	' ': {"...", "...", "...", "...", "...", "...", "..."},
	'!': {"#", "#", "#", "#", "#", ".", "#"},
	'"': {"#.#", "#.#", "#.#", "...", "...", "...", "..."},
	'#': {".#.#.", ".#.#.", "#####", ".#.#.", "#####", ".#.#.", ".#.#."},
	'$': {".###.", "#.#..", "#.#..", ".###.", "..#.#", "..#.#", ".###."},
	'%': {"##...", "##..#", "...#.", "..#..", ".#...", "#..##", "...##"},
	'&': {".##..", "#..#.", "#.#..", ".#...", "#.#.#", "#..#.", ".##.#"},

	'\'': {"#", "#", "#", ".", ".", ".", "."},

	'(': {".#", "#.", "#.", "#.", "#.", "#.", ".#"},
	')': {"#.", ".#", ".#", ".#", ".#", ".#", "#."},
	'*': {"...", "#.#", ".#.", "###", ".#.", "#.#", "..."},
	'+': {"...", ".#.", ".#.", "###", ".#.", ".#.", "..."},
	',': {"..", "..", "..", "..", "..", ".#", "#."},
	'-': {"...", "...", "...", "###", "...", "...", "..."},
	'.': {".", ".", ".", ".", ".", ".", "#"},
	'/': {"...#", "..#.", "..#.", ".#..", ".#..", "#...", "#..."},
	'0': {".##.", "#..#", "#.##", "##.#", "#..#", "#..#", ".##."},
	'1': {".#.", "##.", ".#.", ".#.", ".#.", ".#.", "###"},
	'2': {".##.", "#..#", "...#", "..#.", ".#..", "#...", "####"},
	'3': {".##.", "#..#", "...#", ".##.", "...#", "#..#", ".##."},
	'4': {"..#.", ".##.", "#.#.", "#.#.", "####", "..#.", "..#."},
	'5': {"####", "#...", "###.", "...#", "...#", "#..#", ".##."},
	'6': {".##.", "#..#", "#...", "###.", "#..#", "#..#", ".##."},
	'7': {"####", "...#", "..#.", ".#..", ".#..", ".#..", ".#.."},
	'8': {".##.", "#..#", "#..#", ".##.", "#..#", "#..#", ".##."},
	'9': {".##.", "#..#", "#..#", ".###", "...#", "#..#", ".##."},
	':': {".", "#", "#", ".", "#", "#", "."},
	';': {"..", ".#", ".#", "..", ".#", ".#", "#."},
	'<': {"..#", ".#.", "#..", "#..", "#..", ".#.", "..#"},
	'=': {"...", "...", "###", "...", "###", "...", "..."},
	'>': {"#..", ".#.", "..#", "..#", "..#", ".#.", "#.."},
	'?': {".##.", "#..#", "...#", "..#.", ".#..", "....", ".#.."},
	'@': {".###.", "#...#", "#.###", "#.###", "#.##.", "#....", ".###."},
	'A': {".##.", "#..#", "#..#", "####", "#..#", "#..#", "#..#"},
	'B': {"###.", "#..#", "#..#", "###.", "#..#", "#..#", "###."},
	'C': {".##.", "#..#", "#...", "#...", "#...", "#..#", ".##."},
	'D': {"###.", "#..#", "#..#", "#..#", "#..#", "#..#", "###."},
	'E': {"####", "#...", "#...", "###.", "#...", "#...", "####"},
	'F': {"####", "#...", "#...", "###.", "#...", "#...", "#..."},
	'G': {".##.", "#..#", "#...", "#.##", "#..#", "#..#", ".###"},
	'H': {"#..#", "#..#", "#..#", "####", "#..#", "#..#", "#..#"},
	'I': {"###", ".#.", ".#.", ".#.", ".#.", ".#.", "###"},
	'J': {"..##", "...#", "...#", "...#", "#..#", "#..#", ".##."},
	'K': {"#..#", "#.#.", "##..", "#...", "##..", "#.#.", "#..#"},
	'L': {"#...", "#...", "#...", "#...", "#...", "#...", "####"},
	'M': {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	'N': {"#..#", "##.#", "##.#", "#.##", "#.##", "#..#", "#..#"},
	'O': {".##.", "#..#", "#..#", "#..#", "#..#", "#..#", ".##."},
	'P': {"###.", "#..#", "#..#", "###.", "#...", "#...", "#..."},
	'Q': {".##.", "#..#", "#..#", "#..#", "#.##", "#..#", ".###"},
	'R': {"###.", "#..#", "#..#", "###.", "#.#.", "#..#", "#..#"},
	'S': {".###", "#...", "#...", ".##.", "...#", "...#", "###."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#..#", "#..#", "#..#", "#..#", "#..#", "#..#", ".##."},
	'V': {"#..#", "#..#", "#..#", "#..#", "#..#", ".##.", "..#."},
	'W': {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "##.##", "#...#"},
	'X': {"#..#", "#..#", ".##.", "....", ".##.", "#..#", "#..#"},
	'Y': {"#..#", "#..#", ".##.", "..#.", "..#.", "..#.", "..#."},
	'Z': {"####", "...#", "..#.", ".#..", "#...", "#...", "####"},
	'[': {"##", "#.", "#.", "#.", "#.", "#.", "##"},

	'\\': {"#...", "#...", ".#..", ".#..", "..#.", "..#.", "...#"},

	']': {"##", ".#", ".#", ".#", ".#", ".#", "##"},
	'^': {".#.", "#.#", "...", "...", "...", "...", "..."},
	'_': {"...", "...", "...", "...", "...", "...", "###"},
	'`': {"#.", ".#", "..", "..", "..", "..", ".."},
	'a': {"...", "...", ".##", "..#", ".##", "#.#", ".##"},
	'b': {"#..", "#..", "##.", "#.#", "#.#", "#.#", "##."},
	'c': {"...", "...", ".##", "#..", "#..", "#..", ".##"},
	'd': {"..#", "..#", ".##", "#.#", "#.#", "#.#", ".##"},
	'e': {"...", "...", ".##", "#.#", "###", "#..", ".##"},
	'f': {".##", "#..", "###", "#..", "#..", "#..", "#.."},
	'g': {"...", ".##", "#.#", "#.#", ".##", "..#", ".#."},
	'h': {"#..", "#..", "##.", "#.#", "#.#", "#.#", "#.#"},
	'i': {".#.", "...", "##.", ".#.", ".#.", ".#.", "###"},
	'j': {"..#", "...", ".##", "..#", "..#", "#.#", ".#."},
	'k': {"#..", "#..", "#.#", "##.", "##.", "#.#", "#.#"},
	'l': {"##.", ".#.", ".#.", ".#.", ".#.", ".#.", "###"},
	'm': {"....", "....", "###.", "#.##", "#.##", "#.##", "#.##"},
	'n': {"...", "...", "##.", "#.#", "#.#", "#.#", "#.#"},
	'o': {"...", "...", ".#.", "#.#", "#.#", "#.#", ".#."},
	'p': {"...", "...", "##.", "#.#", "##.", "#..", "#.."},
	'q': {"...", "...", ".##", "#.#", ".##", "..#", "..#"},
	'r': {"...", "...", "#.#", "##.", "#..", "#..", "#.."},
	's': {"...", "...", ".##", "#..", ".#.", "..#", "##."},
	't': {".#.", ".#.", "###", ".#.", ".#.", ".#.", ".##"},
	'u': {"...", "...", "#.#", "#.#", "#.#", "#.#", ".##"},
	'v': {"...", "...", "#.#", "#.#", "#.#", ".#.", ".#."},
	'w': {"....", "....", "#..#", "#..#", "#.##", "##.#", "#..#"},
	'x': {"...", "...", "#.#", "#.#", ".#.", "#.#", "#.#"},
	'y': {"...", "...", "#.#", "#.#", ".##", "..#", ".#."},
	'z': {"...", "...", "###", "..#", ".#.", "#..", "###"},
	'{': {".##", ".#.", ".#.", "#..", ".#.", ".#.", ".##"},
	'|': {".#.", ".#.", ".#.", ".#.", ".#.", ".#.", ".#."},
	'}': {"##.", ".#.", ".#.", "..#", ".#.", ".#.", "##."},
	'~': {"....", "....", ".#.#", "#.#.", "....", "....", "...."},
}
