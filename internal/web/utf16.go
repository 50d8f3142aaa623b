package web

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Browsers report selection offsets in UTF-16 code units; the markup
// engine works in bytes. Offsets that fall inside a character round down
// to its start.

// ByteOffset converts a UTF-16 offset in s to a byte offset.
func ByteOffset(s string, units int) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		u := runeUnits(r)
		if n+u > units {
			return i
		}
		n += u
		i += size
	}
	return len(s)
}

// UTF16Offset converts a byte offset in s to a UTF-16 offset.
func UTF16Offset(s string, offset int) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if i+size > offset {
			break
		}
		n += runeUnits(r)
		i += size
	}
	return n
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
