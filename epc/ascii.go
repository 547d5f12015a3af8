package epc

import (
	"fmt"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-tagdata/bitstring"
	"github.com/pkg/errors"
)

var (
	gs1Escaper = strings.NewReplacer(
		`"`, "%22",
		`%`, "%25",
		`&`, "%26",
		`/`, "%2F",
		`<`, "%3C",
		`>`, "%3E",
		`?`, "%3F",
	)

	gs1Unescaper = strings.NewReplacer(
		"%22", `"`,
		"%25", `%`,
		"%26", `&`,
		"%2F", `/`,
		"%3C", `<`,
		"%3E", `>`,
		"%3F", `?`,
	)

	// valid characters for GS1 Application Identifiers
	gs1AICharSet = [127]uint8{
		'!': 1, '"': 1, '%': 1, '&': 1, '\'': 1, '(': 1, ')': 1,
		'*': 1, '+': 1, ',': 1, '-': 1, '.': 1, '/': 1,
		':': 1, ';': 1, '<': 1, '=': 1, '>': 1, '?': 1, '_': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}
)

// packASCII packs s as consecutive 7-bit ISO 646 characters, most significant
// bit first, right-padded with '0' bits to exactly width bits.
//
// Every character must fit in 7 bits; callers restrict the character set
// before packing.
func packASCII(s string, width int) (string, error) {
	if len(s)*7 > width {
		return "", errors.Errorf("%d characters need %d bits, "+
			"but only %d are available", len(s), len(s)*7, width)
	}
	var b strings.Builder
	b.Grow(width)
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return "", errors.Errorf("character %d (%q) is not 7-bit ASCII", i, s[i])
		}
		fmt.Fprintf(&b, "%07b", s[i])
	}
	b.WriteString(strings.Repeat("0", width-7*len(s)))
	return b.String(), nil
}

// unpackASCII expands a bit string into one character per 7 bits.
//
// The first all-zero group terminates the text; a nonzero group after the
// terminator is an error, as is a bit string that isn't a multiple of 7 bits.
func unpackASCII(bits string) (string, error) {
	if len(bits)%7 != 0 {
		return "", errors.Errorf("packed ASCII must be a multiple of 7 bits, "+
			"but this has %d bits", len(bits))
	}
	var b strings.Builder
	terminated := false
	for at := 0; at < len(bits); at += 7 {
		v, err := bitstring.ParseUint(bits[at : at+7])
		if err != nil {
			return "", err
		}
		switch {
		case v == 0:
			terminated = true
		case terminated:
			return "", errors.Errorf("character %d appears after the null terminator",
				at/7)
		default:
			b.WriteByte(byte(v))
		}
	}
	return b.String(), nil
}

// EscapeGS1 returns s with the following characters replaced by their GS1
// escape sequences:
// - `"` -> "%22"
// - `%` -> "%25"
// - `&` -> "%26"
// - `/` -> "%2F"
// - `<` -> "%3C"
// - `>` -> "%3E"
// - `?` -> "%3F"
func EscapeGS1(s string) string {
	return gs1Escaper.Replace(s)
}

// UnescapeGS1 returns s with GS1 escape sequences replaced by the characters
// EscapeGS1 escapes.
func UnescapeGS1(s string) string {
	return gs1Unescaper.Replace(s)
}

// IsGS1AIEncodable returns true if the string contains only characters allowed
// in the GS1 Application Identifier character set.
func IsGS1AIEncodable(s string) bool {
	for i := range s {
		if !(s[i] < 127 && gs1AICharSet[s[i]&0x7F] == 1) {
			return false
		}
	}
	return true
}
