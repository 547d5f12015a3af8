// Package bitstring manipulates canonical bit strings: strings of '0' and '1'
// characters in which index 0 is the highest-order bit. Encoded identifiers
// use the bit string as their canonical form, so this package is the meeting
// point between numeric field values on one side and hex or byte dumps on the
// other.
//
// A Layout splits a full-width bit string into consecutive fields of
// predefined bit widths, and joins such fields back into a full-width string.
// The package-level functions convert individual fields between bit strings
// and unsigned integers.
package bitstring

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Validate returns an error if s contains any character other than '0' or '1'.
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return errors.Errorf("bit strings may only contain '0' and '1', "+
				"but character %d is %q", i, s[i])
		}
	}
	return nil
}

// FormatUint renders v as a bit string of exactly width bits.
//
// width must be in [1, 64], and v must fit within it.
func FormatUint(v uint64, width int) (string, error) {
	if width < 1 || width > 64 {
		return "", errors.Errorf("bit widths must be in [1, 64], but this is %d", width)
	}
	if width < 64 && v >= 1<<uint(width) {
		return "", errors.Errorf("%d does not fit in %d bits", v, width)
	}
	s := strconv.FormatUint(v, 2)
	if len(s) == width {
		return s, nil
	}
	return strings.Repeat("0", width-len(s)) + s, nil
}

// ParseUint interprets a bit string as an unsigned integer.
//
// The string must have 1 to 64 characters, all of them '0' or '1'.
func ParseUint(s string) (uint64, error) {
	if len(s) == 0 || len(s) > 64 {
		return 0, errors.Errorf("bit strings parsed as uints must have "+
			"1 to 64 characters, but this has %d", len(s))
	}
	if err := Validate(s); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return 0, errors.Wrap(err, "unable to parse bit string")
	}
	return v, nil
}

// Layout splits a full bit string into a series of consecutive fields of
// predefined bit widths, and joins such fields back together.
//
// Layouts are safe for concurrent use.
type Layout struct {
	widths    []int
	bitLength int
}

// NewLayout returns a Layout for the given field widths.
func NewLayout(widths []int) (Layout, error) {
	l := Layout{}
	if len(widths) == 0 {
		return l, errors.New("widths slice is empty")
	}
	l.widths = make([]int, len(widths))
	for i, w := range widths {
		if w <= 0 {
			return Layout{}, errors.Errorf("widths must be >0, but width %d is %d", i, w)
		}
		l.widths[i] = w
		l.bitLength += w
	}
	return l, nil
}

// BitLength returns the total number of bits covered by the layout.
func (l Layout) BitLength() int {
	return l.bitLength
}

// NumFields returns the number of fields the layout splits a bit string into.
func (l Layout) NumFields() int {
	return len(l.widths)
}

// Widths returns a copy of the layout's field widths.
func (l Layout) Widths() []int {
	w := make([]int, len(l.widths))
	copy(w, l.widths)
	return w
}

// Split breaks a full-width bit string into one bit string per field.
func (l Layout) Split(s string) ([]string, error) {
	if len(s) != l.bitLength {
		return nil, errors.Errorf("invalid data length %d; expected %d bits",
			len(s), l.bitLength)
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	fields := make([]string, len(l.widths))
	at := 0
	for i, w := range l.widths {
		fields[i] = s[at : at+w]
		at += w
	}
	return fields, nil
}

// Join concatenates per-field bit strings into a full-width bit string.
//
// It requires one bit string per field, each with exactly its field's width.
func (l Layout) Join(fields []string) (string, error) {
	if len(fields) != len(l.widths) {
		return "", errors.Errorf("expected %d fields, but got %d",
			len(l.widths), len(fields))
	}
	var b strings.Builder
	b.Grow(l.bitLength)
	for i, f := range fields {
		if len(f) != l.widths[i] {
			return "", errors.Errorf("field %d should have %d bits, but has %d",
				i, l.widths[i], len(f))
		}
		if err := Validate(f); err != nil {
			return "", errors.Wrapf(err, "field %d is not a bit string", i)
		}
		b.WriteString(f)
	}
	return b.String(), nil
}
