/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strconv"

	"github.com/intel/rsp-sw-toolkit-im-suite-tagdata/bitstring"
)

// Field is a single named segment of an encoding's bit layout.
//
// A field knows its bit width, how its value renders as text, and what values
// it accepts. Most fields are numeric; company prefixes and similar GS1 key
// parts are fixed-length digit strings that keep their leading zeros, and a
// few serial fields hold short text packed as 7-bit ISO 646 characters.
type Field struct {
	name   string
	bits   int
	digits int
	padded bool
	text   bool
	value  uint64
	chars  string
}

// NewField returns a numeric field bounded only by its bit width.
func NewField(name string, bits int) *Field {
	return &Field{name: name, bits: bits}
}

// NewDigitField returns a field holding a decimal value rendered zero-padded
// to exactly digits digits.
func NewDigitField(name string, bits, digits int) *Field {
	return &Field{name: name, bits: bits, digits: digits, padded: true}
}

// NewBoundedField returns a numeric field limited to values of at most digits
// decimal digits, rendered without padding.
func NewBoundedField(name string, bits, digits int) *Field {
	return &Field{name: name, bits: bits, digits: digits}
}

// NewTextField returns a field holding up to bits/7 characters of the GS1
// AI-encodable set, packed as 7-bit ISO 646 values and right-padded with
// zero bits.
func NewTextField(name string, bits int) *Field {
	return &Field{name: name, bits: bits, text: true}
}

// Name returns the field's name.
func (f *Field) Name() string {
	return f.name
}

// Bits returns the field's bit width.
func (f *Field) Bits() int {
	return f.bits
}

// Digits returns the field's digit limit, or 0 if it has none.
func (f *Field) Digits() int {
	return f.digits
}

// IsText reports whether the field holds packed characters rather than a
// number.
func (f *Field) IsText() bool {
	return f.text
}

// Value returns the field's numeric value. Text fields always report 0; use
// String for their content.
func (f *Field) Value() uint64 {
	return f.value
}

// String renders the field's value the way it appears in URIs and element
// strings: zero-padded for digit fields, plain decimal for other numeric
// fields, and the raw characters for text fields.
func (f *Field) String() string {
	switch {
	case f.text:
		return f.chars
	case f.padded:
		if f.digits == 0 {
			return ""
		}
		return fmt.Sprintf("%0*d", f.digits, f.value)
	default:
		return strconv.FormatUint(f.value, 10)
	}
}

// maxChars returns the number of characters a text field can pack.
func (f *Field) maxChars() int {
	return f.bits / 7
}

// check validates v against a bit width and digit limit without storing it.
func (f *Field) check(v uint64, bits, digits int) error {
	if bits < 64 && v >= 1<<uint(bits) {
		return fieldValueErrorf("%s must fit in %d bits, but %d does not",
			f.name, bits, v)
	}
	if digits > 0 && v >= pow10(digits) {
		return fieldValueErrorf("%s must have at most %d digits, but %d is too large",
			f.name, digits, v)
	}
	return nil
}

// Set validates v against the field's bounds and stores it.
func (f *Field) Set(v uint64) error {
	if f.text {
		s := strconv.FormatUint(v, 10)
		if len(s) > f.maxChars() {
			return fieldValueErrorf("%s is limited to %d characters, but %d has %d digits",
				f.name, f.maxChars(), v, len(s))
		}
		f.value, f.chars = v, s
		return nil
	}
	if err := f.check(v, f.bits, f.digits); err != nil {
		return err
	}
	f.value = v
	return nil
}

// SetText validates the textual form of a value and stores it. Digit fields
// require exactly their digit count; other numeric fields parse s as a
// decimal value; text fields take s as-is.
func (f *Field) SetText(s string) error {
	if f.text {
		if len(s) > f.maxChars() {
			return fieldValueErrorf("%s is limited to %d characters, but %q has %d",
				f.name, f.maxChars(), s, len(s))
		}
		if !IsGS1AIEncodable(s) {
			return fieldValueErrorf("%s may only contain GS1 AI-encodable characters, "+
				"but %q does not", f.name, s)
		}
		f.chars = s
		f.value = 0
		return nil
	}
	if f.padded {
		if len(s) != f.digits {
			return fieldValueErrorf("%s must have exactly %d digits, but %q has %d",
				f.name, f.digits, s, len(s))
		}
		if f.digits == 0 {
			f.value = 0
			return nil
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q", f.name, s)
	}
	return f.Set(v)
}

// binary renders the field's value as a bit string of exactly its width.
func (f *Field) binary() (string, error) {
	if f.text {
		return packASCII(f.chars, f.bits)
	}
	return bitstring.FormatUint(f.value, f.bits)
}

// setBinary populates the field from a bit string of exactly its width,
// applying the same validation as Set and SetText.
func (f *Field) setBinary(s string) error {
	if len(s) != f.bits {
		return fieldValueErrorf("%s takes %d bits, but was given %d",
			f.name, f.bits, len(s))
	}
	if f.text {
		chars, err := unpackASCII(s)
		if err != nil {
			return fieldValueErrorf("%s holds invalid characters: %s", f.name, err)
		}
		return f.SetText(chars)
	}
	v, err := bitstring.ParseUint(s)
	if err != nil {
		return fieldValueErrorf("%s is not a valid bit string: %s", f.name, err)
	}
	return f.Set(v)
}

// resize changes the field's bit width and digit limit. Callers check the
// current value fits the new bounds first.
func (f *Field) resize(bits, digits int) {
	f.bits, f.digits = bits, digits
}

// pow10 returns 10^n. It panics for n outside [0, 19], which would overflow
// uint64.
func pow10(n int) uint64 {
	if n < 0 || n > 19 {
		panic(fmt.Sprintf("pow10 of %d overflows uint64", n))
	}
	v := uint64(1)
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}

// FieldDictionary holds an encoding's fields in layout order and by name.
type FieldDictionary struct {
	ordered []*Field
	byName  map[string]*Field
}

// NewFieldDictionary returns an empty dictionary.
func NewFieldDictionary() *FieldDictionary {
	return &FieldDictionary{byName: make(map[string]*Field)}
}

// newDictionary builds a dictionary from fields, panicking on duplicate
// names; layouts are fixed at compile time, so a duplicate is a bug.
func newDictionary(fields ...*Field) *FieldDictionary {
	d := NewFieldDictionary()
	for _, f := range fields {
		if err := d.Insert(f); err != nil {
			panic(err.Error())
		}
	}
	return d
}

// Insert appends f to the layout order and indexes it by name.
func (d *FieldDictionary) Insert(f *Field) error {
	if _, ok := d.byName[f.name]; ok {
		return duplicateFieldError(f.name)
	}
	d.byName[f.name] = f
	d.ordered = append(d.ordered, f)
	return nil
}

// Lookup returns the field with the given name.
func (d *FieldDictionary) Lookup(name string) (*Field, error) {
	f, ok := d.byName[name]
	if !ok {
		return nil, unknownFieldError(name)
	}
	return f, nil
}

// Has reports whether the dictionary defines a field with the given name.
func (d *FieldDictionary) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Len returns the number of fields.
func (d *FieldDictionary) Len() int {
	return len(d.ordered)
}

// Ordered returns the fields in layout order.
func (d *FieldDictionary) Ordered() []*Field {
	fields := make([]*Field, len(d.ordered))
	copy(fields, d.ordered)
	return fields
}

// Names returns the field names in layout order.
func (d *FieldDictionary) Names() []string {
	names := make([]string, len(d.ordered))
	for i, f := range d.ordered {
		names[i] = f.name
	}
	return names
}

// Widths returns the field bit widths in layout order.
func (d *FieldDictionary) Widths() []int {
	widths := make([]int, len(d.ordered))
	for i, f := range d.ordered {
		widths[i] = f.bits
	}
	return widths
}

// BitLength returns the total bit width of all fields.
func (d *FieldDictionary) BitLength() int {
	total := 0
	for _, f := range d.ordered {
		total += f.bits
	}
	return total
}
