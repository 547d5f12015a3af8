/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-tagdata/bitstring"
	"github.com/pkg/errors"
)

// Field names shared across encodings. Lookup is by exact name; only the
// serial and partition routing below is case-insensitive.
const (
	fieldHeader                   = "Header"
	fieldFilter                   = "Filter"
	fieldPartition                = "Partition"
	fieldCompanyPrefix            = "CompanyPrefix"
	fieldItemReference            = "ItemReference"
	fieldSerialNumber             = "SerialNumber"
	fieldSerialReference          = "SerialReference"
	fieldReserved                 = "Reserved"
	fieldLocationReference        = "LocationReference"
	fieldExtension                = "Extension"
	fieldAssetType                = "AssetType"
	fieldIndividualAssetReference = "IndividualAssetReference"
	fieldGeneralManagerNumber     = "GeneralManagerNumber"
	fieldObjectClass              = "ObjectClass"
)

// Scheme is an EPC encoding: a fixed-width bit layout split into named
// fields, convertible to and from several textual forms.
//
// A Scheme starts empty. Populate it with LoadFields (defaults), one of the
// concrete Encode methods, or any DecodeFrom variant; until then, accessors
// fail with UninitializedSchemeError. Every successful mutation immediately
// resynthesizes the canonical bit string, so ToBinary always reflects the
// current field values.
type Scheme interface {
	// EncodingType returns the scheme's type tag, such as "SGTIN96".
	EncodingType() string
	// TotalBits returns the fixed width of the scheme's binary form.
	TotalBits() int
	// Fields returns the scheme's field dictionary, or nil before the
	// scheme is populated. Mutate fields through the scheme's setters, not
	// through the dictionary, or the canonical bit string goes stale.
	Fields() *FieldDictionary

	// LoadFields populates the dictionary with the scheme's default layout
	// and all-zero values.
	LoadFields() error

	// SetFieldValue sets a field to a numeric value. Serial fields route
	// through serial validation; setting Partition resizes the company
	// prefix and reference fields, failing if their values no longer fit.
	SetFieldValue(name string, value uint64) error
	// SetFieldText sets a field from its textual form, enforcing exact
	// digit counts for zero-padded fields.
	SetFieldText(name, value string) error
	// FieldValue returns a field's rendered value.
	FieldValue(name string) (string, error)

	// FixedSerialNumberLength returns the fixed serial digit count, or 0
	// when serials are unconstrained.
	FixedSerialNumberLength() int
	SetFixedSerialNumberLength(n int)
	// FixedGS1SerialNumberLength is like FixedSerialNumberLength, but only
	// governs the serial's rendering in GS1 element strings.
	FixedGS1SerialNumberLength() int
	SetFixedGS1SerialNumberLength(n int)

	// Increment adds count to the serial number and returns the new value.
	Increment(count uint64) (uint64, error)
	// Decrement subtracts count from the serial number and returns the new
	// value. Serials cannot go below zero; on failure nothing changes.
	Decrement(count uint64) (uint64, error)

	ToBinary() (string, error)
	ToHex() (string, error)
	ToTagURI() (string, error)
	ToURI() (string, error)
	ToGS1() (string, error)
	ToXML() (string, error)
	ToJSON() (string, error)
	ToDictionary() (map[string]string, error)
	// ToIDPAT returns the wildcard pattern URI for the scheme's company
	// prefix, appending any args as additional pattern segments.
	ToIDPAT(args ...string) (string, error)

	// Format renders the scheme per a case-insensitive format key; see
	// ParseFormat for the recognized keys.
	Format(kind string) (string, error)
	// Render renders the scheme in the given Format.
	Render(f Format) (string, error)

	DecodeFromBinary(bits string) error
	DecodeFromHex(h string) error
	DecodeFromBytes(b []byte) error
	DecodeFromTagURI(uri string) error
	DecodeFromURI(uri string) error
	// DecodeFromGS1 parses a GS1 element string. GS1 keys don't record
	// where the company prefix ends, so callers supply its digit count.
	DecodeFromGS1(elements string, companyPrefixDigits int) error
	DecodeFromDictionary(fields map[string]string) error
	DecodeFromJSON(doc string) error
	DecodeFromXML(doc string) error
}

// scheme carries the state and behavior shared by every encoding. Concrete
// schemes embed it and configure the layout constants at construction; it is
// unexported so a scheme can't exist without a concrete layout.
type scheme struct {
	self         Scheme
	encodingType string
	header       uint64
	totalBits    int
	partitions   PartitionTable // nil for fixed layouts
	build        func(PartitionRow) *FieldDictionary
	serialField  string // "" when the scheme has no serial
	cpField      string // "" when the scheme has no company prefix
	refField     string // the partition-sized reference field

	fields *FieldDictionary // nil until populated
	layout bitstring.Layout
	bits   string

	fixedSerialLen    int
	fixedGS1SerialLen int
}

func (s *scheme) EncodingType() string {
	return s.encodingType
}

func (s *scheme) TotalBits() int {
	return s.totalBits
}

func (s *scheme) Fields() *FieldDictionary {
	return s.fields
}

func (s *scheme) FixedSerialNumberLength() int {
	return s.fixedSerialLen
}

// SetFixedSerialNumberLength fixes the serial number's rendered digit count;
// 0 removes the constraint.
func (s *scheme) SetFixedSerialNumberLength(n int) {
	s.fixedSerialLen = n
}

func (s *scheme) FixedGS1SerialNumberLength() int {
	return s.fixedGS1SerialLen
}

// SetFixedGS1SerialNumberLength fixes the serial number's digit count in GS1
// element strings; 0 removes the constraint.
func (s *scheme) SetFixedGS1SerialNumberLength(n int) {
	s.fixedGS1SerialLen = n
}

func (s *scheme) ensureLoaded() error {
	if s.fields == nil {
		return uninitializedError(s.encodingType)
	}
	return nil
}

// LoadFields installs the scheme's default layout: partition 0 for
// partitioned encodings, all field values zero.
func (s *scheme) LoadFields() error {
	row := PartitionRow{}
	if s.partitions != nil {
		var err error
		row, err = s.partitions.ByValue(0)
		if err != nil {
			return err
		}
	}
	s.install(s.build(row))
	return nil
}

// headerField returns a Header field preset to the scheme's header value.
func (s *scheme) headerField() *Field {
	f := NewField(fieldHeader, 8)
	if err := f.Set(s.header); err != nil {
		panic(err.Error())
	}
	return f
}

// partitionField returns a Partition field preset to the row's value.
func (s *scheme) partitionField(row PartitionRow) *Field {
	f := NewField(fieldPartition, 3)
	if err := f.Set(uint64(row.Partition)); err != nil {
		panic(err.Error())
	}
	return f
}

// install adopts a freshly built dictionary and synthesizes its bit string.
func (s *scheme) install(d *FieldDictionary) {
	lay, err := bitstring.NewLayout(d.Widths())
	if err != nil {
		panic(err.Error())
	}
	s.fields = d
	s.layout = lay
	s.resynthesize()
}

// resynthesize rebuilds the canonical bit string from the current field
// values. Mutations validate before they write, so a failure here, or a
// length that disagrees with the encoding's total width, is a layout bug.
func (s *scheme) resynthesize() {
	fields := s.fields.Ordered()
	parts := make([]string, len(fields))
	for i, f := range fields {
		seg, err := f.binary()
		if err != nil {
			panic(fmt.Sprintf("unable to synthesize %s of %s: %s",
				f.Name(), s.encodingType, err))
		}
		parts[i] = seg
	}
	bits, err := s.layout.Join(parts)
	if err != nil {
		panic(fmt.Sprintf("unable to synthesize %s: %s", s.encodingType, err))
	}
	if len(bits) != s.totalBits {
		panic(fmt.Sprintf("synthesized %d bits for %s, which requires %d",
			len(bits), s.encodingType, s.totalBits))
	}
	s.bits = bits
}

// mustField returns a populated field by name. Layouts are fixed per scheme,
// so a miss is a bug.
func (s *scheme) mustField(name string) *Field {
	f, err := s.fields.Lookup(name)
	if err != nil {
		panic(err.Error())
	}
	return f
}

func (s *scheme) SetFieldValue(name string, value uint64) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if s.serialField != "" && strings.EqualFold(name, s.serialField) {
		return s.setSerial(value)
	}
	if s.partitions != nil && strings.EqualFold(name, fieldPartition) {
		return s.setPartition(value)
	}
	f, err := s.fields.Lookup(name)
	if err != nil {
		return err
	}
	if err := f.Set(value); err != nil {
		return err
	}
	s.resynthesize()
	return nil
}

func (s *scheme) SetFieldText(name, value string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if s.serialField != "" && strings.EqualFold(name, s.serialField) {
		return s.setSerialText(value)
	}
	if s.partitions != nil && strings.EqualFold(name, fieldPartition) {
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fieldValueErrorf("%s must be numeric, but is %q",
				fieldPartition, value)
		}
		return s.setPartition(v)
	}
	f, err := s.fields.Lookup(name)
	if err != nil {
		return err
	}
	if err := f.SetText(value); err != nil {
		return err
	}
	s.resynthesize()
	return nil
}

func (s *scheme) FieldValue(name string) (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	f, err := s.fields.Lookup(name)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

// setSerial sets the serial field to a numeric value, applying the serial
// rules before anything is written.
func (s *scheme) setSerial(value uint64) error {
	f, err := s.fields.Lookup(s.serialField)
	if err != nil {
		return err
	}
	if err := s.checkSerialValue(f, value); err != nil {
		return err
	}
	if f.IsText() && s.fixedSerialLen > 0 {
		if err := f.SetText(fmt.Sprintf("%0*d", s.fixedSerialLen, value)); err != nil {
			return serialNumberErrorf("%s", err)
		}
	} else if err := f.Set(value); err != nil {
		return serialNumberErrorf("%s", err)
	}
	s.resynthesize()
	return nil
}

// checkSerialValue validates a numeric serial against the fixed-length
// settings and the serial field's capacity.
func (s *scheme) checkSerialValue(f *Field, value uint64) error {
	digits := len(strconv.FormatUint(value, 10))
	if s.fixedSerialLen > 0 && digits > s.fixedSerialLen {
		return serialNumberErrorf(
			"serial numbers are fixed at %d digits, but %d has %d",
			s.fixedSerialLen, value, digits)
	}
	if s.fixedGS1SerialLen > 0 && digits > s.fixedGS1SerialLen {
		return serialNumberErrorf(
			"GS1 serial numbers are fixed at %d digits, but %d has %d",
			s.fixedGS1SerialLen, value, digits)
	}
	if f.IsText() {
		if digits > f.maxChars() {
			return serialNumberErrorf(
				"serial numbers are limited to %d characters, but %d has %d",
				f.maxChars(), value, digits)
		}
		return nil
	}
	if f.Bits() < 64 && value >= 1<<uint(f.Bits()) {
		return serialNumberErrorf(
			"serial numbers must fit in %d bits, but %d does not",
			f.Bits(), value)
	}
	if f.Digits() > 0 && digits > f.Digits() {
		return serialNumberErrorf(
			"serial numbers must have at most %d digits, but %d has %d",
			f.Digits(), value, digits)
	}
	return nil
}

// setSerialText sets the serial field from text. Text serials take the value
// as written; numeric serials parse it as decimal.
func (s *scheme) setSerialText(value string) error {
	f, err := s.fields.Lookup(s.serialField)
	if err != nil {
		return err
	}
	if !f.IsText() {
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return serialNumberErrorf("serial number %q is not numeric", value)
		}
		return s.setSerial(v)
	}
	if s.fixedSerialLen > 0 && len(value) != s.fixedSerialLen {
		return serialNumberErrorf(
			"serial numbers are fixed at %d characters, but %q has %d",
			s.fixedSerialLen, value, len(value))
	}
	if len(value) > f.maxChars() {
		return serialNumberErrorf(
			"serial numbers are limited to %d characters, but %q has %d",
			f.maxChars(), value, len(value))
	}
	if !IsGS1AIEncodable(value) {
		return serialNumberErrorf(
			"serial numbers may only contain GS1 AI-encodable characters, "+
				"but %q does not", value)
	}
	if err := f.SetText(value); err != nil {
		return serialNumberErrorf("%s", err)
	}
	s.resynthesize()
	return nil
}

// setPartition moves the scheme to another partition row, resizing the
// company prefix and reference fields. The current values must fit the new
// widths; nothing changes when they don't.
func (s *scheme) setPartition(value uint64) error {
	row, err := s.partitions.ByValue(int(value))
	if err != nil {
		return err
	}
	pf, err := s.fields.Lookup(fieldPartition)
	if err != nil {
		return err
	}
	cp, err := s.fields.Lookup(s.cpField)
	if err != nil {
		return err
	}
	ref, err := s.fields.Lookup(s.refField)
	if err != nil {
		return err
	}
	if err := cp.check(cp.Value(), row.CompanyPrefixBits, row.CompanyPrefixDigits); err != nil {
		return err
	}
	if err := ref.check(ref.Value(), row.ReferenceBits, row.ReferenceDigits); err != nil {
		return err
	}
	if err := pf.Set(value); err != nil {
		return err
	}
	cp.resize(row.CompanyPrefixBits, row.CompanyPrefixDigits)
	ref.resize(row.ReferenceBits, row.ReferenceDigits)
	lay, err := bitstring.NewLayout(s.fields.Widths())
	if err != nil {
		panic(err.Error())
	}
	s.layout = lay
	s.resynthesize()
	return nil
}

// serialUint returns the serial number as an integer, parsing text serials
// that hold decimal digits.
func (s *scheme) serialUint() (uint64, error) {
	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}
	if s.serialField == "" {
		return 0, unknownFieldError(fieldSerialNumber)
	}
	f, err := s.fields.Lookup(s.serialField)
	if err != nil {
		return 0, err
	}
	if !f.IsText() {
		return f.Value(), nil
	}
	v, err := strconv.ParseUint(f.String(), 10, 64)
	if err != nil {
		return 0, serialNumberErrorf("serial number %q is not numeric", f.String())
	}
	return v, nil
}

func (s *scheme) Increment(count uint64) (uint64, error) {
	cur, err := s.serialUint()
	if err != nil {
		return 0, err
	}
	next := cur + count
	if next < cur {
		return 0, serialNumberErrorf("incrementing %d by %d overflows", cur, count)
	}
	if err := s.SetFieldValue(s.serialField, next); err != nil {
		return 0, err
	}
	return next, nil
}

func (s *scheme) Decrement(count uint64) (uint64, error) {
	cur, err := s.serialUint()
	if err != nil {
		return 0, err
	}
	if count > cur {
		return 0, FieldValueError("Serial number field may not be below 0.")
	}
	next := cur - count
	if err := s.SetFieldValue(s.serialField, next); err != nil {
		return 0, err
	}
	return next, nil
}

// serialText renders the serial for URIs, zero-padding numeric serials to the
// fixed length when one is set.
func (s *scheme) serialText() string {
	f := s.mustField(s.serialField)
	if !f.IsText() && s.fixedSerialLen > 0 {
		return fmt.Sprintf("%0*d", s.fixedSerialLen, f.Value())
	}
	return f.String()
}

// gs1SerialText renders the serial for GS1 element strings, which may fix a
// different digit count than the URI forms.
func (s *scheme) gs1SerialText() string {
	f := s.mustField(s.serialField)
	if !f.IsText() && s.fixedGS1SerialLen > 0 {
		return fmt.Sprintf("%0*d", s.fixedGS1SerialLen, f.Value())
	}
	return s.serialText()
}

// beginEncode resolves the partition row for a company prefix and installs a
// fresh layout for it; the concrete Encode methods populate the remaining
// fields through the validated setters.
func (s *scheme) beginEncode(companyPrefix string) error {
	if s.partitions == nil {
		s.install(s.build(PartitionRow{}))
		return nil
	}
	if !isDigits(companyPrefix) {
		return fieldValueErrorf("%s must be decimal digits, but is %q",
			fieldCompanyPrefix, companyPrefix)
	}
	row, err := s.partitions.ByDigits(len(companyPrefix))
	if err != nil {
		return err
	}
	s.install(s.build(row))
	return s.SetFieldText(s.cpField, companyPrefix)
}

// DecodeFromBinary populates the fields from a canonical bit string and
// stores the string unmodified. The previous contents stay intact when
// decoding fails.
func (s *scheme) DecodeFromBinary(bits string) error {
	if len(bits) != s.totalBits {
		return errors.Errorf("the binary form of %s has %d bits, but this has %d",
			s.encodingType, s.totalBits, len(bits))
	}
	if err := bitstring.Validate(bits); err != nil {
		return err
	}
	header, err := bitstring.ParseUint(bits[:8])
	if err != nil {
		return err
	}
	if header != s.header {
		return errors.Errorf("%s headers are %#x, but this is %#x",
			s.encodingType, s.header, header)
	}
	row := PartitionRow{}
	if s.partitions != nil {
		p, err := bitstring.ParseUint(bits[11:14])
		if err != nil {
			return err
		}
		row, err = s.partitions.ByValue(int(p))
		if err != nil {
			return err
		}
	}
	d := s.build(row)
	lay, err := bitstring.NewLayout(d.Widths())
	if err != nil {
		panic(err.Error())
	}
	segs, err := lay.Split(bits)
	if err != nil {
		return err
	}
	for i, f := range d.Ordered() {
		if err := f.setBinary(segs[i]); err != nil {
			return errors.Wrapf(err, "unable to decode %s", s.encodingType)
		}
	}
	s.fields, s.layout, s.bits = d, lay, bits
	return nil
}

func (s *scheme) DecodeFromHex(h string) error {
	bits, err := bitstring.FromHex(h, s.totalBits)
	if err != nil {
		return errors.Wrapf(err, "unable to decode %s hex", s.encodingType)
	}
	return s.DecodeFromBinary(bits)
}

// DecodeFromBytes decodes a raw tag read: the encoding's bits rounded up to
// whole bytes, with every bit past the total width zero.
func (s *scheme) DecodeFromBytes(b []byte) error {
	byteLen := (s.totalBits + 7) / 8
	if len(b) != byteLen {
		return errors.Errorf("%s should have %d bytes, but this has %d",
			s.encodingType, byteLen, len(b))
	}
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, x := range b {
		fmt.Fprintf(&sb, "%08b", x)
	}
	all := sb.String()
	for i := s.totalBits; i < len(all); i++ {
		if all[i] != '0' {
			return errors.Errorf("%s uses %d bits, but padding bit %d is set",
				s.encodingType, s.totalBits, i)
		}
	}
	return s.DecodeFromBinary(all[:s.totalBits])
}
