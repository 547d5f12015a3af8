/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strconv"
)

const (
	// SGLN96Header is the first byte of every SGLN-96.
	SGLN96Header = 0x32

	SGLN96TagURIPrefix = TagURNBase + ":sgln-96"
	SGLNPureURIPrefix  = PureURNBase + ":sgln"
)

// SGLN96 is the 96-bit global location number encoding: a GLN-13 plus a
// 41-bit extension distinguishing sub-locations. An extension of 0 means the
// GLN stands alone.
type SGLN96 struct {
	scheme
}

// NewSGLN96 returns an empty SGLN96; populate it with Encode, LoadFields, or
// one of the decode methods.
func NewSGLN96() *SGLN96 {
	s := &SGLN96{}
	s.scheme = scheme{
		self:         s,
		encodingType: "SGLN96",
		header:       SGLN96Header,
		totalBits:    96,
		partitions:   sglnPartitions,
		build:        s.buildFields,
		serialField:  fieldExtension,
		cpField:      fieldCompanyPrefix,
		refField:     fieldLocationReference,
	}
	return s
}

func (s *SGLN96) buildFields(row PartitionRow) *FieldDictionary {
	return newDictionary(
		s.headerField(),
		NewField(fieldFilter, 3),
		s.partitionField(row),
		NewDigitField(fieldCompanyPrefix, row.CompanyPrefixBits, row.CompanyPrefixDigits),
		NewDigitField(fieldLocationReference, row.ReferenceBits, row.ReferenceDigits),
		NewField(fieldExtension, 41),
	)
}

// Encode populates the SGLN-96 from its identifying values. A 12-digit
// company prefix leaves no location reference digits; pass "" for it there.
func (s *SGLN96) Encode(filter FilterValue, companyPrefix, locationReference string, extension uint64) error {
	if err := s.beginEncode(companyPrefix); err != nil {
		return err
	}
	if err := s.SetFieldValue(fieldFilter, uint64(filter)); err != nil {
		return err
	}
	if err := s.SetFieldText(fieldLocationReference, locationReference); err != nil {
		return err
	}
	return s.SetFieldValue(fieldExtension, extension)
}

// GLN returns the GLN-13 this tag encodes: the company prefix, location
// reference, and check digit.
func (s *SGLN96) GLN() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	body := s.mustField(fieldCompanyPrefix).String() +
		s.mustField(fieldLocationReference).String()
	check, err := CheckDigit(body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", body, check), nil
}

// ToTagURI renders the EPC Tag URI:
//     urn:epc:tag:sgln-96:Filter.CompanyPrefix.LocationReference.Extension
func (s *SGLN96) ToTagURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d.%s.%s.%s", SGLN96TagURIPrefix,
		s.mustField(fieldFilter).Value(),
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldLocationReference),
		s.serialText()), nil
}

// ToURI renders the Pure Identity URI:
//     urn:epc:id:sgln:CompanyPrefix.LocationReference.Extension
func (s *SGLN96) ToURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s.%s", SGLNPureURIPrefix,
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldLocationReference),
		s.serialText()), nil
}

// ToGS1 renders the GS1 element string: (414)GLN, plus (254)Extension when
// the extension is nonzero.
func (s *SGLN96) ToGS1() (string, error) {
	gln, err := s.GLN()
	if err != nil {
		return "", err
	}
	if ext := s.mustField(fieldExtension).Value(); ext > 0 {
		return fmt.Sprintf("(414)%s(254)%s", gln, s.gs1SerialText()), nil
	}
	return fmt.Sprintf("(414)%s", gln), nil
}

// DecodeFromTagURI populates the SGLN-96 from its Tag URI form.
func (s *SGLN96) DecodeFromTagURI(uri string) error {
	segs, err := splitURI(uri, SGLN96TagURIPrefix, 4)
	if err != nil {
		return err
	}
	filter, err := strconv.ParseUint(segs[0], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q", fieldFilter, segs[0])
	}
	ext, err := strconv.ParseUint(segs[3], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q", fieldExtension, segs[3])
	}
	return s.Encode(FilterValue(filter), segs[1], segs[2], ext)
}

// DecodeFromURI populates the SGLN-96 from its Pure Identity form with a
// filter of 0.
func (s *SGLN96) DecodeFromURI(uri string) error {
	segs, err := splitURI(uri, SGLNPureURIPrefix, 3)
	if err != nil {
		return err
	}
	ext, err := strconv.ParseUint(segs[2], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q", fieldExtension, segs[2])
	}
	return s.Encode(FilterOther, segs[0], segs[1], ext)
}

// DecodeFromGS1 populates the SGLN-96 from "(414)GLN", with an optional
// "(254)Extension"; without one the extension is 0.
func (s *SGLN96) DecodeFromGS1(elements string, companyPrefixDigits int) error {
	parsed, err := parseElementString(elements)
	if err != nil {
		return err
	}
	gln, err := requireElement(parsed, "414")
	if err != nil {
		return err
	}
	cp, lr, err := splitGLN(gln, companyPrefixDigits)
	if err != nil {
		return err
	}
	var ext uint64
	if extText, ok := parsed["254"]; ok {
		ext, err = strconv.ParseUint(extText, 10, 64)
		if err != nil {
			return fieldValueErrorf("%s must be numeric, but is %q",
				fieldExtension, extText)
		}
	}
	return s.Encode(FilterOther, cp, lr, ext)
}
