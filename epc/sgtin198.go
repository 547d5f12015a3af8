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
	// SGTIN198Header is the first byte of every SGTIN-198.
	SGTIN198Header = 0x36

	SGTIN198TagURIPrefix = TagURNBase + ":sgtin-198"
)

// SGTIN198 is the 198-bit serialized GTIN encoding. It matches SGTIN-96
// through the item reference, but the serial number is up to 20 characters of
// GS1 AI-encodable text packed 7 bits per character.
type SGTIN198 struct {
	scheme
}

// NewSGTIN198 returns an empty SGTIN198; populate it with Encode, LoadFields,
// or one of the decode methods.
func NewSGTIN198() *SGTIN198 {
	s := &SGTIN198{}
	s.scheme = scheme{
		self:         s,
		encodingType: "SGTIN198",
		header:       SGTIN198Header,
		totalBits:    198,
		partitions:   sgtinPartitions,
		build:        s.buildFields,
		serialField:  fieldSerialNumber,
		cpField:      fieldCompanyPrefix,
		refField:     fieldItemReference,
	}
	return s
}

func (s *SGTIN198) buildFields(row PartitionRow) *FieldDictionary {
	return newDictionary(
		s.headerField(),
		NewField(fieldFilter, 3),
		s.partitionField(row),
		NewDigitField(fieldCompanyPrefix, row.CompanyPrefixBits, row.CompanyPrefixDigits),
		NewDigitField(fieldItemReference, row.ReferenceBits, row.ReferenceDigits),
		NewTextField(fieldSerialNumber, 140),
	)
}

// Encode populates the SGTIN-198 from its identifying values. The serial
// number is text: 1 to 20 characters from the GS1 AI-encodable set.
func (s *SGTIN198) Encode(filter FilterValue, companyPrefix, itemReference, serialNumber string) error {
	if err := s.beginEncode(companyPrefix); err != nil {
		return err
	}
	if err := s.SetFieldValue(fieldFilter, uint64(filter)); err != nil {
		return err
	}
	if err := s.SetFieldText(fieldItemReference, itemReference); err != nil {
		return err
	}
	return s.SetFieldText(fieldSerialNumber, serialNumber)
}

// GTIN returns the GTIN-14 this SGTIN serializes.
func (s *SGTIN198) GTIN() (string, error) {
	return gtin14(&s.scheme)
}

// ToTagURI renders the EPC Tag URI. The serial appears percent-escaped, since
// it may contain characters reserved in URIs.
func (s *SGTIN198) ToTagURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d.%s.%s.%s", SGTIN198TagURIPrefix,
		s.mustField(fieldFilter).Value(),
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldItemReference),
		EscapeGS1(s.serialText())), nil
}

// ToURI renders the Pure Identity URI with a percent-escaped serial.
func (s *SGTIN198) ToURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s.%s", SGTINPureURIPrefix,
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldItemReference),
		EscapeGS1(s.serialText())), nil
}

// ToGS1 renders the GS1 element string: (01)GTIN(21)SerialNumber. Element
// strings carry the serial literally, without URI escaping.
func (s *SGTIN198) ToGS1() (string, error) {
	gtin, err := s.GTIN()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(01)%s(21)%s", gtin, s.gs1SerialText()), nil
}

// DecodeFromTagURI populates the SGTIN-198 from its Tag URI form. The serial
// segment is everything past the third dot, unescaped.
func (s *SGTIN198) DecodeFromTagURI(uri string) error {
	segs, err := splitURI(uri, SGTIN198TagURIPrefix, 4)
	if err != nil {
		return err
	}
	filter, err := strconv.ParseUint(segs[0], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q", fieldFilter, segs[0])
	}
	return s.Encode(FilterValue(filter), segs[1], segs[2], UnescapeGS1(segs[3]))
}

// DecodeFromURI populates the SGTIN-198 from its Pure Identity form with a
// filter of 0.
func (s *SGTIN198) DecodeFromURI(uri string) error {
	segs, err := splitURI(uri, SGTINPureURIPrefix, 3)
	if err != nil {
		return err
	}
	return s.Encode(FilterOther, segs[0], segs[1], UnescapeGS1(segs[2]))
}

// DecodeFromGS1 populates the SGTIN-198 from "(01)GTIN(21)Serial".
func (s *SGTIN198) DecodeFromGS1(elements string, companyPrefixDigits int) error {
	parsed, err := parseElementString(elements)
	if err != nil {
		return err
	}
	gtin, err := requireElement(parsed, "01")
	if err != nil {
		return err
	}
	serial, err := requireElement(parsed, "21")
	if err != nil {
		return err
	}
	cp, ir, err := splitGTIN(gtin, companyPrefixDigits)
	if err != nil {
		return err
	}
	return s.Encode(FilterOther, cp, ir, serial)
}
