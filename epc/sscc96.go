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
	// SSCC96Header is the first byte of every SSCC-96.
	SSCC96Header = 0x31

	SSCC96TagURIPrefix = TagURNBase + ":sscc-96"
	SSCCPureURIPrefix  = PureURNBase + ":sscc"
)

// SSCC96 is the 96-bit serial shipping container code encoding. The serial
// reference's first digit is the SSCC extension digit; the final 24 bits of
// the layout are reserved and stay zero.
type SSCC96 struct {
	scheme
}

// NewSSCC96 returns an empty SSCC96; populate it with Encode, LoadFields, or
// one of the decode methods.
func NewSSCC96() *SSCC96 {
	s := &SSCC96{}
	s.scheme = scheme{
		self:         s,
		encodingType: "SSCC96",
		header:       SSCC96Header,
		totalBits:    96,
		partitions:   ssccPartitions,
		build:        s.buildFields,
		serialField:  fieldSerialReference,
		cpField:      fieldCompanyPrefix,
		refField:     fieldSerialReference,
	}
	return s
}

func (s *SSCC96) buildFields(row PartitionRow) *FieldDictionary {
	return newDictionary(
		s.headerField(),
		NewField(fieldFilter, 3),
		s.partitionField(row),
		NewDigitField(fieldCompanyPrefix, row.CompanyPrefixBits, row.CompanyPrefixDigits),
		NewDigitField(fieldSerialReference, row.ReferenceBits, row.ReferenceDigits),
		NewField(fieldReserved, 24),
	)
}

// Encode populates the SSCC-96 from its identifying values. The company
// prefix and serial reference together always have 17 digits.
func (s *SSCC96) Encode(filter FilterValue, companyPrefix, serialReference string) error {
	if err := s.beginEncode(companyPrefix); err != nil {
		return err
	}
	if err := s.SetFieldValue(fieldFilter, uint64(filter)); err != nil {
		return err
	}
	return s.SetFieldText(fieldSerialReference, serialReference)
}

// SSCC returns the SSCC-18 this tag encodes: the extension digit, company
// prefix, the rest of the serial reference, and the check digit.
func (s *SSCC96) SSCC() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	cp := s.mustField(fieldCompanyPrefix).String()
	sr := s.mustField(fieldSerialReference).String()
	body := sr[:1] + cp + sr[1:]
	check, err := CheckDigit(body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", body, check), nil
}

// ToTagURI renders the EPC Tag URI:
//     urn:epc:tag:sscc-96:Filter.CompanyPrefix.SerialReference
func (s *SSCC96) ToTagURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d.%s.%s", SSCC96TagURIPrefix,
		s.mustField(fieldFilter).Value(),
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldSerialReference)), nil
}

// ToURI renders the Pure Identity URI:
//     urn:epc:id:sscc:CompanyPrefix.SerialReference
func (s *SSCC96) ToURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s", SSCCPureURIPrefix,
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldSerialReference)), nil
}

// ToGS1 renders the GS1 element string: (00)SSCC.
func (s *SSCC96) ToGS1() (string, error) {
	sscc, err := s.SSCC()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(00)%s", sscc), nil
}

// DecodeFromTagURI populates the SSCC-96 from its Tag URI form.
func (s *SSCC96) DecodeFromTagURI(uri string) error {
	segs, err := splitURI(uri, SSCC96TagURIPrefix, 3)
	if err != nil {
		return err
	}
	filter, err := strconv.ParseUint(segs[0], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q", fieldFilter, segs[0])
	}
	return s.Encode(FilterValue(filter), segs[1], segs[2])
}

// DecodeFromURI populates the SSCC-96 from its Pure Identity form with a
// filter of 0.
func (s *SSCC96) DecodeFromURI(uri string) error {
	segs, err := splitURI(uri, SSCCPureURIPrefix, 2)
	if err != nil {
		return err
	}
	return s.Encode(FilterOther, segs[0], segs[1])
}

// DecodeFromGS1 populates the SSCC-96 from "(00)SSCC".
func (s *SSCC96) DecodeFromGS1(elements string, companyPrefixDigits int) error {
	parsed, err := parseElementString(elements)
	if err != nil {
		return err
	}
	sscc, err := requireElement(parsed, "00")
	if err != nil {
		return err
	}
	cp, sr, err := splitSSCC(sscc, companyPrefixDigits)
	if err != nil {
		return err
	}
	return s.Encode(FilterOther, cp, sr)
}
