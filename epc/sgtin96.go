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
	// SGTIN96Header is the first byte of every SGTIN-96.
	SGTIN96Header = 0x30

	SGTIN96TagURIPrefix = TagURNBase + ":sgtin-96"

	// SGTINPureURIPrefix starts SGTIN Pure Identity URIs; the pure identity
	// form doesn't distinguish the 96- and 198-bit encodings.
	SGTINPureURIPrefix = PureURNBase + ":sgtin"
)

// SGTIN96 is the 96-bit serialized GTIN encoding: a GTIN extended with a
// numeric serial number so it identifies an individual object rather than a
// product class.
type SGTIN96 struct {
	scheme
}

// NewSGTIN96 returns an empty SGTIN96; populate it with Encode, LoadFields,
// or one of the decode methods.
func NewSGTIN96() *SGTIN96 {
	s := &SGTIN96{}
	s.scheme = scheme{
		self:         s,
		encodingType: "SGTIN96",
		header:       SGTIN96Header,
		totalBits:    96,
		partitions:   sgtinPartitions,
		build:        s.buildFields,
		serialField:  fieldSerialNumber,
		cpField:      fieldCompanyPrefix,
		refField:     fieldItemReference,
	}
	return s
}

func (s *SGTIN96) buildFields(row PartitionRow) *FieldDictionary {
	return newDictionary(
		s.headerField(),
		NewField(fieldFilter, 3),
		s.partitionField(row),
		NewDigitField(fieldCompanyPrefix, row.CompanyPrefixBits, row.CompanyPrefixDigits),
		NewDigitField(fieldItemReference, row.ReferenceBits, row.ReferenceDigits),
		NewField(fieldSerialNumber, 38),
	)
}

// Encode populates the SGTIN-96 from its identifying values. The company
// prefix length picks the partition; the item reference starts with the
// indicator digit and must have exactly the digits the partition leaves for
// it, so the two together always have 13 digits.
func (s *SGTIN96) Encode(filter FilterValue, companyPrefix, itemReference string, serialNumber uint64) error {
	if err := s.beginEncode(companyPrefix); err != nil {
		return err
	}
	if err := s.SetFieldValue(fieldFilter, uint64(filter)); err != nil {
		return err
	}
	if err := s.SetFieldText(fieldItemReference, itemReference); err != nil {
		return err
	}
	return s.SetFieldValue(fieldSerialNumber, serialNumber)
}

// GTIN returns the GTIN-14 this SGTIN serializes: the indicator digit, the
// company prefix, the rest of the item reference, and the check digit.
func (s *SGTIN96) GTIN() (string, error) {
	return gtin14(&s.scheme)
}

// gtin14 assembles a GTIN-14 from an SGTIN's company prefix and item
// reference; the item reference's first digit is the indicator.
func gtin14(s *scheme) (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	cp := s.mustField(fieldCompanyPrefix).String()
	ir := s.mustField(fieldItemReference).String()
	body := ir[:1] + cp + ir[1:]
	check, err := CheckDigit(body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", body, check), nil
}

// ToTagURI renders the EPC Tag URI:
//     urn:epc:tag:sgtin-96:Filter.CompanyPrefix.ItemReference.SerialNumber
func (s *SGTIN96) ToTagURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d.%s.%s.%s", SGTIN96TagURIPrefix,
		s.mustField(fieldFilter).Value(),
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldItemReference),
		s.serialText()), nil
}

// ToURI renders the Pure Identity URI:
//     urn:epc:id:sgtin:CompanyPrefix.ItemReference.SerialNumber
func (s *SGTIN96) ToURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s.%s", SGTINPureURIPrefix,
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldItemReference),
		s.serialText()), nil
}

// ToGS1 renders the GS1 element string: (01)GTIN(21)SerialNumber.
func (s *SGTIN96) ToGS1() (string, error) {
	gtin, err := s.GTIN()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(01)%s(21)%s", gtin, s.gs1SerialText()), nil
}

// DecodeFromTagURI populates the SGTIN-96 from its Tag URI form.
func (s *SGTIN96) DecodeFromTagURI(uri string) error {
	segs, err := splitURI(uri, SGTIN96TagURIPrefix, 4)
	if err != nil {
		return err
	}
	filter, err := strconv.ParseUint(segs[0], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q", fieldFilter, segs[0])
	}
	serial, err := strconv.ParseUint(segs[3], 10, 64)
	if err != nil {
		return serialNumberErrorf("serial number %q is not numeric", segs[3])
	}
	return s.Encode(FilterValue(filter), segs[1], segs[2], serial)
}

// DecodeFromURI populates the SGTIN-96 from its Pure Identity form. Pure
// identity URIs carry no filter, so it decodes as 0.
func (s *SGTIN96) DecodeFromURI(uri string) error {
	segs, err := splitURI(uri, SGTINPureURIPrefix, 3)
	if err != nil {
		return err
	}
	serial, err := strconv.ParseUint(segs[2], 10, 64)
	if err != nil {
		return serialNumberErrorf("serial number %q is not numeric", segs[2])
	}
	return s.Encode(FilterOther, segs[0], segs[1], serial)
}

// DecodeFromGS1 populates the SGTIN-96 from "(01)GTIN(21)Serial".
func (s *SGTIN96) DecodeFromGS1(elements string, companyPrefixDigits int) error {
	parsed, err := parseElementString(elements)
	if err != nil {
		return err
	}
	gtin, err := requireElement(parsed, "01")
	if err != nil {
		return err
	}
	serialText, err := requireElement(parsed, "21")
	if err != nil {
		return err
	}
	cp, ir, err := splitGTIN(gtin, companyPrefixDigits)
	if err != nil {
		return err
	}
	serial, err := strconv.ParseUint(serialText, 10, 64)
	if err != nil {
		return serialNumberErrorf("serial number %q is not numeric", serialText)
	}
	return s.Encode(FilterOther, cp, ir, serial)
}
