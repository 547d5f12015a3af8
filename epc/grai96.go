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
	// GRAI96Header is the first byte of every GRAI-96.
	GRAI96Header = 0x33

	GRAI96TagURIPrefix = TagURNBase + ":grai-96"
	GRAIPureURIPrefix  = PureURNBase + ":grai"
)

// GRAI96 is the 96-bit global returnable asset identifier encoding: an asset
// type owned by a company prefix, plus a numeric serial for the individual
// asset.
type GRAI96 struct {
	scheme
}

// NewGRAI96 returns an empty GRAI96; populate it with Encode, LoadFields, or
// one of the decode methods.
func NewGRAI96() *GRAI96 {
	s := &GRAI96{}
	s.scheme = scheme{
		self:         s,
		encodingType: "GRAI96",
		header:       GRAI96Header,
		totalBits:    96,
		partitions:   graiPartitions,
		build:        s.buildFields,
		serialField:  fieldSerialNumber,
		cpField:      fieldCompanyPrefix,
		refField:     fieldAssetType,
	}
	return s
}

func (s *GRAI96) buildFields(row PartitionRow) *FieldDictionary {
	return newDictionary(
		s.headerField(),
		NewField(fieldFilter, 3),
		s.partitionField(row),
		NewDigitField(fieldCompanyPrefix, row.CompanyPrefixBits, row.CompanyPrefixDigits),
		NewDigitField(fieldAssetType, row.ReferenceBits, row.ReferenceDigits),
		NewField(fieldSerialNumber, 38),
	)
}

// Encode populates the GRAI-96 from its identifying values. A 12-digit
// company prefix leaves no asset type digits; pass "" for it there.
func (s *GRAI96) Encode(filter FilterValue, companyPrefix, assetType string, serialNumber uint64) error {
	if err := s.beginEncode(companyPrefix); err != nil {
		return err
	}
	if err := s.SetFieldValue(fieldFilter, uint64(filter)); err != nil {
		return err
	}
	if err := s.SetFieldText(fieldAssetType, assetType); err != nil {
		return err
	}
	return s.SetFieldValue(fieldSerialNumber, serialNumber)
}

// GRAI returns the GRAI this tag encodes: the 13-digit key (company prefix,
// asset type, check digit) followed by the serial number.
func (s *GRAI96) GRAI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	body := s.mustField(fieldCompanyPrefix).String() +
		s.mustField(fieldAssetType).String()
	check, err := CheckDigit(body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d%s", body, check, s.gs1SerialText()), nil
}

// ToTagURI renders the EPC Tag URI:
//     urn:epc:tag:grai-96:Filter.CompanyPrefix.AssetType.SerialNumber
func (s *GRAI96) ToTagURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d.%s.%s.%s", GRAI96TagURIPrefix,
		s.mustField(fieldFilter).Value(),
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldAssetType),
		s.serialText()), nil
}

// ToURI renders the Pure Identity URI:
//     urn:epc:id:grai:CompanyPrefix.AssetType.SerialNumber
func (s *GRAI96) ToURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s.%s", GRAIPureURIPrefix,
		s.mustField(fieldCompanyPrefix),
		s.mustField(fieldAssetType),
		s.serialText()), nil
}

// ToGS1 renders the GS1 element string: (8003) followed by a zero pad digit,
// the 13-digit GRAI key, and the serial number.
func (s *GRAI96) ToGS1() (string, error) {
	grai, err := s.GRAI()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(8003)0%s", grai), nil
}

// DecodeFromTagURI populates the GRAI-96 from its Tag URI form.
func (s *GRAI96) DecodeFromTagURI(uri string) error {
	segs, err := splitURI(uri, GRAI96TagURIPrefix, 4)
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

// DecodeFromURI populates the GRAI-96 from its Pure Identity form with a
// filter of 0.
func (s *GRAI96) DecodeFromURI(uri string) error {
	segs, err := splitURI(uri, GRAIPureURIPrefix, 3)
	if err != nil {
		return err
	}
	serial, err := strconv.ParseUint(segs[2], 10, 64)
	if err != nil {
		return serialNumberErrorf("serial number %q is not numeric", segs[2])
	}
	return s.Encode(FilterOther, segs[0], segs[1], serial)
}

// DecodeFromGS1 populates the GRAI-96 from "(8003)0GRAI".
func (s *GRAI96) DecodeFromGS1(elements string, companyPrefixDigits int) error {
	parsed, err := parseElementString(elements)
	if err != nil {
		return err
	}
	value, err := requireElement(parsed, "8003")
	if err != nil {
		return err
	}
	cp, at, serialText, err := splitGRAI(value, companyPrefixDigits)
	if err != nil {
		return err
	}
	serial, err := strconv.ParseUint(serialText, 10, 64)
	if err != nil {
		return serialNumberErrorf("serial number %q is not numeric", serialText)
	}
	return s.Encode(FilterOther, cp, at, serial)
}
