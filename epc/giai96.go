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
	// GIAI96Header is the first byte of every GIAI-96.
	GIAI96Header = 0x34

	GIAI96TagURIPrefix = TagURNBase + ":giai-96"
	GIAIPureURIPrefix  = PureURNBase + ":giai"
)

// GIAI96 is the 96-bit global individual asset identifier encoding. The
// individual asset reference takes every bit left after the company prefix,
// and unlike the other partitioned references it is not zero-padded: its
// digit counts are maximums, with the bit width the tighter bound.
type GIAI96 struct {
	scheme
}

// NewGIAI96 returns an empty GIAI96; populate it with Encode, LoadFields, or
// one of the decode methods.
func NewGIAI96() *GIAI96 {
	s := &GIAI96{}
	s.scheme = scheme{
		self:         s,
		encodingType: "GIAI96",
		header:       GIAI96Header,
		totalBits:    96,
		partitions:   giaiPartitions,
		build:        s.buildFields,
		serialField:  fieldIndividualAssetReference,
		cpField:      fieldCompanyPrefix,
		refField:     fieldIndividualAssetReference,
	}
	return s
}

func (s *GIAI96) buildFields(row PartitionRow) *FieldDictionary {
	return newDictionary(
		s.headerField(),
		NewField(fieldFilter, 3),
		s.partitionField(row),
		NewDigitField(fieldCompanyPrefix, row.CompanyPrefixBits, row.CompanyPrefixDigits),
		NewBoundedField(fieldIndividualAssetReference, row.ReferenceBits, row.ReferenceDigits),
	)
}

// Encode populates the GIAI-96 from its identifying values.
func (s *GIAI96) Encode(filter FilterValue, companyPrefix string, assetReference uint64) error {
	if err := s.beginEncode(companyPrefix); err != nil {
		return err
	}
	if err := s.SetFieldValue(fieldFilter, uint64(filter)); err != nil {
		return err
	}
	return s.SetFieldValue(fieldIndividualAssetReference, assetReference)
}

// GIAI returns the GIAI this tag encodes: the company prefix followed by the
// individual asset reference. GIAIs carry no check digit.
func (s *GIAI96) GIAI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return s.mustField(fieldCompanyPrefix).String() + s.serialText(), nil
}

// ToTagURI renders the EPC Tag URI:
//     urn:epc:tag:giai-96:Filter.CompanyPrefix.IndividualAssetReference
func (s *GIAI96) ToTagURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d.%s.%s", GIAI96TagURIPrefix,
		s.mustField(fieldFilter).Value(),
		s.mustField(fieldCompanyPrefix),
		s.serialText()), nil
}

// ToURI renders the Pure Identity URI:
//     urn:epc:id:giai:CompanyPrefix.IndividualAssetReference
func (s *GIAI96) ToURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s", GIAIPureURIPrefix,
		s.mustField(fieldCompanyPrefix),
		s.serialText()), nil
}

// ToGS1 renders the GS1 element string: (8004)GIAI.
func (s *GIAI96) ToGS1() (string, error) {
	giai, err := s.GIAI()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(8004)%s", giai), nil
}

// DecodeFromTagURI populates the GIAI-96 from its Tag URI form.
func (s *GIAI96) DecodeFromTagURI(uri string) error {
	segs, err := splitURI(uri, GIAI96TagURIPrefix, 3)
	if err != nil {
		return err
	}
	filter, err := strconv.ParseUint(segs[0], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q", fieldFilter, segs[0])
	}
	ref, err := strconv.ParseUint(segs[2], 10, 64)
	if err != nil {
		return serialNumberErrorf("asset reference %q is not numeric", segs[2])
	}
	return s.Encode(FilterValue(filter), segs[1], ref)
}

// DecodeFromURI populates the GIAI-96 from its Pure Identity form with a
// filter of 0.
func (s *GIAI96) DecodeFromURI(uri string) error {
	segs, err := splitURI(uri, GIAIPureURIPrefix, 2)
	if err != nil {
		return err
	}
	ref, err := strconv.ParseUint(segs[1], 10, 64)
	if err != nil {
		return serialNumberErrorf("asset reference %q is not numeric", segs[1])
	}
	return s.Encode(FilterOther, segs[0], ref)
}

// DecodeFromGS1 populates the GIAI-96 from "(8004)GIAI".
func (s *GIAI96) DecodeFromGS1(elements string, companyPrefixDigits int) error {
	parsed, err := parseElementString(elements)
	if err != nil {
		return err
	}
	value, err := requireElement(parsed, "8004")
	if err != nil {
		return err
	}
	cp, refText, err := splitGIAI(value, companyPrefixDigits)
	if err != nil {
		return err
	}
	ref, err := strconv.ParseUint(refText, 10, 64)
	if err != nil {
		return serialNumberErrorf("asset reference %q is not numeric", refText)
	}
	return s.Encode(FilterOther, cp, ref)
}
