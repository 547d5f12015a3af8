/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// GID96Header is the first byte of every GID-96.
	GID96Header = 0x35

	GID96TagURIPrefix = TagURNBase + ":gid-96"
	GIDPureURIPrefix  = PureURNBase + ":gid"
)

// GID96 is the 96-bit general identifier encoding. It stands outside the GS1
// key system: no company prefix, no partition, no filter, and no element
// string form. A general manager number takes the issuing role a company
// prefix plays elsewhere.
type GID96 struct {
	scheme
}

// NewGID96 returns an empty GID96; populate it with Encode, LoadFields, or
// one of the decode methods.
func NewGID96() *GID96 {
	s := &GID96{}
	s.scheme = scheme{
		self:         s,
		encodingType: "GID96",
		header:       GID96Header,
		totalBits:    96,
		build:        s.buildFields,
		serialField:  fieldSerialNumber,
		// the general manager number stands in for the company prefix in
		// pattern URIs
		cpField: fieldGeneralManagerNumber,
	}
	return s
}

func (s *GID96) buildFields(PartitionRow) *FieldDictionary {
	return newDictionary(
		s.headerField(),
		NewField(fieldGeneralManagerNumber, 28),
		NewField(fieldObjectClass, 24),
		NewField(fieldSerialNumber, 36),
	)
}

// Encode populates the GID-96 from its three numeric components.
func (s *GID96) Encode(generalManagerNumber, objectClass, serialNumber uint64) error {
	if err := s.beginEncode(""); err != nil {
		return err
	}
	if err := s.SetFieldValue(fieldGeneralManagerNumber, generalManagerNumber); err != nil {
		return err
	}
	if err := s.SetFieldValue(fieldObjectClass, objectClass); err != nil {
		return err
	}
	return s.SetFieldValue(fieldSerialNumber, serialNumber)
}

// ToTagURI renders the EPC Tag URI. GID-96 has no filter, so the URI has
// exactly the three identifying segments:
//     urn:epc:tag:gid-96:GeneralManagerNumber.ObjectClass.SerialNumber
func (s *GID96) ToTagURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s.%s", GID96TagURIPrefix,
		s.mustField(fieldGeneralManagerNumber),
		s.mustField(fieldObjectClass),
		s.serialText()), nil
}

// ToURI renders the Pure Identity URI:
//     urn:epc:id:gid:GeneralManagerNumber.ObjectClass.SerialNumber
func (s *GID96) ToURI() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s.%s", GIDPureURIPrefix,
		s.mustField(fieldGeneralManagerNumber),
		s.mustField(fieldObjectClass),
		s.serialText()), nil
}

// ToGS1 fails: GID-96 identifiers exist only in the EPC system and have no
// GS1 element string form.
func (s *GID96) ToGS1() (string, error) {
	return "", errors.New("GID-96 identifiers have no GS1 element string form")
}

// DecodeFromTagURI populates the GID-96 from its Tag URI form.
func (s *GID96) DecodeFromTagURI(uri string) error {
	segs, err := splitURI(uri, GID96TagURIPrefix, 3)
	if err != nil {
		return err
	}
	return s.decodeSegments(segs)
}

// DecodeFromURI populates the GID-96 from its Pure Identity form.
func (s *GID96) DecodeFromURI(uri string) error {
	segs, err := splitURI(uri, GIDPureURIPrefix, 3)
	if err != nil {
		return err
	}
	return s.decodeSegments(segs)
}

func (s *GID96) decodeSegments(segs []string) error {
	gmn, err := strconv.ParseUint(segs[0], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q",
			fieldGeneralManagerNumber, segs[0])
	}
	oc, err := strconv.ParseUint(segs[1], 10, 64)
	if err != nil {
		return fieldValueErrorf("%s must be numeric, but is %q",
			fieldObjectClass, segs[1])
	}
	serial, err := strconv.ParseUint(segs[2], 10, 64)
	if err != nil {
		return serialNumberErrorf("serial number %q is not numeric", segs[2])
	}
	return s.Encode(gmn, oc, serial)
}

// DecodeFromGS1 fails: GID-96 identifiers have no GS1 element string form.
func (s *GID96) DecodeFromGS1(string, int) error {
	return errors.New("GID-96 identifiers have no GS1 element string form")
}
