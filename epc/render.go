/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-tagdata/bitstring"
	"github.com/pkg/errors"
)

// Format enumerates the renderings Render supports.
type Format int

const (
	FormatHex Format = iota
	FormatBinary
	FormatTagURI
	FormatGS1
	FormatJSON
	FormatXML
	FormatDictionary
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatBinary:
		return "binary"
	case FormatTagURI:
		return "tag"
	case FormatGS1:
		return "gs1"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	case FormatDictionary:
		return "dictionary"
	}
	return "unknown format: " + strconv.Itoa(int(f))
}

// ParseFormat maps a case-insensitive format key to its Format. The
// recognized keys are hex, bin, binary, tag, epctag, epctaguri, gs1, json,
// xml, dict, and dictionary.
func ParseFormat(kind string) (Format, error) {
	switch strings.ToLower(kind) {
	case "hex":
		return FormatHex, nil
	case "bin", "binary":
		return FormatBinary, nil
	case "tag", "epctag", "epctaguri":
		return FormatTagURI, nil
	case "gs1":
		return FormatGS1, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "dict", "dictionary":
		return FormatDictionary, nil
	}
	return 0, unsupportedFormatError(kind)
}

// Render returns the scheme in the given format. Render returns text, so the
// dictionary format renders as its JSON serialization; use ToDictionary for
// the mapping itself.
func (s *scheme) Render(f Format) (string, error) {
	switch f {
	case FormatHex:
		return s.ToHex()
	case FormatBinary:
		return s.ToBinary()
	case FormatTagURI:
		return s.self.ToTagURI()
	case FormatGS1:
		return s.self.ToGS1()
	case FormatJSON, FormatDictionary:
		return s.ToJSON()
	case FormatXML:
		return s.ToXML()
	}
	return "", unsupportedFormatError(f.String())
}

func (s *scheme) Format(kind string) (string, error) {
	f, err := ParseFormat(kind)
	if err != nil {
		return "", err
	}
	return s.Render(f)
}

// ToBinary returns the canonical bit string.
func (s *scheme) ToBinary() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return s.bits, nil
}

// ToHex returns the canonical bit string as an uppercase hex integer. The
// integer form drops leading zero bits; DecodeFromHex restores them from the
// encoding's total width.
func (s *scheme) ToHex() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return bitstring.ToHex(s.bits)
}

// ToDictionary returns every field's rendered value by name, plus the
// encoding type under "encodingType".
func (s *scheme) ToDictionary() (map[string]string, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	m := make(map[string]string, s.fields.Len()+1)
	m["encodingType"] = s.encodingType
	for _, f := range s.fields.Ordered() {
		m[f.Name()] = f.String()
	}
	return m, nil
}

// ToJSON returns the dictionary form as a JSON object.
func (s *scheme) ToJSON() (string, error) {
	m, err := s.ToDictionary()
	if err != nil {
		return "", err
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return "", errors.Wrapf(err, "unable to render %s as JSON", s.encodingType)
	}
	return string(doc), nil
}

type xmlTag struct {
	XMLName      xml.Name      `xml:"Tag"`
	EncodingType string        `xml:"encodingType,attr"`
	Fields       []xmlTagField `xml:"Field"`
}

type xmlTagField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ToXML returns the dictionary form as a Tag document, with one Field
// element per field in layout order.
func (s *scheme) ToXML() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	doc := xmlTag{EncodingType: s.encodingType}
	for _, f := range s.fields.Ordered() {
		doc.Fields = append(doc.Fields, xmlTagField{Name: f.Name(), Value: f.String()})
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		return "", errors.Wrapf(err, "unable to render %s as XML", s.encodingType)
	}
	return string(out), nil
}

// ToIDPAT returns the wildcard pattern URI for the scheme's company prefix:
//     urn:epc:idpat:<encodingType>:<companyPrefix>[.<arg>...]
func (s *scheme) ToIDPAT(args ...string) (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	if s.cpField == "" {
		return "", unknownFieldError(fieldCompanyPrefix)
	}
	segs := append([]string{s.mustField(s.cpField).String()}, args...)
	return fmt.Sprintf("%s:%s:%s",
		IDPATURNBase, s.encodingType, strings.Join(segs, ".")), nil
}

// DecodeFromDictionary populates the scheme from a field-name mapping like
// ToDictionary returns: every field present by name, values in their
// rendered forms, and any "encodingType" matching this scheme.
func (s *scheme) DecodeFromDictionary(fields map[string]string) error {
	if et, ok := fields["encodingType"]; ok && et != s.encodingType {
		return errors.Errorf("the dictionary is for %s, not %s", et, s.encodingType)
	}
	row := PartitionRow{}
	if s.partitions != nil {
		pv, ok := fields[fieldPartition]
		if !ok {
			return errors.Errorf("the dictionary is missing %s", fieldPartition)
		}
		p, err := strconv.Atoi(pv)
		if err != nil {
			return fieldValueErrorf("%s must be numeric, but is %q", fieldPartition, pv)
		}
		row, err = s.partitions.ByValue(p)
		if err != nil {
			return err
		}
	}
	d := s.build(row)
	for _, f := range d.Ordered() {
		v, ok := fields[f.Name()]
		if !ok {
			return errors.Errorf("the dictionary is missing %s", f.Name())
		}
		if err := f.SetText(v); err != nil {
			return err
		}
	}
	header, err := d.Lookup(fieldHeader)
	if err != nil {
		return err
	}
	if header.Value() != s.header {
		return errors.Errorf("%s headers are %#x, but the dictionary has %#x",
			s.encodingType, s.header, header.Value())
	}
	s.install(d)
	return nil
}

// DecodeFromJSON populates the scheme from a JSON object like ToJSON
// returns.
func (s *scheme) DecodeFromJSON(doc string) error {
	var fields map[string]string
	if err := json.Unmarshal([]byte(doc), &fields); err != nil {
		return errors.Wrapf(err, "unable to parse JSON for %s", s.encodingType)
	}
	return s.DecodeFromDictionary(fields)
}

// DecodeFromXML populates the scheme from a Tag document like ToXML returns.
func (s *scheme) DecodeFromXML(doc string) error {
	var tag xmlTag
	if err := xml.Unmarshal([]byte(doc), &tag); err != nil {
		return errors.Wrapf(err, "unable to parse XML for %s", s.encodingType)
	}
	fields := make(map[string]string, len(tag.Fields)+1)
	if tag.EncodingType != "" {
		fields["encodingType"] = tag.EncodingType
	}
	for _, f := range tag.Fields {
		fields[f.Name] = f.Value
	}
	return s.DecodeFromDictionary(fields)
}
