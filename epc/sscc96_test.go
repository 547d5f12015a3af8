/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestSSCC96_encode(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewSSCC96()
	w.ShouldSucceed(s.Encode(FilterReserved3, "0614141", "1234567890"))

	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3174257BF4499602D2000000")
	w.ShouldBeEqual(w.ShouldHaveResult(s.SSCC()).(string), "106141412345678908")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToTagURI()).(string),
		"urn:epc:tag:sscc-96:3.0614141.1234567890")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToURI()).(string),
		"urn:epc:id:sscc:0614141.1234567890")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToGS1()).(string), "(00)106141412345678908")

	// the last 24 bits are reserved and stay zero
	w.ShouldBeEqual(w.ShouldHaveResult(s.FieldValue(fieldReserved)).(string), "0")
	w.ShouldBeEqual(w.ShouldHaveResult(s.FieldValue(fieldPartition)).(string), "5")
}

func TestSSCC96_decodeHex(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewSSCC96()
	w.ShouldSucceed(s.DecodeFromHex("3174257BF4499602D2000000"))
	w.ShouldBeEqual(w.ShouldHaveResult(s.SSCC()).(string), "106141412345678908")
	w.ShouldBeEqual(
		w.ShouldHaveResult(s.FieldValue(fieldSerialReference)).(string), "1234567890")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3174257BF4499602D2000000")

	for i, bad := range []string{
		"3074257BF7194E4000001A85",
		"311C257BF4499602D2000000",
		"3174257BF4499602D20000000A",
		"3174257BF4499602D20000",
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			expect.WrapT(t).As(bad).ShouldFail(NewSSCC96().DecodeFromHex(bad))
		})
	}
}

func TestSSCC96_decodeTagURI(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewSSCC96()
	uri := "urn:epc:tag:sscc-96:3.0614141.1234567890"
	w.ShouldSucceed(s.DecodeFromTagURI(uri))
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3174257BF4499602D2000000")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToTagURI()).(string), uri)

	w.ShouldFail(NewSSCC96().DecodeFromTagURI("urn:epc:tag:sscc-96:3.0614141"))
	w.ShouldFail(NewSSCC96().DecodeFromTagURI("urn:epc:tag:sscc-96:x.0614141.1234567890"))
}

func TestSSCC96_decodeURI(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewSSCC96()
	uri := "urn:epc:id:sscc:0614141.1234567890"
	w.ShouldSucceed(s.DecodeFromURI(uri))
	w.ShouldBeEqual(w.ShouldHaveResult(s.FieldValue(fieldFilter)).(string), "0")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToURI()).(string), uri)
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3114257BF4499602D2000000")
}

func TestSSCC96_decodeGS1(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewSSCC96()
	w.ShouldSucceed(s.DecodeFromGS1("(00)106141412345678908", 7))
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3114257BF4499602D2000000")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToGS1()).(string), "(00)106141412345678908")

	for i, tt := range []struct {
		elements string
		digits   int
	}{
		{"(00)106141412345678907", 7},
		{"(00)10614141234567890", 7},
		{"(01)106141412345678908", 7},
		{"(00)106141412345678908", 5},
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			expect.WrapT(t).As(tt.elements).
				ShouldFail(NewSSCC96().DecodeFromGS1(tt.elements, tt.digits))
		})
	}
}

func TestSSCC96_twelveDigitPrefix(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewSSCC96()
	w.ShouldSucceed(s.Encode(FilterOther, "061414112345", "12345"))
	w.ShouldBeEqual(w.ShouldHaveResult(s.FieldValue(fieldPartition)).(string), "0")
	w.ShouldBeEqual(w.ShouldHaveResult(s.SSCC()).(string), "106141411234523459")

	elements := w.ShouldHaveResult(s.ToGS1()).(string)
	s2 := NewSSCC96()
	w.ShouldSucceed(s2.DecodeFromGS1(elements, 12))
	w.ShouldBeEqual(
		w.ShouldHaveResult(s2.FieldValue(fieldCompanyPrefix)).(string), "061414112345")
	w.ShouldBeEqual(
		w.ShouldHaveResult(s2.FieldValue(fieldSerialReference)).(string), "12345")
}

func TestSSCC96_encodeBounds(t *testing.T) {
	for i, tt := range []struct {
		name string
		err  error
	}{
		{"serial reference too long", NewSSCC96().Encode(FilterOther, "0614141", "12345678901")},
		{"serial reference not numeric", NewSSCC96().Encode(FilterOther, "0614141", "123456789x")},
		{"prefix too short", NewSSCC96().Encode(FilterOther, "61414", "1234567890")},
		{"filter too wide", NewSSCC96().Encode(FilterValue(9), "0614141", "1234567890")},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			expect.WrapT(t).ShouldFail(tt.err)
		})
	}
}
