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

func TestGRAI96_encode(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewGRAI96()
	w.ShouldSucceed(s.Encode(FilterOther, "0614141", "12345", 5678))

	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3314257BF40C0E400000162E")
	w.ShouldBeEqual(w.ShouldHaveResult(s.GRAI()).(string), "06141411234525678")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToTagURI()).(string),
		"urn:epc:tag:grai-96:0.0614141.12345.5678")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToURI()).(string),
		"urn:epc:id:grai:0614141.12345.5678")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToGS1()).(string), "(8003)006141411234525678")
}

func TestGRAI96_decodeHex(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewGRAI96()
	w.ShouldSucceed(s.DecodeFromHex("3314257BF40C0E400000162E"))
	w.ShouldBeEqual(w.ShouldHaveResult(s.FieldValue(fieldAssetType)).(string), "12345")
	w.ShouldBeEqual(w.ShouldHaveResult(s.FieldValue(fieldSerialNumber)).(string), "5678")
	w.ShouldBeEqual(w.ShouldHaveResult(s.GRAI()).(string), "06141411234525678")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3314257BF40C0E400000162E")

	for i, bad := range []string{
		"3074257BF7194E4000001A85",
		"331C257BF40C0E400000162E",
		"3314257BF7FFFFC000000000",
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			expect.WrapT(t).As(bad).ShouldFail(NewGRAI96().DecodeFromHex(bad))
		})
	}
}

func TestGRAI96_decodeTagURI(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewGRAI96()
	uri := "urn:epc:tag:grai-96:0.0614141.12345.5678"
	w.ShouldSucceed(s.DecodeFromTagURI(uri))
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3314257BF40C0E400000162E")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToTagURI()).(string), uri)

	w.ShouldFail(NewGRAI96().DecodeFromTagURI("urn:epc:tag:grai-96:0.0614141.12345.x"))
}

func TestGRAI96_decodeGS1(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := NewGRAI96()
	w.ShouldSucceed(s.DecodeFromGS1("(8003)006141411234525678", 7))
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), "3314257BF40C0E400000162E")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToGS1()).(string), "(8003)006141411234525678")

	for i, tt := range []struct {
		elements string
		digits   int
	}{
		{"(8003)106141411234525678", 7},
		{"(8003)006141411234535678", 7},
		{"(8003)0061414112345", 7},
		{"(8003)00614141123452567x", 7},
		{"(8004)006141411234525678", 7},
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			expect.WrapT(t).As(tt.elements).
				ShouldFail(NewGRAI96().DecodeFromGS1(tt.elements, tt.digits))
		})
	}
}

func TestGRAI96_twelveDigitPrefix(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	// a 12-digit prefix leaves no asset type digits, so the key is just the
	// prefix and its check digit
	s := NewGRAI96()
	w.ShouldSucceed(s.Encode(FilterOther, "061414112345", "", 7))
	w.ShouldBeEqual(w.ShouldHaveResult(s.FieldValue(fieldPartition)).(string), "0")
	w.ShouldBeEqual(w.ShouldHaveResult(s.GRAI()).(string), "06141411234527")

	elements := w.ShouldHaveResult(s.ToGS1()).(string)
	w.ShouldBeEqual(elements, "(8003)006141411234527")

	s2 := NewGRAI96()
	w.ShouldSucceed(s2.DecodeFromGS1(elements, 12))
	w.ShouldBeEqual(w.ShouldHaveResult(s2.ToHex()).(string),
		w.ShouldHaveResult(s.ToHex()).(string))
}

func TestGRAI96_encodeBounds(t *testing.T) {
	for i, tt := range []struct {
		name string
		err  error
	}{
		{"serial too wide", NewGRAI96().Encode(FilterOther, "0614141", "12345", 1 << 38)},
		{"asset type wrong width", NewGRAI96().Encode(FilterOther, "0614141", "1234", 1)},
		{"asset type not numeric", NewGRAI96().Encode(FilterOther, "0614141", "1234x", 1)},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			expect.WrapT(t).ShouldFail(tt.err)
		})
	}
}
