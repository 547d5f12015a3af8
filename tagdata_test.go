/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package tagdata

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-tagdata/epc"
)

const (
	sgtin96EPC  = "3074257BF7194E4000001A85"
	sscc96EPC   = "3174257BF4499602D2000000"
	sgtin198EPC = "36143639F84191A465D9B37A176C5EB1769D72E557D52E5CBC"
	// sgtin198Hex is the same tag as sgtin198EPC in canonical hex: the 198
	// bits as an integer, so it lacks the byte form's two padding bits and
	// the header's leading zeros.
	sgtin198Hex = "D850D8E7E10646919766CDE85DB17AC5DA75CB955F54B972F"
)

func TestDecode(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	b := w.ShouldHaveResult(hex.DecodeString(sgtin96EPC)).([]byte)
	s := w.ShouldHaveResult(Decode(b)).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SGTIN96")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), sgtin96EPC)
	w.ShouldBeEqual(
		w.ShouldHaveResult(s.(*epc.SGTIN96).GTIN()).(string), "80614141123458")

	b = w.ShouldHaveResult(hex.DecodeString(sgtin198EPC)).([]byte)
	s = w.ShouldHaveResult(Decode(b)).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SGTIN198")
	w.ShouldBeEqual(
		w.ShouldHaveResult(s.FieldValue("SerialNumber")).(string),
		"Hello!;1=1;'..*_*../")

	b = w.ShouldHaveResult(hex.DecodeString(sscc96EPC)).([]byte)
	s = w.ShouldHaveResult(Decode(b)).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SSCC96")
	w.ShouldBeEqual(
		w.ShouldHaveResult(s.(*epc.SSCC96).SSCC()).(string), "106141412345678908")
}

func TestDecode_badInput(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Decode(nil)
	w.As("empty").ShouldFail(err)

	b := w.ShouldHaveResult(hex.DecodeString("E2801160600002054CC2096F")).([]byte)
	_, err = Decode(b)
	w.As("unrecognized header").ShouldFail(err)

	b = w.ShouldHaveResult(hex.DecodeString(sgtin96EPC)).([]byte)
	_, err = Decode(b[:6])
	w.As("truncated read").ShouldFail(err)
}

func TestDecodeHex(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	// whole tag bytes, for a width that is a multiple of 8
	s := w.ShouldHaveResult(DecodeHex(sgtin96EPC)).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SGTIN96")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), sgtin96EPC)

	// whole tag bytes, with two padding bits past the 198-bit EPC
	s = w.ShouldHaveResult(DecodeHex(sgtin198EPC)).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SGTIN198")
	w.ShouldBeEqual(
		w.ShouldHaveResult(s.FieldValue("SerialNumber")).(string),
		"Hello!;1=1;'..*_*../")

	// the same tag's canonical hex, which no byte read ever produces
	s = w.ShouldHaveResult(DecodeHex(sgtin198Hex)).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SGTIN198")
	w.ShouldBeEqual(
		w.ShouldHaveResult(s.FieldValue("SerialNumber")).(string),
		"Hello!;1=1;'..*_*../")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), sgtin198Hex)

	s = w.ShouldHaveResult(DecodeHex(sscc96EPC)).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SSCC96")
	w.ShouldBeEqual(
		w.ShouldHaveResult(s.(*epc.SSCC96).SSCC()).(string), "106141412345678908")
}

func TestDecodeHex_badInput(t *testing.T) {
	w := expect.WrapT(t)

	for _, h := range []string{
		"",
		"zz",
		"deadbeef",
		"E2801160600002054CC2096F", // unrecognized header
		"301C00004000004000000001", // SGTIN-96 header, partition out of range
	} {
		_, err := DecodeHex(h)
		w.As(h).ShouldFail(err)
		w.As(h).ShouldContainStr(err.Error(), "not the hex form")
	}
}

func TestDecodeBinary(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	seed := epc.NewSGTIN96()
	w.ShouldSucceed(seed.DecodeFromHex(sgtin96EPC))
	bits := w.ShouldHaveResult(seed.ToBinary()).(string)

	s := w.ShouldHaveResult(DecodeBinary(bits)).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SGTIN96")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), sgtin96EPC)
}

func TestDecodeBinary_allEncodings(t *testing.T) {
	for _, name := range epc.EncodingTypes() {
		t.Run(name, func(t *testing.T) {
			w := expect.WrapT(t).StopOnMismatch()

			seed := w.ShouldHaveResult(epc.New(name)).(epc.Scheme)
			w.ShouldSucceed(seed.LoadFields())
			bits := w.ShouldHaveResult(seed.ToBinary()).(string)

			s := w.ShouldHaveResult(DecodeBinary(bits)).(epc.Scheme)
			w.ShouldBeEqual(s.EncodingType(), name)
		})
	}
}

func TestDecodeBinary_badInput(t *testing.T) {
	w := expect.WrapT(t)

	_, err := DecodeBinary("0011")
	w.As("shorter than a header").ShouldFail(err)

	_, err = DecodeBinary("00110a10")
	w.As("not binary digits").ShouldFail(err)

	_, err = DecodeBinary(strings.Repeat("0", 96))
	w.As("zero header").ShouldFail(err)

	_, err = DecodeBinary("00110000")
	w.As("header with no fields").ShouldFail(err)
}

func TestDecodeTagURI(t *testing.T) {
	w := expect.WrapT(t).StopOnMismatch()

	s := w.ShouldHaveResult(DecodeTagURI(
		"urn:epc:tag:sgtin-96:3.0614141.812345.6789")).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SGTIN96")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), sgtin96EPC)

	s = w.ShouldHaveResult(DecodeTagURI(
		"urn:epc:tag:sgtin-198:0.0888446.067142.Hello!;1=1;'..*_*..%2F")).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SGTIN198")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), sgtin198Hex)

	s = w.ShouldHaveResult(DecodeTagURI(
		"urn:epc:tag:sscc-96:3.0614141.1234567890")).(epc.Scheme)
	w.ShouldBeEqual(s.EncodingType(), "SSCC96")
	w.ShouldBeEqual(w.ShouldHaveResult(s.ToHex()).(string), sscc96EPC)
}

func TestDecodeTagURI_badInput(t *testing.T) {
	w := expect.WrapT(t)

	for _, uri := range []string{
		"",
		"urn:epc:id:sgtin:0614141.812345.6789", // pure identity, not tag
		"urn:epc:tag:sgtin-64:0.1.2.3",
		"urn:epc:tag:sgtin-96",
		"urn:epc:tag:sgtin-96:9.0614141.812345.6789", // filter too large
	} {
		_, err := DecodeTagURI(uri)
		w.As(uri).ShouldFail(err)
	}
}
