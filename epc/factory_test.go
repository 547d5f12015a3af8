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

func TestNew(t *testing.T) {
	for i, tt := range []struct {
		name, want string
	}{
		{"SGTIN96", "SGTIN96"},
		{"sgtin-96", "SGTIN96"},
		{"Sgtin96", "SGTIN96"},
		{"SGTIN-198", "SGTIN198"},
		{"sscc96", "SSCC96"},
		{"sgln-96", "SGLN96"},
		{"grai96", "GRAI96"},
		{"giai-96", "GIAI96"},
		{"gid-96", "GID96"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			s := w.ShouldHaveResult(New(tt.name)).(Scheme)
			w.ShouldBeEqual(s.EncodingType(), tt.want)
		})
	}

	w := expect.WrapT(t)
	_, err := New("SGTIN64")
	w.ShouldFail(err)
	_, err = New("")
	w.ShouldFail(err)
}

func TestNewForHeader(t *testing.T) {
	for i, tt := range []struct {
		header byte
		want   string
	}{
		{SGTIN96Header, "SGTIN96"},
		{SSCC96Header, "SSCC96"},
		{SGLN96Header, "SGLN96"},
		{GRAI96Header, "GRAI96"},
		{GIAI96Header, "GIAI96"},
		{GID96Header, "GID96"},
		{SGTIN198Header, "SGTIN198"},
	} {
		t.Run(fmt.Sprintf("%02d_%#x", i, tt.header), func(t *testing.T) {
			w := expect.WrapT(t)
			s := w.ShouldHaveResult(NewForHeader(tt.header)).(Scheme)
			w.ShouldBeEqual(s.EncodingType(), tt.want)
		})
	}

	w := expect.WrapT(t)
	_, err := NewForHeader(0xE2)
	w.ShouldFail(err)
	_, err = NewForHeader(0x00)
	w.ShouldFail(err)
}

func TestEncodingTypes(t *testing.T) {
	w := expect.WrapT(t)
	types := EncodingTypes()
	w.ShouldBeEqual(types, []string{
		"GIAI96", "GID96", "GRAI96", "SGLN96", "SGTIN198", "SGTIN96", "SSCC96",
	})

	// every listed name round-trips through New
	for _, name := range types {
		s := w.ShouldHaveResult(New(name)).(Scheme)
		w.ShouldBeEqual(s.EncodingType(), name)
	}
}
