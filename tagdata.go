/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package tagdata turns raw tag reads into decoded EPC identifiers without
// the caller naming the encoding: every EPC binary form starts with a header
// byte, and these functions use it to pick the scheme before decoding. Use
// the epc package directly when the encoding is known up front.
package tagdata

import (
	"encoding/hex"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-tagdata/bitstring"
	"github.com/intel/rsp-sw-toolkit-im-suite-tagdata/epc"
	"github.com/pkg/errors"
)

// widths enumerates the binary sizes of the recognized encodings, smallest
// first.
var widths = []int{96, 198}

// Decode decodes a raw tag read: the EPC bits rounded up to whole bytes.
func Decode(data []byte) (epc.Scheme, error) {
	if len(data) == 0 {
		return nil, errors.New("tag data is empty")
	}
	s, err := epc.NewForHeader(data[0])
	if err != nil {
		return nil, err
	}
	if err := s.DecodeFromBytes(data); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeHex decodes hex tag data in either common shape: the full tag bytes,
// or the zero-padding-free hex of the EPC's canonical bits. The two differ
// for encodings whose width isn't a multiple of 8, such as SGTIN-198.
func DecodeHex(h string) (epc.Scheme, error) {
	if len(h)%2 == 0 {
		if b, err := hex.DecodeString(h); err == nil {
			if s, err := Decode(b); err == nil {
				return s, nil
			}
		}
	}
	for _, w := range widths {
		bits, err := bitstring.FromHex(h, w)
		if err != nil {
			continue
		}
		s, err := DecodeBinary(bits)
		if err != nil {
			continue
		}
		return s, nil
	}
	return nil, errors.Errorf("%q is not the hex form of a recognized EPC encoding", h)
}

// DecodeBinary decodes a canonical bit string of '0' and '1' characters.
func DecodeBinary(bits string) (epc.Scheme, error) {
	if len(bits) < 8 {
		return nil, errors.Errorf(
			"EPC binary forms start with an 8-bit header, but this has %d bits",
			len(bits))
	}
	header, err := bitstring.ParseUint(bits[:8])
	if err != nil {
		return nil, err
	}
	s, err := epc.NewForHeader(byte(header))
	if err != nil {
		return nil, err
	}
	if err := s.DecodeFromBinary(bits); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeTagURI decodes any recognized EPC Tag URI, picking the encoding from
// the URI's scheme token.
func DecodeTagURI(uri string) (epc.Scheme, error) {
	prefix := epc.TagURNBase + ":"
	if !strings.HasPrefix(uri, prefix) {
		return nil, errors.Errorf("EPC Tag URIs start with %q, but this is %q",
			prefix, uri)
	}
	rest := uri[len(prefix):]
	end := strings.IndexByte(rest, ':')
	if end < 0 {
		return nil, errors.Errorf("%q has no fields after its scheme token", uri)
	}
	s, err := epc.New(rest[:end])
	if err != nil {
		return nil, err
	}
	if err := s.DecodeFromTagURI(uri); err != nil {
		return nil, err
	}
	return s, nil
}
