/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strings"

	"github.com/pkg/errors"
)

// New returns an empty Scheme for an encoding type name such as "SGTIN96" or
// "sgtin-96". Matching ignores case and dashes.
func New(encodingType string) (Scheme, error) {
	switch strings.ToUpper(strings.ReplaceAll(encodingType, "-", "")) {
	case "SGTIN96":
		return NewSGTIN96(), nil
	case "SGTIN198":
		return NewSGTIN198(), nil
	case "SSCC96":
		return NewSSCC96(), nil
	case "SGLN96":
		return NewSGLN96(), nil
	case "GRAI96":
		return NewGRAI96(), nil
	case "GIAI96":
		return NewGIAI96(), nil
	case "GID96":
		return NewGID96(), nil
	}
	return nil, errors.Errorf("unknown encoding type %q", encodingType)
}

// NewForHeader returns an empty Scheme for the encoding a header byte names,
// which is how raw tag reads identify themselves.
func NewForHeader(header byte) (Scheme, error) {
	switch header {
	case SGTIN96Header:
		return NewSGTIN96(), nil
	case SGTIN198Header:
		return NewSGTIN198(), nil
	case SSCC96Header:
		return NewSSCC96(), nil
	case SGLN96Header:
		return NewSGLN96(), nil
	case GRAI96Header:
		return NewGRAI96(), nil
	case GIAI96Header:
		return NewGIAI96(), nil
	case GID96Header:
		return NewGID96(), nil
	}
	return nil, errors.Errorf("no EPC encoding has header %#x", header)
}

// EncodingTypes lists the encoding type names New accepts, sorted.
func EncodingTypes() []string {
	return []string{
		"GIAI96", "GID96", "GRAI96", "SGLN96", "SGTIN198", "SGTIN96", "SSCC96",
	}
}
