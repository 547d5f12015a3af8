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

// URN prefixes shared by every encoding's URI forms.
const (
	TagURNBase   = "urn:epc:tag"
	PureURNBase  = "urn:epc:id"
	IDPATURNBase = "urn:epc:idpat"
)

// splitURI checks a URI's prefix and splits the rest into exactly want
// '.'-separated segments.
//
// Splitting stops after want segments, so a final text segment may itself
// contain '.'; schemes with numeric final segments reject the leftovers
// during value validation.
func splitURI(uri, prefix string, want int) ([]string, error) {
	if !strings.HasPrefix(uri, prefix+":") {
		return nil, errors.Errorf("the URI should start with %q, but is %q",
			prefix+":", uri)
	}
	segs := strings.SplitN(uri[len(prefix)+1:], ".", want)
	if len(segs) < want {
		return nil, errors.Errorf("the URI should have %d segments, but is missing %d",
			want, want-len(segs))
	}
	return segs, nil
}
