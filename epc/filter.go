/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "strconv"

// FilterValue is the 3-bit filter carried by tag encodings to aid reader-side
// selection. It is not part of the identifier itself, so URIs and element
// strings other than the Tag URI omit it.
//
// The names below follow the SGTIN filter table; other encodings assign their
// own meanings to the same values, so IsValid treats only the range as
// binding.
type FilterValue int

const (
	FilterOther     = FilterValue(0)
	FilterPOS       = FilterValue(1)
	FilterFullCase  = FilterValue(2)
	FilterReserved3 = FilterValue(3)
	FilterInnerPack = FilterValue(4)
	FilterReserved5 = FilterValue(5)
	FilterUnitLoad  = FilterValue(6)
	FilterUnitPack  = FilterValue(7)
)

// IsValid returns false if the FilterValue doesn't fit in the 3-bit filter
// field; otherwise it returns true, including for the GS1 reserved values.
func (fv FilterValue) IsValid() bool {
	return fv >= FilterOther && fv <= FilterUnitPack
}

// IsReserved returns true for the filter values the SGTIN filter table
// reserves for future use.
func (fv FilterValue) IsReserved() bool {
	return fv == FilterReserved3 || fv == FilterReserved5
}

func (fv FilterValue) String() string {
	switch fv {
	case FilterOther:
		return "Other"
	case FilterPOS:
		return "POS"
	case FilterFullCase:
		return "Full Case"
	case FilterInnerPack:
		return "Inner Pack"
	case FilterUnitLoad:
		return "Unit Load"
	case FilterUnitPack:
		return "Unit Pack"
	case FilterReserved3, FilterReserved5:
		return "Reserved"
	}
	return "Unknown filter value: " + strconv.Itoa(int(fv))
}
