/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

// PartitionRow is one entry of an encoding's partition table: for a given
// partition value, the bit and digit widths of the company prefix and of the
// reference field that shares its bit budget.
type PartitionRow struct {
	Partition           int
	CompanyPrefixBits   int
	CompanyPrefixDigits int
	ReferenceBits       int
	ReferenceDigits     int
}

// PartitionTable maps partition values to company prefix and reference
// widths. Tables are indexed by partition value, with the company prefix
// shrinking by one digit per row.
type PartitionTable []PartitionRow

// ByValue returns the row for a partition value.
func (pt PartitionTable) ByValue(partition int) (PartitionRow, error) {
	if partition < 0 || partition >= len(pt) {
		return PartitionRow{}, partitionErrorf(
			"partition values must be in [0, %d], but this is %d",
			len(pt)-1, partition)
	}
	return pt[partition], nil
}

// ByDigits returns the row for a company prefix with the given number of
// digits.
func (pt PartitionTable) ByDigits(companyPrefixDigits int) (PartitionRow, error) {
	idx := pt[0].CompanyPrefixDigits - companyPrefixDigits
	if idx < 0 || idx >= len(pt) {
		return PartitionRow{}, partitionErrorf(
			"company prefixes must have %d to %d digits, but this has %d",
			pt[len(pt)-1].CompanyPrefixDigits, pt[0].CompanyPrefixDigits,
			companyPrefixDigits)
	}
	return pt[idx], nil
}

// The company prefix widths are the same in every partitioned encoding; only
// the reference side changes. The reference field is the item reference for
// SGTIN, serial reference for SSCC, location reference for SGLN, asset type
// for GRAI, and individual asset reference for GIAI.

var sgtinPartitions = PartitionTable{
	{0, 40, 12, 4, 1},
	{1, 37, 11, 7, 2},
	{2, 34, 10, 10, 3},
	{3, 30, 9, 14, 4},
	{4, 27, 8, 17, 5},
	{5, 24, 7, 20, 6},
	{6, 20, 6, 24, 7},
}

var ssccPartitions = PartitionTable{
	{0, 40, 12, 18, 5},
	{1, 37, 11, 21, 6},
	{2, 34, 10, 24, 7},
	{3, 30, 9, 28, 8},
	{4, 27, 8, 31, 9},
	{5, 24, 7, 34, 10},
	{6, 20, 6, 38, 11},
}

var sglnPartitions = PartitionTable{
	{0, 40, 12, 1, 0},
	{1, 37, 11, 4, 1},
	{2, 34, 10, 7, 2},
	{3, 30, 9, 11, 3},
	{4, 27, 8, 14, 4},
	{5, 24, 7, 17, 5},
	{6, 20, 6, 21, 6},
}

var graiPartitions = PartitionTable{
	{0, 40, 12, 4, 0},
	{1, 37, 11, 7, 1},
	{2, 34, 10, 10, 2},
	{3, 30, 9, 14, 3},
	{4, 27, 8, 17, 4},
	{5, 24, 7, 20, 5},
	{6, 20, 6, 24, 6},
}

// GIAI's reference digits are a maximum rather than an exact length; the
// individual asset reference is not zero-padded.
var giaiPartitions = PartitionTable{
	{0, 40, 12, 42, 13},
	{1, 37, 11, 45, 14},
	{2, 34, 10, 48, 15},
	{3, 30, 9, 52, 16},
	{4, 27, 8, 55, 17},
	{5, 24, 7, 58, 18},
	{6, 20, 6, 62, 19},
}
