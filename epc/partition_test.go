/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

func TestPartitionTables_budgets(t *testing.T) {
	// every table splits a fixed bit budget between the company prefix and
	// its reference field; the digit split is likewise constant, except for
	// GIAI, whose reference digits are the most its bit width can hold
	for _, tt := range []struct {
		name        string
		table       PartitionTable
		bitBudget   int
		digitBudget int
	}{
		{"sgtin", sgtinPartitions, 44, 13},
		{"sscc", ssccPartitions, 58, 17},
		{"sgln", sglnPartitions, 41, 12},
		{"grai", graiPartitions, 44, 12},
		{"giai", giaiPartitions, 82, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldHaveLength(tt.table, 7)
			for i, row := range tt.table {
				as := fmt.Sprintf("%s row %d", tt.name, i)
				w.As(as).ShouldBeEqual(row.Partition, i)
				w.As(as).ShouldBeEqual(row.CompanyPrefixBits+row.ReferenceBits, tt.bitBudget)
				w.As(as).ShouldBeEqual(row.CompanyPrefixDigits, 12-i)
				if tt.digitBudget > 0 {
					w.As(as).ShouldBeEqual(row.CompanyPrefixDigits+row.ReferenceDigits,
						tt.digitBudget)
				} else {
					// max digits of the largest value the bits can hold
					most := uint64(1)<<uint(row.ReferenceBits) - 1
					w.As(as).ShouldBeEqual(row.ReferenceDigits,
						len(strconv.FormatUint(most, 10)))
				}
			}
		})
	}
}

func TestPartitionTables_sharedPrefixWidths(t *testing.T) {
	// the company prefix side is the same in every partitioned encoding
	w := expect.WrapT(t)
	for _, table := range []PartitionTable{
		ssccPartitions, sglnPartitions, graiPartitions, giaiPartitions,
	} {
		for i, row := range table {
			w.ShouldBeEqual(row.CompanyPrefixBits, sgtinPartitions[i].CompanyPrefixBits)
			w.ShouldBeEqual(row.CompanyPrefixDigits, sgtinPartitions[i].CompanyPrefixDigits)
		}
	}
}

func TestPartitionTable_ByValue(t *testing.T) {
	w := expect.WrapT(t)

	for p := 0; p <= 6; p++ {
		row := w.ShouldHaveResult(sgtinPartitions.ByValue(p)).(PartitionRow)
		w.ShouldBeEqual(row.Partition, p)
	}

	for _, p := range []int{-1, 7, 100} {
		_, err := sgtinPartitions.ByValue(p)
		w.As(p).ShouldFail(err)
		var pe InvalidPartitionError
		w.As(err).ShouldBeTrue(errors.As(err, &pe))
	}
}

func TestPartitionTable_ByDigits(t *testing.T) {
	w := expect.WrapT(t)

	for digits := 6; digits <= 12; digits++ {
		row := w.ShouldHaveResult(ssccPartitions.ByDigits(digits)).(PartitionRow)
		w.ShouldBeEqual(row.CompanyPrefixDigits, digits)
		w.ShouldBeEqual(row.Partition, 12-digits)
	}

	for _, digits := range []int{0, 5, 13} {
		_, err := ssccPartitions.ByDigits(digits)
		w.As(digits).ShouldFail(err)
		var pe InvalidPartitionError
		w.As(err).ShouldBeTrue(errors.As(err, &pe))
	}
}
