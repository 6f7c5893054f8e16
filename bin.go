// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

// reg2bin implements the UCSC binning scheme used by the BAM index (BAI)
// format, adapted from the bin calculation in biogo/hts's internal index
// package (internal/index.go, BinFor). It maps a zero-based, half-open
// interval [beg, end) to the bin number of the smallest interval in the
// tiling hierarchy that fully contains it.
const (
	binWordBits  = 29
	binNextShift = 3

	binLevel0 = uint16(((1 << (0 * binNextShift)) - 1) / 7)
	binLevel1 = uint16(((1 << (1 * binNextShift)) - 1) / 7)
	binLevel2 = uint16(((1 << (2 * binNextShift)) - 1) / 7)
	binLevel3 = uint16(((1 << (3 * binNextShift)) - 1) / 7)
	binLevel4 = uint16(((1 << (4 * binNextShift)) - 1) / 7)
	binLevel5 = uint16(((1 << (5 * binNextShift)) - 1) / 7)

	binLevel0Shift = binWordBits - 0*binNextShift
	binLevel1Shift = binWordBits - 1*binNextShift
	binLevel2Shift = binWordBits - 2*binNextShift
	binLevel3Shift = binWordBits - 3*binNextShift
	binLevel4Shift = binWordBits - 4*binNextShift
	binLevel5Shift = binWordBits - 5*binNextShift
)

// reg2bin returns the bin number for the interval [beg, end), zero-based
// and half-open. It is used to keep Record.Bin coherent with Position and
// Cigar; see Record.recalculateBin.
func reg2bin(beg, end int32) uint16 {
	end--
	switch {
	case beg>>binLevel5Shift == end>>binLevel5Shift:
		return binLevel5 + uint16(beg>>binLevel5Shift)
	case beg>>binLevel4Shift == end>>binLevel4Shift:
		return binLevel4 + uint16(beg>>binLevel4Shift)
	case beg>>binLevel3Shift == end>>binLevel3Shift:
		return binLevel3 + uint16(beg>>binLevel3Shift)
	case beg>>binLevel2Shift == end>>binLevel2Shift:
		return binLevel2 + uint16(beg>>binLevel2Shift)
	case beg>>binLevel1Shift == end>>binLevel1Shift:
		return binLevel1 + uint16(beg>>binLevel1Shift)
	}
	return binLevel0
}
