// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package bamrecord

// A Flags represents a BAM record's alignment FLAG field.
type Flags uint16

const (
	Paired        Flags = 1 << iota // The read is paired in sequencing, no matter whether it is mapped in a pair.
	ProperPair                      // The read is mapped in a proper pair.
	Unmapped                        // The read itself is unmapped; conflictive with ProperPair.
	MateUnmapped                    // The mate is unmapped.
	Reverse                         // The read is mapped to the reverse strand.
	MateReverse                     // The mate is mapped to the reverse strand.
	Read1                           // This is read1.
	Read2                           // This is read2.
	Secondary                       // Not primary alignment.
	QCFail                          // QC failure.
	Duplicate                       // Optical or PCR duplicate.
	Supplementary                   // Supplementary alignment.
)

// String representation of BAM alignment flags:
//  0x001 - p - Paired
//  0x002 - P - ProperPair
//  0x004 - u - Unmapped
//  0x008 - U - MateUnmapped
//  0x010 - r - Reverse
//  0x020 - R - MateReverse
//  0x040 - 1 - Read1
//  0x080 - 2 - Read2
//  0x100 - s - Secondary
//  0x200 - f - QCFail
//  0x400 - d - Duplicate
//  0x800 - x - Supplementary
//
// Note that flag bits are represented high order to the right.
func (f Flags) String() string {
	// If 0x01 is unset, no assumptions can be made about 0x02, 0x08, 0x20, 0x40 and 0x80
	const pairedMask = ProperPair | MateUnmapped | MateReverse | Read1 | Read2
	if f&1 == 0 {
		f &^= pairedMask
	}

	const flags = "pPuUrR12sfdx"

	b := make([]byte, len(flags))
	for i, c := range flags {
		if f&(1<<uint(i)) != 0 {
			b[i] = byte(c)
		} else {
			b[i] = '-'
		}
	}

	return string(b)
}

// IsPaired reports whether the Paired bit is set.
func (f Flags) IsPaired() bool { return f&Paired != 0 }

// IsProperPair reports whether the ProperPair bit is set.
func (f Flags) IsProperPair() bool { return f&ProperPair != 0 }

// IsUnmapped reports whether the Unmapped bit is set.
func (f Flags) IsUnmapped() bool { return f&Unmapped != 0 }

// IsMateUnmapped reports whether the MateUnmapped bit is set.
func (f Flags) IsMateUnmapped() bool { return f&MateUnmapped != 0 }

// IsReverse reports whether the Reverse bit is set.
func (f Flags) IsReverse() bool { return f&Reverse != 0 }

// IsMateReverse reports whether the MateReverse bit is set.
func (f Flags) IsMateReverse() bool { return f&MateReverse != 0 }

// IsSecondary reports whether the Secondary bit is set.
func (f Flags) IsSecondary() bool { return f&Secondary != 0 }

// IsDuplicate reports whether the Duplicate bit is set.
func (f Flags) IsDuplicate() bool { return f&Duplicate != 0 }
