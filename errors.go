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

import "errors"

// Errors returned by Record field setters and tag operations.
var (
	// ErrBadKey is returned when a tag key is not exactly two bytes.
	ErrBadKey = errors.New("bamrecord: tag key must be two bytes")

	// ErrBadLength is returned when a name, a CIGAR operation count or a
	// CIGAR operation length falls outside its valid range. Sequence
	// lengths and quality arrays are not checked.
	ErrBadLength = errors.New("bamrecord: value out of range")

	// ErrUnknownTagType is returned when a tag's wire type byte is not one
	// of the recognised types.
	ErrUnknownTagType = errors.New("bamrecord: unrecognised tag type")

	// ErrInvalidCigarOp is returned by ParseCigarString when an operation
	// character is not one of MIDNSHP=X.
	ErrInvalidCigarOp = errors.New("bamrecord: invalid cigar operation")

	// ErrTruncated is returned when a buffer passed to Wrap is shorter
	// than the fixed header plus the name, CIGAR, sequence and quality
	// regions it claims to hold.
	ErrTruncated = errors.New("bamrecord: truncated record buffer")
)
