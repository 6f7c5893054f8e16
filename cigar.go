// Copyright ©2012 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

import "fmt"

// CigarOp is a single packed CIGAR operation: the upper 28 bits hold the
// operation length, the lower 4 bits hold the opcode.
type CigarOp uint32

// MaxCigarOpLength is the largest operation length representable in a
// CigarOp's 28-bit length field.
const MaxCigarOpLength = 1<<28 - 1

// NewCigarOp returns a CIGAR operation of the specified type with length n.
func NewCigarOp(t CigarOpType, n int) CigarOp {
	return CigarOp(t) | CigarOp(n)<<4
}

// Type returns the type of the CIGAR operation for the CigarOp.
func (co CigarOp) Type() CigarOpType { return CigarOpType(co & 0xf) }

// Len returns the number of positions affected by the CigarOp CIGAR operation.
func (co CigarOp) Len() int { return int(co >> 4) }

// String returns the string representation of the CigarOp.
func (co CigarOp) String() string { return fmt.Sprintf("%d%s", co.Len(), co.Type().String()) }

// IsQueryConsuming reports whether the operation consumes query bases.
func (co CigarOp) IsQueryConsuming() bool { return co.Type().Consumes().Query }

// IsReferenceConsuming reports whether the operation consumes reference
// bases.
func (co CigarOp) IsReferenceConsuming() bool { return co.Type().Consumes().Reference }

// IsMatchOrMismatch reports whether the operation is M, = or X.
func (co CigarOp) IsMatchOrMismatch() bool {
	switch co.Type() {
	case CigarMatch, CigarEqual, CigarMismatch:
		return true
	default:
		return false
	}
}

// A CigarOpType represents the type of operation described by a CigarOp.
type CigarOpType byte

const (
	CigarMatch     CigarOpType = iota // M: alignment match (can be a sequence match or mismatch).
	CigarInsertion                    // I: insertion to the reference.
	CigarDeletion                     // D: deletion from the reference.
	CigarRefSkip                      // N: skipped region from the reference.
	CigarSoftClip                     // S: soft clipping (clipped sequences present in SEQ).
	CigarHardClip                     // H: hard clipping (clipped sequences NOT present in SEQ).
	CigarPadding                      // P: padding (silent deletion from padded reference).
	CigarEqual                        // =: sequence match.
	CigarMismatch                     // X: sequence mismatch.
	lastCigar

	// cigarInvalid is any opcode outside 0-8, rendered as '?'. It is kept
	// distinct from lastCigar's numeric value (9) since an invalid
	// 4-bit opcode can be anywhere in 9-15, not just the one past the
	// recognised set.
	cigarInvalid CigarOpType = 15
)

var cigarOps = [...]string{"M", "I", "D", "N", "S", "H", "P", "=", "X"}

// Consumes returns the CIGAR operation alignment consumption characteristics for the CigarOpType.
func (ct CigarOpType) Consumes() Consume {
	if int(ct) >= len(consume) {
		return Consume{}
	}
	return consume[ct]
}

// String returns the single-character string representation of a
// CigarOpType, or "?" if ct does not name a recognised operation.
func (ct CigarOpType) String() string {
	if int(ct) >= len(cigarOps) {
		return "?"
	}
	return cigarOps[ct]
}

// Consume describes how CIGAR operations consume alignment bases.
type Consume struct {
	Query, Reference bool
}

var consume = [...]Consume{
	CigarMatch:     {Query: true, Reference: true},
	CigarInsertion: {Query: true, Reference: false},
	CigarDeletion:  {Query: false, Reference: true},
	CigarRefSkip:   {Query: false, Reference: true},
	CigarSoftClip:  {Query: true, Reference: false},
	CigarHardClip:  {Query: false, Reference: false},
	CigarPadding:   {Query: false, Reference: false},
	CigarEqual:     {Query: true, Reference: true},
	CigarMismatch:  {Query: true, Reference: true},
}

// Cigar is a sequence of packed CIGAR operations.
type Cigar []CigarOp

// String returns the CIGAR string for c, following the SAM convention that
// an empty CIGAR renders as "*".
func (c Cigar) String() string {
	if len(c) == 0 {
		return "*"
	}
	var b []byte
	for _, co := range c {
		b = append(b, co.String()...)
	}
	return string(b)
}

// referenceLength returns the sum of lengths over reference-consuming
// operations, with no regard for the unmapped flag. Record.BasesCovered
// applies the unmapped clamp described by spec §3 and §4.2.
func (c Cigar) referenceLength() int {
	var n int
	for _, co := range c {
		if co.IsReferenceConsuming() {
			n += co.Len()
		}
	}
	return n
}

var cigarOpTypeLookup [256]CigarOpType

func init() {
	for i := range cigarOpTypeLookup {
		cigarOpTypeLookup[i] = cigarInvalid
	}
	for op, c := range cigarOps {
		cigarOpTypeLookup[c[0]] = CigarOpType(op)
	}
}

// ParseCigarString parses a CIGAR string such as "20M2X" into a Cigar.
// "*" and the empty string both parse to an empty Cigar.
func ParseCigarString(s string) (Cigar, error) {
	if s == "" || s == "*" {
		return nil, nil
	}
	var (
		c       Cigar
		n       int
		started bool
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			n = n*10 + int(ch-'0')
			started = true
			continue
		}
		if !started {
			return nil, ErrInvalidCigarOp
		}
		t := cigarOpTypeLookup[ch]
		if t == cigarInvalid {
			return nil, ErrInvalidCigarOp
		}
		if n > MaxCigarOpLength {
			return nil, ErrBadLength
		}
		c = append(c, NewCigarOp(t, n))
		n, started = 0, false
	}
	if started {
		return nil, ErrInvalidCigarOp
	}
	return c, nil
}
