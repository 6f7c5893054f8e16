// Copyright ©2012 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

import (
	"fmt"
	"strconv"
	"strings"
)

// refName resolves id through namer, returning "*" when namer is nil or
// the ID is unbound, matching spec §4.8.
func refName(namer ReferenceNamer, id int32) string {
	if id < 0 || namer == nil {
		return "*"
	}
	if name, ok := namer.Name(id); ok {
		return name
	}
	return "*"
}

// WriteSAM renders r as a single tab-separated SAM alignment line
// (without a trailing newline), resolving reference names through namer.
// namer may be nil, in which case every reference name renders as "*".
func (r *Record) WriteSAM(namer ReferenceNamer) string {
	var b strings.Builder

	cigar := r.Cigar().String()

	b.WriteString(r.Name())
	b.WriteByte('\t')
	fmt.Fprintf(&b, "%d", uint16(r.Flags()))
	b.WriteByte('\t')
	b.WriteString(refName(namer, r.RefID()))
	b.WriteByte('\t')
	fmt.Fprintf(&b, "%d", r.Position()+1)
	b.WriteByte('\t')
	fmt.Fprintf(&b, "%d", r.MappingQuality())
	b.WriteByte('\t')
	b.WriteString(cigar)
	b.WriteByte('\t')
	b.WriteString(r.mateRefField(namer))
	b.WriteByte('\t')
	fmt.Fprintf(&b, "%d", r.MatePosition()+1)
	b.WriteByte('\t')
	fmt.Fprintf(&b, "%d", r.TemplateLength())
	b.WriteByte('\t')
	b.WriteString(r.Sequence().String())
	b.WriteByte('\t')
	b.WriteString(r.qualityString())

	for _, tag := range r.Tags() {
		b.WriteByte('\t')
		b.WriteString(r.samTagField(tag))
	}

	return b.String()
}

// mateRefField renders the mate reference name field: "=" when the mate
// shares the record's own reference ID, "*" when unset, else the
// resolved name (spec §4.8).
func (r *Record) mateRefField(namer ReferenceNamer) string {
	mateRef := r.MateRefID()
	if mateRef < 0 {
		return "*"
	}
	if mateRef == r.RefID() {
		return "="
	}
	return refName(namer, mateRef)
}

// qualityString renders per-base qualities as Phred+33 ASCII, or "*" when
// the sequence is empty or unscored (first quality byte is 0xff).
func (r *Record) qualityString() string {
	q := r.BaseQualities()
	if len(q) == 0 || q[0] == 0xff {
		return "*"
	}
	b := make([]byte, len(q))
	for i, v := range q {
		b[i] = v + 33
	}
	return string(b)
}

func (r *Record) samTagField(tag Tag) string {
	t, _ := r.Type(tag)
	v, _ := r.Get(tag)
	return fmt.Sprintf("%s:%s:%s", tag.String(), samTagTypeChar(t), samTagValueString(t, v))
}

// samTagTypeChar maps a wire type byte to the type character SAM text
// uses: every integer type (c, C, s, S, i, I) folds into 'i'; all other
// types, B arrays included, render as their own code.
func samTagTypeChar(t byte) string {
	switch t {
	case 'c', 'C', 's', 'S', 'i', 'I':
		return "i"
	default:
		return string(t)
	}
}

// samTagValueString renders v, the decoded value of a tag whose wire type
// is wireType. Dispatching on wireType rather than v's Go type matters for
// 'B': its 'C' sub-type decodes to []uint8, the same Go type an 'H' tag's
// hex-decoded bytes use, so a Go-type switch would render a uint8 B array
// as hex instead of the comma-separated list every other B sub-type gets.
func samTagValueString(wireType byte, v interface{}) string {
	switch wireType {
	case 'H':
		return fmt.Sprintf("%x", v.([]byte))
	case 'B':
		return joinNumericSlice(v)
	case 'Z':
		return v.(string)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func joinNumericSlice(v interface{}) string {
	var parts []string
	switch s := v.(type) {
	case []int8:
		for _, n := range s {
			parts = append(parts, strconv.FormatInt(int64(n), 10))
		}
	case []uint8:
		for _, n := range s {
			parts = append(parts, strconv.FormatUint(uint64(n), 10))
		}
	case []int16:
		for _, n := range s {
			parts = append(parts, strconv.FormatInt(int64(n), 10))
		}
	case []uint16:
		for _, n := range s {
			parts = append(parts, strconv.FormatUint(uint64(n), 10))
		}
	case []int32:
		for _, n := range s {
			parts = append(parts, strconv.FormatInt(int64(n), 10))
		}
	case []uint32:
		for _, n := range s {
			parts = append(parts, strconv.FormatUint(uint64(n), 10))
		}
	case []float32:
		for _, n := range s {
			parts = append(parts, strconv.FormatFloat(float64(n), 'g', -1, 32))
		}
	}
	return strings.Join(parts, ",")
}

// String returns r's SAM text rendering with no reference-name
// resolution (every reference name renders as "*").
func (r *Record) String() string {
	return r.WriteSAM(nil)
}
