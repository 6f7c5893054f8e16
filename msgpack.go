// Copyright ©2012 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

// Pack emits r's fields to p as a 13-element MessagePack array, per spec
// §4.8:
//
//	[name, flag, ref_id, position+1, mapping_quality,
//	 [cigar lengths...], [cigar op chars...],
//	 mate_ref_id, mate_position+1, template_length,
//	 sequence_text, qualities_bytes, {tag_key: tag_value, ...}]
//
// The tag map is emitted in the record's own tag iteration order.
func (r *Record) Pack(p Packer) {
	cigar := r.Cigar()
	lengths := make([]interface{}, len(cigar))
	ops := make([]interface{}, len(cigar))
	for i, co := range cigar {
		lengths[i] = int64(co.Len())
		ops[i] = co.Type().String()
	}

	p.BeginArray(13)
	p.Pack(r.Name())
	p.Pack(uint16(r.Flags()))
	p.Pack(r.RefID())
	p.Pack(r.Position() + 1)
	p.Pack(r.MappingQuality())

	p.BeginArray(len(lengths))
	for _, l := range lengths {
		p.Pack(l)
	}
	p.BeginArray(len(ops))
	for _, o := range ops {
		p.Pack(o)
	}

	p.Pack(r.MateRefID())
	p.Pack(r.MatePosition() + 1)
	p.Pack(r.TemplateLength())
	p.Pack(r.Sequence().String())
	p.Pack(r.BaseQualities())

	tags := r.Tags()
	p.BeginMap(len(tags))
	for _, tag := range tags {
		v, _ := r.Get(tag)
		p.Pack(tag.String())
		p.Pack(v)
	}
}
