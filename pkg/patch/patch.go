// Package patch implements ZORA's final pipeline stage (spec.md §4.9,
// §6): an offset-to-byte overlay accumulated from every upstream component,
// hashed into a canonical fingerprint, and applied against a base image to
// produce the output ROM.
//
// The type follows teacher's pkg/export package in spirit — a small,
// dependency-free accumulator type that other packages write into and one
// final step consumes — but Patch has no teacher analogue of its own: no
// example package produces a byte-exact file overlay, so its shape is
// grounded on spec.md §4.9/§6 directly rather than adapted from a
// specific teacher file.
package patch

import (
	"fmt"
	"sort"
)

// Patch is a sparse overlay of byte writes against a fixed-size base image.
// The zero value is an empty, usable Patch.
type Patch struct {
	writes map[uint32]byte
}

// New returns an empty Patch.
func New() *Patch {
	return &Patch{writes: make(map[uint32]byte)}
}

// Set records a single byte write at offset. A repeated write of the same
// byte at the same offset is a no-op; a repeated write of a different byte
// at the same offset overwrites the prior value (last writer wins within a
// single Patch — conflicts across merged Patches are Merge's concern, not
// Set's).
func (p *Patch) Set(offset uint32, b byte) {
	if p.writes == nil {
		p.writes = make(map[uint32]byte)
	}
	p.writes[offset] = b
}

// SetRange records a contiguous run of byte writes starting at offset.
func (p *Patch) SetRange(offset uint32, bs []byte) {
	for i, b := range bs {
		p.Set(offset+uint32(i), b)
	}
}

// Len reports how many distinct offsets this Patch writes.
func (p *Patch) Len() int { return len(p.writes) }

// Get returns the byte recorded at offset, if any.
func (p *Patch) Get(offset uint32) (byte, bool) {
	b, ok := p.writes[offset]
	return b, ok
}

// sortedOffsets returns this Patch's write offsets in ascending order —
// the canonical iteration order spec.md §4.9 requires for both Hash and
// ApplyTo.
func (p *Patch) sortedOffsets() []uint32 {
	offsets := make([]uint32, 0, len(p.writes))
	for o := range p.writes {
		offsets = append(offsets, o)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
	return offsets
}

// Merge folds src's writes into p. A differing-byte conflict at the same
// offset is resolved last-writer-wins (src wins) and reported to onConflict,
// if non-nil, so the caller can log it; an identical-byte write at the same
// offset is silent, per spec.md §4.9's conflict-resolution note.
func (p *Patch) Merge(src *Patch, onConflict func(offset uint32, oldByte, newByte byte)) {
	if p.writes == nil {
		p.writes = make(map[uint32]byte)
	}
	for _, offset := range src.sortedOffsets() {
		newByte := src.writes[offset]
		if oldByte, exists := p.writes[offset]; exists && oldByte != newByte && onConflict != nil {
			onConflict(offset, oldByte, newByte)
		}
		p.writes[offset] = newByte
	}
}

// Hash returns a canonical 64-bit fingerprint of this Patch's contents: an
// FNV-1a-style rolling hash over offset-ascending (offset, byte) pairs,
// each offset mixed as 4 little-endian bytes followed by its byte
// (spec.md §6's "canonical hash"). Two Patches with identical writes hash
// identically regardless of the order Set calls were made in.
func (p *Patch) Hash() uint64 {
	const (
		fnvOffset = 14695981039346656037
		fnvPrime  = 1099511628211
	)
	h := uint64(fnvOffset)
	mix := func(b byte) {
		h ^= uint64(b)
		h *= fnvPrime
	}
	for _, offset := range p.sortedOffsets() {
		mix(byte(offset))
		mix(byte(offset >> 8))
		mix(byte(offset >> 16))
		mix(byte(offset >> 24))
		mix(p.writes[offset])
	}
	return h
}

// ApplyTo returns a copy of base with this Patch's writes overlaid. It does
// not mutate base. Returns an error if any write falls outside base's
// bounds — ApplyTo is the last line of defense for an out-of-bounds write
// that should have been rejected earlier by a region check.
func (p *Patch) ApplyTo(base []byte) ([]byte, error) {
	out := make([]byte, len(base))
	copy(out, base)
	for _, offset := range p.sortedOffsets() {
		if int(offset) >= len(out) {
			return nil, fmt.Errorf("patch: write at offset %d exceeds base image length %d", offset, len(out))
		}
		out[offset] = p.writes[offset]
	}
	return out, nil
}
