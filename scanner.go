// Package shufti implements the scan loop over a precomputed ShuftiTable:
// the public search façade that iterates 16-byte chunks through package
// arch, handles the sub-16-byte tail, and returns the smallest matching
// offset.
//
// A Scanner is a thin, immutable wrapper around a table.ShuftiTable. It
// holds no mutable state across calls and is safe for concurrent use from
// multiple goroutines, the same guarantee the teacher documents for
// prefilter.Teddy ("Thread-safety: Teddy is safe for concurrent use (all
// state is immutable)").
package shufti

import (
	"math/bits"

	"github.com/gomatch/shufti/arch"
	"github.com/gomatch/shufti/table"
)

// Matcher is implemented by any generated (or hand-built) matcher: the
// runtime surface of spec §6, translated from the original's ShuftiMatch
// trait. Exported constants on a generated package stand in for the
// trait's associated Set/NeedleCount.
type Matcher interface {
	Set() string
	NeedleCount() int
	Table() table.ShuftiTable
	Match16(chunk *[16]byte) uint16
	FindFirst(haystack []byte) (int, bool)
}

// Scanner wraps a precomputed table.ShuftiTable and exposes the two scan
// operations: Match16 for a single 16-byte chunk, and FindFirst for an
// arbitrary-length haystack.
type Scanner struct {
	set   string
	table table.ShuftiTable
}

// New wraps a precomputed table for scanning. set is the original needle
// literal, kept only for diagnostics/Matcher.Set(); it is not
// re-validated against tbl.
func New(tbl table.ShuftiTable, set string) Scanner {
	return Scanner{set: set, table: tbl}
}

// Set returns the original needle-set literal this scanner was built from.
func (s Scanner) Set() string { return s.set }

// NeedleCount returns the number of columns the table actually uses. For a
// fast-path table this equals the original needle count; for a
// packed (slow-path) table it may be smaller.
func (s Scanner) NeedleCount() int { return bits.OnesCount8(s.table.BitMask) }

// Table returns the underlying precomputed table.
func (s Scanner) Table() table.ShuftiTable { return s.table }

// Match16 tests exactly 16 bytes and returns a bitmask where bit i is set
// iff chunk[i] is a member of the needle set.
func (s Scanner) Match16(chunk *[16]byte) uint16 {
	return arch.Bitmask16(s.table.LowTab, s.table.HighTab, s.table.BitMask, chunk)
}

// FindFirst searches haystack for the first byte that belongs to the needle
// set. It returns the offset and true if found, or (0, false) if no byte in
// haystack is a member — the Go idiom for Option<usize>, matching the
// comma-ok convention used throughout the standard library (e.g. map
// lookups) rather than a sentinel -1.
//
// Algorithm (spec §4.4):
//  1. Walk 16-byte chunks via Match16; on a non-zero mask, return the
//     offset of its lowest set bit.
//  2. For the sub-16-byte remainder, copy it into a zeroed 16-byte buffer
//     and test that. A hit at or past the remainder's length can only come
//     from the zero padding itself — which is only possible when 0x00 is a
//     needle — so it is clamped: scan bits 0..remainder for the first
//     genuine hit instead of trusting TrailingZeros blindly.
func (s Scanner) FindFirst(haystack []byte) (int, bool) {
	offset := 0
	n := len(haystack)

	for offset+16 <= n {
		var chunk [16]byte
		copy(chunk[:], haystack[offset:offset+16])
		mask := s.Match16(&chunk)
		if mask != 0 {
			return offset + bits.TrailingZeros16(mask), true
		}
		offset += 16
	}

	remainder := n - offset
	if remainder == 0 {
		return 0, false
	}

	var buf [16]byte
	copy(buf[:remainder], haystack[offset:])
	mask := s.Match16(&buf)
	if mask == 0 {
		return 0, false
	}

	pos := bits.TrailingZeros16(mask)
	if pos < remainder {
		return offset + pos, true
	}

	// The only way a set bit exists at pos >= remainder is that 0x00 is a
	// needle and the zero-padding tail matched it; the real answer (if any)
	// is the lowest set bit within the valid range.
	for i := 0; i < remainder; i++ {
		if mask&(1<<uint(i)) != 0 {
			return offset + i, true
		}
	}
	return 0, false
}
