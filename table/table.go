// Package table implements the shufti table-construction algorithms.
//
// A ShuftiTable is a pair of 16-entry nibble lookup tables plus a column
// validity mask. Together they let a byte be tested for set membership with
// two table lookups and an AND, which is what makes the scan loop in
// package shufti amenable to a 16-byte-per-step SIMD lowering (see package
// arch).
//
// Two construction algorithms are provided:
//
//   - BuildFast assigns one column per needle and only works for sets of up
//     to 8 bytes.
//   - BuildSlow packs an arbitrary-size needle set into 8 columns by reusing
//     a column across needles whenever doing so cannot introduce a "ghost
//     byte" — a byte that would be reported as a member without actually
//     being in the set.
//
// Build picks whichever algorithm applies to the given needle count.
package table

// ShuftiTable is the compiled output of Build/BuildFast/BuildSlow: a pair of
// nibble lookup tables and the mask of columns actually in use.
//
// Tables are produced once and never mutated afterward; a ShuftiTable value
// is safe to share across goroutines and to copy freely.
type ShuftiTable struct {
	// LowTab[n] is the bitset of columns whose column contains at least one
	// needle whose low nibble equals n.
	LowTab [16]byte

	// HighTab[n] is the same, for the high nibble.
	HighTab [16]byte

	// BitMask is the bitset of columns actually assigned to a needle.
	BitMask byte
}

// Member reports whether b belongs to the needle set the table was built
// from. It implements the table's fundamental invariant directly:
// LowTab[b&0x0f] & HighTab[b>>4] & BitMask != 0.
func (t ShuftiTable) Member(b byte) bool {
	return t.LowTab[b&0x0f]&t.HighTab[b>>4]&t.BitMask != 0
}

// Build constructs a ShuftiTable for needles, choosing the fast (≤8 needles)
// or slow (packing) algorithm as appropriate. needles must be non-empty and
// contain no duplicate bytes.
func Build(needles []byte) (ShuftiTable, error) {
	if len(needles) == 0 {
		return ShuftiTable{}, ErrEmptySet
	}
	if b, dup := findDuplicate(needles); dup {
		return ShuftiTable{}, &DuplicateByteError{Byte: b}
	}
	if len(needles) <= 8 {
		return buildFast(needles), nil
	}
	return buildSlow(needles)
}

// BuildFast implements the §4.1 fast path: one column per needle. It fails
// if needles is empty, contains duplicates, or has more than 8 bytes — use
// BuildSlow (or Build) for larger sets.
func BuildFast(needles []byte) (ShuftiTable, error) {
	if len(needles) == 0 {
		return ShuftiTable{}, ErrEmptySet
	}
	if len(needles) > 8 {
		return ShuftiTable{}, &TooManyNeedlesError{Count: len(needles)}
	}
	if b, dup := findDuplicate(needles); dup {
		return ShuftiTable{}, &DuplicateByteError{Byte: b}
	}
	return buildFast(needles), nil
}

// buildFast assumes needles has already been validated.
func buildFast(needles []byte) ShuftiTable {
	var lowTab, highTab [16]byte
	for i, n := range needles {
		bit := byte(1) << uint(i)
		lowTab[n&0x0f] |= bit
		highTab[n>>4] |= bit
	}
	return ShuftiTable{
		LowTab:  lowTab,
		HighTab: highTab,
		BitMask: byte(1<<uint(len(needles))) - 1,
	}
}

// BuildSlow implements the §4.2 packing algorithm: needles are processed in
// input order, and each is placed into the first existing column that keeps
// the ghost-byte invariant intact, or into a freshly allocated column
// otherwise. Fails with ErrPackingExhausted if a ninth column would be
// required.
func BuildSlow(needles []byte) (ShuftiTable, error) {
	if len(needles) == 0 {
		return ShuftiTable{}, ErrEmptySet
	}
	if b, dup := findDuplicate(needles); dup {
		return ShuftiTable{}, &DuplicateByteError{Byte: b}
	}
	return buildSlow(needles)
}

func buildSlow(needles []byte) (ShuftiTable, error) {
	var isMember [256]bool
	for _, n := range needles {
		isMember[n] = true
	}

	var lowTab, highTab [16]byte
	var assignedMask byte
	nextColumn := 0

	for _, c := range needles {
		lo := c & 0x0f
		hi := c >> 4

		placed := false
		for b := 0; b < nextColumn; b++ {
			bit := byte(1) << uint(b)
			if columnSafe(lowTab, highTab, bit, lo, hi, &isMember) {
				lowTab[lo] |= bit
				highTab[hi] |= bit
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		if nextColumn == 8 {
			return ShuftiTable{}, ErrPackingExhausted
		}
		bit := byte(1) << uint(nextColumn)
		lowTab[lo] |= bit
		highTab[hi] |= bit
		assignedMask |= bit
		nextColumn++
	}

	return ShuftiTable{LowTab: lowTab, HighTab: highTab, BitMask: assignedMask}, nil
}

// columnSafe decides whether needle (hi,lo) can be added to column bit
// without creating a ghost byte, given the tables' current occupancy.
//
// It enumerates every (otherHi, otherLo) pair that currently shares column
// bit and checks that both bytes the new needle would newly conflate with —
// (hi<<4)|otherLo and (otherHi<<4)|lo — are themselves real needles.
func columnSafe(lowTab, highTab [16]byte, bit, lo, hi byte, isMember *[256]bool) bool {
	for otherHi := 0; otherHi < 16; otherHi++ {
		if highTab[otherHi]&bit == 0 {
			continue
		}
		for otherLo := 0; otherLo < 16; otherLo++ {
			if lowTab[otherLo]&bit == 0 {
				continue
			}
			ghost1 := (hi << 4) | byte(otherLo)
			ghost2 := (byte(otherHi) << 4) | lo
			if !isMember[ghost1] || !isMember[ghost2] {
				return false
			}
		}
	}
	return true
}

// findDuplicate reports the first byte in needles that also occurs earlier
// in needles, if any.
func findDuplicate(needles []byte) (byte, bool) {
	var seen [256]bool
	for _, n := range needles {
		if seen[n] {
			return n, true
		}
		seen[n] = true
	}
	return 0, false
}
