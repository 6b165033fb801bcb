// Package arch implements the single SIMD-lowerable primitive the shufti
// scan loop is built on: testing 16 bytes against a pair of nibble lookup
// tables and returning a per-lane membership bitmask.
//
// Bitmask16 is pure and allocation-free; it holds no state across calls and
// is safe for concurrent use. Platform-specific files provide the actual
// table-shuffle lowering (PSHUFB on amd64 with SSSE3); every other platform
// uses the portable four-line recipe in arch_generic.go, which is always
// correct and differs only in throughput. The CPU-feature flag that selects
// between the two is read once at package init time; each call then branches
// on that cached flag — see arch_amd64.go.
package arch

// Bitmask16 tests each of the 16 bytes in chunk against the membership
// predicate encoded by low, high and bitMask, and returns a 16-bit mask
// whose bit i is set iff chunk[i] is a member:
//
//	low[chunk[i]&0x0f] & high[chunk[i]>>4] & bitMask != 0
//
// This is the only operation in the package; everything else (table
// construction, tail handling, first-match extraction) lives in the table
// and shufti packages.
func Bitmask16(low, high [16]byte, bitMask byte, chunk *[16]byte) uint16 {
	return bitmask16(low, high, bitMask, chunk)
}
