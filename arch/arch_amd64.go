//go:build amd64

package arch

import "golang.org/x/sys/cpu"

// hasSSSE3 is read once at init; bitmask16 branches on it on every call to
// route to whichever implementation applies to this CPU, matching the
// teacher's hasSSSE3-gated
// dispatch in prefilter/teddy_ssse3_amd64.go.
var hasSSSE3 = cpu.X86.HasSSSE3

// bitmask16SSSE3 is implemented in arch_amd64.s. It loads low/high into XMM
// registers, splits chunk into nibble vectors, shuffles each table by its
// nibble vector with PSHUFB, ANDs the results together with bitMask
// broadcast across all 16 lanes, and extracts the per-lane nonzero
// predicate with PCMPEQB+PMOVMSKB.
//
// Ported directly from the reference implementation's
// arch/x86_64/ssse3.rs (_mm_shuffle_epi8 / _mm_movemask_epi8 intrinsics).
//
//go:noescape
func bitmask16SSSE3(low, high *[16]byte, bitMask byte, chunk *[16]byte) uint16

func bitmask16(low, high [16]byte, bitMask byte, chunk *[16]byte) uint16 {
	if hasSSSE3 {
		return bitmask16SSSE3(&low, &high, bitMask, chunk)
	}
	return bitmaskGeneric(low, high, bitMask, chunk)
}
