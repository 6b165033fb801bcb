package table

import (
	"errors"
	"fmt"
)

// Sentinel table-construction errors.
var (
	// ErrEmptySet indicates an empty needle set was passed to Build.
	ErrEmptySet = errors.New("shufti: empty needle set")

	// ErrPackingExhausted indicates the slow (packing) builder ran out of
	// columns: a ninth column would be required to place a needle without
	// violating the ghost-byte invariant.
	ErrPackingExhausted = errors.New("shufti: packing exhausted all 8 columns")
)

// DuplicateByteError reports a needle set containing the same byte twice.
type DuplicateByteError struct {
	Byte byte
}

// Error implements the error interface.
func (e *DuplicateByteError) Error() string {
	return fmt.Sprintf("shufti: duplicate needle byte 0x%02x", e.Byte)
}

// TooManyNeedlesError reports a needle set that exceeds what BuildFast can
// place (strictly more than 8 bytes; BuildSlow should be used instead).
type TooManyNeedlesError struct {
	Count int
}

// Error implements the error interface.
func (e *TooManyNeedlesError) Error() string {
	return fmt.Sprintf("shufti: %d needles exceeds fast-path limit of 8", e.Count)
}
