package shufti

import (
	"testing"

	"github.com/gomatch/shufti/table"
)

func mustScanner(t *testing.T, set string) Scanner {
	t.Helper()
	tbl, err := table.Build([]byte(set))
	if err != nil {
		t.Fatalf("table.Build(%q) error: %v", set, err)
	}
	return New(tbl, set)
}

// TestFindFirstScenarios covers spec §8's concrete scenarios 1-6.
func TestFindFirstScenarios(t *testing.T) {
	tests := []struct {
		name     string
		set      string
		haystack string
		wantPos  int
		wantOK   bool
	}{
		{"no match in one chunk", "\t\r\n", "abcdefghijklmnop", 0, false},
		{"match at first byte", "\t\r\n", "\tbcdefghijklmnop", 0, true},
		{"match at last byte of chunk", "\t\r\n", "abcdefghijklmno\n", 15, true},
		{"crosses chunk boundary into epilogue", "\t\r\n", "abcdefghijklmnopqrs\tuvwxyz", 19, true},
		{"pure epilogue", "\t\r\n", "abcde\r", 5, true},
		{"NUL needle vs epilogue zero-padding", "\x00\t\n\r #/:<>?@[\\]^|", "null\x00byte", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustScanner(t, tt.set)
			pos, ok := s.FindFirst([]byte(tt.haystack))
			if ok != tt.wantOK || (ok && pos != tt.wantPos) {
				t.Errorf("FindFirst(%q) = (%d, %v), want (%d, %v)", tt.haystack, pos, ok, tt.wantPos, tt.wantOK)
			}
		})
	}
}

func TestFindFirstEmptyHaystack(t *testing.T) {
	s := mustScanner(t, "\t\r\n")
	if _, ok := s.FindFirst(nil); ok {
		t.Errorf("FindFirst(nil) ok = true, want false")
	}
	if _, ok := s.FindFirst([]byte{}); ok {
		t.Errorf("FindFirst([]) ok = true, want false")
	}
}

// TestFindFirstPositionContract checks spec §8's position contract: the
// returned index (if any) is a member, and every earlier byte is not.
func TestFindFirstPositionContract(t *testing.T) {
	haystacks := []string{
		"abcdefghijklmnopqrs\tuvwxyz",
		"abcde\r",
		"\nhello",
		"",
		"0123456789abcdefghijklmnopqrstuvwxyz",
	}
	s := mustScanner(t, "\t\r\n")
	member := func(b byte) bool { return b == '\t' || b == '\r' || b == '\n' }

	for _, h := range haystacks {
		pos, ok := s.FindFirst([]byte(h))
		if !ok {
			for _, b := range []byte(h) {
				if member(b) {
					t.Errorf("FindFirst(%q) = not found, but %q contains a member", h, h)
				}
			}
			continue
		}
		if !member(h[pos]) {
			t.Errorf("FindFirst(%q) = %d, but h[%d]=%q is not a member", h, pos, pos, h[pos])
		}
		for j := 0; j < pos; j++ {
			if member(h[j]) {
				t.Errorf("FindFirst(%q) = %d, but h[%d]=%q is an earlier member", h, pos, j, h[j])
			}
		}
	}
}

// TestFindFirstChunkInvariance checks spec §8: appending non-member bytes
// never changes the result.
func TestFindFirstChunkInvariance(t *testing.T) {
	s := mustScanner(t, "\t\r\n")
	base := "abcdefghijklmno\tpqrstuvwxyz"
	pos, ok := s.FindFirst([]byte(base))
	if !ok {
		t.Fatalf("FindFirst(%q) unexpectedly not found", base)
	}

	padded := base + "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"
	pos2, ok2 := s.FindFirst([]byte(padded))
	if !ok2 || pos2 != pos {
		t.Errorf("FindFirst(padded) = (%d, %v), want (%d, true)", pos2, ok2, pos)
	}
}

func TestMatch16(t *testing.T) {
	s := mustScanner(t, "\t\r\n")

	var noMatch [16]byte
	copy(noMatch[:], "abcdefghijklmnop")
	if got := s.Match16(&noMatch); got != 0 {
		t.Errorf("Match16(no-match) = %016b, want 0", got)
	}

	var firstMatch [16]byte
	copy(firstMatch[:], "\tbcdefghijklmnop")
	if got := s.Match16(&firstMatch); got&1 == 0 {
		t.Errorf("Match16(first-match) = %016b, want bit 0 set", got)
	}
}

func TestScannerMetadata(t *testing.T) {
	s := mustScanner(t, "\t\r\n")
	if s.Set() != "\t\r\n" {
		t.Errorf("Set() = %q, want %q", s.Set(), "\t\r\n")
	}
	if s.NeedleCount() != 3 {
		t.Errorf("NeedleCount() = %d, want 3", s.NeedleCount())
	}
}

// Scanner implements Matcher via value-receiver methods; verify the
// interface is actually satisfiable (a compile-time assertion).
var _ Matcher = Scanner{}
