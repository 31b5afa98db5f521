package kmer

import (
	"errors"
	"fmt"
	"sort"
)

// MaxK is the largest supported k-mer length. Each base takes two bits, so
// k ≤ 31 keeps every rolling index and 4^k inside a 64-bit int.
const MaxK = 31

// bitsPerBase is the width of one encoded base; ACGT fits in two bits.
const bitsPerBase = 2

// invalidCode marks bytes outside the ACGT alphabet in the lookup table.
const invalidCode = -1

var (
	// ErrInvalidK indicates a k-mer length outside [1, MaxK].
	ErrInvalidK = errors.New("kmer: k must be in [1, 31]")

	// ErrInvalidBase indicates a byte outside the ACGT alphabet where a
	// valid base is required (Index rejects; Indices skips instead).
	ErrInvalidBase = errors.New("kmer: byte outside ACGT alphabet")

	// ErrShortSequence indicates a sequence shorter than the window size k.
	ErrShortSequence = errors.New("kmer: sequence shorter than k")
)

// baseCode maps sequence bytes to 2-bit base codes; invalidCode marks
// everything outside ACGT/acgt, including IUPAC ambiguity codes and gaps.
var baseCode [256]int8

func init() {
	for i := range baseCode {
		baseCode[i] = invalidCode
	}
	baseCode['A'], baseCode['a'] = 0, 0
	baseCode['C'], baseCode['c'] = 1, 1
	baseCode['G'], baseCode['g'] = 2, 2
	baseCode['T'], baseCode['t'] = 3, 3
}

// NumKmers returns 4^k, the number of distinct k-mers and therefore the row
// count of a model matrix built for word length k.
// Errors: ErrInvalidK outside [1, MaxK].
// Complexity: O(1).
func NumKmers(k int) (int, error) {
	if k < 1 || k > MaxK {
		return 0, fmt.Errorf("NumKmers: k=%d: %w", k, ErrInvalidK)
	}

	return 1 << (bitsPerBase * k), nil
}

// Index encodes one k-mer into its base-4 index, treating the whole string
// as a single window (k = len(kmer)).
// Errors: ErrInvalidK for an empty or over-long input, ErrInvalidBase
// (wrapped with byte and position) on the first non-ACGT byte.
// Complexity: O(k).
func Index(kmer string) (int, error) {
	k := len(kmer)
	if k < 1 || k > MaxK {
		return 0, fmt.Errorf("Index: k=%d: %w", k, ErrInvalidK)
	}

	idx := 0
	for i := 0; i < k; i++ {
		code := baseCode[kmer[i]]
		if code == invalidCode {
			return 0, fmt.Errorf("Index: byte %q at %d: %w", kmer[i], i, ErrInvalidBase)
		}
		idx = idx<<bitsPerBase | int(code)
	}

	return idx, nil
}

// Indices scans seq once and returns the base-4 index of every length-k
// window, in order of appearance. Windows containing a non-ACGT byte are
// dropped: the scan restarts after the offending byte, so exactly the
// windows overlapping it are skipped. Repeated k-mers are reported each
// time they occur; use Unique for presence semantics.
//
// A sequence whose windows are all invalid yields an empty, error-free
// result — scanning succeeded, nothing was encodable.
//
// Errors: ErrInvalidK outside [1, MaxK]; ErrShortSequence when
// len(seq) < k.
// Complexity: O(len(seq)) time, O(len(seq)) result space.
func Indices(seq string, k int) ([]int, error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("Indices: k=%d: %w", k, ErrInvalidK)
	}
	if len(seq) < k {
		return nil, fmt.Errorf("Indices: len(seq)=%d, k=%d: %w", len(seq), k, ErrShortSequence)
	}

	// Rolling 2-bit encoding: shift in each base code and mask to k bases.
	mask := 1<<(bitsPerBase*k) - 1
	out := make([]int, 0, len(seq)-k+1)

	idx := 0   // rolling window index
	valid := 0 // count of consecutive valid bases ending here
	for i := 0; i < len(seq); i++ {
		code := baseCode[seq[i]]
		if code == invalidCode {
			// Restart: every window through this byte is unencodable.
			idx, valid = 0, 0

			continue
		}
		idx = (idx<<bitsPerBase | int(code)) & mask
		valid++
		if valid >= k {
			out = append(out, idx)
		}
	}

	return out, nil
}

// Unique returns a sorted copy of indices with duplicates removed; the
// input is left untouched. Use it to switch classification from
// per-occurrence to presence/absence weighting.
// Complexity: O(n log n) time, O(n) space.
func Unique(indices []int) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	sort.Ints(out)

	// In-place compaction of the sorted copy.
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}

	return out[:n]
}
