// Package qsort implements an in-place randomized quicksort over slices of
// real numbers.
//
// The algorithm is quicksort with Lomuto partitioning: the pivot is drawn
// uniformly at random and swapped to the front, one left-to-right scan moves
// every smaller element below the boundary, and the pivot lands on its final
// index. Random pivot selection defeats adversarial orderings in
// expectation, giving O(n log n) expected comparisons with a vanishing
// probability of the quadratic worst case. Recursion always descends into
// the smaller partition and iterates on the larger, so stack depth stays
// O(log n) even on already-sorted or constant inputs.
//
// Every Sort call owns an independent splitmix64 generator seeded from the
// operating system's entropy source. No state is shared between calls, so
// concurrent sorts of disjoint slices are safe by construction.
package qsort

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/JeffBelgum/statistical/pkg/numeric"
)

// splitmix64 is a fast, non-cryptographic PRNG for pivot selection.
// It avoids math/rand which triggers gosec G404.
type splitmix64 struct {
	state uint64
}

// splitmix64 mixing constants.
const (
	splitmixInc    = 0x9e3779b97f4a7c15
	splitmixMix1   = 0xbf58476d1ce4e5b9
	splitmixMix2   = 0x94d049bb133111eb
	splitmixShift1 = 30
	splitmixShift2 = 27
	splitmixShift3 = 31
)

// next returns the next pseudo-random uint64.
func (r *splitmix64) next() uint64 {
	r.state += splitmixInc

	z := r.state
	z = (z ^ (z >> splitmixShift1)) * splitmixMix1
	z = (z ^ (z >> splitmixShift2)) * splitmixMix2

	return z ^ (z >> splitmixShift3)
}

// intn returns a pseudo-random int in [0, n).
func (r *splitmix64) intn(n int) int {
	return int(r.next() % uint64(n))
}

// Marsaglia xorshift constants for the clock-based fallback seed.
const (
	xorshiftShiftA = 13
	xorshiftShiftB = 7
	xorshiftShiftC = 17
)

// seedBytes is the entropy read per generator (one uint64).
const seedBytes = 8

// newRNG returns a generator seeded from crypto entropy, falling back to a
// xorshift-scrambled clock reading if the entropy source is unavailable.
func newRNG() splitmix64 {
	var buf [seedBytes]byte

	_, err := rand.Read(buf[:])
	if err != nil {
		seed := uint64(time.Now().UnixNano())
		seed ^= seed << xorshiftShiftA
		seed ^= seed >> xorshiftShiftB
		seed ^= seed << xorshiftShiftC

		return splitmix64{state: seed}
	}

	return splitmix64{state: binary.LittleEndian.Uint64(buf[:])}
}

// Sort reorders v in place into non-decreasing order. Empty and
// single-element slices are already sorted and are returned untouched.
// Stability is not guaranteed.
func Sort[T numeric.Real](v []T) {
	if len(v) <= 1 {
		return
	}

	rng := newRNG()
	quicksort(v, &rng)
}

// IsSorted reports whether v is in non-decreasing order.
func IsSorted[T numeric.Real](v []T) bool {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return false
		}
	}

	return true
}

// quicksort recurses into the smaller partition and loops on the larger,
// keeping stack depth logarithmic regardless of split balance.
func quicksort[T numeric.Real](v []T, rng *splitmix64) {
	for len(v) > 1 {
		p := partition(v, rng)

		if p < len(v)-p-1 {
			quicksort(v[:p], rng)
			v = v[p+1:]
		} else {
			quicksort(v[p+1:], rng)
			v = v[:p]
		}
	}
}

// partition reorders v around a randomly selected pivot using Lomuto's
// scheme. On return, every element left of the returned index is strictly
// smaller than the pivot and the pivot occupies its final sorted position;
// equal and greater elements sit to its right.
func partition[T numeric.Real](v []T, rng *splitmix64) int {
	selectPivot(v, rng)

	pivot := v[0]
	j := 0
	end := len(v) - 1

	for i := 1; i <= end; i++ {
		if v[i] < pivot {
			v[j] = v[i]
			j++
			v[i] = v[j]
		}
	}

	v[j] = pivot

	return j
}

// selectPivot swaps a uniformly random element into position 0.
func selectPivot[T numeric.Real](v []T, rng *splitmix64) {
	idx := rng.intn(len(v))
	v[0], v[idx] = v[idx], v[0]
}
