package coloring

import (
	"fmt"
	"math/bits"
	"strings"
)

// paletteSet is a bitset over the color domain [0, k). It backs the
// per-region candidate domains during search. Operations that shrink the
// set return a new value so the trail can keep the previous state for
// undo.
type paletteSet struct {
	k     int
	words []uint64
}

// fullPalette returns the set containing every color in [0, k).
func fullPalette(k int) paletteSet {
	w := (k + 63) / 64
	p := paletteSet{k: k, words: make([]uint64, w)}
	for c := 0; c < k; c++ {
		p.words[c/64] |= 1 << uint(c%64)
	}
	return p
}

// singletonPalette returns the set containing only color c.
func singletonPalette(k, c int) paletteSet {
	w := (k + 63) / 64
	p := paletteSet{k: k, words: make([]uint64, w)}
	if c >= 0 && c < k {
		p.words[c/64] |= 1 << uint(c%64)
	}
	return p
}

func (p paletteSet) clone() paletteSet {
	words := make([]uint64, len(p.words))
	copy(words, p.words)
	return paletteSet{k: p.k, words: words}
}

func (p paletteSet) has(c int) bool {
	if c < 0 || c >= p.k {
		return false
	}
	return (p.words[c/64]>>uint(c%64))&1 == 1
}

// remove returns a new set without color c. Removing an absent color
// returns an equal set.
func (p paletteSet) remove(c int) paletteSet {
	if c < 0 || c >= p.k {
		return p.clone()
	}
	np := p.clone()
	np.words[c/64] &^= 1 << uint(c%64)
	return np
}

func (p paletteSet) count() int {
	cnt := 0
	for _, w := range p.words {
		cnt += bits.OnesCount64(w)
	}
	return cnt
}

// min returns the smallest color in the set, or -1 if the set is empty.
func (p paletteSet) min() int {
	for i, w := range p.words {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
	}
	return -1
}

// iterate calls f for each color in ascending order.
func (p paletteSet) iterate(f func(c int)) {
	for i, w := range p.words {
		for w != 0 {
			low := w & -w
			f(i*64 + bits.TrailingZeros64(w))
			w &^= low
		}
	}
}

// values returns the colors in ascending order.
func (p paletteSet) values() []int {
	vals := make([]int, 0, p.count())
	p.iterate(func(c int) { vals = append(vals, c) })
	return vals
}

// String renders the set as "{0,2,4}" for debugging.
func (p paletteSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	p.iterate(func(c int) {
		if !first {
			b.WriteString(",")
		}
		first = false
		fmt.Fprintf(&b, "%d", c)
	})
	b.WriteString("}")
	return b.String()
}
