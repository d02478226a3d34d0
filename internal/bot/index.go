package bot

import (
	"github.com/bits-and-blooms/bitset"
)

// index answers "which words satisfy this knowledge" with set algebra instead
// of rescanning every word per guess.
//
//	at[i][l]      words whose position i holds letter l
//	atLeast[l][n] words holding n+1 or more copies of letter l
type index struct {
	words   []string
	all     *bitset.BitSet
	at      [][26]*bitset.BitSet
	atLeast [26][]*bitset.BitSet
}

// newIndex builds an index over words, all of which must be uppercase A–Z
// of the given length.
func newIndex(words []string, length int) *index {
	n := uint(len(words))
	ix := &index{
		words: words,
		all:   bitset.New(n),
		at:    make([][26]*bitset.BitSet, length),
	}
	for i := range ix.at {
		for l := range ix.at[i] {
			ix.at[i][l] = bitset.New(n)
		}
	}
	for w, word := range words {
		ix.all.Set(uint(w))
		var counts [26]int
		for i := 0; i < len(word); i++ {
			l := letterIdx(word[i])
			ix.at[i][l].Set(uint(w))
			counts[l]++
		}
		for l, c := range counts {
			for len(ix.atLeast[l]) < c {
				ix.atLeast[l] = append(ix.atLeast[l], bitset.New(n))
			}
			for k := 0; k < c; k++ {
				ix.atLeast[l][k].Set(uint(w))
			}
		}
	}
	return ix
}

// match returns the indexed words consistent with k, in index order.
func (ix *index) match(k *Knowledge) []string {
	set := ix.all.Clone()
	for i, c := range k.Confirmed {
		if c != 0 && i < len(ix.at) {
			set.InPlaceIntersection(ix.at[i][letterIdx(c)])
		}
	}
	for l := 0; l < 26; l++ {
		for i := range ix.at {
			if k.wrongAt(l, i) {
				set.InPlaceDifference(ix.at[i][l])
			}
		}
		if need := k.required(l); need > 0 {
			if need > len(ix.atLeast[l]) {
				return nil
			}
			set.InPlaceIntersection(ix.atLeast[l][need-1])
		}
		if m := k.maxAllowed(l); m != unknownMax && m < len(ix.atLeast[l]) {
			set.InPlaceDifference(ix.atLeast[l][m])
		}
	}

	out := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, ix.words[i])
	}
	return out
}
