package bot

import (
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
)

const (
	// unknownMax marks a letter whose maximum occurrence count is not known yet.
	unknownMax = -1
	// maxLength bounds the word length so wrong positions fit one uint64 mask.
	maxLength = 64
)

// Knowledge accumulates what the evaluator has revealed about a target
// during one round. It is created empty at round start, changed only by
// Update, and reset between rounds.
type Knowledge struct {
	Length int

	// Confirmed holds the letter proven at each position; 0 means unknown.
	Confirmed []byte

	// Present holds letters known to occur somewhere that are not yet fully
	// placed; Absent holds letters known not to occur at all.
	Present [26]bool
	Absent  [26]bool

	// MinCount is the highest correct+present count seen for a letter in a
	// single guess. MaxCount is exact once a guess over-supplied the letter;
	// unknownMax otherwise.
	MinCount [26]int
	MaxCount [26]int

	// Wrong has bit i set when the letter is proven not to sit at position i.
	Wrong [26]uint64
}

// NewKnowledge returns empty knowledge for words of the given length.
func NewKnowledge(length int) Knowledge {
	var k Knowledge
	k.Length = length
	k.Reset()
	return k
}

// Reset forgets everything learned so far, keeping the word length.
func (k *Knowledge) Reset() {
	length := k.Length
	*k = Knowledge{Length: length, Confirmed: make([]byte, length)}
	for i := range k.MaxCount {
		k.MaxCount[i] = unknownMax
	}
}

// Update integrates one evaluated guess. Rules apply in this order so that
// repeated letters resolve the way the evaluator consumed them:
//  1. correct positions confirm their letter and raise its minimum count;
//  2. a confirmed letter whose placements reach its minimum leaves Present;
//  3. present positions add the letter to Present and mark the position wrong;
//  4. absent positions blacklist the letter only if it scored nothing in this
//     guess and is not already known present or confirmed;
//  5. minimum/maximum counts are refreshed from this guess.
//
// Malformed input is ignored.
func (k *Knowledge) Update(guess string, result game.GuessResult) {
	if k.Length == 0 {
		k.Length = len(guess)
		k.Reset()
	}
	if k.Length > maxLength || len(result) != k.Length || game.Validate(guess, k.Length) != nil {
		return
	}

	var seen, scored [26]int
	for i := 0; i < len(guess); i++ {
		l := letterIdx(guess[i])
		seen[l]++
		if result[i].Mark == game.MarkCorrect || result[i].Mark == game.MarkPresent {
			scored[l]++
		}
	}

	for i, lr := range result {
		if lr.Mark != game.MarkCorrect {
			continue
		}
		l := letterIdx(guess[i])
		k.Confirmed[i] = guess[i]
		if scored[l] > k.MinCount[l] {
			k.MinCount[l] = scored[l]
		}
	}

	for i, lr := range result {
		if lr.Mark != game.MarkCorrect {
			continue
		}
		l := letterIdx(guess[i])
		if k.placed(l) >= k.MinCount[l] {
			k.Present[l] = false
		}
	}

	for i, lr := range result {
		if lr.Mark != game.MarkPresent {
			continue
		}
		l := letterIdx(guess[i])
		k.Present[l] = true
		k.Wrong[l] |= 1 << uint(i)
	}

	for i, lr := range result {
		if lr.Mark != game.MarkAbsent {
			continue
		}
		l := letterIdx(guess[i])
		switch {
		case scored[l] > 0:
			// The letter exists, just not here (it would be correct otherwise).
			k.Wrong[l] |= 1 << uint(i)
		case !k.Present[l] && k.placed(l) == 0:
			k.Absent[l] = true
		}
	}

	for l := 0; l < 26; l++ {
		if seen[l] == 0 {
			continue
		}
		if scored[l] > k.MinCount[l] {
			k.MinCount[l] = scored[l]
		}
		if seen[l] > scored[l] {
			k.MaxCount[l] = scored[l]
		}
	}
}

// Allows reports whether word is consistent with everything known.
func (k *Knowledge) Allows(word string) bool {
	if len(word) != k.Length || game.Validate(word, k.Length) != nil {
		return false
	}
	var counts [26]int
	for i := 0; i < len(word); i++ {
		l := letterIdx(word[i])
		if c := k.Confirmed[i]; c != 0 && c != word[i] {
			return false
		}
		if k.wrongAt(l, i) {
			return false
		}
		counts[l]++
	}
	for l := 0; l < 26; l++ {
		if counts[l] < k.required(l) {
			return false
		}
		if m := k.maxAllowed(l); m != unknownMax && counts[l] > m {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (k Knowledge) Clone() Knowledge {
	k.Confirmed = append([]byte(nil), k.Confirmed...)
	return k
}

// placed counts confirmed positions holding letter l.
func (k *Knowledge) placed(l int) int {
	n := 0
	for _, c := range k.Confirmed {
		if c != 0 && letterIdx(c) == l {
			n++
		}
	}
	return n
}

// required is the minimum number of copies a consistent word must hold.
func (k *Knowledge) required(l int) int {
	if k.Present[l] && k.MinCount[l] < 1 {
		return 1
	}
	return k.MinCount[l]
}

// maxAllowed is the effective maximum count, with absent letters capped at zero.
func (k *Knowledge) maxAllowed(l int) int {
	if k.Absent[l] {
		return 0
	}
	return k.MaxCount[l]
}

func (k *Knowledge) wrongAt(l, pos int) bool {
	return k.Wrong[l]&(1<<uint(pos)) != 0
}

func letterIdx(c byte) int { return int(c - 'A') }
