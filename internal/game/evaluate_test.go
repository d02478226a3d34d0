package game

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func marks(res GuessResult) []Mark {
	out := make([]Mark, len(res))
	for i, lr := range res {
		out[i] = lr.Mark
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		target string
		want   []Mark
	}{
		{
			name:   "crane vs react",
			guess:  "CRANE",
			target: "REACT",
			want:   []Mark{MarkPresent, MarkPresent, MarkCorrect, MarkAbsent, MarkPresent},
		},
		{
			name:   "llama vs alarm",
			guess:  "LLAMA",
			target: "ALARM",
			want:   []Mark{MarkAbsent, MarkCorrect, MarkCorrect, MarkPresent, MarkPresent},
		},
		{
			name:   "correct consumes before present",
			guess:  "EERIE",
			target: "THERE",
			want:   []Mark{MarkPresent, MarkAbsent, MarkPresent, MarkAbsent, MarkCorrect},
		},
		{
			name:   "extra copies are absent",
			guess:  "SPEED",
			target: "ABIDE",
			want:   []Mark{MarkAbsent, MarkAbsent, MarkPresent, MarkAbsent, MarkPresent},
		},
		{
			name:   "no overlap",
			guess:  "HELLO",
			target: "QUITA",
			want:   []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.guess, tt.target)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got := marks(res); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("marks = %v, want %v", got, tt.want)
			}
			for i, lr := range res {
				if lr.Letter != tt.guess[i:i+1] {
					t.Errorf("letter %d = %q, want %q", i, lr.Letter, tt.guess[i:i+1])
				}
			}
		})
	}
}

func TestEvaluateSelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"HELLO", "BUGGY", "A", "MISSISSIPPI"} {
		res, err := Evaluate(w, w)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", w, err)
		}
		if !res.Solved() {
			t.Errorf("Evaluate(%q, %q) = %s, want all correct", w, w, res.Pattern())
		}
	}
}

func TestEvaluateNeverOvercountsDuplicates(t *testing.T) {
	pairs := [][2]string{
		{"LLAMA", "ALARM"},
		{"EERIE", "THERE"},
		{"BOOKS", "ROBOT"},
		{"SASSY", "ASSET"},
		{"PAPAL", "APPLE"},
	}
	for _, p := range pairs {
		guess, target := p[0], p[1]
		res, err := Evaluate(guess, target)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if len(res) != len(guess) {
			t.Fatalf("len = %d, want %d", len(res), len(guess))
		}
		hits := map[string]int{}
		for _, lr := range res {
			if lr.Mark != MarkAbsent {
				hits[lr.Letter]++
			}
		}
		for letter, n := range hits {
			if have := strings.Count(target, letter); n > have {
				t.Errorf("%s vs %s: %s marked %d times, target has %d", guess, target, letter, n, have)
			}
		}
	}
}

func TestEvaluateInvalidInput(t *testing.T) {
	tests := []struct {
		guess, target string
	}{
		{"", "HELLO"},
		{"HELLO", ""},
		{"HELL", "HELLO"},
		{"HELLOS", "HELLO"},
		{"hello", "HELLO"},
		{"HE1LO", "HELLO"},
	}
	for _, tt := range tests {
		res, err := Evaluate(tt.guess, tt.target)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Evaluate(%q, %q) err = %v, want ErrInvalidInput", tt.guess, tt.target, err)
		}
		if res != nil {
			t.Errorf("Evaluate(%q, %q) returned a result alongside an error", tt.guess, tt.target)
		}
	}
}

func TestGuessResultHelpers(t *testing.T) {
	res, err := Evaluate("CRANE", "REACT")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got := res.Pattern(); got != "YYG.Y" {
		t.Errorf("Pattern = %q, want YYG.Y", got)
	}
	c, p := res.Counts()
	if c != 1 || p != 3 {
		t.Errorf("Counts = (%d, %d), want (1, 3)", c, p)
	}
	if res.Points() != 5 {
		t.Errorf("Points = %d, want 5", res.Points())
	}
	if res.AllAbsent() || res.Solved() {
		t.Error("expected neither all-absent nor solved")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  crane\n"); got != "CRANE" {
		t.Fatalf("Normalize = %q, want CRANE", got)
	}
}
