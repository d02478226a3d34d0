package game

import (
	"errors"
	"testing"
)

func TestIsRoundOver(t *testing.T) {
	tests := []struct {
		name    string
		guesses int
		won     bool
		max     int
		want    bool
	}{
		{"fresh", 0, false, 6, false},
		{"midway", 3, false, 6, false},
		{"won early", 2, true, 6, true},
		{"budget spent", 6, false, 6, true},
		{"over budget", 7, false, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guesses := make([]string, tt.guesses)
			if got := IsRoundOver(guesses, tt.won, tt.max); got != tt.want {
				t.Fatalf("IsRoundOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	// CRANE vs REACT: 1 correct + 3 present = 5; REACT itself = 10.
	if got := Score([]string{"CRANE", "REACT"}, "REACT"); got != 15 {
		t.Fatalf("Score = %d, want 15", got)
	}
	if got := Score([]string{"NOPE"}, "REACT"); got != 0 {
		t.Fatalf("Score with malformed guess = %d, want 0", got)
	}
	if got := Score(nil, "REACT"); got != 0 {
		t.Fatalf("Score(nil) = %d, want 0", got)
	}
}

func TestDecideWinner(t *testing.T) {
	tests := []struct {
		name          string
		first, second Outcome
		want          Winner
	}{
		{"only first won", Outcome{Won: true, Attempts: 6, Score: 1}, Outcome{Attempts: 6, Score: 40}, WinnerFirst},
		{"only second won", Outcome{Attempts: 6}, Outcome{Won: true, Attempts: 5}, WinnerSecond},
		{"both won, fewer attempts", Outcome{Won: true, Attempts: 3, Score: 10}, Outcome{Won: true, Attempts: 4, Score: 30}, WinnerFirst},
		{"both won, same attempts, score", Outcome{Won: true, Attempts: 4, Score: 18}, Outcome{Won: true, Attempts: 4, Score: 22}, WinnerSecond},
		{"both failed, score", Outcome{Attempts: 6, Score: 25}, Outcome{Attempts: 6, Score: 20}, WinnerFirst},
		{"both failed, tie", Outcome{Attempts: 6, Score: 20}, Outcome{Attempts: 6, Score: 20}, WinnerTie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideWinner(tt.first, tt.second); got != tt.want {
				t.Fatalf("DecideWinner = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGameLifecycle(t *testing.T) {
	g, err := New("react", 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Answer != "REACT" || g.Cols != 5 || g.Rows != 3 {
		t.Fatalf("unexpected game %+v", g)
	}

	if _, _, err := g.ApplyGuess("toolong"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(g.Guesses) != 0 {
		t.Fatal("invalid guess must not be recorded")
	}

	res, state, err := g.ApplyGuess("crane")
	if err != nil {
		t.Fatalf("ApplyGuess: %v", err)
	}
	if state != StatePlaying || res.Pattern() != "YYG.Y" {
		t.Fatalf("state = %s pattern = %s", state, res.Pattern())
	}
	if g.Remaining() != 2 {
		t.Fatalf("Remaining = %d, want 2", g.Remaining())
	}

	_, state, err = g.ApplyGuess("REACT")
	if err != nil {
		t.Fatalf("ApplyGuess: %v", err)
	}
	if state != StateWon || !g.Finished || !g.Won {
		t.Fatalf("expected win, got state %s", state)
	}
	if _, _, err := g.ApplyGuess("CRANE"); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("err = %v, want ErrGameFinished", err)
	}
	if g.Score() != 15 {
		t.Fatalf("Score = %d, want 15", g.Score())
	}
}

func TestGameLoss(t *testing.T) {
	g, err := New("REACT", 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, w := range []string{"HELLO", "WORLD"} {
		if _, _, err := g.ApplyGuess(w); err != nil {
			t.Fatalf("ApplyGuess(%s): %v", w, err)
		}
	}
	if g.State() != StateLost {
		t.Fatalf("state = %s, want lost", g.State())
	}
	if g.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", g.Remaining())
	}
}

func TestNewRejectsBadAnswer(t *testing.T) {
	if _, err := New("r3act", 6); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
