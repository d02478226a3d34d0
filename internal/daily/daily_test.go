package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/wordgames/apps/go-server/assets"
	"github.com/robalobadob/wordgames/apps/go-server/internal/records"
)

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	a := WordIndex(day, "salt", 31)
	b := WordIndex(day.Add(-23*time.Hour), "salt", 31)
	if a != b {
		t.Fatalf("same UTC day gave %d and %d", a, b)
	}
	if a < 0 || a >= 31 {
		t.Fatalf("index %d out of range", a)
	}
	if WordIndex(day, "salt", 0) != 0 {
		t.Fatal("empty list must give index 0")
	}
}

func TestForPicksAnswer(t *testing.T) {
	answers := []string{"HELLO", "WORLD", "QUITE"}
	day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	p := For(day, "salt", answers)
	if p.Date != "2024-03-01" {
		t.Fatalf("Date = %s", p.Date)
	}
	if p.Answer != answers[p.Index] {
		t.Fatalf("Answer %s does not match index %d", p.Answer, p.Index)
	}
	if empty := For(day, "salt", nil); empty.Answer != "" {
		t.Fatal("no answers means no puzzle word")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := records.Open(ctx, records.DriverPureGo, filepath.Join(t.TempDir(), "daily.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := records.Migrate(ctx, db, assets.Migrations()); err != nil {
		t.Fatal(err)
	}

	s := NewStore(db)
	played, err := s.AlreadyPlayed(ctx, "u1", "2024-03-01")
	if err != nil || played {
		t.Fatalf("AlreadyPlayed = %v, %v", played, err)
	}
	for _, r := range []Result{
		{UserID: "u1", Date: "2024-03-01", Guesses: 4, ElapsedMs: 9000},
		{UserID: "u2", Date: "2024-03-01", Guesses: 3, ElapsedMs: 5000},
		{UserID: "u1", Date: "2024-03-01", Guesses: 1, ElapsedMs: 1},
		{UserID: "u3", Date: "2024-03-02", Guesses: 2, ElapsedMs: 100},
	} {
		if err := s.InsertResult(ctx, r); err != nil {
			t.Fatal(err)
		}
	}
	if played, _ := s.AlreadyPlayed(ctx, "u1", "2024-03-01"); !played {
		t.Fatal("u1 played on 2024-03-01")
	}

	lb, err := s.Leaderboard(ctx, "2024-03-01", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(lb) != 2 || lb[0].UserID != "u2" || lb[1].UserID != "u1" || lb[1].Guesses != 4 {
		t.Fatalf("Leaderboard = %+v", lb)
	}
}
