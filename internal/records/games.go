package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Mode names recorded in games.mode.
const (
	ModeClassic  = "classic"
	ModeAbsurdle = "absurdle"
	ModeMatch    = "match"
	ModeDaily    = "daily"
)

// Owner identifies who played a round: a signed-in user or an anonymous
// browser. Exactly one field is set.
type Owner struct {
	UserID string
	AnonID string
}

// Key is the value used for per-owner rows that do not distinguish the two.
func (o Owner) Key() string {
	if o.UserID != "" {
		return "user:" + o.UserID
	}
	return "anon:" + o.AnonID
}

func (o Owner) clause() (string, any) {
	if o.UserID != "" {
		return `user_id=?`, o.UserID
	}
	return `anonymous_id=?`, o.AnonID
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// StartGame inserts the history row for a new round.
func (s *Store) StartGame(ctx context.Context, id, mode string, o Owner) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO games (id, mode, user_id, anonymous_id, started_at, status, guesses)
	                                 VALUES (?,?,?,?,?,'playing',0)`,
		id, mode, nullable(o.UserID), nullable(o.AnonID), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

// Progress is the state of a round after a guess.
type Progress struct {
	Guesses  int
	Score    int
	Status   string // playing | won | lost
	Finished bool
}

// RecordProgress stores the guess count and, once the round is finished,
// its final status. Finishing a classic or daily round bumps the signed-in
// user's stats. Everything runs in one transaction.
func (s *Store) RecordProgress(ctx context.Context, id, mode string, o Owner, p Progress) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	clause, arg := o.clause()
	if _, err = tx.ExecContext(ctx, `UPDATE games SET guesses=?, score=? WHERE id=? AND `+clause,
		p.Guesses, p.Score, id, arg); err != nil {
		return fmt.Errorf("update guesses: %w", err)
	}
	if p.Finished {
		if _, err = tx.ExecContext(ctx, `UPDATE games SET status=?, finished_at=? WHERE id=? AND `+clause,
			p.Status, time.Now().UTC().Format(time.RFC3339), id, arg); err != nil {
			return fmt.Errorf("finish game: %w", err)
		}
		if o.UserID != "" && (mode == ModeClassic || mode == ModeDaily) {
			if err = bumpStats(ctx, tx, o.UserID, p.Status == "won"); err != nil {
				return fmt.Errorf("bump stats: %w", err)
			}
		}
	}
	return tx.Commit()
}

// ClaimAnonGames transfers anonymous history to a user account after auth.
func (s *Store) ClaimAnonGames(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE games SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID); err != nil {
		return fmt.Errorf("claim anon games: %w", err)
	}
	return nil
}

// GameRow is one line of a user's history.
type GameRow struct {
	ID         string `json:"id"`
	Mode       string `json:"mode"`
	Status     string `json:"status"`
	Guesses    int    `json:"guesses"`
	Score      int    `json:"score"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// RecentGames lists a user's latest rounds, newest first.
func (s *Store) RecentGames(ctx context.Context, userID string, limit int) ([]GameRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, mode, status, guesses, score, started_at, COALESCE(finished_at,'')
	                                     FROM games WHERE user_id=? ORDER BY started_at DESC, rowid DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GameRow{}
	for rows.Next() {
		var gr GameRow
		if err := rows.Scan(&gr.ID, &gr.Mode, &gr.Status, &gr.Guesses, &gr.Score, &gr.StartedAt, &gr.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, gr)
	}
	return out, rows.Err()
}

// Tally is the persisted head-to-head score of one owner.
type Tally struct {
	Player int `json:"player"`
	Bot    int `json:"bot"`
	Rounds int `json:"rounds"`
}

// LoadTally returns the owner's tally, zero if none is stored.
func (s *Store) LoadTally(ctx context.Context, o Owner) (Tally, error) {
	var t Tally
	err := s.db.QueryRowContext(ctx, `SELECT player, bot, rounds FROM match_tallies WHERE owner_id=?`, o.Key()).
		Scan(&t.Player, &t.Bot, &t.Rounds)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Tally{}, fmt.Errorf("load tally: %w", err)
	}
	return t, nil
}

// SaveTally upserts the owner's tally.
func (s *Store) SaveTally(ctx context.Context, o Owner, t Tally) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO match_tallies (owner_id, player, bot, rounds, updated_at)
	                                 VALUES (?,?,?,?,?)
	                                 ON CONFLICT(owner_id) DO UPDATE SET
	                                   player=excluded.player, bot=excluded.bot,
	                                   rounds=excluded.rounds, updated_at=excluded.updated_at`,
		o.Key(), t.Player, t.Bot, t.Rounds, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save tally: %w", err)
	}
	return nil
}
