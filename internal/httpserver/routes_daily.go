// apps/go-server/internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start a daily game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's daily game
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each player can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on win.
// Deterministic word selection is based on date + salt.

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordgames/apps/go-server/internal/daily"
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/records"
	"github.com/robalobadob/wordgames/apps/go-server/internal/store"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

// dailySession holds transient state for an in-progress daily game.
type dailySession struct {
	UserID    string
	Date      string
	WordIndex int
	Start     time.Time
	Game      *game.Game
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Post("/guess", s.handleDailyGuess)
		r.Get("/leaderboard", s.handleDailyLeaderboard)
	})
}

// today returns today's puzzle.
func (s *Server) today() daily.Puzzle {
	return daily.For(s.now(), s.cfg.DailySalt, s.lex.Answers())
}

// dailyPlayer returns the ID results are stored under.
func (s *Server) dailyPlayer(w http.ResponseWriter, r *http.Request) (records.Owner, string) {
	o := s.owner(w, r)
	if o.UserID != "" {
		return o, o.UserID
	}
	return o, o.AnonID
}

type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// handleDailyNew creates or reuses today's session.
//   - A stored result for today → Played=true.
//   - Otherwise the in-memory session's game ID.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	owner, uid := s.dailyPlayer(w, r)
	p := s.today()
	if p.Answer == "" {
		httpError(w, http.StatusServiceUnavailable, "no_answers")
		return
	}

	played, err := s.day.AlreadyPlayed(r.Context(), uid, p.Date)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("daily already played")
	}
	if played {
		writeJSON(w, dailyNewRes{Date: p.Date, Played: true})
		return
	}

	key := uid + "|" + p.Date
	if sess, err := s.dailies.Get(r.Context(), key); err == nil {
		writeJSON(w, dailyNewRes{GameID: sess.Game.ID, Date: p.Date})
		return
	}

	g, err := game.New(p.Answer, s.cfg.MaxGuesses)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	sess := &dailySession{UserID: uid, Date: p.Date, WordIndex: p.Index, Start: s.now(), Game: g}
	if err := s.dailies.Save(r.Context(), key, sess); err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.rec.StartGame(r.Context(), g.ID, records.ModeDaily, owner); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("insert daily row")
	}
	writeJSON(w, dailyNewRes{GameID: g.ID, Date: p.Date})
}

type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

type dailyGuessRes struct {
	Result  game.GuessResult `json:"result"`
	State   string           `json:"state"` // in_progress | won | lost | locked
	Guesses int              `json:"guesses"`
}

var errNoDailySession = errors.New("no session")

// handleDailyGuess validates and applies a guess for today's session and
// stores the result on a win.
func (s *Server) handleDailyGuess(w http.ResponseWriter, r *http.Request) {
	owner, uid := s.dailyPlayer(w, r)

	var req dailyGuessReq
	if err := decode(r, &req); err != nil || req.GameID == "" {
		httpError(w, http.StatusBadRequest, "bad request")
		return
	}

	p := s.today()
	var res dailyGuessRes
	var result *daily.Result
	var progress records.Progress
	err := s.dailies.Update(r.Context(), uid+"|"+p.Date, func(sess *dailySession) error {
		g := sess.Game
		if g.ID != req.GameID {
			return errNoDailySession
		}
		if g.Finished {
			res = dailyGuessRes{Result: game.GuessResult{}, State: "locked", Guesses: len(g.Guesses)}
			return nil
		}
		guess, err := words.IsValidWord(r.Context(), s.dict, req.Word, g.Cols)
		if err != nil {
			return err
		}
		marks, state, err := g.ApplyGuess(guess)
		if err != nil {
			return err
		}
		res = dailyGuessRes{Result: marks, State: "in_progress", Guesses: len(g.Guesses)}
		if g.Finished {
			res.State = string(state)
			progress = records.Progress{Guesses: len(g.Guesses), Score: g.Score(), Status: string(state), Finished: true}
		}
		if g.Won {
			result = &daily.Result{
				UserID:    uid,
				Date:      sess.Date,
				WordIndex: sess.WordIndex,
				Guesses:   len(g.Guesses),
				ElapsedMs: int(s.now().Sub(sess.Start).Milliseconds()),
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, errNoDailySession):
		httpError(w, http.StatusConflict, "no session")
		return
	case err != nil:
		writeErr(w, r, err)
		return
	}

	if result != nil {
		if err := s.day.InsertResult(r.Context(), *result); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("insert daily result")
		}
	}
	if progress.Finished {
		if err := s.rec.RecordProgress(r.Context(), req.GameID, records.ModeDaily, owner, progress); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("record daily")
		}
	}
	writeJSON(w, res)
}

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleDailyLeaderboard returns the leaderboard for ?date= (default today).
func (s *Server) handleDailyLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.today().Date
	}
	rows, err := s.day.Leaderboard(r.Context(), date, 20)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("leaderboard")
		httpError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, lbRes{Date: date, Top: rows})
}
