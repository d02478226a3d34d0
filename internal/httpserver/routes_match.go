// apps/go-server/internal/httpserver/routes_match.go
//
// Head-to-head mode against the bot:
//   - POST /match/new          → create a match {mode, difficulty}
//   - POST /match/{id}/round   → start the next round
//   - POST /match/{id}/word    → choose the bot's word (custom mode)
//   - POST /match/{id}/guess   → play a guess; the bot answers
//   - POST /match/{id}/reset   → zero the running tally
//   - GET  /match/{id}         → snapshot
//
// The tally is persisted per owner so it survives new matches.

package httpserver

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordgames/apps/go-server/internal/bot"
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/match"
	"github.com/robalobadob/wordgames/apps/go-server/internal/records"
)

func (s *Server) mountMatch(r chi.Router) {
	r.Route("/match", func(r chi.Router) {
		r.Post("/new", s.handleMatchNew)
		r.Get("/{id}", s.handleMatchGet)
		r.Post("/{id}/round", s.handleMatchRound)
		r.Post("/{id}/word", s.handleMatchWord)
		r.Post("/{id}/guess", s.handleMatchGuess)
		r.Post("/{id}/reset", s.handleMatchReset)
	})
}

type matchNewReq struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleMatchNew(w http.ResponseWriter, r *http.Request) {
	var req matchNewReq
	if err := decode(r, &req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}
	mode, err := match.ParseMode(req.Mode)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	difficulty := s.cfg.Difficulty()
	if req.Difficulty != "" {
		if difficulty, err = bot.ParseDifficulty(req.Difficulty); err != nil {
			writeErr(w, r, fmt.Errorf("%w: %v", game.ErrInvalidInput, err))
			return
		}
	}

	owner := s.owner(w, r)
	tally, err := s.rec.LoadTally(r.Context(), owner)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("load tally")
	}

	m, err := match.New(records.NewID(), match.Config{
		Mode:       mode,
		Difficulty: difficulty,
		MaxGuesses: s.cfg.MaxGuesses,
		Answers:    s.lex.Answers(),
		Vocabulary: s.lex.Allowed(),
		Dictionary: s.dict,
		Random:     s.rng,
		Tally:      match.Tally(tally),
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.matches.Save(r.Context(), m.ID, m); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, m.Snapshot())
}

func (s *Server) handleMatchGet(w http.ResponseWriter, r *http.Request) {
	var snap match.Snapshot
	err := s.matches.Update(r.Context(), chi.URLParam(r, "id"), func(m *match.Match) error {
		snap = m.Snapshot()
		return nil
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) handleMatchRound(w http.ResponseWriter, r *http.Request) {
	var snap match.Snapshot
	err := s.matches.Update(r.Context(), chi.URLParam(r, "id"), func(m *match.Match) error {
		if err := m.BeginRound(); err != nil {
			return err
		}
		snap = m.Snapshot()
		return nil
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, snap)
}

type matchWordReq struct {
	Word string `json:"word"`
}

type matchWordRes struct {
	Accepted bool           `json:"accepted"`
	Match    match.Snapshot `json:"match"`
}

func (s *Server) handleMatchWord(w http.ResponseWriter, r *http.Request) {
	var req matchWordReq
	if err := decode(r, &req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var res matchWordRes
	err := s.matches.Update(r.Context(), chi.URLParam(r, "id"), func(m *match.Match) error {
		ok, err := m.SubmitWord(r.Context(), req.Word)
		if err != nil {
			return err
		}
		res = matchWordRes{Accepted: ok, Match: m.Snapshot()}
		return nil
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, res)
}

type matchGuessReq struct {
	Guess string `json:"guess"`
}

type matchGuessRes struct {
	match.Turn
	Match match.Snapshot `json:"match"`
}

func (s *Server) handleMatchGuess(w http.ResponseWriter, r *http.Request) {
	var req matchGuessReq
	if err := decode(r, &req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}
	id := chi.URLParam(r, "id")
	var res matchGuessRes
	var round int
	err := s.matches.Update(r.Context(), id, func(m *match.Match) error {
		turn, err := m.PlayerGuess(r.Context(), req.Guess)
		if err != nil {
			return err
		}
		res = matchGuessRes{Turn: turn, Match: m.Snapshot()}
		round = m.Round
		return nil
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if res.RoundOver {
		s.recordRound(w, r, fmt.Sprintf("%s-r%d", id, round), res)
	}
	writeJSON(w, res)
}

// recordRound persists the tally and a history row for a finished round.
func (s *Server) recordRound(w http.ResponseWriter, r *http.Request, roundID string, res matchGuessRes) {
	owner := s.owner(w, r)
	logger := hlog.FromRequest(r)
	if err := s.rec.SaveTally(r.Context(), owner, records.Tally(res.Tally)); err != nil {
		logger.Warn().Err(err).Msg("save tally")
	}
	status := "lost"
	switch res.Winner {
	case match.SidePlayer:
		status = "won"
	case match.SideTie:
		status = "tie"
	}
	p := res.Match.Player
	progress := records.Progress{Status: status, Finished: true}
	if p != nil {
		progress.Guesses, progress.Score = len(p.Guesses), p.Score
	}
	if err := s.rec.StartGame(r.Context(), roundID, records.ModeMatch, owner); err != nil {
		logger.Warn().Err(err).Str("gameId", roundID).Msg("insert round row")
		return
	}
	if err := s.rec.RecordProgress(r.Context(), roundID, records.ModeMatch, owner, progress); err != nil {
		logger.Warn().Err(err).Str("gameId", roundID).Msg("record round")
	}
}

func (s *Server) handleMatchReset(w http.ResponseWriter, r *http.Request) {
	var snap match.Snapshot
	err := s.matches.Update(r.Context(), chi.URLParam(r, "id"), func(m *match.Match) error {
		if err := m.ResetTally(); err != nil {
			return err
		}
		snap = m.Snapshot()
		return nil
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.rec.SaveTally(r.Context(), s.owner(w, r), records.Tally{}); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("reset tally")
	}
	writeJSON(w, snap)
}
