// apps/go-server/internal/httpserver/routes_absurdle.go
//
// Adversarial mode: the host never commits to a word and answers each guess
// with the largest all-absent group of candidates it can keep, or else the
// least revealing single candidate.
//   - POST /absurdle/new   → start a round over the answers list
//   - POST /absurdle/guess → narrow the pool

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordgames/apps/go-server/internal/absurdle"
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/records"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

func (s *Server) mountAbsurdle(r chi.Router) {
	r.Route("/absurdle", func(r chi.Router) {
		r.Post("/new", s.handleAbsurdleNew)
		r.Post("/guess", s.handleAbsurdleGuess)
	})
}

type absurdleNewRes struct {
	GameID     string `json:"gameId"`
	Candidates int    `json:"candidates"`
	MaxGuesses int    `json:"maxGuesses"`
	WordLength int    `json:"wordLength"`
}

func (s *Server) handleAbsurdleNew(w http.ResponseWriter, r *http.Request) {
	sess := absurdle.NewSession(records.NewID(), s.lex.Answers(), s.cfg.MaxGuesses)
	if err := s.absurdles.Save(r.Context(), sess.ID, sess); err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.rec.StartGame(r.Context(), sess.ID, records.ModeAbsurdle, s.owner(w, r)); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", sess.ID).Msg("insert game row")
	}
	writeJSON(w, absurdleNewRes{
		GameID:     sess.ID,
		Candidates: len(sess.Pool),
		MaxGuesses: sess.MaxGuesses,
		WordLength: sess.WordLength,
	})
}

type absurdleGuessRes struct {
	absurdle.Turn
	GuessesRemaining int    `json:"guessesRemaining"`
	TargetWord       string `json:"targetWord,omitempty"`
}

func (s *Server) handleAbsurdleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(r, &req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res absurdleGuessRes
	var progress records.Progress
	err := s.absurdles.Update(r.Context(), req.GameID, func(sess *absurdle.Session) error {
		if sess.Finished {
			return game.ErrGameFinished
		}
		guess, err := words.IsValidWord(r.Context(), s.dict, req.Guess, sess.WordLength)
		if err != nil {
			return err
		}
		turn, err := sess.Guess(guess)
		if err != nil {
			return err
		}
		res = absurdleGuessRes{Turn: turn, GuessesRemaining: sess.MaxGuesses - len(sess.Guesses)}
		if t, ok := sess.Target(); ok && sess.Finished {
			res.TargetWord = t
		}
		progress = records.Progress{Guesses: len(sess.Guesses), Status: string(turn.State), Finished: sess.Finished}
		return nil
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}

	if err := s.rec.RecordProgress(r.Context(), req.GameID, records.ModeAbsurdle, s.owner(w, r), progress); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", req.GameID).Msg("record progress")
	}
	writeJSON(w, res)
}
