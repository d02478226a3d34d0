// apps/go-server/internal/httpserver/routes_game.go
//
// Classic mode:
//   - POST /game/new   → start a round (random answer unless one is given)
//   - POST /game/guess → apply a guess
//   - GET  /game/{id}  → current board
//
// The answer is only revealed once the round is over.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/records"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

func (s *Server) mountClassic(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/guess", s.handleGuess)
	r.Get("/game/{id}", s.handleGetGame)
}

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}

type newGameRes struct {
	GameID     string `json:"gameId"`
	MaxGuesses int    `json:"maxGuesses"`
	WordLength int    `json:"wordLength"`
}

// handleNewGame creates an in-memory round and its history row.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(r, &req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}
	answer := req.Answer
	if answer == "" {
		answer = s.lex.RandomAnswer(s.rng)
	}
	g, err := game.New(answer, s.cfg.MaxGuesses)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.games.Save(r.Context(), g.ID, g); err != nil {
		writeErr(w, r, err)
		return
	}

	if err := s.rec.StartGame(r.Context(), g.ID, records.ModeClassic, s.owner(w, r)); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("insert game row")
	}
	writeJSON(w, newGameRes{GameID: g.ID, MaxGuesses: g.Rows, WordLength: g.Cols})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Result           game.GuessResult `json:"result"`
	State            game.State       `json:"state"`
	Won              bool             `json:"won"`
	GameOver         bool             `json:"gameOver"`
	GuessesRemaining int              `json:"guessesRemaining"`
	TargetWord       string           `json:"targetWord,omitempty"`
}

// handleGuess applies a guess to a round and records progress.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(r, &req); err != nil {
		httpError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res guessRes
	var progress records.Progress
	err := s.games.Update(r.Context(), req.GameID, func(g *game.Game) error {
		if g.Finished {
			return game.ErrGameFinished
		}
		guess, err := words.IsValidWord(r.Context(), s.dict, req.Guess, g.Cols)
		if err != nil {
			return err
		}
		result, state, err := g.ApplyGuess(guess)
		if err != nil {
			return err
		}
		res = guessRes{
			Result:           result,
			State:            state,
			Won:              g.Won,
			GameOver:         g.Finished,
			GuessesRemaining: g.Remaining(),
		}
		if g.Finished {
			res.TargetWord = g.Answer
		}
		progress = records.Progress{Guesses: len(g.Guesses), Score: g.Score(), Status: string(state), Finished: g.Finished}
		return nil
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}

	if err := s.rec.RecordProgress(r.Context(), req.GameID, records.ModeClassic, s.owner(w, r), progress); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", req.GameID).Msg("record progress")
	}
	writeJSON(w, res)
}

type gameView struct {
	GameID      string             `json:"gameId"`
	Guesses     []string           `json:"guesses"`
	Results     []game.GuessResult `json:"results"`
	MaxGuesses  int                `json:"maxGuesses"`
	WordLength  int                `json:"wordLength"`
	GameOver    bool               `json:"gameOver"`
	Won         bool               `json:"won"`
	TargetWord  string             `json:"targetWord,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	LastUpdated time.Time          `json:"lastUpdated"`
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var v gameView
	err := s.games.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Game) error {
		v = gameView{
			GameID:      g.ID,
			Guesses:     append([]string{}, g.Guesses...),
			Results:     append([]game.GuessResult{}, g.Results...),
			MaxGuesses:  g.Rows,
			WordLength:  g.Cols,
			GameOver:    g.Finished,
			Won:         g.Won,
			CreatedAt:   g.CreatedAt,
			LastUpdated: g.UpdatedAt,
		}
		if g.Finished {
			v.TargetWord = g.Answer
		}
		return nil
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, v)
}
