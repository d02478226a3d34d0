package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/match"
	"github.com/robalobadob/wordgames/apps/go-server/internal/store"
)

// httpError writes {"error": msg} with the given status.
func httpError(w http.ResponseWriter, status int, msg string) {
	b, _ := json.Marshal(map[string]string{"error": msg})
	http.Error(w, string(b), status)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidInput),
		errors.Is(err, game.ErrNotInWordList),
		errors.Is(err, game.ErrGameFinished):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, match.ErrWrongPhase):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeErr reports err to the client. Unexpected errors are logged and
// hidden behind a generic message.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		httpError(w, status, "internal_error")
		return
	}
	httpError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
