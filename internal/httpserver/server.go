// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the word games backend.
// Responsibilities:
//   - Router + middleware (request IDs, access logs, panic recovery, timeouts,
//     JSON, CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game modes (optional auth): classic /game, /absurdle, /match, /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//   - Idle session sweeping for every in-memory store.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token
//     is present; routes still run for guests.
//   - History writes are best effort: failures are logged, never returned.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordgames/apps/go-server/internal/absurdle"
	"github.com/robalobadob/wordgames/apps/go-server/internal/config"
	"github.com/robalobadob/wordgames/apps/go-server/internal/daily"
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/match"
	"github.com/robalobadob/wordgames/apps/go-server/internal/random"
	"github.com/robalobadob/wordgames/apps/go-server/internal/records"
	"github.com/robalobadob/wordgames/apps/go-server/internal/store"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

// Options are the server's collaborators.
type Options struct {
	Config  config.Config
	Lexicon *words.Lexicon
	Records *records.Store
	// Dictionary validates guesses; defaults to Lexicon.
	Dictionary words.Dictionary
	// Random drives target selection and the bot; defaults to a crypto seed.
	Random random.Source
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server bundles the router, session stores and persistence.
type Server struct {
	r    *chi.Mux
	cfg  config.Config
	lex  *words.Lexicon
	dict words.Dictionary
	rec  *records.Store
	day  *daily.Store
	rng  random.Source
	now  func() time.Time

	games     *store.Memory[*game.Game]
	absurdles *store.Memory[*absurdle.Session]
	matches   *store.Memory[*match.Match]
	dailies   *store.Memory[*dailySession]
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:    chi.NewRouter(),
		cfg:  opts.Config,
		lex:  opts.Lexicon,
		dict: opts.Dictionary,
		rec:  opts.Records,
		day:  daily.NewStore(opts.Records.DB()),
		rng:  opts.Random,
		now:  opts.Now,
	}
	if s.dict == nil {
		s.dict = s.lex
	}
	if s.rng == nil {
		s.rng = random.New()
	}
	if s.now == nil {
		s.now = time.Now
	}
	ttl := s.cfg.SessionTTL
	s.games = store.NewMemory[*game.Game]("classic", ttl)
	s.absurdles = store.NewMemory[*absurdle.Session]("absurdle", ttl)
	s.matches = store.NewMemory[*match.Match]("match", ttl)
	s.dailies = store.NewMemory[*dailySession]("daily", 24*time.Hour)

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(requestLogFields)
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		s.r.Use(chimw.Timeout(s.cfg.RequestTimeout))
	}
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"service": "wordgames-go",
			"endpoints": []string{
				"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}",
				"POST /absurdle/new", "POST /absurdle/guess",
				"POST /match/new", "POST /match/{id}/round", "POST /match/{id}/word", "POST /match/{id}/guess",
				"/daily/*", "/auth/*",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.lex.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	// Game modes: optional auth, guests can play.
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		s.mountClassic(r)
		s.mountAbsurdle(r)
		s.mountMatch(r)
		s.mountDaily(r)
	})

	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// RunSweepers removes idle sessions from every store each interval until
// ctx is done.
func (s *Server) RunSweepers(ctx context.Context, interval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.games.Run(ctx, interval) })
	g.Go(func() error { return s.absurdles.Run(ctx, interval) })
	g.Go(func() error { return s.matches.Run(ctx, interval) })
	g.Go(func() error { return s.dailies.Run(ctx, interval) })
	return g.Wait()
}

// ----------------------------- middleware ----------------------------------

// requestLogFields adds chi's request ID to the request logger.
func requestLogFields(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
