// Package match runs a head-to-head series between a player and the bot.
//
// Every round both sides race to guess a word: the player guesses a word
// drawn from the answers, the bot guesses the word the player chose (custom
// mode) or a random answer (auto mode). Each player guess is answered by one
// bot guess; once the player is done the bot plays out its remaining turns.
// The round closes when both sides are finished and is decided with
// game.DecideWinner.
//
//	setup ──BeginRound──▶ wordSelection ──SubmitWord──▶ playing ──▶ roundEnd
//	  │                                                   ▲           │
//	  └────────────────────── (auto mode) ────────────────┘           │
//	                             ▲                                    │
//	                             └──────────── BeginRound ────────────┘
package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordgames/apps/go-server/internal/bot"
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/random"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

// ErrWrongPhase is returned when an operation does not fit the current phase.
var ErrWrongPhase = errors.New("wrong phase")

// Phase is the lifecycle position of a match.
type Phase string

const (
	PhaseSetup         Phase = "setup"
	PhaseWordSelection Phase = "wordSelection"
	PhasePlaying       Phase = "playing"
	PhaseRoundEnd      Phase = "roundEnd"
)

// Mode decides who picks the bot's target word.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeCustom Mode = "custom"
)

// ParseMode maps a name onto a Mode; empty means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeCustom:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", game.ErrInvalidInput, s)
	}
}

// Side identifies a participant.
type Side string

const (
	SidePlayer Side = "player"
	SideBot    Side = "bot"
	SideTie    Side = "tie"
)

// Tally is the running score across rounds.
type Tally struct {
	Player int `json:"player"`
	Bot    int `json:"bot"`
	Rounds int `json:"rounds"`
}

func (t *Tally) record(s Side) {
	switch s {
	case SidePlayer:
		t.Player++
	case SideBot:
		t.Bot++
	}
	t.Rounds++
}

// Config holds everything a match needs.
type Config struct {
	Mode       Mode
	Difficulty bot.Difficulty
	MaxGuesses int
	// Answers are the possible targets; Vocabulary is what the bot may guess.
	Answers    []string
	Vocabulary []string
	Dictionary words.Dictionary
	Random     random.Source
	// Tally seeds the running score, e.g. from persisted history.
	Tally Tally
}

// Match is one player's series against the bot. It is not safe for
// concurrent use; the session store serializes access.
type Match struct {
	ID         string
	Mode       Mode
	Phase      Phase
	Round      int
	Tally      Tally
	LastWinner Side
	CreatedAt  time.Time
	UpdatedAt  time.Time

	player     *game.Game // player guessing
	bot        *game.Game // bot guessing
	solver     *bot.Solver
	answers    []string
	dict       words.Dictionary
	rng        random.Source
	maxGuesses int
	length     int
}

// New creates a match in the setup phase.
func New(id string, cfg Config) (*Match, error) {
	if len(cfg.Answers) == 0 {
		return nil, fmt.Errorf("%w: no answers", game.ErrInvalidInput)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeAuto
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = bot.DifficultyMedium
	}
	if cfg.MaxGuesses <= 0 {
		cfg.MaxGuesses = game.MaxGuesses
	}
	if cfg.Random == nil {
		cfg.Random = random.New()
	}
	length := len(cfg.Answers[0])
	now := time.Now().UTC()
	return &Match{
		ID:         id,
		Mode:       cfg.Mode,
		Phase:      PhaseSetup,
		Tally:      cfg.Tally,
		CreatedAt:  now,
		UpdatedAt:  now,
		solver:     bot.New(cfg.Vocabulary, length, bot.WithDifficulty(cfg.Difficulty), bot.WithRandom(cfg.Random)),
		answers:    cfg.Answers,
		dict:       cfg.Dictionary,
		rng:        cfg.Random,
		maxGuesses: cfg.MaxGuesses,
		length:     length,
	}, nil
}

// Difficulty reports the bot's skill level.
func (m *Match) Difficulty() bot.Difficulty { return m.solver.Difficulty() }

// BeginRound starts the next round. In auto mode both targets are drawn and
// play begins at once; in custom mode the match waits for SubmitWord.
func (m *Match) BeginRound() error {
	if m.Phase != PhaseSetup && m.Phase != PhaseRoundEnd {
		return fmt.Errorf("%w: cannot start a round while %s", ErrWrongPhase, m.Phase)
	}
	m.Round++
	m.LastWinner = ""
	m.player, m.bot = nil, nil
	m.solver.Reset()
	m.touch()

	if m.Mode == ModeCustom {
		m.Phase = PhaseWordSelection
		return nil
	}
	return m.startPlaying(m.randomAnswer())
}

// SubmitWord sets the bot's target during word selection. A word that fails
// validation is replaced with a random answer; accepted reports which case
// applied.
func (m *Match) SubmitWord(ctx context.Context, word string) (accepted bool, err error) {
	if m.Phase != PhaseWordSelection {
		return false, fmt.Errorf("%w: no word expected while %s", ErrWrongPhase, m.Phase)
	}
	target, verr := words.IsValidWord(ctx, m.dict, word, m.length)
	if verr != nil {
		target = m.randomAnswer()
	}
	if err := m.startPlaying(target); err != nil {
		return false, err
	}
	return verr == nil, nil
}

func (m *Match) startPlaying(botTarget string) error {
	p, err := game.New(m.randomAnswer(), m.maxGuesses)
	if err != nil {
		return err
	}
	b, err := game.New(botTarget, m.maxGuesses)
	if err != nil {
		return err
	}
	m.player, m.bot = p, b
	m.Phase = PhasePlaying
	m.touch()
	return nil
}

// BotMove is one bot guess with its evaluation.
type BotMove struct {
	Guess  string           `json:"guess"`
	Result game.GuessResult `json:"result"`
}

// Turn reports what a player guess caused.
type Turn struct {
	Result      game.GuessResult `json:"result"`
	PlayerState game.State       `json:"playerState"`
	BotMoves    []BotMove        `json:"botMoves"`
	BotState    game.State       `json:"botState"`
	RoundOver   bool             `json:"roundOver"`
	Winner      Side             `json:"winner,omitempty"`
	Tally       Tally            `json:"tally"`
}

// PlayerGuess applies the player's guess, lets the bot answer and closes the
// round when both sides are done. Invalid guesses change nothing.
func (m *Match) PlayerGuess(ctx context.Context, guess string) (Turn, error) {
	if m.Phase != PhasePlaying {
		return Turn{}, fmt.Errorf("%w: not playing (%s)", ErrWrongPhase, m.Phase)
	}
	if m.player.Finished {
		return Turn{}, game.ErrGameFinished
	}
	w, err := words.IsValidWord(ctx, m.dict, guess, m.length)
	if err != nil {
		return Turn{}, err
	}
	res, state, err := m.player.ApplyGuess(w)
	if err != nil {
		return Turn{}, err
	}

	turn := Turn{Result: res, PlayerState: state, BotMoves: []BotMove{}}
	if !m.bot.Finished {
		turn.BotMoves = append(turn.BotMoves, m.botMove())
	}
	if m.player.Finished {
		for !m.bot.Finished {
			turn.BotMoves = append(turn.BotMoves, m.botMove())
		}
	}
	turn.BotState = m.bot.State()

	if m.player.Finished && m.bot.Finished {
		m.closeRound()
		turn.RoundOver = true
		turn.Winner = m.LastWinner
	}
	turn.Tally = m.Tally
	m.touch()
	return turn, nil
}

// botMove plays one bot turn. Bot guesses always have the right shape, so
// evaluation cannot fail.
func (m *Match) botMove() BotMove {
	g := m.solver.NextGuess(len(m.bot.Guesses))
	res, _, err := m.bot.ApplyGuess(g)
	if err != nil {
		// Only reachable if the solver broke its length contract; end the
		// bot's round rather than loop.
		m.bot.Finished = true
		return BotMove{Guess: g}
	}
	m.solver.Update(g, res)
	return BotMove{Guess: g, Result: res}
}

func (m *Match) closeRound() {
	w := game.DecideWinner(outcome(m.player), outcome(m.bot))
	switch w {
	case game.WinnerFirst:
		m.LastWinner = SidePlayer
	case game.WinnerSecond:
		m.LastWinner = SideBot
	default:
		m.LastWinner = SideTie
	}
	m.Tally.record(m.LastWinner)
	m.Phase = PhaseRoundEnd
}

// ResetTally zeroes the running score and returns to setup.
func (m *Match) ResetTally() error {
	if m.Phase == PhasePlaying || m.Phase == PhaseWordSelection {
		return fmt.Errorf("%w: round in progress", ErrWrongPhase)
	}
	m.Tally = Tally{}
	m.Phase = PhaseSetup
	m.touch()
	return nil
}

func outcome(g *game.Game) game.Outcome {
	return game.Outcome{Won: g.Won, Attempts: len(g.Guesses), Score: g.Score()}
}

func (m *Match) randomAnswer() string {
	w, _ := random.Pick(m.rng, m.answers)
	return w
}

func (m *Match) touch() { m.UpdatedAt = time.Now().UTC() }

// SideView is one participant's board. Target stays hidden until the round
// ends.
type SideView struct {
	Guesses []string           `json:"guesses"`
	Results []game.GuessResult `json:"results"`
	State   game.State         `json:"state"`
	Score   int                `json:"score"`
	Target  string             `json:"targetWord,omitempty"`
}

// Snapshot is the client-facing view of a match.
type Snapshot struct {
	ID         string         `json:"matchId"`
	Mode       Mode           `json:"mode"`
	Difficulty bot.Difficulty `json:"difficulty"`
	Phase      Phase          `json:"phase"`
	Round      int            `json:"round"`
	Tally      Tally          `json:"tally"`
	Winner     Side           `json:"winner,omitempty"`
	MaxGuesses int            `json:"maxGuesses"`
	Player     *SideView      `json:"player,omitempty"`
	Bot        *SideView      `json:"bot,omitempty"`
}

// Snapshot returns the current view.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		ID:         m.ID,
		Mode:       m.Mode,
		Difficulty: m.solver.Difficulty(),
		Phase:      m.Phase,
		Round:      m.Round,
		Tally:      m.Tally,
		Winner:     m.LastWinner,
		MaxGuesses: m.maxGuesses,
	}
	reveal := m.Phase == PhaseRoundEnd
	s.Player = view(m.player, reveal)
	s.Bot = view(m.bot, reveal)
	return s
}

func view(g *game.Game, reveal bool) *SideView {
	if g == nil {
		return nil
	}
	v := &SideView{
		Guesses: append([]string(nil), g.Guesses...),
		Results: append([]game.GuessResult(nil), g.Results...),
		State:   g.State(),
		Score:   g.Score(),
	}
	if reveal {
		v.Target = g.Answer
	}
	return v
}
