// Package engine implements the per-session trivia command engine: command
// dispatch, interactive prompting, id validation, error normalization, and
// the randomized play loop. One Session is bound to one Terminal and runs
// strictly sequentially; any number of sessions may share one Repository.
package engine

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"trivia/internal/core"
	"trivia/internal/display"
)

// Options tunes per-session behavior.
type Options struct {
	// SilentUnknown drops unrecognized command tokens without a message
	// instead of reporting them.
	SilentUnknown bool
}

// Session is the command-processing state for one connection. It owns the
// pending input wait and the in-flight game or edit state; nothing here is
// shared across sessions.
type Session struct {
	ID   string
	term Terminal
	repo core.Repository
	rng  *rand.Rand
	opts Options

	commands map[string]*command
	ordered  []*command
}

// New creates a session bound to the given terminal and quiz repository.
func New(term Terminal, repo core.Repository, opts Options) *Session {
	s := &Session{
		ID:   uuid.NewString(),
		term: term,
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		opts: opts,
	}
	s.registerCommands()
	return s
}

// ask prompts for one line of input and returns it trimmed. A transport
// failure is normalized to KindIO so the dispatcher can end the session.
func (s *Session) ask(prompt, prefill string) (string, error) {
	line, err := s.term.Ask(prompt, prefill)
	if err != nil {
		return "", core.ErrIO(err)
	}
	return strings.TrimSpace(line), nil
}

// say writes one colorized output line.
func (s *Session) say(text, color string) {
	s.term.WriteLine(display.Colorize(text, color))
}
