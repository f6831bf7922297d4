// Package console adapts a chzyer/readline instance to the session
// engine's Terminal contract for the local interactive client.
package console

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"trivia/internal/display"
)

// Console is the readline-backed Terminal for a local session.
type Console struct {
	rl     *readline.Instance
	prompt string
	tty    bool
}

// New initializes readline with the given command prompt text.
func New(promptText string) (*Console, error) {
	prompt := display.Prompt(promptText)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     ".trivia_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &Console{
		rl:     rl,
		prompt: prompt,
		tty:    term.IsTerminal(int(os.Stdout.Fd())),
	}, nil
}

// ReadCommand blocks for the next command line at the main prompt.
func (c *Console) ReadCommand() (string, error) {
	return c.rl.Readline()
}

func (c *Console) WriteLine(s string) {
	fmt.Println(s)
}

// Ask switches the readline prompt to the question, optionally pre-loading
// the line buffer with an editable default, and reads one line. The prefill
// is applied by the line editor after the prompt is rendered, and only on
// interactive terminals.
func (c *Console) Ask(prompt, prefill string) (string, error) {
	c.rl.SetPrompt(prompt)
	defer c.rl.SetPrompt(c.prompt)

	if prefill != "" && c.tty {
		return c.rl.ReadlineWithDefault(prefill)
	}
	return c.rl.Readline()
}

// Prompt is a no-op: the client loop re-issues the readline prompt by
// calling ReadCommand once Dispatch returns.
func (c *Console) Prompt() {}

func (c *Console) Close() error {
	return c.rl.Close()
}
