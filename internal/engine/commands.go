package engine

import (
	"fmt"
	"strings"

	"trivia/internal/display"
)

// command defines a session command with its handler
type command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(*Session, []string) error
	Quits       bool
}

func (s *Session) registerCommands() {
	s.commands = make(map[string]*command)

	for _, cmd := range []*command{
		{
			Name:        "help",
			ShortName:   "h",
			Description: "Show available commands",
			Usage:       "help",
			Handler:     helpCmd,
		},
		{
			Name:        "list",
			Description: "List all quizzes",
			Usage:       "list",
			Handler:     listCmd,
		},
		{
			Name:        "show",
			Description: "Show the question and answer of a quiz",
			Usage:       "show <id>",
			Handler:     showCmd,
		},
		{
			Name:        "add",
			Description: "Add a new quiz interactively",
			Usage:       "add",
			Handler:     addCmd,
		},
		{
			Name:        "delete",
			Description: "Delete a quiz",
			Usage:       "delete <id>",
			Handler:     deleteCmd,
		},
		{
			Name:        "edit",
			Description: "Edit a quiz",
			Usage:       "edit <id>",
			Handler:     editCmd,
		},
		{
			Name:        "test",
			Description: "Try to answer a quiz",
			Usage:       "test <id>",
			Handler:     testCmd,
		},
		{
			Name:        "play",
			ShortName:   "p",
			Description: "Play all quizzes in random order",
			Usage:       "play",
			Handler:     playCmd,
		},
		{
			Name:        "credits",
			Description: "Show credits",
			Usage:       "credits",
			Handler:     creditsCmd,
		},
		{
			Name:        "quit",
			ShortName:   "q",
			Description: "End the session",
			Usage:       "quit",
			Handler:     quitCmd,
			Quits:       true,
		},
	} {
		s.ordered = append(s.ordered, cmd)
		s.commands[cmd.Name] = cmd
		if cmd.ShortName != "" {
			s.commands[cmd.ShortName] = cmd
		}
	}
}

// Dispatch handles one command line and returns false once the session has
// ended (quit, or transport failure mid-command).
//
// Contract: every dispatched command produces exactly one Prompt call, after
// all of its prompting and repository work has settled, on every success and
// failure path. The exceptions are quit (the session is over) and a dead
// transport (there is nobody left to prompt).
func (s *Session) Dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		s.term.Prompt()
		return true
	}

	name := strings.ToLower(fields[0])
	cmd, exists := s.commands[name]
	if !exists {
		if !s.opts.SilentUnknown {
			s.term.WriteLine(display.ErrorMsg("unknown command: " + name))
			s.term.WriteLine("Type 'help' for available commands")
		}
		s.term.Prompt()
		return true
	}

	if err := cmd.Handler(s, fields[1:]); err != nil {
		if isIOFailure(err) {
			return false
		}
		s.reportError(err)
	}

	if cmd.Quits {
		return false
	}
	s.term.Prompt()
	return true
}

// argOrEmpty returns the first argument, or "" when none was given.
// Arguments beyond the first are ignored.
func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func helpCmd(s *Session, args []string) error {
	s.say("Commands:", display.Cyan)
	for _, cmd := range s.ordered {
		name := cmd.Usage
		if cmd.ShortName != "" {
			name = cmd.ShortName + "|" + name
		}
		s.term.WriteLine(fmt.Sprintf("  %-14s %s", name, cmd.Description))
	}
	return nil
}

func listCmd(s *Session, args []string) error {
	items, err := s.repo.List()
	if err != nil {
		return err
	}
	for _, item := range items {
		s.term.WriteLine(fmt.Sprintf("[%s]: %s",
			display.Colorize(fmt.Sprint(item.ID), display.Magenta), item.Question))
	}
	return nil
}

func showCmd(s *Session, args []string) error {
	id, err := ParseID(argOrEmpty(args))
	if err != nil {
		return err
	}
	item, err := s.repo.Find(id)
	if err != nil {
		return err
	}
	s.term.WriteLine(fmt.Sprintf("[%s]: %s %s %s",
		display.Colorize(fmt.Sprint(item.ID), display.Magenta),
		item.Question,
		display.Colorize("=>", display.Magenta),
		item.Answer))
	return nil
}

func addCmd(s *Session, args []string) error {
	question, err := s.ask(display.Colorize("Enter the question: ", display.Red), "")
	if err != nil {
		return err
	}
	answer, err := s.ask(display.Colorize("Enter the answer: ", display.Red), "")
	if err != nil {
		return err
	}

	item, err := s.repo.Create(question, answer)
	if err != nil {
		return err
	}
	s.term.WriteLine(fmt.Sprintf("%s: %s %s %s",
		display.Colorize("Added", display.Magenta),
		item.Question,
		display.Colorize("=>", display.Magenta),
		item.Answer))
	return nil
}

func deleteCmd(s *Session, args []string) error {
	id, err := ParseID(argOrEmpty(args))
	if err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func editCmd(s *Session, args []string) error {
	id, err := ParseID(argOrEmpty(args))
	if err != nil {
		return err
	}
	item, err := s.repo.Find(id)
	if err != nil {
		return err
	}

	question, err := s.ask(display.Colorize("Enter the question: ", display.Red), item.Question)
	if err != nil {
		return err
	}
	answer, err := s.ask(display.Colorize("Enter the answer: ", display.Red), item.Answer)
	if err != nil {
		return err
	}

	updated, err := s.repo.Update(item.ID, question, answer)
	if err != nil {
		return err
	}
	s.term.WriteLine(fmt.Sprintf("Changed quiz %s to: %s %s %s",
		display.Colorize(fmt.Sprint(updated.ID), display.Magenta),
		updated.Question,
		display.Colorize("=>", display.Magenta),
		updated.Answer))
	return nil
}

func testCmd(s *Session, args []string) error {
	id, err := ParseID(argOrEmpty(args))
	if err != nil {
		return err
	}
	item, err := s.repo.Find(id)
	if err != nil {
		return err
	}

	answer, err := s.ask(display.Colorize(item.Question+" ", display.Cyan), "")
	if err != nil {
		return err
	}
	if answersMatch(answer, item.Answer) {
		s.term.WriteLine("Your answer is correct")
		s.say("Correct", display.Green)
	} else {
		s.term.WriteLine("Your answer is incorrect")
		s.say("Incorrect", display.Red)
	}
	return nil
}

func creditsCmd(s *Session, args []string) error {
	s.say("Trivia engine", display.Green)
	s.term.WriteLine("An interactive quiz command session")
	return nil
}

func quitCmd(s *Session, args []string) error {
	return s.term.Close()
}
