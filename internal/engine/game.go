package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"trivia/internal/core"
	"trivia/internal/display"
)

// playCmd runs the single-life game: every quiz is asked at most once, in a
// uniformly random order, and the first wrong answer ends the game. The
// iteration is a plain loop so the pending work never grows with the size
// of the quiz set.
func playCmd(s *Session, args []string) error {
	items, err := s.repo.List()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		s.say("There are no quizzes to play", display.Magenta)
		return nil
	}

	shuffleItems(s.rng, items)

	score := 0
	for _, item := range items {
		answer, err := s.ask(display.Colorize(item.Question+" ", display.Cyan), "")
		if err != nil {
			return err
		}

		if !answersMatch(answer, item.Answer) {
			s.say("Incorrect", display.Red)
			s.say(fmt.Sprintf("Score: %d", score), display.Magenta)
			s.say("End", display.Magenta)
			return nil
		}

		score++
		s.say("Correct", display.Green)
		s.say(fmt.Sprintf("Score: %d", score), display.Magenta)
	}

	s.say(fmt.Sprintf("You answered every quiz. Final score: %d", score), display.Magenta)
	s.say("End", display.Magenta)
	return nil
}

// shuffleItems permutes items in place with a Fisher-Yates shuffle, every
// permutation equally likely.
func shuffleItems(r *rand.Rand, items []core.Item) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// answersMatch compares a user answer to the stored one, ignoring case and
// surrounding whitespace.
func answersMatch(got, want string) bool {
	return strings.ToUpper(strings.TrimSpace(got)) == strings.ToUpper(strings.TrimSpace(want))
}
