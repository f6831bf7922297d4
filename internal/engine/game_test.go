package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"trivia/internal/core"
)

func TestShuffleIsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	items := make([]core.Item, 10)
	for i := range items {
		items[i] = core.Item{ID: int64(i), Question: fmt.Sprintf("q%d", i)}
	}

	shuffled := make([]core.Item, len(items))
	copy(shuffled, items)
	shuffleItems(r, shuffled)

	if len(shuffled) != len(items) {
		t.Fatalf("shuffle changed length: %d", len(shuffled))
	}
	seen := make(map[int64]int)
	for _, item := range shuffled {
		seen[item.ID]++
	}
	for _, item := range items {
		if seen[item.ID] != 1 {
			t.Errorf("id %d appears %d times after shuffle", item.ID, seen[item.ID])
		}
	}
}

func TestShuffleIsRoughlyUniform(t *testing.T) {
	const (
		size   = 4
		trials = 8000
	)
	r := rand.New(rand.NewSource(42))

	// counts[id][pos] over many trials; expect trials/size per cell
	counts := make([][]int, size)
	for i := range counts {
		counts[i] = make([]int, size)
	}

	for trial := 0; trial < trials; trial++ {
		items := make([]core.Item, size)
		for i := range items {
			items[i] = core.Item{ID: int64(i)}
		}
		shuffleItems(r, items)
		for pos, item := range items {
			counts[item.ID][pos]++
		}
	}

	expected := trials / size
	tolerance := expected / 4
	for id := range counts {
		for pos, n := range counts[id] {
			if n < expected-tolerance || n > expected+tolerance {
				t.Errorf("id %d at position %d: %d occurrences, want %d±%d",
					id, pos, n, expected, tolerance)
			}
		}
	}
}

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		got, want string
		match     bool
	}{
		{"madrid", "Madrid", true},
		{"MADRID", "Madrid", true},
		{" Madrid ", "Madrid", true},
		{"Barcelona", "Madrid", false},
		{"", "Madrid", false},
	}
	for _, tt := range tests {
		if answersMatch(tt.got, tt.want) != tt.match {
			t.Errorf("answersMatch(%q, %q) = %v, want %v", tt.got, tt.want, !tt.match, tt.match)
		}
	}
}

func playRepo() *fakeRepo {
	return newFakeRepo(
		core.Item{ID: 1, Question: "2+2?", Answer: "4"},
		core.Item{ID: 2, Question: "3+3?", Answer: "6"},
	)
}

// answerFromRepo answers each presented question correctly regardless of
// shuffle order.
func answerFromRepo(repo *fakeRepo) func(prompt string) string {
	return func(prompt string) string {
		for _, item := range repo.items {
			if strings.Contains(prompt, item.Question) {
				return item.Answer
			}
		}
		return ""
	}
}

func TestPlayWin(t *testing.T) {
	repo := playRepo()
	term := &fakeTerm{answerFn: answerFromRepo(repo)}
	sess := newTestSession(t, term, repo, Options{})

	if !sess.Dispatch("play") {
		t.Fatal("play ended the session")
	}
	if len(term.asked) != 2 {
		t.Errorf("questions asked = %d, want 2", len(term.asked))
	}
	if !term.contains("Final score: 2") {
		t.Errorf("missing win report, output: %q", term.out)
	}
	if !term.contains("End") {
		t.Errorf("missing end marker, output: %q", term.out)
	}
	if term.prompts != 1 {
		t.Errorf("ready signals = %d, want exactly 1", term.prompts)
	}
}

func TestPlayFirstMissEndsGame(t *testing.T) {
	repo := playRepo()
	term := &fakeTerm{answerFn: func(string) string { return "wrong" }}
	sess := newTestSession(t, term, repo, Options{})

	sess.Dispatch("play")
	if len(term.asked) != 1 {
		t.Errorf("questions asked = %d, want 1 (game is single-life)", len(term.asked))
	}
	if !term.contains("Score: 0") {
		t.Errorf("missing final score, output: %q", term.out)
	}
	if !term.contains("Incorrect") || !term.contains("End") {
		t.Errorf("missing loss report, output: %q", term.out)
	}
	if term.prompts != 1 {
		t.Errorf("ready signals = %d, want exactly 1", term.prompts)
	}
}

func TestPlayEachQuestionAtMostOnce(t *testing.T) {
	repo := playRepo()
	term := &fakeTerm{answerFn: answerFromRepo(repo)}
	sess := newTestSession(t, term, repo, Options{})

	sess.Dispatch("play")
	seen := make(map[string]int)
	for _, prompt := range term.asked {
		seen[prompt]++
	}
	for prompt, n := range seen {
		if n != 1 {
			t.Errorf("question %q presented %d times", prompt, n)
		}
	}
}

func TestPlayEmptySet(t *testing.T) {
	term := &fakeTerm{}
	sess := newTestSession(t, term, newFakeRepo(), Options{})

	sess.Dispatch("play")
	if len(term.asked) != 0 {
		t.Errorf("empty set still asked questions: %q", term.asked)
	}
	if !term.contains("no quizzes") {
		t.Errorf("missing empty-set message, output: %q", term.out)
	}
	if term.prompts != 1 {
		t.Errorf("ready signals = %d, want exactly 1", term.prompts)
	}
}

func TestPlayScoreReportedAfterEachHit(t *testing.T) {
	repo := playRepo()
	term := &fakeTerm{answerFn: answerFromRepo(repo)}
	sess := newTestSession(t, term, repo, Options{})

	sess.Dispatch("play")
	if !term.contains("Score: 1") || !term.contains("Score: 2") {
		t.Errorf("scores not reported monotonically, output: %q", term.out)
	}
}
