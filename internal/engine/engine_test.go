package engine

import (
	"errors"
	"strings"
	"testing"

	"trivia/internal/core"
)

// fakeTerm is a scripted Terminal: it feeds canned input lines (or a
// per-prompt answer function) and records output, prefills, and the
// number of ready signals.
type fakeTerm struct {
	t        *testing.T
	inputs   []string
	answerFn func(prompt string) string
	askErr   error

	asked    []string
	prefills []string
	out      []string
	prompts  int
	closed   bool
}

func (f *fakeTerm) WriteLine(s string) { f.out = append(f.out, s) }

func (f *fakeTerm) Ask(prompt, prefill string) (string, error) {
	f.asked = append(f.asked, prompt)
	f.prefills = append(f.prefills, prefill)
	if f.askErr != nil {
		return "", f.askErr
	}
	if f.answerFn != nil {
		return f.answerFn(prompt), nil
	}
	if len(f.inputs) == 0 {
		f.t.Fatalf("unexpected Ask(%q): no scripted input left", prompt)
	}
	line := f.inputs[0]
	f.inputs = f.inputs[1:]
	return line, nil
}

func (f *fakeTerm) Prompt()      { f.prompts++ }
func (f *fakeTerm) Close() error { f.closed = true; return nil }

func (f *fakeTerm) contains(substr string) bool {
	for _, line := range f.out {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// fakeRepo is an in-memory Repository. failAll makes every call fail with
// a store error, for the exactly-one-ready-signal tests.
type fakeRepo struct {
	items   map[int64]core.Item
	order   []int64
	nextID  int64
	updates []core.Item
	failAll bool
}

func newFakeRepo(items ...core.Item) *fakeRepo {
	r := &fakeRepo{items: make(map[int64]core.Item)}
	for _, item := range items {
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
		r.items[item.ID] = item
		r.order = append(r.order, item.ID)
	}
	return r
}

func (r *fakeRepo) List() ([]core.Item, error) {
	if r.failAll {
		return nil, core.ErrStore(errors.New("database unavailable"))
	}
	var items []core.Item
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

func (r *fakeRepo) Find(id int64) (*core.Item, error) {
	if r.failAll {
		return nil, core.ErrStore(errors.New("database unavailable"))
	}
	item, ok := r.items[id]
	if !ok {
		return nil, core.ErrNotFound(id)
	}
	return &item, nil
}

func (r *fakeRepo) Create(question, answer string) (*core.Item, error) {
	if r.failAll {
		return nil, core.ErrStore(errors.New("database unavailable"))
	}
	if question == "" || answer == "" {
		var fields []string
		if question == "" {
			fields = append(fields, "question cannot be empty")
		}
		if answer == "" {
			fields = append(fields, "answer cannot be empty")
		}
		return nil, core.ErrValidation(fields)
	}
	r.nextID++
	item := core.Item{ID: r.nextID, Question: question, Answer: answer}
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return &item, nil
}

func (r *fakeRepo) Update(id int64, question, answer string) (*core.Item, error) {
	if r.failAll {
		return nil, core.ErrStore(errors.New("database unavailable"))
	}
	if _, ok := r.items[id]; !ok {
		return nil, core.ErrNotFound(id)
	}
	item := core.Item{ID: id, Question: question, Answer: answer}
	r.items[id] = item
	r.updates = append(r.updates, item)
	return &item, nil
}

func (r *fakeRepo) Delete(id int64) error {
	if r.failAll {
		return core.ErrStore(errors.New("database unavailable"))
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestSession(t *testing.T, term *fakeTerm, repo core.Repository, opts Options) *Session {
	t.Helper()
	term.t = t
	return New(term, repo, opts)
}
