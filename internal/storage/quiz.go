package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"trivia/internal/core"
)

var validate = validator.New()

// quizContent is validated before any insert or update reaches sqlite.
// Validation failures surface as core.KindValidation with one message
// per offending field.
type quizContent struct {
	Question string `validate:"required,max=500"`
	Answer   string `validate:"required,max=500"`
}

func validateContent(question, answer string) error {
	content := quizContent{Question: question, Answer: answer}
	errs := validate.Struct(content)
	if errs == nil {
		return nil
	}

	var fields []string
	for _, err := range errs.(validator.ValidationErrors) {
		name := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s cannot be empty", name))
		case "max":
			fields = append(fields, fmt.Sprintf("%s must be at most %s characters", name, err.Param()))
		default:
			fields = append(fields, fmt.Sprintf("%s is invalid", name))
		}
	}
	return core.ErrValidation(fields)
}

// List returns all quizzes in insertion order.
func (s *Store) List() ([]core.Item, error) {
	rows, err := s.db.Query(`SELECT quiz_id, question, answer FROM quizzes ORDER BY quiz_id`)
	if err != nil {
		return nil, core.ErrStore(err)
	}
	defer rows.Close()

	var items []core.Item
	for rows.Next() {
		var item core.Item
		if err := rows.Scan(&item.ID, &item.Question, &item.Answer); err != nil {
			return nil, core.ErrStore(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, core.ErrStore(err)
	}
	return items, nil
}

// Find returns the quiz with the given id.
func (s *Store) Find(id int64) (*core.Item, error) {
	var item core.Item
	err := s.db.QueryRow(`SELECT quiz_id, question, answer FROM quizzes WHERE quiz_id = ?`, id).
		Scan(&item.ID, &item.Question, &item.Answer)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound(id)
	}
	if err != nil {
		return nil, core.ErrStore(err)
	}
	return &item, nil
}

// Create validates and stores a new quiz, returning it with its id.
func (s *Store) Create(question, answer string) (*core.Item, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if err := validateContent(question, answer); err != nil {
		return nil, err
	}

	result, err := s.db.Exec(`INSERT INTO quizzes (question, answer) VALUES (?, ?)`, question, answer)
	if err != nil {
		return nil, core.ErrStore(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, core.ErrStore(err)
	}
	return &core.Item{ID: id, Question: question, Answer: answer}, nil
}

// Update validates and replaces the content of an existing quiz.
func (s *Store) Update(id int64, question, answer string) (*core.Item, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if err := validateContent(question, answer); err != nil {
		return nil, err
	}

	result, err := s.db.Exec(
		`UPDATE quizzes SET question = ?, answer = ?, updated_at = CURRENT_TIMESTAMP WHERE quiz_id = ?`,
		question, answer, id,
	)
	if err != nil {
		return nil, core.ErrStore(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, core.ErrStore(err)
	}
	if affected == 0 {
		return nil, core.ErrNotFound(id)
	}
	return &core.Item{ID: id, Question: question, Answer: answer}, nil
}

// Delete removes a quiz. Absence of a matching row is a no-op success.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM quizzes WHERE quiz_id = ?`, id); err != nil {
		return core.ErrStore(err)
	}
	return nil
}

// Seed inserts a pair of starter quizzes when the table is empty, so a
// fresh install has something to play.
func (s *Store) Seed() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM quizzes`).Scan(&count); err != nil {
		return core.ErrStore(err)
	}
	if count > 0 {
		return nil
	}

	seeds := []core.Item{
		{Question: "Capital of Italy", Answer: "Rome"},
		{Question: "Capital of France", Answer: "Paris"},
	}
	for _, seed := range seeds {
		if _, err := s.Create(seed.Question, seed.Answer); err != nil {
			return err
		}
	}
	return nil
}
