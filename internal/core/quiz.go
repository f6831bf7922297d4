// Package core holds the shared quiz types and the error taxonomy used
// across storage, engine, and transports.
package core

// Item is a single question/answer pair. IDs are repository-assigned.
type Item struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Repository is the persistence contract the session engine is written
// against. Implementations must be safe for use from multiple sessions.
type Repository interface {
	// List returns all quizzes in repository order.
	List() ([]Item, error)

	// Find returns the quiz with the given id, or an error with
	// KindNotFound when no such quiz exists.
	Find(id int64) (*Item, error)

	// Create stores a new quiz and returns it with its assigned id.
	// Invalid content yields an error with KindValidation and one
	// field message per offending field.
	Create(question, answer string) (*Item, error)

	// Update replaces the question and answer of an existing quiz.
	Update(id int64, question, answer string) (*Item, error)

	// Delete removes the quiz with the given id. Deleting a
	// nonexistent id is not an error.
	Delete(id int64) error
}
