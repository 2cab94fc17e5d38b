// Package todo defines the Todo entity and the title rule shared by the
// create request, the stored row, and the response body.
package todo

import (
	"fmt"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Title length bounds, counted in characters (Unicode code points).
const (
	MinTitleLength = 1
	MaxTitleLength = 10
)

// Todo is a single todo item. ID is zero until the item has been persisted.
type Todo struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Completed bool   `db:"completed"`
}

// New validates title and returns an unsaved Todo with Completed set to false.
// Returns a *domain.ValidationError if the title is out of bounds.
func New(title string) (*Todo, error) {
	t := &Todo{Title: title}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	if msg := ValidateTitle(t.Title); msg != "" {
		return &domain.ValidationError{Fields: map[string]string{"title": msg}}
	}
	return nil
}

// ValidateTitle returns a description of the violated bound, or "" when the
// title is acceptable.
func ValidateTitle(title string) string {
	n := utf8.RuneCountInString(title)
	switch {
	case n < MinTitleLength:
		return fmt.Sprintf("must be at least %d character long", MinTitleLength)
	case n > MaxTitleLength:
		return fmt.Sprintf("must be at most %d characters long, got %d", MaxTitleLength, n)
	}
	return ""
}

// Toggle flips the completion flag.
func (t *Todo) Toggle() {
	t.Completed = !t.Completed
}

// IsNew reports whether the todo has not been persisted yet.
func (t *Todo) IsNew() bool {
	return t.ID == 0
}
