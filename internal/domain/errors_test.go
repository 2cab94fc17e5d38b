package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("creating todo: %w", &ValidationError{Fields: map[string]string{"title": "too long"}})

	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = true, want false")
	}
	if !strings.Contains(err.Error(), "title: too long") {
		t.Errorf("Error() = %q, want field message", err.Error())
	}
}

func TestValidationError_ErrorIsDeterministic(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{"b": "2", "a": "1", "c": "3"}}
	want := "validation error: a: 1; b: 2; c: 3"
	for range 5 {
		if got := err.Error(); got != want {
			t.Fatalf("Error() = %q, want %q", got, want)
		}
	}
}

func TestStorageError_MatchesSentinelAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk I/O error")
	err := fmt.Errorf("listing: %w", &StorageError{Op: "ListAll", Err: cause})

	if !errors.Is(err, ErrStorage) {
		t.Error("errors.Is(err, ErrStorage) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !strings.Contains(err.Error(), "ListAll") {
		t.Errorf("Error() = %q, want operation name", err.Error())
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := &NotFoundError{Entity: "todo", ID: 999}

	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}
	if got, want := err.Error(), "todo 999 not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
