package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/mocks"
)

var errStorage = &domain.StorageError{Op: "Insert", Err: errors.New("disk I/O error")}

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(svc), svc
}

// --- CreateTodo ---

func TestCreateTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	created := buyMilk()
	svc.EXPECT().CreateTodo(mock.Anything, "buy milk").Return(&created, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]string{"title": "buy milk"}))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp != (dto.TodoResponse{ID: 1, Title: "buy milk", Completed: false}) {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateTodo_IgnoresClientSuppliedFields(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	created := buyMilk()
	svc.EXPECT().CreateTodo(mock.Anything, "buy milk").Return(&created, nil)

	body := jsonBody(t, map[string]any{"title": "buy milk", "id": 99, "completed": true})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", body)
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != 1 || resp.Completed {
		t.Errorf("response = %+v, want server-assigned id and completed=false", resp)
	}
}

func TestCreateTodo_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		wantLocation string
		wantMessage  string
	}{
		{name: "empty title", body: `{"title": ""}`, wantLocation: "body.title", wantMessage: "must be at least 1 character long"},
		{name: "title too long", body: `{"title": "this is way too long"}`, wantLocation: "body.title", wantMessage: "must be at most 10 characters long, got 20"},
		{name: "missing title", body: `{}`, wantLocation: "body.title", wantMessage: "must be at least 1 character long"},
		{name: "title not a string", body: `{"title": 42}`, wantLocation: "body", wantMessage: "title must be a string"},
		{name: "malformed JSON", body: `{not json`, wantLocation: "body", wantMessage: "invalid JSON"},
		{name: "empty body", body: ``, wantLocation: "body", wantMessage: "must not be empty"},
		{name: "two objects", body: `{"title": "a"} {"title": "b"}`, wantLocation: "body", wantMessage: "must contain a single JSON object"},
		{name: "oversized body", body: `{"title": "` + strings.Repeat("x", 70<<10) + `"}`, wantLocation: "body", wantMessage: "must not exceed 65536 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			h.CreateTodo(rec, req)

			requireStatus(t, rec, http.StatusUnprocessableEntity)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}

			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) != 1 {
				t.Fatalf("errors = %+v, want exactly one", resp.Errors)
			}
			if resp.Errors[0].Location != tt.wantLocation || resp.Errors[0].Message != tt.wantMessage {
				t.Errorf("error = %+v, want %s: %s", resp.Errors[0], tt.wantLocation, tt.wantMessage)
			}
		})
	}
}

func TestCreateTodo_StorageError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().CreateTodo(mock.Anything, "buy milk").Return(nil, errStorage)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", jsonBody(t, map[string]string{"title": "buy milk"}))
	h.CreateTodo(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- ListTodos ---

func TestListTodos_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	todos := []todo.Todo{buyMilk(), {ID: 2, Title: "call mom", Completed: true}}
	svc.EXPECT().ListTodos(mock.Anything).Return(todos, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.TodoResponse](t, rec)
	if len(resp) != 2 {
		t.Fatalf("len = %d, want 2", len(resp))
	}
	if !resp[1].Completed {
		t.Error("resp[1].Completed = false, want true")
	}
}

func TestListTodos_EmptyIsArray(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want %q", got, "[]\n")
	}
}

func TestListTodos_Unavailable(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ListTodos(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- ToggleTodo ---

func TestToggleTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	toggled := buyMilk()
	toggled.Completed = true
	svc.EXPECT().ToggleTodo(mock.Anything, int64(1)).Return(&toggled, nil)

	rec := httptest.NewRecorder()
	req := toggleRequest("1")
	h.ToggleTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if !resp.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestToggleTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ToggleTodo(mock.Anything, int64(999)).
		Return(nil, &domain.NotFoundError{Entity: "todo", ID: 999})

	rec := httptest.NewRecorder()
	req := toggleRequest("999")
	h.ToggleTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestToggleTodo_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := toggleRequest("abc")
	h.ToggleTodo(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.id" {
		t.Errorf("Errors = %+v, want a single path.id entry", resp.Errors)
	}
}

// --- DeleteCompleted ---

func TestDeleteCompleted_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteCompleted(mock.Anything).Return(int64(3), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	h.DeleteCompleted(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	if resp["ok"] != true {
		t.Errorf("ok = %v, want true", resp["ok"])
	}
	if len(resp) != 1 {
		t.Errorf("response = %v, want only the ok field", resp)
	}
}

func TestDeleteCompleted_NothingToDelete(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteCompleted(mock.Anything).Return(int64(0), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	h.DeleteCompleted(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteCompleted_StorageError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().DeleteCompleted(mock.Anything).Return(int64(0), errStorage)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	h.DeleteCompleted(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}
