package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies. A create request is one short title,
// so anything near this size is not a todo.
const maxJSONBodyBytes = 64 << 10

// parseID reads an int64 path parameter. A value that is not a base-10
// integer is a validation failure reported against the parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

// writeJSON writes v as the JSON body with the given status code. Encoding
// failures can only be logged since the status is already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// decodeJSONBody decodes exactly one JSON value from the request body into
// dst. Every failure is a 422 with a "body" error describing what was wrong;
// it writes that response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": bodyErrorMessage(err)},
		})
		return false
	}
	return true
}

var errTrailingData = errors.New("trailing data after JSON value")

func bodyErrorMessage(err error) string {
	var (
		maxErr  *http.MaxBytesError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		return "must not be empty"
	case errors.As(err, &maxErr):
		return "must not exceed " + strconv.FormatInt(maxErr.Limit, 10) + " bytes"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return typeErr.Field + " must be a " + typeErr.Type.String()
	case errors.Is(err, errTrailingData):
		return "must contain a single JSON object"
	default:
		return "invalid JSON"
	}
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
