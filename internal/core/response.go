// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// JSONError renders an AppError as a structured body. Anything that is not an
// AppError is treated as unexpected and surfaces as a bare 500.
func JSONError(w http.ResponseWriter, err error) {
	if appErr, ok := AsAppError(err); ok {
		WriteJSON(w, appErr.Status, ErrorBody{
			Error:   appErr.Code,
			Message: appErr.Message,
		})
		return
	}

	InternalServerError(w, err)
}

func BadRequest(w http.ResponseWriter, code string) {
	WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: code})
}

func NotFound(w http.ResponseWriter) {
	WriteJSON(w, http.StatusNotFound, ErrorBody{Error: "not_found"})
}

func Forbidden(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusForbidden, ErrorBody{
		Error:   "forbidden",
		Message: message,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusUnauthorized, ErrorBody{
		Error:   "unauthorized",
		Message: message,
	})
}

// InternalServerError logs the cause and leaks nothing to the client.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, ErrorBody{
		Error: "internal_error",
	})
}

func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	ok := false
	if v, isV := err.(validator.ValidationErrors); isV {
		verrs = v
		ok = true
	}
	if !ok {
		return "invalid request"
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}

	return "invalid fields: " + strings.Join(fields, ", ")
}
