// Package apperr defines the error values services reject with and the single
// translation from any error to an HTTP status and user-visible message.
package apperr

import (
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// Postgres SQLSTATE codes the API maps to client errors.
const (
	CodeInvalidTextRepresentation = "22P02"
	CodeNumericValueOutOfRange    = "22003"
	CodeNotNullViolation          = "23502"
	CodeForeignKeyViolation       = "23503"
)

const (
	MsgBadRequest  = "Bad request"
	MsgNotFound    = "Not found"
	MsgServerError = "Server Error"
	MsgInvalidPath = "Invalid path"
	MsgItemMissing = "Item not found"
)

// Error is a rejection that already knows how it should be shown to the client.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Translate resolves err to a status and message. Recognised store codes are
// checked first, then *Error anywhere in the chain. Anything else is internal and
// the caller is expected to log it.
func Translate(err error) (status int, message string, internal bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeInvalidTextRepresentation, CodeNumericValueOutOfRange, CodeNotNullViolation:
			return http.StatusBadRequest, MsgBadRequest, false
		case CodeForeignKeyViolation:
			return http.StatusNotFound, MsgNotFound, false
		}
	}

	var appErr *Error
	if errors.As(err, &appErr) && appErr.Status != 0 && appErr.Message != "" {
		return appErr.Status, appErr.Message, false
	}

	return http.StatusInternalServerError, MsgServerError, true
}
