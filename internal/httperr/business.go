package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
)

// BusinessError is a rule violation detected by a use case. Code is a stable
// machine-readable identifier, Message is meant for humans.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func InvalidInput(code, message string) error {
	return ErrBusiness(KindInvalidInput, code, message)
}

func NotFoundErr(code, message string) error {
	return ErrBusiness(KindNotFound, code, message)
}

func ForbiddenErr(code, message string) error {
	return ErrBusiness(KindForbidden, code, message)
}

func ConflictErr(code, message string) error {
	return ErrBusiness(KindConflict, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns the kind of a business error, or "" for anything else.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// CodeOf returns the code of a business error, or "" for anything else.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// --------------------------------------------------
// PostgreSQL
// --------------------------------------------------

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports a unique_violation (23505).
func IsUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// IsSerializationFailure reports a serialization_failure (40001) raised by
// a serializable transaction that lost a race.
func IsSerializationFailure(err error) bool {
	return pgCode(err) == "40001"
}
