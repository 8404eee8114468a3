package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrInvalidItemID     = NewPublicError("invalid service id")
	ErrUnknownTypeFilter = NewPublicError("unknown type filter")
	ErrConfirmRequired   = NewPublicError("archive must be confirmed")

	// 401 Unauthorized
	ErrUnauthorized = NewPublicError("invalid or expired token")

	// 403 Forbidden
	ErrForbidden = NewPublicError("you do not have access to manage services")

	// 404 Not Found
	ErrItemNotFound = NewPublicError("service not found")

	// 409 Conflict
	ErrArchivePending = NewPublicError("archive is already in progress for this service")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// PublicError — ошибка, текст которой можно показать пользователю.
type PublicError struct {
	msg string
}

func NewPublicError(msg string) *PublicError {
	return &PublicError{msg: msg}
}

func (p *PublicError) Error() string {
	return p.msg
}

// PublicMessage возвращает пользовательский текст первой PublicError в цепочке.
func PublicMessage(err error) (string, bool) {
	var pub *PublicError
	if errors.As(err, &pub) && pub.msg != "" {
		return pub.msg, true
	}

	return "", false
}

// MessageOr возвращает пользовательский текст ошибки или fallback.
func MessageOr(err error, fallback string) string {
	if msg, ok := PublicMessage(err); ok {
		return msg
	}

	return fallback
}
