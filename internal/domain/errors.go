package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrPasswordMissMatch = errors.New("password missmatch")
	ErrUnknown           = errors.New("unknown error")
)

// ValidationError ошибка валидации запроса: ни одна строка в БД при этом
// не была затронута. Сообщение пригодно для показа пользователю.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InsufficientFundsError проверка достаточности средств не прошла.
// Available - доступный остаток на момент проверки под блокировкой.
type InsufficientFundsError struct {
	Source    TransferSourceType
	Available decimal.Decimal
}

func NewInsufficientFundsError(source TransferSourceType, available decimal.Decimal) error {
	return &InsufficientFundsError{Source: source, Available: available}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient %s balance, available: %s", e.Source, e.Available.StringFixed(2))
}
