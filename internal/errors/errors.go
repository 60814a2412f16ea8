// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientPosition = errors.New("insufficient position")
	ErrInvalidOrder         = errors.New("invalid order")
	ErrPositionNotFound     = errors.New("position not found")
	ErrStaleLedger          = errors.New("persisted ledger is stale")
	ErrStoreUnavailable     = errors.New("ledger store unavailable")
	ErrSchemaUnknown        = errors.New("unknown ledger schema version")
	ErrConfigInvalid        = errors.New("invalid configuration")
)

// InsufficientFundsError is returned when a buy order requires more cash
// than the account holds, fees included.
type InsufficientFundsError struct {
	Required  float64
	Available float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %.2f, available %.2f", e.Required, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// NewInsufficientFundsError creates a new InsufficientFundsError.
func NewInsufficientFundsError(required, available float64) *InsufficientFundsError {
	return &InsufficientFundsError{
		Required:  required,
		Available: available,
	}
}

// InsufficientPositionError is returned when a sell order exceeds the held
// quantity, including sells of symbols that were never held (Available 0).
type InsufficientPositionError struct {
	Symbol    string
	Requested int
	Available int
}

func (e *InsufficientPositionError) Error() string {
	return fmt.Sprintf("insufficient position %s: requested %d, available %d", e.Symbol, e.Requested, e.Available)
}

func (e *InsufficientPositionError) Unwrap() error {
	return ErrInsufficientPosition
}

// NewInsufficientPositionError creates a new InsufficientPositionError.
func NewInsufficientPositionError(symbol string, requested, available int) *InsufficientPositionError {
	return &InsufficientPositionError{
		Symbol:    symbol,
		Requested: requested,
		Available: available,
	}
}

// OrderError represents a rejected order request.
type OrderError struct {
	Symbol string
	Side   string
	Reason string
	Err    error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order rejected [%s %s]: %s: %v", e.Side, e.Symbol, e.Reason, e.Err)
	}
	return fmt.Sprintf("order rejected [%s %s]: %s", e.Side, e.Symbol, e.Reason)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError.
func NewOrderError(symbol, side, reason string, err error) *OrderError {
	return &OrderError{
		Symbol: symbol,
		Side:   side,
		Reason: reason,
		Err:    err,
	}
}

// ValidationError represents a validation error on an inbound request.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidOrder
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// StoreError represents a persistence failure.
type StoreError struct {
	Op  string // "load" or "save"
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error [%s %s]: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op, key string, err error) *StoreError {
	return &StoreError{
		Op:  op,
		Key: key,
		Err: err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
