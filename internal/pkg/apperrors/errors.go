package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pooling/dispatch core. Callers branch with errors.Is;
// wrapping with %w keeps the classification through repository and usecase layers.
var (
	// ErrNotFound means a referenced entity is absent; fatal to the operation.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidOperation means a state-machine precondition was violated.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrConcurrencyConflict covers lock timeouts and optimistic retry
	// exhaustion. Retryable: callers should repeat the whole operation.
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrVersionConflict signals an optimistic version mismatch on write.
	// Internal to the retry loop; surfaces as ErrConcurrencyConflict when
	// retries run out.
	ErrVersionConflict = errors.New("version conflict")
)

// NotFoundf wraps ErrNotFound with entity context
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// InvalidOperationf wraps ErrInvalidOperation with context
func InvalidOperationf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidOperation)
}

// Conflictf wraps ErrConcurrencyConflict with context
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConcurrencyConflict)
}

// IsRetryable reports whether the caller should retry the whole operation
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}
