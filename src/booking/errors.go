package booking

import "errors"

var (
	ErrNotFound = errors.New("booking not found")
)

var (
	ErrInvalidTransition      = errors.New("booking status does not permit this transition")
	ErrAlreadyTerminal        = errors.New("booking is in a terminal state")
	ErrInvalidPaymentState    = errors.New("payment status does not permit this operation")
	ErrInvalidVisitTransition = errors.New("visit status does not permit this transition")
)

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrAmountExceedsDue = errors.New("amount exceeds the outstanding balance")
)

// ErrConcurrentModification is the only error a caller recovers from by
// reloading and retrying; the engine never retries on its own.
var ErrConcurrentModification = errors.New("booking was modified by another request")
