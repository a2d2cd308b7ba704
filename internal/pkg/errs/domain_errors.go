package errs

import "errors"

// Error kinds reported by the booking and roster flows. Callers match with errors.Is.
var (
	// Profile / identity
	ErrAuthRequired       = errors.New("authentication required")
	ErrMissingContactInfo = errors.New("missing contact info")

	// Reservation
	ErrIncompleteSelection  = errors.New("incomplete selection")
	ErrPastTimeSelected     = errors.New("past time selected")
	ErrPastDateSelected     = errors.New("past date selected")
	ErrDuplicateReservation = errors.New("duplicate reservation")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationCancelled = errors.New("reservation already cancelled")
	ErrSlotBusy             = errors.New("slot is busy")

	// Field
	ErrFieldNotFound = errors.New("field not found")
	ErrFieldInactive = errors.New("field inactive")

	// Match
	ErrMatchNotFound  = errors.New("match not found")
	ErrAlreadyJoined  = errors.New("already joined")
	ErrMatchFull      = errors.New("match full")
	ErrMatchEnded     = errors.New("match ended")
	ErrNotParticipant = errors.New("not a participant")

	// Idempotency
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyKeyMismatch = errors.New("idempotency key reused with different request")

	// Validation
	ErrDomainValidation = errors.New("domain validation error")

	// Persistence collaborator
	ErrStoreUnavailable = errors.New("store unavailable")
)
