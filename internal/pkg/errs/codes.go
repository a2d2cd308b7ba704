package errs

// CodeInternal is reported for errors that carry no known kind.
const CodeInternal = "INTERNAL"

var codes = []struct {
	err  error
	code string
}{
	{ErrAuthRequired, "AUTH_REQUIRED"},
	{ErrMissingContactInfo, "MISSING_CONTACT_INFO"},
	{ErrIncompleteSelection, "INCOMPLETE_SELECTION"},
	{ErrPastTimeSelected, "PAST_TIME_SELECTED"},
	{ErrPastDateSelected, "PAST_DATE_SELECTED"},
	{ErrDuplicateReservation, "DUPLICATE_RESERVATION"},
	{ErrCapacityExceeded, "CAPACITY_EXCEEDED"},
	{ErrReservationNotFound, "RESERVATION_NOT_FOUND"},
	{ErrReservationCancelled, "RESERVATION_CANCELLED"},
	{ErrSlotBusy, "SLOT_BUSY"},
	{ErrFieldNotFound, "FIELD_NOT_FOUND"},
	{ErrFieldInactive, "FIELD_INACTIVE"},
	{ErrMatchNotFound, "MATCH_NOT_FOUND"},
	{ErrAlreadyJoined, "ALREADY_JOINED"},
	{ErrMatchFull, "MATCH_FULL"},
	{ErrMatchEnded, "MATCH_ENDED"},
	{ErrNotParticipant, "NOT_PARTICIPANT"},
	{ErrIdempotencyInProgress, "IDEMPOTENCY_IN_PROGRESS"},
	{ErrIdempotencyKeyMismatch, "IDEMPOTENCY_KEY_MISMATCH"},
	{ErrDomainValidation, "VALIDATION_FAILED"},
	{ErrStoreUnavailable, "STORE_UNAVAILABLE"},
}

// Code returns the stable machine-readable name of err's kind, "" for nil.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}
