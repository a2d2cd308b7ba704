package httperr

import (
	"net/http"

	"fieldbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	if code := errs.Code(err); code != errs.CodeInternal || status >= http.StatusInternalServerError {
		resp.Error.Code = code
	}
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error to its HTTP status and message.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}

type mapping struct {
	kind   error
	status int
	msg    string
}

var mappings = []mapping{
	{errs.ErrAuthRequired, http.StatusUnauthorized, "Authentication required"},
	{errs.ErrMissingContactInfo, http.StatusUnprocessableEntity, "A phone number is required before booking"},
	{errs.ErrIncompleteSelection, http.StatusBadRequest, "Select both a date and a time"},
	{errs.ErrPastTimeSelected, http.StatusUnprocessableEntity, "The selected time has already passed"},
	{errs.ErrPastDateSelected, http.StatusUnprocessableEntity, "The selected date has already passed"},
	{errs.ErrDuplicateReservation, http.StatusConflict, "You already have a reservation for this slot"},
	{errs.ErrCapacityExceeded, http.StatusConflict, "This slot is fully booked"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrReservationCancelled, http.StatusConflict, "Reservation already cancelled"},
	{errs.ErrSlotBusy, http.StatusConflict, "Slot is being booked by someone else, try again"},
	{errs.ErrFieldNotFound, http.StatusNotFound, "Field not found"},
	{errs.ErrFieldInactive, http.StatusUnprocessableEntity, "Field is not accepting reservations"},
	{errs.ErrMatchNotFound, http.StatusNotFound, "Match not found"},
	{errs.ErrAlreadyJoined, http.StatusConflict, "Already joined this match"},
	{errs.ErrMatchFull, http.StatusConflict, "Match is full"},
	{errs.ErrMatchEnded, http.StatusUnprocessableEntity, "Match has already started"},
	{errs.ErrNotParticipant, http.StatusConflict, "Not a participant of this match"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request is currently being processed"},
	{errs.ErrIdempotencyKeyMismatch, http.StatusUnprocessableEntity, "Idempotency key was used with a different request"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrStoreUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

func StatusOf(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.kind) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
