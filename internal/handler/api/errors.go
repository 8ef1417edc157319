package api

import (
	"net/http"

	"classroom-reservation/internal/handler/httperr"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("authenticated principal missing")

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrReservationConflict, http.StatusConflict, "Room is already reserved for this time slot"},
	{errs.ErrIllegalState, http.StatusConflict, "Reservation is not in a state that allows this operation"},
	{errs.ErrVerificationMismatch, http.StatusUnprocessableEntity, "Recognized room does not match the reservation"},
	{errs.ErrRecognitionFailed, http.StatusBadGateway, "Room recognition failed"},
	{errs.ErrInvalidTimeSlot, http.StatusBadRequest, "End time must be after start time"},
	{errs.ErrInvalidRoomID, http.StatusBadRequest, "Invalid room id"},
	{errs.ErrUnknownEvent, http.StatusBadRequest, "Unknown trust event"},
	{errs.ErrUnknownReason, http.StatusBadRequest, "Unknown point reason"},
	{errs.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidBasis, http.StatusBadRequest, "Either trust or points must be provided"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
}

func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func abortWithUseCaseError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}
