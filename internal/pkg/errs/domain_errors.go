package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query sides
var (
	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationConflict  = errors.New("reservation conflict")
	ErrIllegalState         = errors.New("illegal reservation state")
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
	ErrInvalidRoomID        = errors.New("invalid room id")
	ErrVerificationMismatch = errors.New("room verification mismatch")
	ErrRecognitionFailed    = errors.New("room recognition failed")

	// Ledger errors
	ErrUnknownEvent  = errors.New("unknown trust event")
	ErrUnknownReason = errors.New("unknown point reason")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Query errors
	ErrInvalidCursor = errors.New("invalid cursor")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
