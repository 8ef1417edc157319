package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"classroom-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 100
	DefaultListLimit = 20

	cursorPrefix = "h1"
	cursorSep    = "."
)

// Cursor is opaque to clients. After names the last item of the previous page.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeHistoryCursor keeps microseconds, the precision postgres stores.
func EncodeHistoryCursor(recordedAt time.Time, eventID uuid.UUID) string {
	raw := strings.Join([]string{
		cursorPrefix,
		strconv.FormatInt(recordedAt.UnixMicro(), 10),
		eventID.String(),
	}, cursorSep)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeHistoryCursor marks every failure with ErrInvalidCursor.
func DecodeHistoryCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor encoding"), ErrInvalidCursor)
	}

	parts := strings.Split(string(raw), cursorSep)
	if len(parts) != 3 || parts[0] != cursorPrefix {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Newf("malformed cursor %q", raw), ErrInvalidCursor)
	}

	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor timestamp"), ErrInvalidCursor)
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor event id"), ErrInvalidCursor)
	}
	return time.UnixMicro(micros).UTC(), id, nil
}

// ClampLimit maps non-positive limits to the default and caps the rest.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
