package reservation

import (
	"strings"
	"time"
)

const MaxRoomIDLength = 32

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Minutes is the slot length in whole minutes, rounded down.
func (ts TimeSlot) Minutes() int64 {
	return int64(ts.Duration() / time.Minute)
}

// Overlaps uses half-open semantics: slots that only touch do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return other.end.After(ts.start) && other.start.Before(ts.end)
}

// RoomID is the canonical string form of a classroom identifier.
type RoomID struct {
	value string
}

func NewRoomID(s string) (RoomID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxRoomIDLength {
		return RoomID{}, ErrInvalidRoomID
	}
	return RoomID{value: s}, nil
}

func (r RoomID) String() string {
	return r.value
}

// Matches compares a recognizer output against the canonical identifier.
func (r RoomID) Matches(recognized string) bool {
	return strings.TrimSpace(recognized) == r.value
}
