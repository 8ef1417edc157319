package trust

import (
	"errors"
	"sort"
)

var ErrUnknownEvent = errors.New("unknown trust event")

type Event string

const (
	EventOnTimeCheckIn   Event = "on_time_check_in"
	EventCheckIn         Event = "check_in"
	EventCheckOut        Event = "check_out"
	EventReportEmptyRoom Event = "report_empty_room"
	EventNoShow          Event = "no_show"
	EventNoCheckOut      Event = "no_check_out"
)

// deltas in hundredths of a point
var eventDeltas = map[Event]int{
	EventOnTimeCheckIn:   10,
	EventCheckIn:         5,
	EventCheckOut:        25,
	EventReportEmptyRoom: 50,
	EventNoShow:          -30,
	EventNoCheckOut:      -10,
}

func ParseEvent(s string) (Event, error) {
	e := Event(s)
	if !e.IsValid() {
		return "", ErrUnknownEvent
	}
	return e, nil
}

func (e Event) IsValid() bool {
	_, ok := eventDeltas[e]
	return ok
}

func (e Event) String() string {
	return string(e)
}

// DeltaCenti is the score change in hundredths.
func (e Event) DeltaCenti() int {
	return eventDeltas[e]
}

func Events() []Event {
	out := make([]Event, 0, len(eventDeltas))
	for e := range eventDeltas {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
