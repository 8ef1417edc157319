package reservation

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusInUse     Status = "in_use"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusReserved: {StatusInUse, StatusCancelled},
	StatusInUse:    {StatusEnded},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusInUse, StatusEnded, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
