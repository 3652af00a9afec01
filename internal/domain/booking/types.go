package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

// Status is the booking lifecycle state. Every booking starts pending; the
// state machine in this package is the only legitimate mutation path.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the authoritative table. Rejected, completed and cancelled
// are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusRejected:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the reachable states from s.
func (s Status) NextStatuses() []Status {
	return append([]Status(nil), transitions[s]...)
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusRejected, StatusCompleted, StatusCancelled}
}
