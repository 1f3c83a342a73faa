package valueobjects

import "fmt"

type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:   true,
	StatusClosed: true,
}

var statusTransitions = map[Status][]Status{
	StatusOpen:   {StatusClosed},
	StatusClosed: {StatusOpen},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
