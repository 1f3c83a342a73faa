package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityNormal: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

// NormalizePriority coerces unrecognized or empty input to PriorityNormal.
// The second return reports whether coercion happened.
func NormalizePriority(s string) (Priority, bool) {
	p := Priority(s)
	if p.IsValid() {
		return p, false
	}
	return PriorityNormal, true
}
