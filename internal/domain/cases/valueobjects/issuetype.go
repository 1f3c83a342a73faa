package valueobjects

import "fmt"

type IssueType string

const (
	IssuePlans      IssueType = "Plans"
	IssueBilling    IssueType = "Billing"
	IssueTechnical  IssueType = "Technical"
	IssueActivation IssueType = "Activation"
	IssueShipping   IssueType = "Shipping"
	IssueRentals    IssueType = "Rentals"
	IssueOther      IssueType = "Other"
)

var validIssueTypes = map[IssueType]bool{
	IssuePlans:      true,
	IssueBilling:    true,
	IssueTechnical:  true,
	IssueActivation: true,
	IssueShipping:   true,
	IssueRentals:    true,
	IssueOther:      true,
}

func (t IssueType) String() string {
	return string(t)
}

func (t IssueType) IsValid() bool {
	return validIssueTypes[t]
}

func NewIssueType(s string) (IssueType, error) {
	t := IssueType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid issue type: %s", s)
	}
	return t, nil
}

// NormalizeIssueType coerces unrecognized or empty input to IssueOther.
// The second return reports whether coercion happened, so callers can log
// or assert on it instead of the substitution being silent.
func NormalizeIssueType(s string) (IssueType, bool) {
	t := IssueType(s)
	if t.IsValid() {
		return t, false
	}
	return IssueOther, true
}
