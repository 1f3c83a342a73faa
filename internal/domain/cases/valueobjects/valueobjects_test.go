package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssueType(t *testing.T) {
	for _, valid := range []string{"Plans", "Billing", "Technical", "Activation", "Shipping", "Rentals", "Other"} {
		it, err := NewIssueType(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, it.String())
	}

	for _, invalid := range []string{"", "billing", "Gardening"} {
		_, err := NewIssueType(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestNormalizeIssueType(t *testing.T) {
	tests := []struct {
		input   string
		want    IssueType
		coerced bool
	}{
		{"Billing", IssueBilling, false},
		{"Other", IssueOther, false},
		{"", IssueOther, true},
		{"Gardening", IssueOther, true},
		{"billing", IssueOther, true},
	}

	for _, tt := range tests {
		got, coerced := NormalizeIssueType(tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, tt.coerced, coerced, tt.input)
	}
}

func TestNewPriority(t *testing.T) {
	for _, valid := range []string{"Low", "Normal", "High", "Urgent"} {
		p, err := NewPriority(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, p.String())
	}

	for _, invalid := range []string{"", "normal", "ASAP"} {
		_, err := NewPriority(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestNormalizePriority(t *testing.T) {
	got, coerced := NormalizePriority("Urgent")
	assert.Equal(t, PriorityUrgent, got)
	assert.False(t, coerced)

	got, coerced = NormalizePriority("ASAP")
	assert.Equal(t, PriorityNormal, got)
	assert.True(t, coerced)

	got, coerced = NormalizePriority("")
	assert.Equal(t, PriorityNormal, got)
	assert.True(t, coerced)
}

func TestStatus(t *testing.T) {
	open, err := NewStatus("Open")
	require.NoError(t, err)
	closed, err := NewStatus("Closed")
	require.NoError(t, err)

	assert.True(t, open.IsOpen())
	assert.True(t, closed.IsClosed())

	assert.True(t, open.CanTransitionTo(closed))
	assert.True(t, closed.CanTransitionTo(open))
	assert.False(t, open.CanTransitionTo(open))
	assert.False(t, closed.CanTransitionTo(closed))

	_, err = NewStatus("Pending")
	assert.Error(t, err)
}
