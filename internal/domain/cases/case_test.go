package cases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "casedesk/internal/domain/cases/valueobjects"
)

func newOpenCase(t *testing.T) *Case {
	c, err := NewCase(
		Customer{Name: "Jane Doe", Email: "jane@example.com"},
		vo.IssueBilling,
		vo.PriorityNormal,
		"invoice looks wrong",
		"Agent Smith",
		nil,
	)
	require.NoError(t, err)
	return c
}

func TestNewCase(t *testing.T) {
	t.Run("valid case starts open and unarchived", func(t *testing.T) {
		c := newOpenCase(t)

		assert.Equal(t, vo.StatusOpen, c.Status())
		assert.False(t, c.Archived())
		assert.Empty(t, c.Timeline())
		assert.Zero(t, c.ID())
		assert.Zero(t, c.Number())
	})

	t.Run("customer name is required", func(t *testing.T) {
		_, err := NewCase(Customer{}, vo.IssueBilling, vo.PriorityNormal, "desc", "", nil)
		assert.Error(t, err)
	})

	t.Run("invalid issue type is rejected", func(t *testing.T) {
		_, err := NewCase(Customer{Name: "Jane"}, vo.IssueType("Gardening"), vo.PriorityNormal, "desc", "", nil)
		assert.Error(t, err)
	})

	t.Run("description over limit is rejected", func(t *testing.T) {
		long := strings.Repeat("a", 5001)
		_, err := NewCase(Customer{Name: "Jane"}, vo.IssueBilling, vo.PriorityNormal, long, "", nil)
		assert.Error(t, err)
	})
}

func TestCase_SetIDAndSetNumber(t *testing.T) {
	c := newOpenCase(t)

	require.NoError(t, c.SetID(7))
	assert.Error(t, c.SetID(8), "ID is set exactly once")
	assert.Equal(t, uint(7), c.ID())

	require.NoError(t, c.SetNumber(42))
	assert.Error(t, c.SetNumber(43), "number is set exactly once")
	assert.Equal(t, uint64(42), c.Number())

	fresh := newOpenCase(t)
	assert.Error(t, fresh.SetID(0))
	assert.Error(t, fresh.SetNumber(0))
}

func TestCase_CloseAndReopen(t *testing.T) {
	c := newOpenCase(t)

	c.Close()
	assert.Equal(t, vo.StatusClosed, c.Status())
	assert.True(t, c.Archived())

	// Closing again changes nothing.
	before := c.UpdatedAt()
	c.Close()
	assert.Equal(t, before, c.UpdatedAt())

	c.Reopen()
	assert.Equal(t, vo.StatusOpen, c.Status())
	assert.False(t, c.Archived())

	// Reopening an open case changes nothing.
	before = c.UpdatedAt()
	c.Reopen()
	assert.Equal(t, before, c.UpdatedAt())
}

func TestCase_AppendTimeline(t *testing.T) {
	c := newOpenCase(t)
	require.NoError(t, c.SetID(1))

	entry, err := NewLogEntry(1, "Sam Support", "first note", nil)
	require.NoError(t, err)
	require.NoError(t, c.AppendTimeline(entry))

	second, err := NewLogEntry(1, "Sam Support", "second note", nil)
	require.NoError(t, err)
	require.NoError(t, c.AppendTimeline(second))

	timeline := c.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, "first note", timeline[0].Message())
	assert.Equal(t, "second note", timeline[1].Message())

	t.Run("nil entry is rejected", func(t *testing.T) {
		assert.Error(t, c.AppendTimeline(nil))
	})

	t.Run("entry for another case is rejected", func(t *testing.T) {
		other, err := NewLogEntry(99, "Sam Support", "wrong case", nil)
		require.NoError(t, err)
		assert.Error(t, c.AppendTimeline(other))
	})
}

func TestNewLogEntry(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		entry, err := NewLogEntry(1, "Sam Support", "note", nil)
		require.NoError(t, err)
		assert.Equal(t, "Sam Support", entry.Author())
		assert.Empty(t, entry.Files())
		assert.False(t, entry.At().IsZero())
	})

	t.Run("files without message", func(t *testing.T) {
		entry, err := NewLogEntry(1, "Sam Support", "", []Attachment{{Filename: "a.png"}})
		require.NoError(t, err)
		assert.Len(t, entry.Files(), 1)
	})

	t.Run("empty entry is rejected", func(t *testing.T) {
		_, err := NewLogEntry(1, "Sam Support", "", nil)
		assert.Error(t, err)
	})

	t.Run("author is required", func(t *testing.T) {
		_, err := NewLogEntry(1, "", "note", nil)
		assert.Error(t, err)
	})

	t.Run("id is set exactly once", func(t *testing.T) {
		entry, err := NewLogEntry(1, "Sam Support", "note", nil)
		require.NoError(t, err)
		require.NoError(t, entry.SetID(10))
		assert.Error(t, entry.SetID(11))
	})
}
