// Package cases holds the support-case aggregate: the case record, its
// append-only timeline of log entries, and the repository contracts.
package cases

import (
	"fmt"
	"time"

	vo "casedesk/internal/domain/cases/valueobjects"
)

// Customer identifies who the case is about. The ID is an optional
// reference into the external customer system.
type Customer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Case is a support ticket tracking one customer issue through its
// lifecycle. The case number is assigned exactly once at creation and is
// never reused, even after the case is deleted.
type Case struct {
	id          uint
	number      uint64
	customer    Customer
	issueType   vo.IssueType
	priority    vo.Priority
	description string
	status      vo.Status
	archived    bool
	agent       string
	attachments []Attachment
	timeline    []*LogEntry
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCase(
	customer Customer,
	issueType vo.IssueType,
	priority vo.Priority,
	description string,
	agent string,
	attachments []Attachment,
) (*Case, error) {
	if len(customer.Name) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if !issueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	now := time.Now().UTC()
	return &Case{
		customer:    customer,
		issueType:   issueType,
		priority:    priority,
		description: description,
		status:      vo.StatusOpen,
		archived:    false,
		agent:       agent,
		attachments: attachments,
		timeline:    []*LogEntry{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCase(
	id uint,
	number uint64,
	customer Customer,
	issueType vo.IssueType,
	priority vo.Priority,
	description string,
	status vo.Status,
	archived bool,
	agent string,
	attachments []Attachment,
	createdAt, updatedAt time.Time,
) (*Case, error) {
	if id == 0 {
		return nil, fmt.Errorf("case ID cannot be zero")
	}
	if number == 0 {
		return nil, fmt.Errorf("case number is required")
	}
	if !issueType.IsValid() {
		return nil, fmt.Errorf("invalid issue type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if attachments == nil {
		attachments = []Attachment{}
	}

	return &Case{
		id:          id,
		number:      number,
		customer:    customer,
		issueType:   issueType,
		priority:    priority,
		description: description,
		status:      status,
		archived:    archived,
		agent:       agent,
		attachments: attachments,
		timeline:    []*LogEntry{},
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Case) ID() uint {
	return c.id
}

func (c *Case) Number() uint64 {
	return c.number
}

func (c *Case) Customer() Customer {
	return c.customer
}

func (c *Case) IssueType() vo.IssueType {
	return c.issueType
}

func (c *Case) Priority() vo.Priority {
	return c.priority
}

func (c *Case) Description() string {
	return c.description
}

func (c *Case) Status() vo.Status {
	return c.status
}

func (c *Case) Archived() bool {
	return c.archived
}

func (c *Case) Agent() string {
	return c.agent
}

func (c *Case) Attachments() []Attachment {
	attachmentsCopy := make([]Attachment, len(c.attachments))
	copy(attachmentsCopy, c.attachments)
	return attachmentsCopy
}

func (c *Case) Timeline() []*LogEntry {
	timelineCopy := make([]*LogEntry, len(c.timeline))
	copy(timelineCopy, c.timeline)
	return timelineCopy
}

func (c *Case) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Case) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Case) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("case ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetNumber stamps the allocated case number. Assigned exactly once, at
// creation, by the sequence allocator.
func (c *Case) SetNumber(number uint64) error {
	if c.number != 0 {
		return fmt.Errorf("case number is already set")
	}
	if number == 0 {
		return fmt.Errorf("case number cannot be zero")
	}
	c.number = number
	return nil
}

// AppendTimeline adds an entry to the in-memory view of the timeline.
// The timeline is append-only: existing entries are never touched. The
// repository owns the persisted updated time, so none is stamped here.
func (c *Case) AppendTimeline(entry *LogEntry) error {
	if entry == nil {
		return fmt.Errorf("log entry cannot be nil")
	}
	if entry.CaseID() != c.id {
		return fmt.Errorf("log entry case ID mismatch")
	}

	c.timeline = append(c.timeline, entry)
	return nil
}

// Close moves the case to Closed and marks it archived. Closing a case
// that is already closed is a no-op.
func (c *Case) Close() {
	if c.status.IsClosed() {
		return
	}
	c.status = vo.StatusClosed
	c.archived = true
	c.updatedAt = time.Now().UTC()
}

// Reopen moves a closed case back to Open and clears the archived flag.
// Reopening an open case is a no-op.
func (c *Case) Reopen() {
	if c.status.IsOpen() {
		return
	}
	c.status = vo.StatusOpen
	c.archived = false
	c.updatedAt = time.Now().UTC()
}
