package cases

import (
	"context"

	vo "casedesk/internal/domain/cases/valueobjects"
)

// SequenceAllocator hands out fresh, unique, strictly increasing integers
// for a named counter, atomically with respect to concurrent callers.
// Gaps from allocate-then-fail races are acceptable; duplicates are not.
type SequenceAllocator interface {
	Next(ctx context.Context, key string) (uint64, error)
}

// Repository is the persistence contract for case records and their
// timelines.
type Repository interface {
	// Create persists a new case. The case number must already be stamped
	// via the sequence allocator before Create is called.
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id uint) (*Case, error)
	List(ctx context.Context, filter Filter) ([]*Case, int64, error)
	// AppendLog atomically appends entry to the case timeline and bumps the
	// case's updated time. Concurrent appends to the same case both survive.
	AppendLog(ctx context.Context, caseID uint, entry *LogEntry) (*Case, error)
	Update(ctx context.Context, c *Case) error
	Delete(ctx context.Context, id uint) error
}

// Filter narrows a case listing. Nil fields are not applied. Q is a
// case-insensitive substring match across customer name/email/phone, the
// description, and every timeline entry's message.
type Filter struct {
	Q         string
	IssueType *vo.IssueType
	Agent     *string
	Priority  *vo.Priority
	Status    *vo.Status
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
