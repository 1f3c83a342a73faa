package usecases

import (
	"context"

	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/logger"
)

type mockCaseRepository struct {
	CreateFunc    func(ctx context.Context, c *cases.Case) error
	GetByIDFunc   func(ctx context.Context, id uint) (*cases.Case, error)
	ListFunc      func(ctx context.Context, filter cases.Filter) ([]*cases.Case, int64, error)
	AppendLogFunc func(ctx context.Context, caseID uint, entry *cases.LogEntry) (*cases.Case, error)
	UpdateFunc    func(ctx context.Context, c *cases.Case) error
	DeleteFunc    func(ctx context.Context, id uint) error
}

func (m *mockCaseRepository) Create(ctx context.Context, c *cases.Case) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCaseRepository) GetByID(ctx context.Context, id uint) (*cases.Case, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCaseRepository) List(ctx context.Context, filter cases.Filter) ([]*cases.Case, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCaseRepository) AppendLog(ctx context.Context, caseID uint, entry *cases.LogEntry) (*cases.Case, error) {
	if m.AppendLogFunc != nil {
		return m.AppendLogFunc(ctx, caseID, entry)
	}
	return nil, nil
}

func (m *mockCaseRepository) Update(ctx context.Context, c *cases.Case) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCaseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTransactionRunner invokes the function directly; unit tests have no
// real transaction to manage.
type mockTransactionRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockSequenceAllocator struct {
	NextFunc func(ctx context.Context, key string) (uint64, error)
}

func (m *mockSequenceAllocator) Next(ctx context.Context, key string) (uint64, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, key)
	}
	return 1, nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
