package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casedesk/internal/domain/cases"
	vo "casedesk/internal/domain/cases/valueobjects"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/services/sanitizer"
)

func newCloseCaseUseCase(repo *mockCaseRepository) *CloseCaseUseCase {
	return NewCloseCaseUseCase(repo, sanitizer.NewService(), &mockLogger{})
}

func TestCloseCaseUseCase_Execute(t *testing.T) {
	t.Run("closes open case and marks it archived", func(t *testing.T) {
		var updatedCase *cases.Case
		repo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*cases.Case, error) {
				if updatedCase != nil {
					return updatedCase, nil
				}
				return reconstructTestCase(t, id, 42, vo.StatusOpen), nil
			},
			UpdateFunc: func(ctx context.Context, c *cases.Case) error {
				updatedCase = c
				return nil
			},
		}

		result, err := newCloseCaseUseCase(repo).Execute(context.Background(), CloseCaseCommand{
			CaseID:     7,
			ActingUser: "Sam Support",
		})
		require.NoError(t, err)

		assert.Equal(t, "Closed", updatedCase.Status().String())
		assert.True(t, updatedCase.Archived())
		assert.Equal(t, "Closed", result.Status)
		assert.True(t, result.Archived)
	})

	t.Run("appends closing summary entry when provided", func(t *testing.T) {
		var appendedEntry *cases.LogEntry
		repo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*cases.Case, error) {
				return reconstructTestCase(t, id, 42, vo.StatusOpen), nil
			},
			AppendLogFunc: func(ctx context.Context, caseID uint, entry *cases.LogEntry) (*cases.Case, error) {
				appendedEntry = entry
				return reconstructTestCase(t, caseID, 42, vo.StatusClosed), nil
			},
		}

		_, err := newCloseCaseUseCase(repo).Execute(context.Background(), CloseCaseCommand{
			CaseID:     7,
			Summary:    "refund issued",
			ActingUser: "Sam Support",
		})
		require.NoError(t, err)

		require.NotNil(t, appendedEntry)
		assert.Equal(t, "Closed — refund issued", appendedEntry.Message())
		assert.Equal(t, "Sam Support", appendedEntry.Author())
	})

	t.Run("closing an already closed case is a no-op", func(t *testing.T) {
		updateCalled := false
		repo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*cases.Case, error) {
				return reconstructTestCase(t, id, 42, vo.StatusClosed), nil
			},
			UpdateFunc: func(ctx context.Context, c *cases.Case) error {
				updateCalled = true
				return nil
			},
		}

		result, err := newCloseCaseUseCase(repo).Execute(context.Background(), CloseCaseCommand{
			CaseID:     7,
			ActingUser: "Sam Support",
		})
		require.NoError(t, err)

		assert.False(t, updateCalled)
		assert.Equal(t, "Closed", result.Status)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*cases.Case, error) {
				return nil, errors.NewNotFoundError("case not found")
			},
		}

		_, err := newCloseCaseUseCase(repo).Execute(context.Background(), CloseCaseCommand{
			CaseID:     999,
			ActingUser: "Sam Support",
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestReopenCaseUseCase_Execute(t *testing.T) {
	t.Run("reopens closed case and clears archived flag", func(t *testing.T) {
		var updatedCase *cases.Case
		repo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*cases.Case, error) {
				if updatedCase != nil {
					return updatedCase, nil
				}
				return reconstructTestCase(t, id, 42, vo.StatusClosed), nil
			},
			UpdateFunc: func(ctx context.Context, c *cases.Case) error {
				updatedCase = c
				return nil
			},
		}

		result, err := NewReopenCaseUseCase(repo, &mockLogger{}).
			Execute(context.Background(), ReopenCaseCommand{CaseID: 7, ActingUser: "Sam Support"})
		require.NoError(t, err)

		assert.Equal(t, "Open", updatedCase.Status().String())
		assert.False(t, updatedCase.Archived())
		assert.Equal(t, "Open", result.Status)
		assert.False(t, result.Archived)
	})

	t.Run("reopening an open case is a no-op", func(t *testing.T) {
		updateCalled := false
		repo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*cases.Case, error) {
				return reconstructTestCase(t, id, 42, vo.StatusOpen), nil
			},
			UpdateFunc: func(ctx context.Context, c *cases.Case) error {
				updateCalled = true
				return nil
			},
		}

		result, err := NewReopenCaseUseCase(repo, &mockLogger{}).
			Execute(context.Background(), ReopenCaseCommand{CaseID: 7, ActingUser: "Sam Support"})
		require.NoError(t, err)

		assert.False(t, updateCalled)
		assert.Equal(t, "Open", result.Status)
	})
}
