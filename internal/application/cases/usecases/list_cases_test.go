package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casedesk/internal/domain/cases"
	vo "casedesk/internal/domain/cases/valueobjects"
	"casedesk/internal/shared/errors"
)

func TestListCasesUseCase_Execute(t *testing.T) {
	t.Run("passes validated filter to repository", func(t *testing.T) {
		var gotFilter cases.Filter
		repo := &mockCaseRepository{
			ListFunc: func(ctx context.Context, filter cases.Filter) ([]*cases.Case, int64, error) {
				gotFilter = filter
				return []*cases.Case{reconstructTestCase(t, 1, 42, vo.StatusOpen)}, 1, nil
			},
		}

		result, err := NewListCasesUseCase(repo, &mockLogger{}).Execute(context.Background(), ListCasesQuery{
			Q:         "billing",
			IssueType: "Billing",
			Priority:  "Normal",
			Status:    "Open",
			Agent:     "Agent Smith",
			Page:      2,
			PageSize:  25,
		})
		require.NoError(t, err)

		assert.Equal(t, "billing", gotFilter.Q)
		require.NotNil(t, gotFilter.IssueType)
		assert.Equal(t, vo.IssueBilling, *gotFilter.IssueType)
		require.NotNil(t, gotFilter.Priority)
		assert.Equal(t, vo.PriorityNormal, *gotFilter.Priority)
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, vo.StatusOpen, *gotFilter.Status)
		require.NotNil(t, gotFilter.Agent)
		assert.Equal(t, "Agent Smith", *gotFilter.Agent)
		assert.Equal(t, 2, gotFilter.Page)
		assert.Equal(t, 25, gotFilter.PageSize)

		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Cases, 1)
		assert.Equal(t, uint64(42), result.Cases[0].CaseNumber)
	})

	t.Run("clamps pagination", func(t *testing.T) {
		var gotFilter cases.Filter
		repo := &mockCaseRepository{
			ListFunc: func(ctx context.Context, filter cases.Filter) ([]*cases.Case, int64, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		}

		_, err := NewListCasesUseCase(repo, &mockLogger{}).Execute(context.Background(), ListCasesQuery{
			Page:     -5,
			PageSize: 10000,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, gotFilter.Page)
		assert.Equal(t, 100, gotFilter.PageSize)
	})

	t.Run("rejects invalid enum filters", func(t *testing.T) {
		tests := []struct {
			name  string
			query ListCasesQuery
		}{
			{name: "bad issue type", query: ListCasesQuery{IssueType: "Gardening"}},
			{name: "bad priority", query: ListCasesQuery{Priority: "ASAP"}},
			{name: "bad status", query: ListCasesQuery{Status: "Pending"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewListCasesUseCase(&mockCaseRepository{}, &mockLogger{}).
					Execute(context.Background(), tt.query)
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			})
		}
	})
}

func TestGetCaseUseCase_Execute(t *testing.T) {
	t.Run("returns case with timeline", func(t *testing.T) {
		repo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*cases.Case, error) {
				c := reconstructTestCase(t, id, 42, vo.StatusOpen)
				entry, err := cases.ReconstructLogEntry(1, id, "Sam Support", "opened", nil, c.CreatedAt())
				require.NoError(t, err)
				require.NoError(t, c.AppendTimeline(entry))
				return c, nil
			},
		}

		result, err := NewGetCaseUseCase(repo, &mockLogger{}).
			Execute(context.Background(), GetCaseQuery{CaseID: 7})
		require.NoError(t, err)

		assert.Equal(t, uint(7), result.ID)
		assert.Equal(t, uint64(42), result.CaseNumber)
		require.Len(t, result.Timeline, 1)
		assert.Equal(t, "Sam Support", result.Timeline[0].Author)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*cases.Case, error) {
				return nil, errors.NewNotFoundError("case not found")
			},
		}

		_, err := NewGetCaseUseCase(repo, &mockLogger{}).
			Execute(context.Background(), GetCaseQuery{CaseID: 999})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteCaseUseCase_Execute(t *testing.T) {
	t.Run("deletes existing case", func(t *testing.T) {
		var deletedID uint
		repo := &mockCaseRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}

		result, err := NewDeleteCaseUseCase(repo, &mockLogger{}).
			Execute(context.Background(), DeleteCaseCommand{CaseID: 7, ActingUser: "Admin"})
		require.NoError(t, err)

		assert.Equal(t, uint(7), deletedID)
		assert.Equal(t, uint(7), result.CaseID)
	})

	t.Run("propagates not found for absent case", func(t *testing.T) {
		repo := &mockCaseRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return errors.NewNotFoundError("case not found")
			},
		}

		_, err := NewDeleteCaseUseCase(repo, &mockLogger{}).
			Execute(context.Background(), DeleteCaseCommand{CaseID: 999, ActingUser: "Admin"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
