package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casedesk/internal/domain/cases"
	vo "casedesk/internal/domain/cases/valueobjects"
	"casedesk/internal/shared/constants"
)

func TestSequenceRepository_Next(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSequenceRepository(gdb)
	ctx := context.Background()

	t.Run("first allocation returns 1", func(t *testing.T) {
		value, err := repo.Next(ctx, "first-key")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), value)
	})

	t.Run("values increase strictly", func(t *testing.T) {
		var prev uint64
		for i := 0; i < 5; i++ {
			value, err := repo.Next(ctx, "increasing-key")
			require.NoError(t, err)
			assert.Greater(t, value, prev)
			prev = value
		}
		assert.Equal(t, uint64(5), prev)
	})

	t.Run("counters are independent per key", func(t *testing.T) {
		a, err := repo.Next(ctx, "key-a")
		require.NoError(t, err)
		b, err := repo.Next(ctx, "key-b")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), a)
		assert.Equal(t, uint64(1), b)
	})
}

func TestSequenceRepository_Next_Concurrent(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSequenceRepository(gdb)
	ctx := context.Background()

	const workers = 50

	values := make([]uint64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i], errs[i] = repo.Next(ctx, constants.CaseSequenceKey)
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, workers)
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[values[i]], "value %d allocated twice", values[i])
		seen[values[i]] = true
		assert.GreaterOrEqual(t, values[i], uint64(1))
		assert.LessOrEqual(t, values[i], uint64(workers))
	}
	assert.Len(t, seen, workers)
}

// Deleting a case must not free its number: the counter is independent of
// case rows, so later allocations keep moving forward.
func TestSequenceRepository_NumbersSurviveCaseDeletion(t *testing.T) {
	gdb := setupTestDB(t)
	seqRepo := NewSequenceRepository(gdb)
	caseRepo := NewCaseRepository(gdb)
	ctx := context.Background()

	number, err := seqRepo.Next(ctx, constants.CaseSequenceKey)
	require.NoError(t, err)

	c, err := cases.NewCase(
		cases.Customer{Name: "Jane Doe"},
		vo.IssueBilling,
		vo.PriorityNormal,
		"short-lived case",
		"Agent Smith",
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, c.SetNumber(number))
	require.NoError(t, caseRepo.Create(ctx, c))

	require.NoError(t, caseRepo.Delete(ctx, c.ID()))

	next, err := seqRepo.Next(ctx, constants.CaseSequenceKey)
	require.NoError(t, err)
	assert.Greater(t, next, number)
}
