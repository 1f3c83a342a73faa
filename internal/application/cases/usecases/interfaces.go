package usecases

import (
	"context"

	"casedesk/internal/application/cases/dto"
)

// TransactionRunner runs a function inside a single database transaction.
// Satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateCaseExecutor interface {
	Execute(ctx context.Context, cmd CreateCaseCommand) (*dto.CaseDTO, error)
}

type GetCaseExecutor interface {
	Execute(ctx context.Context, query GetCaseQuery) (*dto.CaseDTO, error)
}

type ListCasesExecutor interface {
	Execute(ctx context.Context, query ListCasesQuery) (*ListCasesResult, error)
}

type AddLogExecutor interface {
	Execute(ctx context.Context, cmd AddLogCommand) (*dto.CaseDTO, error)
}

type CloseCaseExecutor interface {
	Execute(ctx context.Context, cmd CloseCaseCommand) (*dto.CaseDTO, error)
}

type ReopenCaseExecutor interface {
	Execute(ctx context.Context, cmd ReopenCaseCommand) (*dto.CaseDTO, error)
}

type DeleteCaseExecutor interface {
	Execute(ctx context.Context, cmd DeleteCaseCommand) (*DeleteCaseResult, error)
}
