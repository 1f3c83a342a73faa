package usecases

import (
	"context"

	"casedesk/internal/application/cases/dto"
	"casedesk/internal/domain/cases"
	vo "casedesk/internal/domain/cases/valueobjects"
	"casedesk/internal/shared/constants"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
	"casedesk/internal/shared/services/sanitizer"
)

type CreateCaseCommand struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	IssueType     string
	Priority      string
	Description   string
	Agent         string
	Files         []cases.Attachment
	ActingUser    string
}

type CreateCaseUseCase struct {
	caseRepo  cases.Repository
	allocator cases.SequenceAllocator
	txMgr     TransactionRunner
	sanitizer *sanitizer.Service
	logger    logger.Interface
}

func NewCreateCaseUseCase(
	caseRepo cases.Repository,
	allocator cases.SequenceAllocator,
	txMgr TransactionRunner,
	sanitizer *sanitizer.Service,
	logger logger.Interface,
) *CreateCaseUseCase {
	return &CreateCaseUseCase{
		caseRepo:  caseRepo,
		allocator: allocator,
		txMgr:     txMgr,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *CreateCaseUseCase) Execute(ctx context.Context, cmd CreateCaseCommand) (*dto.CaseDTO, error) {
	uc.logger.Infow("executing create case use case",
		"customer_name", cmd.CustomerName, "acting_user", cmd.ActingUser)

	if len(cmd.ActingUser) == 0 {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}

	description := uc.sanitizer.Clean(cmd.Description)

	// Unrecognized classifications are coerced to safe defaults rather
	// than rejected; the coercion is logged so it is never silent.
	issueType, coerced := vo.NormalizeIssueType(cmd.IssueType)
	if coerced {
		uc.logger.Warnw("unrecognized issue type coerced",
			"input", cmd.IssueType, "coerced_to", issueType.String())
	}
	priority, coerced := vo.NormalizePriority(cmd.Priority)
	if coerced {
		uc.logger.Warnw("unrecognized priority coerced",
			"input", cmd.Priority, "coerced_to", priority.String())
	}

	agent := cmd.Agent
	if len(agent) == 0 {
		agent = cmd.ActingUser
	}

	newCase, err := cases.NewCase(
		cases.Customer{
			ID:    cmd.CustomerID,
			Name:  uc.sanitizer.Clean(cmd.CustomerName),
			Email: uc.sanitizer.Clean(cmd.CustomerEmail),
			Phone: uc.sanitizer.Clean(cmd.CustomerPhone),
		},
		issueType,
		priority,
		description,
		agent,
		cmd.Files,
	)
	if err != nil {
		uc.logger.Errorw("failed to create case entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.allocator.Next(ctx, constants.CaseSequenceKey)
	if err != nil {
		uc.logger.Errorw("failed to allocate case number", "error", err)
		return nil, err
	}
	if err := newCase.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	// The case row and its first timeline entry commit together so a
	// partially created case is never visible.
	var created *cases.Case
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.caseRepo.Create(txCtx, newCase); err != nil {
			uc.logger.Errorw("failed to save case", "error", err)
			return err
		}

		// A first timeline entry is only synthesized when there is
		// something to record; a bare case starts with an empty timeline.
		if len(description) == 0 && len(cmd.Files) == 0 {
			created = newCase
			return nil
		}

		// File-only cases get a placeholder message.
		message := description
		if len(message) == 0 {
			message = "(no message)"
		}
		entry, err := cases.NewLogEntry(newCase.ID(), cmd.ActingUser, message, cmd.Files)
		if err != nil {
			uc.logger.Errorw("failed to build first timeline entry", "error", err)
			return errors.NewInternalError(err.Error())
		}

		created, err = uc.caseRepo.AppendLog(txCtx, newCase.ID(), entry)
		if err != nil {
			uc.logger.Errorw("failed to append first timeline entry", "error", err)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("case created successfully",
		"case_id", created.ID(), "case_number", created.Number())

	return dto.ToCaseDTO(created), nil
}
