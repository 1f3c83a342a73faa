package usecases

import (
	"context"

	"casedesk/internal/application/cases/dto"
	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
)

type ReopenCaseCommand struct {
	CaseID     uint
	ActingUser string
}

type ReopenCaseUseCase struct {
	caseRepo cases.Repository
	logger   logger.Interface
}

func NewReopenCaseUseCase(caseRepo cases.Repository, logger logger.Interface) *ReopenCaseUseCase {
	return &ReopenCaseUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *ReopenCaseUseCase) Execute(ctx context.Context, cmd ReopenCaseCommand) (*dto.CaseDTO, error) {
	uc.logger.Infow("executing reopen case use case",
		"case_id", cmd.CaseID, "acting_user", cmd.ActingUser)

	if cmd.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}
	if len(cmd.ActingUser) == 0 {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, err
	}

	// Reopening an open case is an idempotent no-op.
	if c.Status().IsOpen() {
		uc.logger.Infow("case already open", "case_id", cmd.CaseID)
		return dto.ToCaseDTO(c), nil
	}

	c.Reopen()
	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to reopen case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	updated, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("case reopened", "case_id", cmd.CaseID)
	return dto.ToCaseDTO(updated), nil
}
