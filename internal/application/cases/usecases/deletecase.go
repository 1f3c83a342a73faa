package usecases

import (
	"context"

	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
)

type DeleteCaseCommand struct {
	CaseID     uint
	ActingUser string
}

type DeleteCaseResult struct {
	CaseID uint
}

type DeleteCaseUseCase struct {
	caseRepo cases.Repository
	logger   logger.Interface
}

func NewDeleteCaseUseCase(caseRepo cases.Repository, logger logger.Interface) *DeleteCaseUseCase {
	return &DeleteCaseUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

// Execute hard-deletes a case and its timeline. The allocated case
// number is retired with it; it is never handed out again.
func (uc *DeleteCaseUseCase) Execute(ctx context.Context, cmd DeleteCaseCommand) (*DeleteCaseResult, error) {
	uc.logger.Infow("executing delete case use case",
		"case_id", cmd.CaseID, "acting_user", cmd.ActingUser)

	if cmd.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}

	if err := uc.caseRepo.Delete(ctx, cmd.CaseID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete case", "case_id", cmd.CaseID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("case deleted", "case_id", cmd.CaseID)
	return &DeleteCaseResult{CaseID: cmd.CaseID}, nil
}
