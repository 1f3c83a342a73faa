package usecases

import (
	"context"
	"fmt"

	"casedesk/internal/application/cases/dto"
	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
	"casedesk/internal/shared/services/sanitizer"
)

type CloseCaseCommand struct {
	CaseID     uint
	Summary    string
	ActingUser string
}

type CloseCaseUseCase struct {
	caseRepo  cases.Repository
	sanitizer *sanitizer.Service
	logger    logger.Interface
}

func NewCloseCaseUseCase(
	caseRepo cases.Repository,
	sanitizer *sanitizer.Service,
	logger logger.Interface,
) *CloseCaseUseCase {
	return &CloseCaseUseCase{
		caseRepo:  caseRepo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *CloseCaseUseCase) Execute(ctx context.Context, cmd CloseCaseCommand) (*dto.CaseDTO, error) {
	uc.logger.Infow("executing close case use case",
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

	// Closing an already-closed case is an idempotent no-op: no update,
	// no timeline entry.
	if c.Status().IsClosed() {
		uc.logger.Infow("case already closed", "case_id", cmd.CaseID)
		return dto.ToCaseDTO(c), nil
	}

	c.Close()
	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to close case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	if summary := uc.sanitizer.Clean(cmd.Summary); summary != "" {
		entry, err := cases.NewLogEntry(c.ID(), cmd.ActingUser, fmt.Sprintf("Closed — %s", summary), nil)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		updated, err := uc.caseRepo.AppendLog(ctx, c.ID(), entry)
		if err != nil {
			uc.logger.Errorw("failed to append closing entry", "case_id", cmd.CaseID, "error", err)
			return nil, err
		}
		uc.logger.Infow("case closed", "case_id", cmd.CaseID)
		return dto.ToCaseDTO(updated), nil
	}

	updated, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("case closed", "case_id", cmd.CaseID)
	return dto.ToCaseDTO(updated), nil
}
