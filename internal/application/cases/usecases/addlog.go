package usecases

import (
	"context"

	"casedesk/internal/application/cases/dto"
	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
	"casedesk/internal/shared/services/sanitizer"
)

type AddLogCommand struct {
	CaseID     uint
	Note       string
	Files      []cases.Attachment
	ActingUser string
}

type AddLogUseCase struct {
	caseRepo  cases.Repository
	sanitizer *sanitizer.Service
	logger    logger.Interface
}

func NewAddLogUseCase(
	caseRepo cases.Repository,
	sanitizer *sanitizer.Service,
	logger logger.Interface,
) *AddLogUseCase {
	return &AddLogUseCase{
		caseRepo:  caseRepo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *AddLogUseCase) Execute(ctx context.Context, cmd AddLogCommand) (*dto.CaseDTO, error) {
	uc.logger.Infow("executing add log use case",
		"case_id", cmd.CaseID, "acting_user", cmd.ActingUser)

	if cmd.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}
	if len(cmd.ActingUser) == 0 {
		return nil, errors.NewUnauthorizedError("authenticated user is required")
	}

	note := uc.sanitizer.Clean(cmd.Note)
	if len(note) == 0 && len(cmd.Files) == 0 {
		return nil, errors.NewValidationError("log entry requires a note or files")
	}

	// The author is always the authenticated caller, never a value the
	// client supplied.
	entry, err := cases.NewLogEntry(cmd.CaseID, cmd.ActingUser, note, cmd.Files)
	if err != nil {
		uc.logger.Errorw("failed to build log entry", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	updated, err := uc.caseRepo.AppendLog(ctx, cmd.CaseID, entry)
	if err != nil {
		uc.logger.Errorw("failed to append log entry", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	uc.logger.Infow("log entry appended", "case_id", cmd.CaseID, "entry_id", entry.ID())

	return dto.ToCaseDTO(updated), nil
}
