package usecases

import (
	"context"

	"casedesk/internal/application/cases/dto"
	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
)

type GetCaseQuery struct {
	CaseID uint
}

type GetCaseUseCase struct {
	caseRepo cases.Repository
	logger   logger.Interface
}

func NewGetCaseUseCase(caseRepo cases.Repository, logger logger.Interface) *GetCaseUseCase {
	return &GetCaseUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *GetCaseUseCase) Execute(ctx context.Context, query GetCaseQuery) (*dto.CaseDTO, error) {
	if query.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}

	c, err := uc.caseRepo.GetByID(ctx, query.CaseID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get case", "case_id", query.CaseID, "error", err)
		}
		return nil, err
	}

	return dto.ToCaseDTO(c), nil
}
