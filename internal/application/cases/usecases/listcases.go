package usecases

import (
	"context"

	"casedesk/internal/application/cases/dto"
	"casedesk/internal/domain/cases"
	vo "casedesk/internal/domain/cases/valueobjects"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
	"casedesk/internal/shared/utils"
)

type ListCasesQuery struct {
	Q         string
	IssueType string
	Agent     string
	Priority  string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListCasesResult struct {
	Cases    []dto.CaseListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListCasesUseCase struct {
	caseRepo cases.Repository
	logger   logger.Interface
}

func NewListCasesUseCase(caseRepo cases.Repository, logger logger.Interface) *ListCasesUseCase {
	return &ListCasesUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *ListCasesUseCase) Execute(ctx context.Context, query ListCasesQuery) (*ListCasesResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	items, total, err := uc.caseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list cases", "error", err)
		return nil, err
	}

	return &ListCasesResult{
		Cases:    dto.ToCaseListItemDTOs(items),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// buildFilter validates enum filters strictly. Unlike case creation,
// listing never coerces: a bad filter value is a caller mistake, not
// data to be rescued.
func (uc *ListCasesUseCase) buildFilter(query ListCasesQuery) (cases.Filter, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := cases.Filter{
		Q:         query.Q,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.IssueType != "" {
		issueType, err := vo.NewIssueType(query.IssueType)
		if err != nil {
			return cases.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.IssueType = &issueType
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return cases.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return cases.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Agent != "" {
		agent := query.Agent
		filter.Agent = &agent
	}

	return filter, nil
}
