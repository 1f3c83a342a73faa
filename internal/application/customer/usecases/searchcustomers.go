// Package usecases wraps the external customer directory lookup. The
// lookup only pre-fills case forms, so it is strictly best-effort.
package usecases

import (
	"context"
	"strings"

	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/logger"
	"casedesk/internal/shared/mapper"
)

type CustomerLookup interface {
	Enabled() bool
	Search(ctx context.Context, query string) ([]cases.Customer, error)
}

type CustomerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type SearchCustomersResult struct {
	Customers []CustomerDTO
}

type SearchCustomersUseCase struct {
	lookup CustomerLookup
	logger logger.Interface
}

func NewSearchCustomersUseCase(lookup CustomerLookup, logger logger.Interface) *SearchCustomersUseCase {
	return &SearchCustomersUseCase{
		lookup: lookup,
		logger: logger,
	}
}

// Execute never fails the request over a directory problem: a disabled
// or unreachable lookup yields an empty result.
func (uc *SearchCustomersUseCase) Execute(ctx context.Context, query string) (*SearchCustomersResult, error) {
	empty := &SearchCustomersResult{Customers: []CustomerDTO{}}

	query = strings.TrimSpace(query)
	if query == "" || !uc.lookup.Enabled() {
		return empty, nil
	}

	found, err := uc.lookup.Search(ctx, query)
	if err != nil {
		uc.logger.Warnw("customer lookup failed, returning empty result",
			"query", query, "error", err)
		return empty, nil
	}

	return &SearchCustomersResult{
		Customers: mapper.MapSlice(found, toCustomerDTO),
	}, nil
}

func toCustomerDTO(c cases.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

type SearchCustomersExecutor interface {
	Execute(ctx context.Context, query string) (*SearchCustomersResult, error)
}
