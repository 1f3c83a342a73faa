package usecases

import (
	"context"
	"sort"

	"casedesk/internal/domain/user"
	"casedesk/internal/shared/config"
	"casedesk/internal/shared/logger"
)

type ListAgentsResult struct {
	Agents []string
}

// ListAgentsUseCase produces the assignment roster: the display names of
// active users merged with any extra names from configuration.
type ListAgentsUseCase struct {
	userRepo user.Repository
	agents   config.AgentsConfig
	logger   logger.Interface
}

func NewListAgentsUseCase(
	userRepo user.Repository,
	agents config.AgentsConfig,
	logger logger.Interface,
) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		userRepo: userRepo,
		agents:   agents,
		logger:   logger,
	}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context) (*ListAgentsResult, error) {
	users, err := uc.userRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active users", "error", err)
		return nil, err
	}

	seen := make(map[string]bool)
	names := make([]string, 0, len(users)+len(uc.agents.Names))
	for _, u := range users {
		if name := u.Name(); name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, name := range uc.agents.Names {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return &ListAgentsResult{Agents: names}, nil
}
