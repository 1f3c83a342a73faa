package usecases

import "context"

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type ListAgentsExecutor interface {
	Execute(ctx context.Context) (*ListAgentsResult, error)
}
