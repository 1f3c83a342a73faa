package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ListActive returns all active users ordered by name, for the agent
	// assignment dropdown.
	ListActive(ctx context.Context) ([]*User, error)
}
