package usecases

import (
	"context"
	"fmt"

	"casedesk/internal/domain/user"
	"casedesk/internal/shared/authorization"
	"casedesk/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListActiveFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListActive(ctx context.Context) ([]*user.User, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockPasswordVerifier struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordVerifier) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenGenerator struct {
	GenerateFunc func(userID uint, name, email string, role authorization.UserRole) (string, error)
}

func (m *mockTokenGenerator) Generate(userID uint, name, email string, role authorization.UserRole) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, name, email, role)
	}
	return fmt.Sprintf("token-for-%s", email), nil
}

func (m *mockTokenGenerator) AccessExpMinutes() int {
	return 60
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
