package usecases

import (
	"context"
	"crypto/subtle"
	"strings"

	"casedesk/internal/domain/user"
	"casedesk/internal/shared/authorization"
	"casedesk/internal/shared/config"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
)

type PasswordVerifier interface {
	Verify(password, hash string) error
}

type TokenGenerator interface {
	Generate(userID uint, name, email string, role authorization.UserRole) (string, error)
	AccessExpMinutes() int
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	UserID    uint
	Name      string
	Email     string
	Role      string
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	tokens   TokenGenerator
	admin    config.AdminConfig
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	verifier PasswordVerifier,
	tokens TokenGenerator,
	admin config.AdminConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		admin:    admin,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if len(email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return uc.bootstrapAdminLogin(email, cmd.Password)
		}
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}

	if !u.IsActive() {
		uc.logger.Warnw("login attempt for deactivated user", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.verifier.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Name(), u.Email(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "email", u.Email())

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(uc.tokens.AccessExpMinutes()) * 60,
		UserID:    u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
	}, nil
}

// bootstrapAdminLogin lets the configured admin credentials in when no
// matching user row exists, so a fresh deployment is reachable before
// any accounts are seeded.
func (uc *LoginUseCase) bootstrapAdminLogin(email, password string) (*LoginResult, error) {
	if uc.admin.Email == "" || uc.admin.Password == "" {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !strings.EqualFold(email, uc.admin.Email) {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(uc.admin.Password)) != 1 {
		uc.logger.Warnw("failed bootstrap admin login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.Generate(0, uc.admin.Name, uc.admin.Email, authorization.RoleAdmin)
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("bootstrap admin logged in", "email", uc.admin.Email)

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(uc.tokens.AccessExpMinutes()) * 60,
		Name:      uc.admin.Name,
		Email:     strings.ToLower(uc.admin.Email),
		Role:      authorization.RoleAdmin.String(),
	}, nil
}
