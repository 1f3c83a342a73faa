package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"casedesk/internal/domain/user"
	"casedesk/internal/infrastructure/persistence/mappers"
	"casedesk/internal/infrastructure/persistence/models"
	"casedesk/internal/shared/db"
	apperrors "casedesk/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewValidationError("email is already registered")
		}
		return apperrors.NewUnavailableError("failed to save user", err.Error())
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	res := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"role":          model.Role,
			"active":        model.Active,
			"updated_at":    model.UpdatedAt,
		})
	if res.Error != nil {
		return apperrors.NewUnavailableError("failed to update user", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	email = strings.ToLower(strings.TrimSpace(email))
	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewUnavailableError("failed to find user", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ListActive(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("active = ?", true).
		Order("name ASC").
		Find(&userModels).Error; err != nil {
		return nil, apperrors.NewUnavailableError("failed to list users", err.Error())
	}

	result := make([]*user.User, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		result[i] = u
	}

	return result, nil
}
