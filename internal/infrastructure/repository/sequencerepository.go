package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"casedesk/internal/infrastructure/persistence/models"
	apperrors "casedesk/internal/shared/errors"
)

// SequenceRepository hands out unique, strictly increasing integers for a
// named counter using a storage-level atomic increment. Correctness does
// not depend on a single process instance: the row lock taken by the
// UPDATE serializes concurrent allocators across processes.
type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next atomically increments the counter for key and returns the new
// value. The counter is created lazily; the first call returns 1. Two
// concurrent calls never observe the same value because the increment and
// the read happen inside one transaction holding the row lock.
func (r *SequenceRepository) Next(ctx context.Context, key string) (uint64, error) {
	var value uint64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.SequenceModel{}).
			Where("name = ?", key).
			UpdateColumn("value", gorm.Expr("value + 1"))
		if res.Error != nil {
			return fmt.Errorf("failed to increment sequence %q: %w", key, res.Error)
		}

		if res.RowsAffected == 0 {
			// First allocation for this key. A concurrent caller may win the
			// insert race; fall back to incrementing the row it created.
			if err := tx.Create(&models.SequenceModel{Name: key, Value: 1}).Error; err != nil {
				if !apperrors.IsDuplicateError(err) {
					return fmt.Errorf("failed to create sequence %q: %w", key, err)
				}
				retry := tx.Model(&models.SequenceModel{}).
					Where("name = ?", key).
					UpdateColumn("value", gorm.Expr("value + 1"))
				if retry.Error != nil {
					return fmt.Errorf("failed to increment sequence %q: %w", key, retry.Error)
				}
			}
		}

		var row models.SequenceModel
		if err := tx.Where("name = ?", key).First(&row).Error; err != nil {
			return fmt.Errorf("failed to read sequence %q: %w", key, err)
		}
		value = row.Value
		return nil
	})
	if err != nil {
		return 0, apperrors.NewUnavailableError("failed to allocate sequence value", err.Error())
	}

	return value, nil
}
