package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"casedesk/internal/domain/cases"
	"casedesk/internal/infrastructure/persistence/mappers"
	"casedesk/internal/infrastructure/persistence/models"
	"casedesk/internal/shared/db"
	apperrors "casedesk/internal/shared/errors"
)

// allowedCaseOrderByFields whitelists ORDER BY columns to prevent SQL
// injection through the sort parameter.
var allowedCaseOrderByFields = map[string]string{
	"id":           "id",
	"casenumber":   "number",
	"case_number":  "number",
	"number":       "number",
	"createdat":    "created_at",
	"created_at":   "created_at",
	"updatedat":    "updated_at",
	"updated_at":   "updated_at",
	"priority":     "priority",
	"status":       "status",
	"issuetype":    "issue_type",
	"agent":        "agent",
	"customername": "customer_name",
}

type CaseRepository struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
}

func NewCaseRepository(gdb *gorm.DB) *CaseRepository {
	return &CaseRepository{
		db:     gdb,
		mapper: mappers.NewCaseMapper(),
	}
}

func (r *CaseRepository) Create(ctx context.Context, c *cases.Case) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewUnavailableError("failed to save case", err.Error())
	}

	return c.SetID(model.ID)
}

func (r *CaseRepository) GetByID(ctx context.Context, id uint) (*cases.Case, error) {
	var model models.CaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("case not found")
		}
		return nil, apperrors.NewUnavailableError("failed to find case", err.Error())
	}

	c, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadTimeline(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *CaseRepository) List(ctx context.Context, filter cases.Filter) ([]*cases.Case, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CaseModel{})

	if filter.IssueType != nil {
		query = query.Where("issue_type = ?", filter.IssueType.String())
	}
	if filter.Agent != nil {
		query = query.Where("agent = ?", *filter.Agent)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	if q := strings.TrimSpace(filter.Q); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			`(LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ? OR LOWER(customer_phone) LIKE ?
				OR LOWER(description) LIKE ?
				OR EXISTS (SELECT 1 FROM case_logs WHERE case_logs.case_id = cases.id AND LOWER(case_logs.message) LIKE ?))`,
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewUnavailableError("failed to count cases", err.Error())
	}

	// Default sort: newest case number first.
	column, ok := allowedCaseOrderByFields[strings.ToLower(filter.SortBy)]
	if !ok {
		column = "number"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	query = query.Order(column + " " + order)

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var caseModels []models.CaseModel
	if err := query.Find(&caseModels).Error; err != nil {
		return nil, 0, apperrors.NewUnavailableError("failed to list cases", err.Error())
	}

	result := make([]*cases.Case, len(caseModels))
	for i := range caseModels {
		c, err := r.mapper.ToDomain(&caseModels[i])
		if err != nil {
			return nil, 0, err
		}
		result[i] = c
	}

	return result, total, nil
}

// AppendLog inserts the entry as a new timeline row and bumps the case's
// updated time. The append is a plain INSERT, never a read-modify-write of
// the case record, so two concurrent appends to the same case both
// survive.
func (r *CaseRepository) AppendLog(ctx context.Context, caseID uint, entry *cases.LogEntry) (*cases.Case, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Transaction(func(inner *gorm.DB) error {
		var exists int64
		if err := inner.Model(&models.CaseModel{}).Where("id = ?", caseID).Count(&exists).Error; err != nil {
			return apperrors.NewUnavailableError("failed to check case", err.Error())
		}
		if exists == 0 {
			return apperrors.NewNotFoundError("case not found")
		}

		model := r.mapper.LogEntryToModel(entry)
		if err := inner.Create(model).Error; err != nil {
			return apperrors.NewUnavailableError("failed to append log entry", err.Error())
		}
		if err := entry.SetID(model.ID); err != nil {
			return err
		}

		res := inner.Model(&models.CaseModel{}).
			Where("id = ?", caseID).
			UpdateColumn("updated_at", model.At)
		if res.Error != nil {
			return apperrors.NewUnavailableError("failed to touch case", res.Error.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, caseID)
}

// Update persists the mutable case columns. A column map is used rather
// than a struct so zero values (archived=false after reopen) are written.
func (r *CaseRepository) Update(ctx context.Context, c *cases.Case) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	res := tx.Model(&models.CaseModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"customer_id":    model.CustomerID,
			"customer_name":  model.CustomerName,
			"customer_email": model.CustomerEmail,
			"customer_phone": model.CustomerPhone,
			"issue_type":     model.IssueType,
			"priority":       model.Priority,
			"description":    model.Description,
			"status":         model.Status,
			"archived":       model.Archived,
			"agent":          model.Agent,
			"updated_at":     model.UpdatedAt,
		})
	if res.Error != nil {
		return apperrors.NewUnavailableError("failed to update case", res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("case not found")
	}

	return nil
}

// Delete hard-deletes the case and its timeline. The case number is never
// reused: the sequence row is independent of case rows.
func (r *CaseRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(inner *gorm.DB) error {
		res := inner.Delete(&models.CaseModel{}, id)
		if res.Error != nil {
			return apperrors.NewUnavailableError("failed to delete case", res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return apperrors.NewNotFoundError("case not found")
		}

		if err := inner.Where("case_id = ?", id).Delete(&models.LogEntryModel{}).Error; err != nil {
			return apperrors.NewUnavailableError("failed to delete case timeline", err.Error())
		}
		return nil
	})
}

// loadTimeline loads timeline rows in insertion order and attaches them to
// the domain entity.
func (r *CaseRepository) loadTimeline(ctx context.Context, c *cases.Case) error {
	var entryModels []models.LogEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("case_id = ?", c.ID()).
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return apperrors.NewUnavailableError("failed to load timeline", err.Error())
	}

	for i := range entryModels {
		entry, err := r.mapper.LogEntryToDomain(&entryModels[i])
		if err != nil {
			return err
		}
		if err := c.AppendTimeline(entry); err != nil {
			return fmt.Errorf("failed to attach timeline entry: %w", err)
		}
	}

	return nil
}
