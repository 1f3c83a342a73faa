package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"casedesk/internal/domain/cases"
	vo "casedesk/internal/domain/cases/valueobjects"
	"casedesk/internal/infrastructure/persistence/models"
)

// CaseMapper handles the conversion between case domain entities and
// persistence models.
type CaseMapper interface {
	ToModel(c *cases.Case) *models.CaseModel
	ToDomain(model *models.CaseModel) (*cases.Case, error)
	LogEntryToModel(e *cases.LogEntry) *models.LogEntryModel
	LogEntryToDomain(model *models.LogEntryModel) (*cases.LogEntry, error)
}

type CaseMapperImpl struct{}

func NewCaseMapper() CaseMapper {
	return &CaseMapperImpl{}
}

func (m *CaseMapperImpl) ToModel(c *cases.Case) *models.CaseModel {
	customer := c.Customer()
	model := &models.CaseModel{
		ID:            c.ID(),
		Number:        c.Number(),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		IssueType:     c.IssueType().String(),
		Priority:      c.Priority().String(),
		Description:   c.Description(),
		Status:        c.Status().String(),
		Archived:      c.Archived(),
		Agent:         c.Agent(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
		UpdatedAt:     c.UpdatedAt().UnixMilli(),
	}

	if attachments := c.Attachments(); len(attachments) > 0 {
		attachmentsJSON, _ := json.Marshal(attachments)
		model.Attachments = attachmentsJSON
	}

	return model
}

// ToDomain converts a case persistence model to a domain entity. Timeline
// rows must be loaded separately by the repository.
func (m *CaseMapperImpl) ToDomain(model *models.CaseModel) (*cases.Case, error) {
	issueType, err := vo.NewIssueType(model.IssueType)
	if err != nil {
		return nil, fmt.Errorf("case id=%d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("case id=%d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("case id=%d: %w", model.ID, err)
	}

	var attachments []cases.Attachment
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal case attachments (id=%d): %w", model.ID, err)
		}
	}

	return cases.ReconstructCase(
		model.ID,
		model.Number,
		cases.Customer{
			ID:    model.CustomerID,
			Name:  model.CustomerName,
			Email: model.CustomerEmail,
			Phone: model.CustomerPhone,
		},
		issueType,
		priority,
		model.Description,
		status,
		model.Archived,
		model.Agent,
		attachments,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *CaseMapperImpl) LogEntryToModel(e *cases.LogEntry) *models.LogEntryModel {
	model := &models.LogEntryModel{
		ID:      e.ID(),
		CaseID:  e.CaseID(),
		Author:  e.Author(),
		Message: e.Message(),
		At:      e.At().UnixMilli(),
	}

	if files := e.Files(); len(files) > 0 {
		filesJSON, _ := json.Marshal(files)
		model.Files = filesJSON
	}

	return model
}

func (m *CaseMapperImpl) LogEntryToDomain(model *models.LogEntryModel) (*cases.LogEntry, error) {
	var files []cases.Attachment
	if len(model.Files) > 0 {
		if err := json.Unmarshal(model.Files, &files); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log entry files (id=%d): %w", model.ID, err)
		}
	}

	return cases.ReconstructLogEntry(
		model.ID,
		model.CaseID,
		model.Author,
		model.Message,
		files,
		millisToTime(model.At),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
