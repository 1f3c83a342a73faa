package dto

import (
	"time"

	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/mapper"
)

type CustomerDTO struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type AttachmentDTO struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}

type LogEntryDTO struct {
	ID      uint            `json:"id"`
	Author  string          `json:"author"`
	Message string          `json:"message"`
	Files   []AttachmentDTO `json:"files"`
	At      time.Time       `json:"at"`
}

type CaseDTO struct {
	ID          uint            `json:"id"`
	CaseNumber  uint64          `json:"case_number"`
	Customer    CustomerDTO     `json:"customer"`
	IssueType   string          `json:"issue_type"`
	Priority    string          `json:"priority"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Archived    bool            `json:"archived"`
	Agent       string          `json:"agent"`
	Attachments []AttachmentDTO `json:"attachments"`
	Timeline    []LogEntryDTO   `json:"timeline"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CaseListItemDTO struct {
	ID           uint   `json:"id"`
	CaseNumber   uint64 `json:"case_number"`
	CustomerName string `json:"customer_name"`
	IssueType    string `json:"issue_type"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	Archived     bool   `json:"archived"`
	Agent        string `json:"agent"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func ToCaseDTO(c *cases.Case) *CaseDTO {
	if c == nil {
		return nil
	}

	return &CaseDTO{
		ID:         c.ID(),
		CaseNumber: c.Number(),
		Customer: CustomerDTO{
			ID:    c.Customer().ID,
			Name:  c.Customer().Name,
			Email: c.Customer().Email,
			Phone: c.Customer().Phone,
		},
		IssueType:   c.IssueType().String(),
		Priority:    c.Priority().String(),
		Description: c.Description(),
		Status:      c.Status().String(),
		Archived:    c.Archived(),
		Agent:       c.Agent(),
		Attachments: mapper.MapSlice(c.Attachments(), ToAttachmentDTO),
		Timeline:    mapper.MapSlice(c.Timeline(), ToLogEntryDTO),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func ToAttachmentDTO(a cases.Attachment) AttachmentDTO {
	return AttachmentDTO{
		Filename: a.Filename,
		Path:     a.Path,
		Size:     a.Size,
		MimeType: a.MimeType,
	}
}

func ToLogEntryDTO(e *cases.LogEntry) LogEntryDTO {
	return LogEntryDTO{
		ID:      e.ID(),
		Author:  e.Author(),
		Message: e.Message(),
		Files:   mapper.MapSlice(e.Files(), ToAttachmentDTO),
		At:      e.At(),
	}
}

func ToCaseListItemDTO(c *cases.Case) CaseListItemDTO {
	return CaseListItemDTO{
		ID:           c.ID(),
		CaseNumber:   c.Number(),
		CustomerName: c.Customer().Name,
		IssueType:    c.IssueType().String(),
		Priority:     c.Priority().String(),
		Status:       c.Status().String(),
		Archived:     c.Archived(),
		Agent:        c.Agent(),
		CreatedAt:    c.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt().Format(time.RFC3339),
	}
}

func ToCaseListItemDTOs(items []*cases.Case) []CaseListItemDTO {
	return mapper.MapSlice(items, ToCaseListItemDTO)
}
