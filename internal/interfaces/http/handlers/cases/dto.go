package cases

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"casedesk/internal/application/cases/usecases"
	domain "casedesk/internal/domain/cases"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/utils"
)

// CreateCaseRequest is the JSON payload for case creation. With a
// multipart request it arrives in the "data" form field; attachments
// travel as "files" parts alongside it.
type CreateCaseRequest struct {
	Customer struct {
		ID    string `json:"id"`
		Name  string `json:"name" binding:"required"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"customer"`
	IssueType   string `json:"issue_type"`
	Priority    string `json:"priority"`
	Description string `json:"description" binding:"max=5000"`
	Agent       string `json:"agent"`
}

func (r *CreateCaseRequest) ToCommand(actingUser string, files []domain.Attachment) usecases.CreateCaseCommand {
	return usecases.CreateCaseCommand{
		CustomerID:    r.Customer.ID,
		CustomerName:  r.Customer.Name,
		CustomerEmail: r.Customer.Email,
		CustomerPhone: r.Customer.Phone,
		IssueType:     r.IssueType,
		Priority:      r.Priority,
		Description:   r.Description,
		Agent:         r.Agent,
		Files:         files,
		ActingUser:    actingUser,
	}
}

// AddLogRequest is the payload for appending a timeline entry. The
// author field is intentionally absent: authorship always comes from
// the authenticated caller.
type AddLogRequest struct {
	Note string `json:"note" binding:"max=5000"`
}

type CloseCaseRequest struct {
	Summary string `json:"summary" binding:"max=500"`
}

type ListCasesRequest struct {
	Q         string
	IssueType string
	Agent     string
	Priority  string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func parseListCasesRequest(c *gin.Context) ListCasesRequest {
	pagination := utils.ParsePagination(c)
	return ListCasesRequest{
		Q:         c.Query("q"),
		IssueType: c.Query("issue_type"),
		Agent:     c.Query("agent"),
		Priority:  c.Query("priority"),
		Status:    c.Query("status"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.DefaultQuery("sort_by", "case_number"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}
}

func (r ListCasesRequest) ToQuery() usecases.ListCasesQuery {
	return usecases.ListCasesQuery{
		Q:         r.Q,
		IssueType: r.IssueType,
		Agent:     r.Agent,
		Priority:  r.Priority,
		Status:    r.Status,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

func parseCaseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid case ID")
	}
	return uint(id), nil
}
