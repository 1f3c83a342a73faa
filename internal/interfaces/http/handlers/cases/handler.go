// Package cases exposes the case tracking REST surface.
package cases

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"casedesk/internal/application/cases/usecases"
	domain "casedesk/internal/domain/cases"
	"casedesk/internal/shared/constants"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
	"casedesk/internal/shared/utils"
)

// AttachmentStore persists uploaded files and returns stable references
// to them.
type AttachmentStore interface {
	SaveAll(files []*multipart.FileHeader) ([]domain.Attachment, error)
}

type CaseHandler struct {
	createCaseUC usecases.CreateCaseExecutor
	getCaseUC    usecases.GetCaseExecutor
	listCasesUC  usecases.ListCasesExecutor
	addLogUC     usecases.AddLogExecutor
	closeCaseUC  usecases.CloseCaseExecutor
	reopenCaseUC usecases.ReopenCaseExecutor
	deleteCaseUC usecases.DeleteCaseExecutor
	attachments  AttachmentStore
	logger       logger.Interface
}

func NewCaseHandler(
	createCaseUC usecases.CreateCaseExecutor,
	getCaseUC usecases.GetCaseExecutor,
	listCasesUC usecases.ListCasesExecutor,
	addLogUC usecases.AddLogExecutor,
	closeCaseUC usecases.CloseCaseExecutor,
	reopenCaseUC usecases.ReopenCaseExecutor,
	deleteCaseUC usecases.DeleteCaseExecutor,
	attachments AttachmentStore,
) *CaseHandler {
	return &CaseHandler{
		createCaseUC: createCaseUC,
		getCaseUC:    getCaseUC,
		listCasesUC:  listCasesUC,
		addLogUC:     addLogUC,
		closeCaseUC:  closeCaseUC,
		reopenCaseUC: reopenCaseUC,
		deleteCaseUC: deleteCaseUC,
		attachments:  attachments,
		logger:       logger.NewLogger(),
	}
}

// CreateCase handles POST /api/cases
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req CreateCaseRequest
	files, err := h.bindDataWithFiles(c, &req)
	if err != nil {
		h.logger.Warnw("invalid request body for create case", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCaseUC.Execute(c.Request.Context(), req.ToCommand(actingUser(c), files))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Case created successfully")
}

// GetCase handles GET /api/cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCaseUC.Execute(c.Request.Context(), usecases.GetCaseQuery{CaseID: caseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCases handles GET /api/cases
func (h *CaseHandler) ListCases(c *gin.Context) {
	req := parseListCasesRequest(c)

	result, err := h.listCasesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Cases, result.Total, result.Page, result.PageSize)
}

// AddLog handles POST /api/cases/:id/logs
func (h *CaseHandler) AddLog(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddLogRequest
	files, err := h.bindDataWithFiles(c, &req)
	if err != nil {
		h.logger.Warnw("invalid request body for add log", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addLogUC.Execute(c.Request.Context(), usecases.AddLogCommand{
		CaseID:     caseID,
		Note:       req.Note,
		Files:      files,
		ActingUser: actingUser(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Log entry added successfully")
}

// CloseCase handles PATCH /api/cases/:id/close
func (h *CaseHandler) CloseCase(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseCaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}
	}

	result, err := h.closeCaseUC.Execute(c.Request.Context(), usecases.CloseCaseCommand{
		CaseID:     caseID,
		Summary:    req.Summary,
		ActingUser: actingUser(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case closed successfully", result)
}

// ReopenCase handles PATCH /api/cases/:id/reopen
func (h *CaseHandler) ReopenCase(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reopenCaseUC.Execute(c.Request.Context(), usecases.ReopenCaseCommand{
		CaseID:     caseID,
		ActingUser: actingUser(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case reopened successfully", result)
}

// DeleteCase handles DELETE /api/cases/:id
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteCaseUC.Execute(c.Request.Context(), usecases.DeleteCaseCommand{
		CaseID:     caseID,
		ActingUser: actingUser(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// bindDataWithFiles binds the request payload from either a plain JSON
// body or a multipart form carrying a "data" JSON field plus "files"
// parts. Uploaded files are stored before the command runs.
func (h *CaseHandler) bindDataWithFiles(c *gin.Context, out interface{}) ([]domain.Attachment, error) {
	contentType := c.ContentType()

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBindJSON(out); err != nil {
			return nil, errors.NewValidationError("invalid request body", err.Error())
		}
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.NewValidationError("invalid multipart form", err.Error())
	}

	if data := c.PostForm("data"); data != "" {
		if err := json.Unmarshal([]byte(data), out); err != nil {
			return nil, errors.NewValidationError("invalid data field", err.Error())
		}
		if err := utils.ValidateStruct(out); err != nil {
			return nil, err
		}
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return nil, nil
	}

	attachments, err := h.attachments.SaveAll(fileHeaders)
	if err != nil {
		h.logger.Errorw("failed to store uploaded files", "error", err)
		return nil, errors.NewInternalError("failed to store uploaded files")
	}
	return attachments, nil
}

func actingUser(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserName)
}
