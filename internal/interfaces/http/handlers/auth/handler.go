// Package auth exposes login and the agent roster.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casedesk/internal/application/auth/usecases"
	"casedesk/internal/shared/errors"
	"casedesk/internal/shared/logger"
	"casedesk/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	User      struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	listAgentsUC usecases.ListAgentsExecutor
	logger       logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, listAgentsUC usecases.ListAgentsExecutor) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		listAgentsUC: listAgentsUC,
		logger:       logger.NewLogger(),
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := LoginResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	}
	resp.User.ID = result.UserID
	resp.User.Name = result.Name
	resp.User.Email = result.Email
	resp.User.Role = result.Role

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListAgents handles GET /api/agents
func (h *AuthHandler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"agents": result.Agents})
}
