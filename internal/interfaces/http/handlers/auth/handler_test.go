package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casedesk/internal/application/auth/usecases"
	"casedesk/internal/interfaces/http/handlers/testutil"
	"casedesk/internal/shared/errors"
)

type mockLoginUC struct {
	result  *usecases.LoginResult
	err     error
	lastCmd usecases.LoginCommand
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListAgentsUC struct {
	result *usecases.ListAgentsResult
	err    error
}

func (m *mockListAgentsUC) Execute(_ context.Context) (*usecases.ListAgentsResult, error) {
	return m.result, m.err
}

func newTestAuthHandler(loginUC usecases.LoginExecutor, listAgentsUC usecases.ListAgentsExecutor) *AuthHandler {
	return NewAuthHandler(loginUC, listAgentsUC)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockUC := &mockLoginUC{
		result: &usecases.LoginResult{
			Token:     "test-token",
			ExpiresIn: 3600,
			UserID:    1,
			Name:      "Sam Support",
			Email:     "sam@example.com",
			Role:      "agent",
		},
	}
	handler := newTestAuthHandler(mockUC, nil)

	body := LoginRequest{Email: "sam@example.com", Password: "secret"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", body)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sam@example.com", mockUC.lastCmd.Email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var login LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	assert.Equal(t, "test-token", login.Token)
	assert.Equal(t, int64(3600), login.ExpiresIn)
	assert.Equal(t, "Sam Support", login.User.Name)
	assert.Equal(t, "agent", login.User.Role)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := newTestAuthHandler(&mockLoginUC{}, nil)

	body := map[string]string{"email": "sam@example.com"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", body)

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid credentials")}
	handler := newTestAuthHandler(mockUC, nil)

	body := LoginRequest{Email: "sam@example.com", Password: "wrong"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", body)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid credentials", resp.Error.Message)
}

func TestAuthHandler_ListAgents_Success(t *testing.T) {
	mockUC := &mockListAgentsUC{
		result: &usecases.ListAgentsResult{Agents: []string{"Alex Agent", "Sam Support"}},
	}
	handler := newTestAuthHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/agents", nil)
	testutil.SetAuthContext(c, 1, "Sam Support")

	handler.ListAgents(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var payload struct {
		Agents []string `json:"agents"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	assert.Equal(t, []string{"Alex Agent", "Sam Support"}, payload.Agents)
}

func TestAuthHandler_ListAgents_StoreFailure(t *testing.T) {
	mockUC := &mockListAgentsUC{err: errors.NewUnavailableError("failed to list users")}
	handler := newTestAuthHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/agents", nil)
	testutil.SetAuthContext(c, 1, "Sam Support")

	handler.ListAgents(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
