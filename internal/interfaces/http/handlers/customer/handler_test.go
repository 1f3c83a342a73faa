package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casedesk/internal/application/customer/usecases"
	"casedesk/internal/interfaces/http/handlers/testutil"
)

type mockSearchCustomersUC struct {
	result    *usecases.SearchCustomersResult
	err       error
	lastQuery string
}

func (m *mockSearchCustomersUC) Execute(_ context.Context, query string) (*usecases.SearchCustomersResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

func TestCustomerHandler_Search_Success(t *testing.T) {
	mockUC := &mockSearchCustomersUC{
		result: &usecases.SearchCustomersResult{
			Customers: []usecases.CustomerDTO{{
				ID:    "CUST-1",
				Name:  "Jane Doe",
				Email: "jane@example.com",
			}},
		},
	}
	handler := NewCustomerHandler(mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/customers/search", nil)
	testutil.SetAuthContext(c, 1, "Sam Support")
	testutil.SetQueryParams(c, map[string]string{"q": "jane"})

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane", mockUC.lastQuery)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var payload struct {
		Customers []usecases.CustomerDTO `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	require.Len(t, payload.Customers, 1)
	assert.Equal(t, "Jane Doe", payload.Customers[0].Name)
}

func TestCustomerHandler_Search_EmptyResult(t *testing.T) {
	mockUC := &mockSearchCustomersUC{
		result: &usecases.SearchCustomersResult{Customers: []usecases.CustomerDTO{}},
	}
	handler := NewCustomerHandler(mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/customers/search", nil)
	testutil.SetAuthContext(c, 1, "Sam Support")

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var payload struct {
		Customers []usecases.CustomerDTO `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	assert.Empty(t, payload.Customers)
}
