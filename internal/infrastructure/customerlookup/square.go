// Package customerlookup queries the external customer directory. The
// lookup is a convenience for pre-filling case forms; callers treat
// failures as an empty result rather than an error surface.
package customerlookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/config"
)

const squareAPIVersion = "2024-06-04"

type SquareClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewSquareClient(cfg *config.CustomerAPIConfig) *SquareClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SquareClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled reports whether the client has credentials to call the API.
func (c *SquareClient) Enabled() bool {
	return c.accessToken != ""
}

type squareCustomer struct {
	ID           string `json:"id"`
	GivenName    string `json:"given_name"`
	FamilyName   string `json:"family_name"`
	CompanyName  string `json:"company_name"`
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
}

type searchResponse struct {
	Customers []squareCustomer `json:"customers"`
}

// Search looks up customers matching the free-text query. Queries that
// look like an email or phone number use the API's fuzzy filters; other
// queries are matched against customer names client-side.
func (c *SquareClient) Search(ctx context.Context, query string) ([]cases.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []cases.Customer{}, nil
	}

	var filter map[string]interface{}
	switch {
	case strings.Contains(query, "@"):
		filter = map[string]interface{}{
			"email_address": map[string]string{"fuzzy": query},
		}
	case isPhoneLike(query):
		filter = map[string]interface{}{
			"phone_number": map[string]string{"fuzzy": query},
		}
	}

	if filter != nil {
		return c.search(ctx, filter)
	}
	return c.searchByName(ctx, query)
}

func (c *SquareClient) search(ctx context.Context, filter map[string]interface{}) ([]cases.Customer, error) {
	body, err := json.Marshal(map[string]interface{}{
		"limit": 20,
		"query": map[string]interface{}{"filter": filter},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/customers/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return mapCustomers(resp.Customers), nil
}

// searchByName pulls the first page of the directory and filters by name
// locally; the API has no free-text name filter.
func (c *SquareClient) searchByName(ctx context.Context, query string) ([]cases.Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/customers?limit=100", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	result := []cases.Customer{}
	for _, sc := range resp.Customers {
		name := displayName(sc)
		if strings.Contains(strings.ToLower(name), needle) {
			result = append(result, toCustomer(sc))
		}
	}
	return result, nil
}

func (c *SquareClient) do(req *http.Request) (*searchResponse, error) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Square-Version", squareAPIVersion)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("customer lookup request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("customer lookup returned status %d: %s", httpResp.StatusCode, string(body))
	}

	var resp searchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode customer lookup response: %w", err)
	}
	return &resp, nil
}

func isPhoneLike(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 3
}

func displayName(sc squareCustomer) string {
	name := strings.TrimSpace(sc.GivenName + " " + sc.FamilyName)
	if name == "" {
		name = sc.CompanyName
	}
	if name == "" {
		name = "Customer"
	}
	return name
}

func toCustomer(sc squareCustomer) cases.Customer {
	return cases.Customer{
		ID:    sc.ID,
		Name:  displayName(sc),
		Email: sc.EmailAddress,
		Phone: sc.PhoneNumber,
	}
}

func mapCustomers(scs []squareCustomer) []cases.Customer {
	result := make([]cases.Customer, 0, len(scs))
	for _, sc := range scs {
		result = append(result, toCustomer(sc))
	}
	return result
}
