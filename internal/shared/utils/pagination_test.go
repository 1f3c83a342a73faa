package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"casedesk/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values pass through", 2, 25, 2, 25},
		{"zero page defaults", 0, 25, constants.DefaultPage, 25},
		{"negative page defaults", -5, 25, constants.DefaultPage, 25},
		{"zero page size defaults", 1, 0, 1, constants.DefaultPageSize},
		{"oversized page size is capped", 1, 10000, 1, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(rawQuery string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
		return c
	}

	t.Run("reads page and pageSize", func(t *testing.T) {
		got := ParsePagination(newContext("page=3&pageSize=10"))
		assert.Equal(t, 3, got.Page)
		assert.Equal(t, 10, got.PageSize)
	})

	t.Run("defaults apply when absent", func(t *testing.T) {
		got := ParsePagination(newContext(""))
		assert.Equal(t, constants.DefaultPage, got.Page)
		assert.Equal(t, constants.DefaultPageSize, got.PageSize)
	})

	t.Run("garbage values fall back to defaults", func(t *testing.T) {
		got := ParsePagination(newContext("page=abc&pageSize=-1"))
		assert.Equal(t, constants.DefaultPage, got.Page)
		assert.Equal(t, constants.DefaultPageSize, got.PageSize)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}
