package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_Clean(t *testing.T) {
	s := NewService()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "modem is offline", "modem is offline"},
		{"script tags are stripped", "<script>alert('x')</script>modem is offline", "modem is offline"},
		{"all markup is removed", "<b>bold</b> and <i>italic</i>", "bold and italic"},
		{"surrounding whitespace is trimmed", "  padded note \n", "padded note"},
		{"empty input stays empty", "", ""},
		{"markup-only input collapses to empty", "<img src=x onerror=alert(1)>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.input))
		})
	}
}
