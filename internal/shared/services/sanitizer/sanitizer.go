// Package sanitizer strips markup from free-text input before it is
// stored or echoed back to clients.
package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Service struct {
	policy *bluemonday.Policy
}

// NewService builds a sanitizer with a strict policy: all HTML is
// removed, only text content survives.
func NewService() *Service {
	return &Service{
		policy: bluemonday.StrictPolicy(),
	}
}

// Clean removes markup and trims surrounding whitespace.
func (s *Service) Clean(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}
