// Package constants holds shared constant values used across layers.
package constants

const (
	// Pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Gin context keys set by the auth middleware
	ContextKeyUserID   = "user_id"
	ContextKeyUserName = "user_name"
	ContextKeyUserRole = "user_role"

	// CaseSequenceKey names the counter that hands out case numbers.
	CaseSequenceKey = "case"
)
