package models

import "errors"

// Sentinel errors for the domain. Repos return these so handlers can map
// them onto the response envelope without string matching.
var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrSlugTaken      = errors.New("event slug already in use for this tenant")
	ErrValidation     = errors.New("validation failed")
)
