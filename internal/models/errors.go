package models

import "errors"

// Domain errors shared by the catalog services
var (
	// ErrProjectNotFound indicates no project carries the requested ID
	ErrProjectNotFound = errors.New("project not found")

	// ErrMemberNotFound indicates no team member carries the requested ID
	ErrMemberNotFound = errors.New("team member not found")
)
