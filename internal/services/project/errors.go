package project

import (
	"errors"

	"github.com/bach-end/Portfolio/internal/models"
)

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyID = errors.New("project id cannot be empty")

	// Lookup errors
	ErrProjectNotFound = models.ErrProjectNotFound
)
