package team

import (
	"errors"

	"github.com/bach-end/Portfolio/internal/models"
)

// Team-related errors
var (
	ErrEmptyID        = errors.New("member id cannot be empty")
	ErrMemberNotFound = models.ErrMemberNotFound
)
