package contact

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bach-end/Portfolio/internal/models"
)

// DefaultSubmitDelay mirrors the round trip the web form pretends to make
const DefaultSubmitDelay = time.Second

const (
	maxNameLength    = 100
	maxSubjectLength = 200
	maxMessageLength = 5000
)

// Service validates and "submits" contact messages.
// Nothing leaves the process: submission waits for the configured delay and logs the message.
type Service interface {
	Validate(msg models.ContactMessage) error
	Submit(ctx context.Context, msg models.ContactMessage) (*Receipt, error)
}

// Receipt confirms an accepted message
type Receipt struct {
	Message     models.ContactMessage `json:"message"`
	SubmittedAt time.Time             `json:"submittedAt"`
}

type service struct {
	delay time.Duration
	now   func() time.Time
}

// NewService creates a contact service. A negative delay is treated as zero.
func NewService(delay time.Duration) Service {
	if delay < 0 {
		delay = 0
	}
	return &service{delay: delay, now: time.Now}
}

// Normalize trims surrounding whitespace from every field
func Normalize(msg models.ContactMessage) models.ContactMessage {
	return models.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Subject: strings.TrimSpace(msg.Subject),
		Message: strings.TrimSpace(msg.Message),
	}
}

// Validate reports the first problem with msg, checking fields in form order
func (s *service) Validate(msg models.ContactMessage) error {
	msg = Normalize(msg)

	if msg.Name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(msg.Name) > maxNameLength {
		return ErrNameTooLong
	}
	if err := ValidateEmail(msg.Email); err != nil {
		return err
	}
	if utf8.RuneCountInString(msg.Subject) > maxSubjectLength {
		return ErrSubjectTooLong
	}
	if msg.Message == "" {
		return ErrMessageRequired
	}
	if utf8.RuneCountInString(msg.Message) > maxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// ValidateEmail accepts a bare address such as "me@example.com".
// Display-name forms like "Me <me@example.com>" are rejected.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// Submit validates msg and waits out the submission delay.
// It returns ctx.Err() if the context ends first.
func (s *service) Submit(ctx context.Context, msg models.ContactMessage) (*Receipt, error) {
	if err := s.Validate(msg); err != nil {
		return nil, err
	}
	msg = Normalize(msg)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			slog.Warn("contact submission cancelled", "error", ctx.Err())
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Info("contact message submitted",
		"name", msg.Name,
		"email", msg.Email,
		"subject", msg.Subject,
		"message_length", utf8.RuneCountInString(msg.Message))

	return &Receipt{Message: msg, SubmittedAt: s.now()}, nil
}
