// Package usecase implements the business logic of the contact feature.
package usecase

import (
	"context"
	"errors"
	"strings"

	"marketlens/internal/feature/contact/domain/entity"
)

var (
	// ErrMessageNotFound is returned when no message matches the id.
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrInvalidStatus is returned for a status outside the moderation set.
	ErrInvalidStatus = errors.New("invalid contact message status")
)

// ContactRepository abstracts contact-message persistence. Consumer-defined.
type ContactRepository interface {
	Insert(ctx context.Context, msg *entity.ContactMessage) error
	// List returns messages newest first, optionally filtered by status.
	List(ctx context.Context, status string) ([]entity.ContactMessage, error)
	// UpdateStatus returns ErrMessageNotFound when the id is absent.
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// contactUsecase implements the contact operations.
type contactUsecase struct {
	messages ContactRepository
}

// NewContactUsecase creates a contactUsecase instance.
func NewContactUsecase(messages ContactRepository) *contactUsecase {
	return &contactUsecase{messages: messages}
}

// Submit stores a public contact-form message as NEW. Field presence and
// format are validated at the transport boundary; this trims and persists.
func (u *contactUsecase) Submit(ctx context.Context, name, email, subject, body string) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
		Status:  entity.StatusNew,
	}
	if err := u.messages.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns messages for the admin view, optionally filtered by status.
func (u *contactUsecase) List(ctx context.Context, status string) ([]entity.ContactMessage, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return u.messages.List(ctx, status)
}

// UpdateStatus moves a message through moderation.
func (u *contactUsecase) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !entity.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return u.messages.UpdateStatus(ctx, id, status)
}
