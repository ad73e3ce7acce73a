package contact

//go:generate mockgen -destination=./service_mock_test.go -package=contact -source=service.go Service

import (
	"context"
	"fmt"
	"strings"

	"talk-connect-hub/internal/domain"
	"talk-connect-hub/internal/phone"

	"github.com/google/uuid"
)

// MissingFieldsError names the required fields absent from a request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("%s is required", e.Fields[0])
	}
	return fmt.Sprintf("%s are required", strings.Join(e.Fields, " and "))
}

// Service defines the business logic for the contact book.
type Service interface {
	// ListContacts returns the owner's contacts matching query, favorites first.
	ListContacts(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.Contact, error)

	// AddContact saves a new contact with its number normalized.
	AddContact(ctx context.Context, ownerID uuid.UUID, name, number, email string) (*domain.Contact, error)

	// ToggleFavorite flips a contact's favorite flag.
	ToggleFavorite(ctx context.Context, ownerID, contactID uuid.UUID) (*domain.Contact, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	repo Repository
}

// NewService is the constructor for the contact service.
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) ListContacts(ctx context.Context, ownerID uuid.UUID, query string) ([]*domain.Contact, error) {
	contacts, err := s.repo.SearchContacts(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("could not list contacts: %w", err)
	}
	return contacts, nil
}

func (s *service) AddContact(ctx context.Context, ownerID uuid.UUID, name, number, email string) (*domain.Contact, error) {
	name = strings.TrimSpace(name)
	number = phone.Normalize(number)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if number == "" {
		missing = append(missing, "number")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	c := &domain.Contact{
		OwnerID: ownerID,
		Name:    name,
		Number:  number,
		Email:   strings.ToLower(strings.TrimSpace(email)),
	}
	if err := s.repo.CreateContact(ctx, c); err != nil {
		return nil, fmt.Errorf("could not add contact: %w", err)
	}
	return c, nil
}

func (s *service) ToggleFavorite(ctx context.Context, ownerID, contactID uuid.UUID) (*domain.Contact, error) {
	c, err := s.repo.ToggleFavorite(ctx, ownerID, contactID)
	if err != nil {
		return nil, fmt.Errorf("could not toggle favorite: %w", err)
	}
	return c, nil
}
