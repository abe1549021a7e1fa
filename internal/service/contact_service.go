//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"time"

	"yatra/backend/internal/model"
	"yatra/backend/internal/repository"
	"yatra/backend/pkg/logger"
	"yatra/backend/pkg/sanitizer"
)

const (
	contactBucket = "contact"
	contactLimit  = 5
	contactWindow = 10 * time.Minute
	contactAction = "contact"

	maxNameLength    = 200
	maxMessageLength = 5000
)

// ContactService handles contact form submissions.
type ContactService interface {
	Send(ctx context.Context, name, email, message, token, clientIP string) (*model.ContactMessage, error)
}

type contactService struct {
	messages     repository.ContactMessageRepository
	limiter      RateLimiter
	verifier     ChallengeVerifier
	verifyWrites bool
}

// NewContactService creates a contact service.
func NewContactService(messages repository.ContactMessageRepository, limiter RateLimiter, verifier ChallengeVerifier, verifyWrites bool) ContactService {
	return &contactService{
		messages:     messages,
		limiter:      limiter,
		verifier:     verifier,
		verifyWrites: verifyWrites,
	}
}

func (s *contactService) Send(ctx context.Context, name, email, message, token, clientIP string) (*model.ContactMessage, error) {
	name = sanitizer.CleanText(name)
	message = sanitizer.CleanText(message)
	if name == "" || len(name) > maxNameLength {
		return nil, ErrInvalid
	}
	if message == "" || len(message) > maxMessageLength {
		return nil, ErrInvalid
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Check(ctx, contactBucket, clientIP, contactLimit, contactWindow); err != nil {
		return nil, err
	}

	if s.verifyWrites {
		if err := s.verifier.Verify(ctx, token, clientIP, contactAction); err != nil {
			return nil, err
		}
	}

	created, err := s.messages.Create(ctx, name, normalized, message)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	logger.Info("contact message received", "module", "service", "resource", "contact", "id", created.ID)
	return created, nil
}
