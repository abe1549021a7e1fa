//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yatra/backend/internal/repository"
	"yatra/backend/pkg/logger"
)

const (
	newsletterBucket = "newsletter"
	newsletterLimit  = 5
	newsletterWindow = 10 * time.Minute
	newsletterAction = "newsletter"
)

// SubscribeResult reports a completed signup. Duplicate is set when the
// email was already on the list; resubscribing is an idempotent success,
// never an error.
type SubscribeResult struct {
	Duplicate bool
}

// NewsletterService handles newsletter signups.
type NewsletterService interface {
	Subscribe(ctx context.Context, email, token, clientIP string) (*SubscribeResult, error)
}

type newsletterService struct {
	subscribers  repository.SubscriberRepository
	limiter      RateLimiter
	verifier     ChallengeVerifier
	verifyWrites bool
}

// NewNewsletterService creates a newsletter service. When verifyWrites is
// false (e.g. local development) the challenge check is skipped; rate
// limiting always applies.
func NewNewsletterService(subscribers repository.SubscriberRepository, limiter RateLimiter, verifier ChallengeVerifier, verifyWrites bool) NewsletterService {
	return &newsletterService{
		subscribers:  subscribers,
		limiter:      limiter,
		verifier:     verifier,
		verifyWrites: verifyWrites,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, email, token, clientIP string) (*SubscribeResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Check(ctx, newsletterBucket, clientIP, newsletterLimit, newsletterWindow); err != nil {
		return nil, err
	}

	if s.verifyWrites {
		if err := s.verifier.Verify(ctx, token, clientIP, newsletterAction); err != nil {
			return nil, err
		}
	}

	if _, err := s.subscribers.Create(ctx, normalized); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return &SubscribeResult{Duplicate: true}, nil
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}

	logger.Info("newsletter subscription", "module", "service", "resource", "newsletter", "result", "created")
	return &SubscribeResult{}, nil
}
