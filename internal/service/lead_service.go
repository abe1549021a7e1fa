//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"yatra/backend/internal/model"
	"yatra/backend/internal/repository"
	"yatra/backend/pkg/logger"
	"yatra/backend/pkg/sanitizer"
)

const (
	leadBucket = "lead"
	leadLimit  = 3
	leadWindow = 10 * time.Minute
	leadAction = "lead"

	maxGroupSize = 100
)

// LeadRequest is a trip inquiry as submitted by the booking form.
type LeadRequest struct {
	Name        string
	Email       string
	Phone       string
	Destination string
	TravelDate  string
	GroupSize   int
	Message     string
	Source      string
	Token       string
}

// LeadResult is handed back to the visitor; Reference is the code quoted in
// follow-up emails.
type LeadResult struct {
	Reference string
}

// LeadService handles booking inquiries.
type LeadService interface {
	Submit(ctx context.Context, req LeadRequest, clientIP string) (*LeadResult, error)
}

type leadService struct {
	leads        repository.TripLeadRepository
	limiter      RateLimiter
	verifier     ChallengeVerifier
	verifyWrites bool
}

// NewLeadService creates a lead service.
func NewLeadService(leads repository.TripLeadRepository, limiter RateLimiter, verifier ChallengeVerifier, verifyWrites bool) LeadService {
	return &leadService{
		leads:        leads,
		limiter:      limiter,
		verifier:     verifier,
		verifyWrites: verifyWrites,
	}
}

func (s *leadService) Submit(ctx context.Context, req LeadRequest, clientIP string) (*LeadResult, error) {
	name := sanitizer.CleanText(req.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, ErrInvalid
	}
	normalized, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if req.GroupSize < 0 || req.GroupSize > maxGroupSize {
		return nil, ErrInvalid
	}
	message := sanitizer.CleanText(req.Message)
	if len(message) > maxMessageLength {
		return nil, ErrInvalid
	}

	if err := s.limiter.Check(ctx, leadBucket, clientIP, leadLimit, leadWindow); err != nil {
		return nil, err
	}

	if s.verifyWrites {
		if err := s.verifier.Verify(ctx, req.Token, clientIP, leadAction); err != nil {
			return nil, err
		}
	}

	lead := model.TripLead{
		Reference: uuid.NewString(),
		Name:      name,
		Email:     normalized,
	}
	if phone := sanitizer.CleanText(req.Phone); phone != "" {
		lead.Phone = &phone
	}
	if destination := sanitizer.CleanText(req.Destination); destination != "" {
		lead.Destination = &destination
	}
	if travelDate := sanitizer.CleanText(req.TravelDate); travelDate != "" {
		lead.TravelDate = &travelDate
	}
	if req.GroupSize > 0 {
		size := req.GroupSize
		lead.GroupSize = &size
	}
	if message != "" {
		lead.Message = &message
	}
	if source := sanitizer.CleanText(req.Source); source != "" {
		lead.Source = &source
	}

	created, err := s.leads.Create(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("create trip lead: %w", err)
	}

	logger.Info("trip lead received", "module", "service", "resource", "lead", "id", created.ID)
	return &LeadResult{Reference: created.Reference}, nil
}
