package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"joacms/internal/pricing"
	"joacms/internal/recommend"

	"github.com/google/uuid"
)

// Recommender is the menu pipeline a booking falls back to when the
// customer did not pick dishes themselves.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

type Service struct {
	repo        Repository
	recommender Recommender
}

func NewService(repo Repository, recommender Recommender) *Service {
	return &Service{repo: repo, recommender: recommender}
}

// Create validates the submission, prices the final menu and persists
// the appointment with its 50% deposit.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Appointment, []string, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, nil, errors.New("customer name is required")
	}
	if req.EventType == "" {
		return nil, nil, errors.New("event type is required")
	}
	if !pricing.IsValidGuestCount(req.GuestCount) {
		return nil, nil, errors.New("guest count must be one of 50, 80, 100, 150, 200, 300")
	}
	if req.AddOnFee < 0 {
		return nil, nil, errors.New("add-on fee cannot be negative")
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, nil, errors.New("event date must be YYYY-MM-DD")
	}
	if eventDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, nil, errors.New("event date is in the past")
	}

	appointment := &Appointment{
		Reference:     uuid.New().String(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		EventType:     req.EventType,
		EventDate:     eventDate,
		GuestCount:    req.GuestCount,
		Selection:     req.MenuSelection,
		Status:        "PENDING_DEPOSIT",
		CreatedAt:     time.Now(),
	}

	var warnings []string
	if appointment.Selection != nil {
		if err := appointment.Selection.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid menu selection: %w", err)
		}
	} else {
		resp, err := s.recommender.Recommend(ctx, recommend.Request{
			EventType:      req.EventType,
			GuestCount:     req.GuestCount,
			PreferenceText: req.PreferenceText,
			Province:       req.Province,
			City:           req.City,
			Barangay:       req.Barangay,
		})
		if err != nil {
			return nil, nil, err
		}
		appointment.Selection = resp.Selection
		appointment.Venue = resp.Venue
		warnings = resp.Warnings
	}

	appointment.Pricing = pricing.Compute(
		appointment.Selection.Items(),
		req.GuestCount,
		req.EventType,
		req.AddOnFee,
	)

	if err := s.repo.Save(ctx, appointment); err != nil {
		return nil, nil, err
	}
	return appointment, warnings, nil
}

func (s *Service) Get(ctx context.Context, reference string) (*Appointment, error) {
	if reference == "" {
		return nil, errors.New("booking reference is required")
	}
	return s.repo.FindByReference(ctx, reference)
}

func (s *Service) ListAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}
