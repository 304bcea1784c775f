package flights

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"flight-booking/internal/domain"
	"flight-booking/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, input SearchInput) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
}

// Cache holds the unfiltered flight list for the admin listing. Search and
// point lookups always hit the store so seat counts stay current.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
	now   func() time.Time
}

type FlightServiceOption func(*FlightService)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) { s.now = now }
}

func NewFlightService(repo repository.FlightRepository, cache Cache, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{repo: repo, cache: cache, now: time.Now}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

type SearchInput struct {
	Origin      string
	Destination string
	Date        string
}

func (s *FlightService) Search(ctx context.Context, input SearchInput) ([]domain.Flight, error) {
	origin, err := normalizeAirportCode(input.Origin)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	destination, err := normalizeAirportCode(input.Destination)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, domain.NewValidationError("date must be a valid ISO date (YYYY-MM-DD)")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return nil, domain.NewValidationError("date must not be in the past")
	}

	startOfDay := day
	endOfDay := day.Add(24*time.Hour - time.Nanosecond)
	return s.repo.Search(ctx, origin, destination, startOfDay, endOfDay)
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func normalizeAirportCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", domain.NewValidationError("airport code must be exactly 3 characters")
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return "", domain.NewValidationError("airport code must contain only letters")
		}
	}
	return code, nil
}

var _ FlightUseCase = (*FlightService)(nil)
