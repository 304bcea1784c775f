package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"flight-booking/internal/domain"
	"flight-booking/internal/kafka"
	"flight-booking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	users    repository.UserRepository
	producer Producer
	topic    string
	logger   *zap.Logger
	now      func() time.Time
}

type CreateBookingInput struct {
	FlightID       string
	PassengerName  string
	PassengerEmail string
	PassengerPhone string
	SeatPreference domain.SeatPreference
}

type BookingServiceOption func(*BookingService)

// WithProducer enables best-effort event publication on successful bookings.
func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) { s.now = now }
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	users repository.UserRepository,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		flights:  flights,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking runs the booking saga: load flight, guard availability and
// departure time, resolve the user by email, insert the booking, then
// conditionally decrement the seat count. The decrement is the commit point;
// if it fails the booking row is deleted so no booking ever exists without a
// reserved seat.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.SeatPreference != "" && !input.SeatPreference.Valid() {
		return nil, domain.NewValidationError("seat preference must be one of window, aisle, middle")
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if flight.AvailableSeats <= 0 {
		return nil, domain.ErrNoSeats
	}
	now := s.now()
	if !flight.DepartureTime.After(now) {
		return nil, domain.ErrPastDeparture
	}

	user, err := s.users.GetByEmail(ctx, input.PassengerEmail)
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{
			ID:    uuid.NewString(),
			Name:  input.PassengerName,
			Email: input.PassengerEmail,
			Phone: input.PassengerPhone,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:             uuid.NewString(),
		Reference:      NewReference(now),
		FlightID:       flight.ID,
		UserID:         user.ID,
		PassengerName:  input.PassengerName,
		PassengerEmail: input.PassengerEmail,
		PassengerPhone: input.PassengerPhone,
		SeatPreference: input.SeatPreference,
		Status:         domain.BookingStatusConfirmed,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	// The seat count read above is only advisory; the reservation must hold
	// against the store's current value.
	if err := s.flights.ReserveSeat(ctx, flight.ID); err != nil {
		s.rollbackBooking(ctx, booking)
		if errors.Is(err, domain.ErrNoSeats) {
			return nil, domain.ErrNoSeats
		}
		return nil, err
	}

	snapshot := flight.Summary()
	booking.Flight = &snapshot
	s.publish(ctx, booking)
	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, strings.ToUpper(reference))
}

// rollbackBooking deletes the booking inserted earlier in the saga. It runs
// on a detached context: a cancelled request must not leave behind a booking
// whose seat was never reserved.
func (s *BookingService) rollbackBooking(ctx context.Context, booking *domain.Booking) {
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.bookings.Delete(dctx, booking.ID); err != nil {
		s.logger.Error("booking rollback failed, orphaned row remains",
			zap.String("booking_id", booking.ID),
			zap.String("booking_reference", booking.Reference),
			zap.Error(err))
	}
}

func (s *BookingService) publish(ctx context.Context, booking *domain.Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:           "booking_created",
		BookingID:      booking.ID,
		Reference:      booking.Reference,
		FlightID:       booking.FlightID,
		PassengerEmail: booking.PassengerEmail,
		Status:         string(booking.Status),
		CreatedAt:      booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.topic, booking.Reference, event); err != nil {
		s.logger.Warn("publish booking event failed",
			zap.String("booking_reference", booking.Reference),
			zap.Error(err))
	}
}

var _ BookingUseCase = (*BookingService)(nil)
