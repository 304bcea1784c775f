package email

import (
	"context"

	"flight-booking/internal/kafka"
	"go.uber.org/zap"
)

// Sender delivers booking confirmation emails. The current implementation
// only logs the delivery; swapping in an SMTP client is a deployment concern.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.logger.Info("sending booking confirmation email",
		zap.String("to", event.PassengerEmail),
		zap.String("booking_reference", event.Reference),
		zap.String("flight_id", event.FlightID))
	return nil
}
