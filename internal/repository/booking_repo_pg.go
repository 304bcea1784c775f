package repository

import (
	"context"
	"errors"
	"fmt"

	"flight-booking/internal/domain"
	"github.com/jackc/pgx/v5"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	var seatPref any
	if booking.SeatPreference != "" {
		seatPref = string(booking.SeatPreference)
	}
	row := r.db.QueryRow(ctx, `INSERT INTO bookings
		(id, booking_reference, flight_id, user_id, passenger_name, passenger_email, passenger_phone, seat_preference, booking_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		booking.ID, booking.Reference, booking.FlightID, booking.UserID,
		booking.PassengerName, booking.PassengerEmail, booking.PassengerPhone,
		seatPref, booking.Status)
	if err := row.Scan(&booking.CreatedAt); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

const bookingSelect = `SELECT b.id, b.booking_reference, b.flight_id, b.user_id,
	b.passenger_name, b.passenger_email, b.passenger_phone,
	COALESCE(b.seat_preference, ''), b.booking_status, b.created_at,
	f.id, f.flight_number, f.airline, f.origin, f.destination,
	f.departure_time, f.arrival_time, f.price
	FROM bookings b JOIN flights f ON f.id = b.flight_id `

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, bookingSelect+`WHERE b.id=$1`, id)
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return r.getOne(ctx, bookingSelect+`WHERE b.booking_reference=$1`, reference)
}

func (r *PGBookingRepository) getOne(ctx context.Context, sql string, arg any) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, sql, arg)
	var b domain.Booking
	var flight domain.FlightSummary
	if err := row.Scan(&b.ID, &b.Reference, &b.FlightID, &b.UserID,
		&b.PassengerName, &b.PassengerEmail, &b.PassengerPhone,
		&b.SeatPreference, &b.Status, &b.CreatedAt,
		&flight.ID, &flight.FlightNumber, &flight.Airline, &flight.Origin, &flight.Destination,
		&flight.DepartureTime, &flight.ArrivalTime, &flight.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	b.Flight = &flight
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
