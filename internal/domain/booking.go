package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type SeatPreference string

const (
	SeatPreferenceWindow SeatPreference = "window"
	SeatPreferenceAisle  SeatPreference = "aisle"
	SeatPreferenceMiddle SeatPreference = "middle"
)

func (p SeatPreference) Valid() bool {
	switch p {
	case SeatPreferenceWindow, SeatPreferenceAisle, SeatPreferenceMiddle:
		return true
	}
	return false
}

type Booking struct {
	ID             string         `json:"id"`
	Reference      string         `json:"booking_reference"`
	FlightID       string         `json:"flight_id"`
	UserID         string         `json:"user_id"`
	PassengerName  string         `json:"passenger_name"`
	PassengerEmail string         `json:"passenger_email"`
	PassengerPhone string         `json:"passenger_phone"`
	SeatPreference SeatPreference `json:"seat_preference,omitempty"`
	Status         BookingStatus  `json:"booking_status"`
	CreatedAt      time.Time      `json:"created_at"`
	Flight         *FlightSummary `json:"flight,omitempty"`
}
