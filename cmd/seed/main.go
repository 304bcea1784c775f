package main

import (
	"context"
	"log"
	"os"
	"time"

	"flight-booking/config"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS flights (
	id              uuid PRIMARY KEY,
	flight_number   text NOT NULL,
	airline         text NOT NULL,
	origin          text NOT NULL,
	destination     text NOT NULL,
	departure_time  timestamptz NOT NULL,
	arrival_time    timestamptz NOT NULL,
	price           numeric(10,2) NOT NULL CHECK (price >= 0),
	available_seats int NOT NULL CHECK (available_seats >= 0),
	total_seats     int NOT NULL CHECK (total_seats > 0),
	aircraft_type   text NOT NULL,
	created_at      timestamptz NOT NULL DEFAULT now(),
	updated_at      timestamptz NOT NULL DEFAULT now(),
	CHECK (available_seats <= total_seats)
);

CREATE TABLE IF NOT EXISTS users (
	id         uuid PRIMARY KEY,
	name       text NOT NULL,
	email      text NOT NULL UNIQUE,
	phone      text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookings (
	id                uuid PRIMARY KEY,
	booking_reference text NOT NULL UNIQUE,
	flight_id         uuid NOT NULL REFERENCES flights(id),
	user_id           uuid NOT NULL REFERENCES users(id),
	passenger_name    text NOT NULL,
	passenger_email   text NOT NULL,
	passenger_phone   text NOT NULL,
	seat_preference   text CHECK (seat_preference IN ('window', 'aisle', 'middle')),
	booking_status    text NOT NULL DEFAULT 'confirmed',
	created_at        timestamptz NOT NULL DEFAULT now()
);
`

type seedFlight struct {
	number, airline, origin, destination, aircraft string
	departsIn, duration                            time.Duration
	price                                          float64
	available, total                               int
}

var seedFlights = []seedFlight{
	{"AA101", "American Airlines", "LAX", "JFK", "Boeing 737-800", 24 * time.Hour, 8*time.Hour + 30*time.Minute, 299.99, 120, 180},
	{"DL205", "Delta Airlines", "JFK", "LAX", "Airbus A320", 26 * time.Hour, 3*time.Hour + 30*time.Minute, 349.99, 85, 160},
	{"UA308", "United Airlines", "ORD", "SFO", "Boeing 777-200", 48 * time.Hour, 2*time.Hour + 45*time.Minute, 279.99, 95, 150},
	{"SW412", "Southwest Airlines", "DEN", "PHX", "Boeing 737-700", 50 * time.Hour, time.Hour + 20*time.Minute, 159.99, 110, 143},
	{"AA515", "American Airlines", "MIA", "LAS", "Airbus A321", 72 * time.Hour, 2*time.Hour + 45*time.Minute, 389.99, 68, 128},
	{"JB620", "JetBlue Airways", "BOS", "LAX", "Airbus A320", 74 * time.Hour, 3*time.Hour + 45*time.Minute, 329.99, 92, 162},
	{"DL723", "Delta Airlines", "ATL", "SEA", "Boeing 757-200", 96 * time.Hour, time.Hour + 45*time.Minute, 259.99, 105, 170},
	{"UA826", "United Airlines", "IAH", "ORD", "Boeing 737-900", 98 * time.Hour, 2*time.Hour + 45*time.Minute, 199.99, 78, 124},
	{"AA929", "American Airlines", "DFW", "JFK", "Airbus A319", 120 * time.Hour, 4*time.Hour + 35*time.Minute, 319.99, 87, 140},
	{"SW1030", "Southwest Airlines", "LAS", "DEN", "Boeing 737-800", 122 * time.Hour, 3*time.Hour + 15*time.Minute, 179.99, 125, 143},
}

// Seeds the schema and sample flights for local development. Existing
// bookings, flights and users are dropped first.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	for _, table := range []string{"bookings", "users", "flights"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("clear %s: %v", table, err)
		}
	}

	now := time.Now().UTC().Truncate(time.Hour)
	for _, f := range seedFlights {
		departure := now.Add(f.departsIn)
		_, err := pool.Exec(ctx, `INSERT INTO flights
			(id, flight_number, airline, origin, destination, departure_time, arrival_time, price, available_seats, total_seats, aircraft_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			uuid.NewString(), f.number, f.airline, f.origin, f.destination,
			departure, departure.Add(f.duration), f.price, f.available, f.total, f.aircraft)
		if err != nil {
			log.Fatalf("insert flight %s: %v", f.number, err)
		}
	}

	log.Printf("seeded %d flights", len(seedFlights))
}
