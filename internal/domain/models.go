package domain

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RolePassenger Role = "passenger"
	RoleDriver    Role = "driver"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BusStatus string

const (
	BusActive      BusStatus = "active"
	BusMaintenance BusStatus = "maintenance"
	BusInactive    BusStatus = "inactive"
)

type Bus struct {
	ID          string    `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	Capacity    int       `json:"capacity"`
	Type        string    `json:"type"` // AC, Non-AC, Luxury, Sleeper
	Features    []string  `json:"features"`
	Status      BusStatus `json:"status"`
	DriverID    string    `json:"driverId,omitempty"`
}

type Route struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Stops       []string `json:"stops"`
	DurationMin int      `json:"duration"` // minutes
	DistanceKm  int      `json:"distance"` // km
	BasePrice   int64    `json:"basePrice"`
}

type TripStatus string

const (
	TripScheduled TripStatus = "scheduled"
	TripBoarding  TripStatus = "boarding"
	TripInTransit TripStatus = "in-transit"
	TripArrived   TripStatus = "arrived"
	TripCancelled TripStatus = "cancelled"
)

// Trip is one scheduled departure of a bus on a route. AvailableSeats and
// BookedSeats partition the seat range 1..capacity fixed at creation time;
// the seat inventory manager is the only writer of either set.
type Trip struct {
	ID             string     `json:"id"`
	RouteID        string     `json:"routeId"`
	BusID          string     `json:"busId"`
	DriverID       string     `json:"driverId"`
	DepartureTime  time.Time  `json:"departureTime"`
	ArrivalTime    time.Time  `json:"arrivalTime"`
	Price          int64      `json:"price"`
	SeatCapacity   int        `json:"seatCapacity"`
	AvailableSeats []int      `json:"availableSeats"`
	BookedSeats    []int      `json:"bookedSeats"`
	Status         TripStatus `json:"status"`
}

// Departed reports whether the trip has left or finished; departed trips
// reject new reservations and cancellations no longer free seats.
func (t Trip) Departed() bool {
	return t.Status == TripInTransit || t.Status == TripArrived
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentState string

const (
	PaymentPending  PaymentState = "pending"
	PaymentPaid     PaymentState = "paid"
	PaymentRefunded PaymentState = "refunded"
)

type Booking struct {
	ID            string        `json:"id"`
	TripID        string        `json:"tripId"`
	PassengerID   string        `json:"passengerId"`
	SeatNumbers   []int         `json:"seatNumbers"`
	TotalAmount   int64         `json:"totalAmount"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentState  `json:"paymentStatus"`
	BookingDate   time.Time     `json:"bookingDate"`
	TicketCode    string        `json:"ticketCode"`
}

type Payment struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	Amount        int64     `json:"amount"`
	Method        string    `json:"method"` // card, mobile-money, wallet
	Status        string    `json:"status"` // pending, completed, failed, refunded
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
}

// Hold is a temporary claim on seats pending payment confirmation. Held
// seats stay in the trip's available set but are excluded from availability
// reads until the hold is confirmed, released or expired.
type Hold struct {
	ID          string    `json:"id"`
	TripID      string    `json:"tripId"`
	PassengerID string    `json:"passengerId"`
	SeatNumbers []int     `json:"seatNumbers"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (h Hold) Expired(now time.Time) bool {
	return now.After(h.ExpiresAt)
}
