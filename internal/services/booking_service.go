package services

import (
	"github.com/sirupsen/logrus"

	"zambus/internal/domain"
	"zambus/internal/inventory"
	"zambus/internal/store"
)

type BookingService struct {
	Store     *store.Store
	Inventory *inventory.Manager
}

type CreateBookingRequest struct {
	TripID        string `json:"tripId" binding:"required"`
	SeatNumbers   []int  `json:"seatNumbers" binding:"required"`
	PassengerID   string `json:"-"`
	PaymentMethod string `json:"paymentMethod"`
	PriceOverride int64  `json:"priceOverride"`
}

// Create reserves the seats and commits the booking in one step.
func (s BookingService) Create(req CreateBookingRequest) (domain.Booking, error) {
	booking, err := s.Inventory.Reserve(inventory.ReserveRequest{
		TripID:        req.TripID,
		SeatNumbers:   req.SeatNumbers,
		PassengerID:   req.PassengerID,
		PaymentMethod: req.PaymentMethod,
		PriceOverride: req.PriceOverride,
	})
	if err != nil {
		return domain.Booking{}, err
	}
	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"trip_id":    booking.TripID,
		"seats":      booking.SeatNumbers,
		"amount":     booking.TotalAmount,
	}).Info("booking confirmed")
	return booking, nil
}

// Hold parks seats pending payment; Confirm turns the hold into a booking.
func (s BookingService) Hold(tripID string, seats []int, passengerID string) (domain.Hold, error) {
	return s.Inventory.HoldSeats(tripID, seats, passengerID)
}

func (s BookingService) ConfirmHold(holdID, paymentMethod string) (domain.Booking, error) {
	return s.Inventory.ConfirmHold(holdID, paymentMethod)
}

func (s BookingService) ReleaseHold(holdID string) error {
	return s.Inventory.ReleaseHold(holdID)
}

// Cancel returns the booking's seats to the trip's pool and refunds the
// payment. Passengers may only cancel their own bookings; admins pass an
// empty passengerID to skip the ownership check.
func (s BookingService) Cancel(bookingID, passengerID string) (domain.Booking, error) {
	if passengerID != "" {
		b, err := s.Store.GetBooking(bookingID)
		if err != nil {
			return domain.Booking{}, err
		}
		if b.PassengerID != passengerID {
			return domain.Booking{}, domain.NotFoundError{Resource: "booking", ID: bookingID}
		}
	}
	booking, err := s.Inventory.CancelBooking(bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"trip_id":    booking.TripID,
		"seats":      booking.SeatNumbers,
	}).Info("booking cancelled, seats released")
	return booking, nil
}

func (s BookingService) Get(bookingID string) (domain.Booking, error) {
	return s.Store.GetBooking(bookingID)
}

func (s BookingService) List() []domain.Booking {
	return s.Store.ListBookings()
}

func (s BookingService) ListForPassenger(passengerID string) []domain.Booking {
	return s.Store.ListBookingsByPassenger(passengerID)
}

func (s BookingService) ListForTrip(tripID string) []domain.Booking {
	return s.Store.ListBookingsByTrip(tripID)
}

type CheckInResult struct {
	Booking   domain.Booking `json:"booking"`
	Passenger domain.User    `json:"passenger"`
	Trip      domain.Trip    `json:"trip"`
}

// CheckIn looks a booking up by ticket code at the bus door and marks it
// completed. Only confirmed bookings on a trip that has not been cancelled
// can board.
func (s BookingService) CheckIn(ticketCode string) (CheckInResult, error) {
	booking, err := s.Store.FindBookingByTicketCode(ticketCode)
	if err != nil {
		return CheckInResult{}, err
	}
	if booking.Status != domain.BookingConfirmed {
		return CheckInResult{}, domain.InvalidStateError{Resource: "booking", State: string(booking.Status)}
	}
	trip, err := s.Store.GetTrip(booking.TripID)
	if err != nil {
		return CheckInResult{}, err
	}
	if trip.Status == domain.TripCancelled || trip.Status == domain.TripArrived {
		return CheckInResult{}, domain.InvalidStateError{Resource: "trip", State: string(trip.Status)}
	}
	passenger, err := s.Store.GetUser(booking.PassengerID)
	if err != nil {
		return CheckInResult{}, err
	}
	if err := s.Store.UpdateBookingStatus(booking.ID, domain.BookingCompleted, booking.PaymentStatus); err != nil {
		return CheckInResult{}, err
	}
	booking.Status = domain.BookingCompleted
	return CheckInResult{Booking: booking, Passenger: passenger, Trip: trip}, nil
}

// PaymentsForPassenger joins the passenger's bookings to their payment
// records.
func (s BookingService) PaymentsForPassenger(passengerID string) []domain.Payment {
	mine := map[string]struct{}{}
	for _, b := range s.Store.ListBookingsByPassenger(passengerID) {
		mine[b.ID] = struct{}{}
	}
	out := []domain.Payment{}
	for _, p := range s.Store.ListPayments() {
		if _, ok := mine[p.BookingID]; ok {
			out = append(out, p)
		}
	}
	return out
}
