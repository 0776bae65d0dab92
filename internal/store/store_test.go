package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"zambus/internal/domain"
)

func TestSeededStoreIntegrity(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewSeeded(now)

	assert.Len(t, s.ListUsers(), 5)
	assert.Len(t, s.ListBuses(), 4)
	assert.Len(t, s.ListRoutes(), 5)
	assert.Len(t, s.ListTrips(), 3)
	assert.Len(t, s.ListBookings(), 2)
	assert.Len(t, s.ListPayments(), 2)

	// Every seeded account takes the demo password.
	admin, err := s.FindUserByEmail("admin@zambianbus.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(DemoPassword)))

	// Seeded trips keep the seat partition: available and booked are
	// disjoint and together cover 1..capacity.
	for _, trip := range s.ListTrips() {
		seen := map[int]bool{}
		for _, n := range trip.AvailableSeats {
			assert.False(t, seen[n], "trip %s seat %d duplicated", trip.ID, n)
			seen[n] = true
		}
		for _, n := range trip.BookedSeats {
			assert.False(t, seen[n], "trip %s seat %d in both sets", trip.ID, n)
			seen[n] = true
		}
		assert.Len(t, seen, trip.SeatCapacity)
		assert.True(t, trip.DepartureTime.After(now), "seeded trips depart in the future")
	}

	// Seeded booked seats line up with the seeded bookings.
	b, err := s.FindBookingByTicketCode("TKT-SEED0001")
	require.NoError(t, err)
	trip, err := s.GetTrip(b.TripID)
	require.NoError(t, err)
	for _, seat := range b.SeatNumbers {
		assert.Contains(t, trip.BookedSeats, seat)
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	s := New()
	s.AddTrip(domain.Trip{ID: "t1", SeatCapacity: 2, AvailableSeats: []int{1, 2}, BookedSeats: []int{}, Status: domain.TripScheduled})

	trip, err := s.GetTrip("t1")
	require.NoError(t, err)
	trip.AvailableSeats[0] = 99

	again, err := s.GetTrip("t1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, again.AvailableSeats, "callers must not mutate stored state")
}

func TestGetMissingResources(t *testing.T) {
	s := New()
	_, err := s.GetTrip("nope")
	assert.True(t, domain.IsNotFound(err))
	_, err = s.GetUser("nope")
	assert.True(t, domain.IsNotFound(err))
	_, err = s.GetBooking("nope")
	assert.True(t, domain.IsNotFound(err))
	_, err = s.FindUserByEmail("nobody@example.com")
	assert.True(t, domain.IsNotFound(err))
	_, err = s.FindBookingByTicketCode("TKT-NOPE")
	assert.True(t, domain.IsNotFound(err))
	err = s.UpdateTripStatus("nope", domain.TripBoarding)
	assert.True(t, domain.IsNotFound(err))
}

func TestCommitReservationIsObservedAsOneUnit(t *testing.T) {
	s := New()
	s.AddTrip(domain.Trip{ID: "t1", SeatCapacity: 2, AvailableSeats: []int{2}, BookedSeats: []int{1}, Status: domain.TripScheduled})

	trip, err := s.GetTrip("t1")
	require.NoError(t, err)
	trip.AvailableSeats = []int{}
	trip.BookedSeats = []int{1, 2}
	booking := domain.Booking{ID: "b1", TripID: "t1", PassengerID: "p1", SeatNumbers: []int{2},
		TotalAmount: 150, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid, TicketCode: "TKT-AAAA0001"}
	payment := domain.Payment{ID: "pay1", BookingID: "b1", Amount: 150, Status: "completed"}

	require.NoError(t, s.CommitReservation(trip, booking, payment))

	got, err := s.GetTrip("t1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got.BookedSeats)
	gotBooking, err := s.GetBooking("b1")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, gotBooking.SeatNumbers)
	gotPay, err := s.GetPayment("pay1")
	require.NoError(t, err)
	assert.Equal(t, "b1", gotPay.BookingID)

	// Committing against a vanished trip is refused whole.
	bad := trip
	bad.ID = "ghost"
	err = s.CommitReservation(bad, domain.Booking{ID: "b2", TripID: "ghost"}, domain.Payment{ID: "pay2"})
	assert.True(t, domain.IsNotFound(err))
	_, err = s.GetBooking("b2")
	assert.True(t, domain.IsNotFound(err))
}

func TestCommitCancellation(t *testing.T) {
	s := New()
	s.AddTrip(domain.Trip{ID: "t1", SeatCapacity: 2, AvailableSeats: []int{}, BookedSeats: []int{1, 2}, Status: domain.TripScheduled})
	booking := domain.Booking{ID: "b1", TripID: "t1", PassengerID: "p1", SeatNumbers: []int{1, 2},
		TotalAmount: 300, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid}
	require.NoError(t, s.CommitReservation(mustTrip(t, s, "t1"), booking, domain.Payment{ID: "pay1", BookingID: "b1"}))

	trip := mustTrip(t, s, "t1")
	trip.AvailableSeats = []int{1, 2}
	trip.BookedSeats = []int{}
	booking.Status = domain.BookingCancelled
	booking.PaymentStatus = domain.PaymentRefunded
	refund := domain.Payment{ID: "pay2", BookingID: "b1", Amount: 300, Status: "refunded"}

	require.NoError(t, s.CommitCancellation(trip, booking, refund))

	got, err := s.GetBooking("b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	gotTrip := mustTrip(t, s, "t1")
	assert.Equal(t, []int{1, 2}, gotTrip.AvailableSeats)
	assert.Len(t, s.ListPayments(), 2)
}

func TestBookingFilters(t *testing.T) {
	s := New()
	s.AddTrip(domain.Trip{ID: "t1", SeatCapacity: 4, AvailableSeats: []int{3, 4}, BookedSeats: []int{1, 2}, Status: domain.TripScheduled})
	s.AddTrip(domain.Trip{ID: "t2", SeatCapacity: 4, AvailableSeats: []int{1, 2, 3}, BookedSeats: []int{4}, Status: domain.TripScheduled})
	for _, b := range []domain.Booking{
		{ID: "b1", TripID: "t1", PassengerID: "p1", SeatNumbers: []int{1}},
		{ID: "b2", TripID: "t1", PassengerID: "p2", SeatNumbers: []int{2}},
		{ID: "b3", TripID: "t2", PassengerID: "p1", SeatNumbers: []int{4}},
	} {
		trip := mustTrip(t, s, b.TripID)
		require.NoError(t, s.CommitReservation(trip, b, domain.Payment{ID: "pay-" + b.ID, BookingID: b.ID}))
	}

	assert.Len(t, s.ListBookingsByPassenger("p1"), 2)
	assert.Len(t, s.ListBookingsByPassenger("p2"), 1)
	assert.Len(t, s.ListBookingsByTrip("t1"), 2)
	assert.Empty(t, s.ListBookingsByPassenger("stranger"))
}

func mustTrip(t *testing.T, s *Store, id string) domain.Trip {
	t.Helper()
	trip, err := s.GetTrip(id)
	require.NoError(t, err)
	return trip
}
