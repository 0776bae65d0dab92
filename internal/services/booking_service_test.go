package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zambus/internal/domain"
)

func TestBookingCreateAndList(t *testing.T) {
	st, inv := newFixture(t)
	svc := BookingService{Store: st, Inventory: inv}

	booking, err := svc.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{2, 3}, PassengerID: "p1", PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, int64(300), booking.TotalAmount)

	mine := svc.ListForPassenger("p1")
	require.Len(t, mine, 1)
	assert.Equal(t, booking.ID, mine[0].ID)
	assert.Empty(t, svc.ListForPassenger("p2"))
	assert.Len(t, svc.ListForTrip("t1"), 1)
}

func TestBookingCancelOwnership(t *testing.T) {
	st, inv := newFixture(t)
	svc := BookingService{Store: st, Inventory: inv}

	booking, err := svc.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{1}, PassengerID: "p1"})
	require.NoError(t, err)

	// Another passenger cannot cancel it; they cannot even learn it exists.
	_, err = svc.Cancel(booking.ID, "p2")
	assert.True(t, domain.IsNotFound(err))

	// An admin (empty passengerID) can.
	cancelled, err := svc.Cancel(booking.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)
}

func TestBookingCancelByOwner(t *testing.T) {
	st, inv := newFixture(t)
	svc := BookingService{Store: st, Inventory: inv}

	booking, err := svc.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{4, 5}, PassengerID: "p2"})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(booking.ID, "p2")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, cancelled.PaymentStatus)

	trip, err := st.GetTrip("t1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, trip.AvailableSeats)
}

func TestCheckIn(t *testing.T) {
	st, inv := newFixture(t)
	svc := BookingService{Store: st, Inventory: inv}

	booking, err := svc.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{1}, PassengerID: "p1"})
	require.NoError(t, err)

	res, err := svc.CheckIn(booking.TicketCode)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, res.Booking.Status)
	assert.Equal(t, "Passenger One", res.Passenger.Name)
	assert.Equal(t, "t1", res.Trip.ID)

	// A completed booking cannot board twice.
	_, err = svc.CheckIn(booking.TicketCode)
	assert.True(t, domain.IsInvalidState(err))

	_, err = svc.CheckIn("TKT-UNKNOWN1")
	assert.True(t, domain.IsNotFound(err))
}

func TestCheckInRejectsCancelledTrip(t *testing.T) {
	st, inv := newFixture(t)
	svc := BookingService{Store: st, Inventory: inv}

	booking, err := svc.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{1}, PassengerID: "p1"})
	require.NoError(t, err)
	require.NoError(t, st.UpdateTripStatus("t1", domain.TripCancelled))

	_, err = svc.CheckIn(booking.TicketCode)
	assert.True(t, domain.IsInvalidState(err))
}

func TestPaymentsForPassenger(t *testing.T) {
	st, inv := newFixture(t)
	svc := BookingService{Store: st, Inventory: inv}

	b1, err := svc.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{1}, PassengerID: "p1"})
	require.NoError(t, err)
	_, err = svc.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{2}, PassengerID: "p2"})
	require.NoError(t, err)

	// Cancelling adds the refund record to the same passenger's history.
	_, err = svc.Cancel(b1.ID, "p1")
	require.NoError(t, err)

	payments := svc.PaymentsForPassenger("p1")
	require.Len(t, payments, 2)
	for _, p := range payments {
		assert.Equal(t, b1.ID, p.BookingID)
	}
	assert.Len(t, svc.PaymentsForPassenger("p2"), 1)
	assert.Empty(t, svc.PaymentsForPassenger("admin"))
}
