package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zambus/internal/domain"
)

func TestBuildSummary(t *testing.T) {
	st, inv := newFixture(t)
	bookings := BookingService{Store: st, Inventory: inv}

	b1, err := bookings.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{1, 2}, PassengerID: "p1"})
	require.NoError(t, err)
	_, err = bookings.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{3}, PassengerID: "p2"})
	require.NoError(t, err)
	_, err = bookings.Cancel(b1.ID, "p1")
	require.NoError(t, err)

	summary := ReportService{Store: st}.BuildSummary()

	// Cancelled revenue is excluded; only the 1-seat booking counts.
	assert.Equal(t, int64(150), summary.TotalRevenue)
	assert.Equal(t, 1, summary.SeatsSold)
	assert.Equal(t, 1, summary.BookingsByStatus[domain.BookingConfirmed])
	assert.Equal(t, 1, summary.BookingsByStatus[domain.BookingCancelled])
	assert.Equal(t, 1, summary.TripsByStatus[domain.TripScheduled])
	assert.Equal(t, 1, summary.ActiveBuses)

	require.Len(t, summary.RouteRevenue, 1)
	assert.Equal(t, "r1", summary.RouteRevenue[0].RouteID)
	assert.Equal(t, "Lusaka - Ndola Express", summary.RouteRevenue[0].RouteName)
	assert.Equal(t, int64(150), summary.RouteRevenue[0].Revenue)
}

func TestRouteRevenueOrdering(t *testing.T) {
	st, inv := newFixture(t)
	bookings := BookingService{Store: st, Inventory: inv}

	st.AddTrip(domain.Trip{
		ID: "t2", RouteID: "r2", BusID: "b1", DriverID: "drv",
		Price: 200, SeatCapacity: 5,
		AvailableSeats: []int{1, 2, 3, 4, 5}, BookedSeats: []int{},
		Status:         domain.TripScheduled,
	})
	_, err := bookings.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{1}, PassengerID: "p1"})
	require.NoError(t, err)
	_, err = bookings.Create(CreateBookingRequest{TripID: "t2", SeatNumbers: []int{1, 2}, PassengerID: "p2"})
	require.NoError(t, err)

	summary := ReportService{Store: st}.BuildSummary()
	require.Len(t, summary.RouteRevenue, 2)
	// Highest earner first: r2 sold 2 seats at 200.
	assert.Equal(t, "r2", summary.RouteRevenue[0].RouteID)
	assert.Equal(t, int64(400), summary.RouteRevenue[0].Revenue)
	assert.Equal(t, "r1", summary.RouteRevenue[1].RouteID)
}

func TestOccupancy(t *testing.T) {
	st, inv := newFixture(t)
	bookings := BookingService{Store: st, Inventory: inv}

	_, err := bookings.Create(CreateBookingRequest{TripID: "t1", SeatNumbers: []int{1, 2}, PassengerID: "p1"})
	require.NoError(t, err)

	occ := ReportService{Store: st}.Occupancy()
	require.Len(t, occ, 1)
	assert.Equal(t, "t1", occ[0].TripID)
	assert.Equal(t, 5, occ[0].Capacity)
	assert.Equal(t, 2, occ[0].Booked)
	assert.InDelta(t, 0.4, occ[0].Occupancy, 1e-9)
}
