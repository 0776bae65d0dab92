package services

import (
	"testing"
	"time"

	"zambus/internal/domain"
	"zambus/internal/inventory"
	"zambus/internal/store"
)

// newFixture builds a store with one active bus, one route, one driver, two
// passengers and a scheduled five-seat trip on route r1.
func newFixture(t *testing.T) (*store.Store, *inventory.Manager) {
	t.Helper()
	st := store.New()
	st.AddUser(domain.User{ID: "admin", Email: "admin@example.com", Name: "Admin", Role: domain.RoleAdmin})
	st.AddUser(domain.User{ID: "drv", Email: "driver@example.com", Name: "Driver", Role: domain.RoleDriver})
	st.AddUser(domain.User{ID: "p1", Email: "p1@example.com", Name: "Passenger One", Role: domain.RolePassenger})
	st.AddUser(domain.User{ID: "p2", Email: "p2@example.com", Name: "Passenger Two", Role: domain.RolePassenger})
	st.AddBus(domain.Bus{ID: "b1", PlateNumber: "ACB 1234", Capacity: 5, Type: "AC", Status: domain.BusActive, DriverID: "drv"})
	st.AddBus(domain.Bus{ID: "b2", PlateNumber: "ACE 9012", Capacity: 40, Status: domain.BusMaintenance})
	st.AddRoute(domain.Route{ID: "r1", Name: "Lusaka - Ndola Express", Source: "Lusaka", Destination: "Ndola", DurationMin: 240, DistanceKm: 320, BasePrice: 150})
	st.AddRoute(domain.Route{ID: "r2", Name: "Lusaka - Livingstone Highway", Source: "Lusaka", Destination: "Livingstone", DurationMin: 300, DistanceKm: 470, BasePrice: 200})
	st.AddTrip(domain.Trip{
		ID:             "t1",
		RouteID:        "r1",
		BusID:          "b1",
		DriverID:       "drv",
		DepartureTime:  time.Date(2026, 4, 1, 6, 0, 0, 0, time.UTC),
		ArrivalTime:    time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		Price:          150,
		SeatCapacity:   5,
		AvailableSeats: []int{1, 2, 3, 4, 5},
		BookedSeats:    []int{},
		Status:         domain.TripScheduled,
	})
	return st, inventory.New(st, inventory.Config{})
}
