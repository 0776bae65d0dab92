package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"zambus/internal/domain"
	"zambus/internal/store"
	"zambus/internal/utils"
)

type TripService struct {
	Store *store.Store
}

type CreateTripRequest struct {
	RouteID       string    `json:"routeId" binding:"required"`
	BusID         string    `json:"busId" binding:"required"`
	DriverID      string    `json:"driverId" binding:"required"`
	DepartureTime time.Time `json:"departureTime" binding:"required"`
	ArrivalTime   time.Time `json:"arrivalTime" binding:"required"`
	Price         int64     `json:"price"`
}

// Create schedules a trip. The seat range 1..capacity is fixed from the bus
// record at creation time and is not re-validated if the bus later changes.
func (s TripService) Create(req CreateTripRequest) (domain.Trip, error) {
	route, err := s.Store.GetRoute(req.RouteID)
	if err != nil {
		return domain.Trip{}, err
	}
	bus, err := s.Store.GetBus(req.BusID)
	if err != nil {
		return domain.Trip{}, err
	}
	if bus.Status != domain.BusActive {
		return domain.Trip{}, domain.InvalidStateError{Resource: "bus", State: string(bus.Status)}
	}
	driver, err := s.Store.GetUser(req.DriverID)
	if err != nil {
		return domain.Trip{}, err
	}
	if driver.Role != domain.RoleDriver {
		return domain.Trip{}, domain.ValidationError{Field: "driverId", Msg: "user is not a driver"}
	}
	if !req.ArrivalTime.After(req.DepartureTime) {
		return domain.Trip{}, domain.ValidationError{Field: "arrivalTime", Msg: "must be after departure"}
	}
	price := req.Price
	if price <= 0 {
		price = route.BasePrice
	}

	seats := make([]int, bus.Capacity)
	for i := range seats {
		seats[i] = i + 1
	}
	trip := domain.Trip{
		ID:             uuid.NewString(),
		RouteID:        route.ID,
		BusID:          bus.ID,
		DriverID:       driver.ID,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		Price:          price,
		SeatCapacity:   bus.Capacity,
		AvailableSeats: seats,
		BookedSeats:    []int{},
		Status:         domain.TripScheduled,
	}
	s.Store.AddTrip(trip)
	logrus.WithFields(logrus.Fields{
		"trip_id": trip.ID,
		"route":   route.Name,
		"bus":     bus.PlateNumber,
		"seats":   bus.Capacity,
	}).Info("trip scheduled")
	return trip, nil
}

func (s TripService) Get(tripID string) (domain.Trip, error) {
	return s.Store.GetTrip(tripID)
}

func (s TripService) List() []domain.Trip {
	return s.Store.ListTrips()
}

func (s TripService) ListForDriver(driverID string) []domain.Trip {
	out := []domain.Trip{}
	for _, t := range s.Store.ListTrips() {
		if t.DriverID == driverID {
			out = append(out, t)
		}
	}
	return out
}

// TripSummary decorates a trip with its route and bus for search results.
type TripSummary struct {
	Trip  domain.Trip  `json:"trip"`
	Route domain.Route `json:"route"`
	Bus   domain.Bus   `json:"bus"`
}

// Search filters trips by route endpoints (substring match) and departure
// day. Empty criteria match everything.
func (s TripService) Search(source, destination string, date time.Time) []TripSummary {
	source = strings.ToLower(strings.TrimSpace(source))
	destination = strings.ToLower(strings.TrimSpace(destination))

	out := []TripSummary{}
	for _, t := range s.Store.ListTrips() {
		route, err := s.Store.GetRoute(t.RouteID)
		if err != nil {
			continue
		}
		if source != "" && !strings.Contains(strings.ToLower(route.Source), source) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(route.Destination), destination) {
			continue
		}
		if !date.IsZero() && !utils.SameDay(t.DepartureTime, date) {
			continue
		}
		bus, err := s.Store.GetBus(t.BusID)
		if err != nil {
			continue
		}
		out = append(out, TripSummary{Trip: t, Route: route, Bus: bus})
	}
	return out
}

// tripTransitions is the linear boarding flow plus the cancel side exit.
var tripTransitions = map[domain.TripStatus][]domain.TripStatus{
	domain.TripScheduled: {domain.TripBoarding, domain.TripCancelled},
	domain.TripBoarding:  {domain.TripInTransit},
	domain.TripInTransit: {domain.TripArrived},
}

// AdvanceStatus moves a trip along scheduled → boarding → in-transit →
// arrived, or sideways to cancelled while still scheduled. Cancelling a trip
// does not touch its outstanding bookings; refunds stay an explicit
// per-booking action.
func (s TripService) AdvanceStatus(tripID string, next domain.TripStatus) (domain.Trip, error) {
	trip, err := s.Store.GetTrip(tripID)
	if err != nil {
		return domain.Trip{}, err
	}
	allowed := false
	for _, n := range tripTransitions[trip.Status] {
		if n == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return domain.Trip{}, domain.InvalidStateError{
			Resource: "trip",
			State:    string(trip.Status),
			Msg:      "cannot move trip from " + string(trip.Status) + " to " + string(next),
		}
	}
	if err := s.Store.UpdateTripStatus(tripID, next); err != nil {
		return domain.Trip{}, err
	}
	trip.Status = next
	logrus.WithFields(logrus.Fields{"trip_id": tripID, "status": next}).Info("trip status advanced")
	return trip, nil
}
