// Package store holds the in-memory catalog: users, fleet, routes, trips,
// bookings and payment records. It is constructed once at startup, seeded,
// and injected into services; there is no persistence behind it.
package store

import (
	"sort"
	"sync"

	"zambus/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	buses    map[string]domain.Bus
	routes   map[string]domain.Route
	trips    map[string]domain.Trip
	bookings map[string]domain.Booking
	payments map[string]domain.Payment
}

func New() *Store {
	return &Store{
		users:    map[string]domain.User{},
		buses:    map[string]domain.Bus{},
		routes:   map[string]domain.Route{},
		trips:    map[string]domain.Trip{},
		bookings: map[string]domain.Booking{},
		payments: map[string]domain.Payment{},
	}
}

// Users

func (s *Store) GetUser(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	return u, nil
}

func (s *Store) FindUserByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "user"}
}

func (s *Store) ListUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) UpdateUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return domain.NotFoundError{Resource: "user", ID: u.ID}
	}
	s.users[u.ID] = u
	return nil
}

// Buses

func (s *Store) GetBus(id string) (domain.Bus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buses[id]
	if !ok {
		return domain.Bus{}, domain.NotFoundError{Resource: "bus", ID: id}
	}
	return copyBus(b), nil
}

func (s *Store) ListBuses() []domain.Bus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Bus, 0, len(s.buses))
	for _, b := range s.buses {
		out = append(out, copyBus(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlateNumber < out[j].PlateNumber })
	return out
}

func (s *Store) AddBus(b domain.Bus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buses[b.ID] = copyBus(b)
}

func (s *Store) UpdateBus(b domain.Bus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buses[b.ID]; !ok {
		return domain.NotFoundError{Resource: "bus", ID: b.ID}
	}
	s.buses[b.ID] = copyBus(b)
	return nil
}

// Routes

func (s *Store) GetRoute(id string) (domain.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.routes[id]
	if !ok {
		return domain.Route{}, domain.NotFoundError{Resource: "route", ID: id}
	}
	return copyRoute(r), nil
}

func (s *Store) ListRoutes() []domain.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Route, 0, len(s.routes))
	for _, r := range s.routes {
		out = append(out, copyRoute(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) AddRoute(r domain.Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[r.ID] = copyRoute(r)
}

func (s *Store) UpdateRoute(r domain.Route) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routes[r.ID]; !ok {
		return domain.NotFoundError{Resource: "route", ID: r.ID}
	}
	s.routes[r.ID] = copyRoute(r)
	return nil
}

// Trips

func (s *Store) GetTrip(id string) (domain.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trips[id]
	if !ok {
		return domain.Trip{}, domain.NotFoundError{Resource: "trip", ID: id}
	}
	return copyTrip(t), nil
}

func (s *Store) ListTrips() []domain.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, copyTrip(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureTime.Before(out[j].DepartureTime) })
	return out
}

func (s *Store) AddTrip(t domain.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[t.ID] = copyTrip(t)
}

func (s *Store) UpdateTripStatus(id string, status domain.TripStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok {
		return domain.NotFoundError{Resource: "trip", ID: id}
	}
	t.Status = status
	s.trips[id] = t
	return nil
}

// Bookings

func (s *Store) GetBooking(id string) (domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return domain.Booking{}, domain.NotFoundError{Resource: "booking", ID: id}
	}
	return copyBooking(b), nil
}

func (s *Store) FindBookingByTicketCode(code string) (domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.TicketCode == code {
			return copyBooking(b), nil
		}
	}
	return domain.Booking{}, domain.NotFoundError{Resource: "booking"}
}

func (s *Store) ListBookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookingsLocked(func(domain.Booking) bool { return true })
}

func (s *Store) ListBookingsByPassenger(passengerID string) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookingsLocked(func(b domain.Booking) bool { return b.PassengerID == passengerID })
}

func (s *Store) ListBookingsByTrip(tripID string) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookingsLocked(func(b domain.Booking) bool { return b.TripID == tripID })
}

func (s *Store) bookingsLocked(keep func(domain.Booking) bool) []domain.Booking {
	out := []domain.Booking{}
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, copyBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingDate.Equal(out[j].BookingDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].BookingDate.Before(out[j].BookingDate)
	})
	return out
}

func (s *Store) UpdateBookingStatus(id string, status domain.BookingStatus, pay domain.PaymentState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return domain.NotFoundError{Resource: "booking", ID: id}
	}
	b.Status = status
	b.PaymentStatus = pay
	s.bookings[id] = b
	return nil
}

// Payments

func (s *Store) GetPayment(id string) (domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return domain.Payment{}, domain.NotFoundError{Resource: "payment", ID: id}
	}
	return p, nil
}

func (s *Store) ListPayments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// CommitReservation applies a reservation as one observable mutation: the
// trip's seat sets, the new booking and its payment record all land under a
// single write lock, so no reader sees a booking without the seat movement
// or the other way round.
func (s *Store) CommitReservation(trip domain.Trip, b domain.Booking, p domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trips[trip.ID]; !ok {
		return domain.NotFoundError{Resource: "trip", ID: trip.ID}
	}
	s.trips[trip.ID] = copyTrip(trip)
	s.bookings[b.ID] = copyBooking(b)
	if p.ID != "" {
		s.payments[p.ID] = p
	}
	return nil
}

// CommitCancellation mirrors CommitReservation for the cancel path: seat
// restoration, booking status flip and payment refund are one mutation.
func (s *Store) CommitCancellation(trip domain.Trip, b domain.Booking, refund domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trips[trip.ID]; !ok {
		return domain.NotFoundError{Resource: "trip", ID: trip.ID}
	}
	if _, ok := s.bookings[b.ID]; !ok {
		return domain.NotFoundError{Resource: "booking", ID: b.ID}
	}
	s.trips[trip.ID] = copyTrip(trip)
	s.bookings[b.ID] = copyBooking(b)
	if refund.ID != "" {
		s.payments[refund.ID] = refund
	}
	return nil
}

func copyTrip(t domain.Trip) domain.Trip {
	t.AvailableSeats = append([]int(nil), t.AvailableSeats...)
	t.BookedSeats = append([]int(nil), t.BookedSeats...)
	return t
}

func copyBooking(b domain.Booking) domain.Booking {
	b.SeatNumbers = append([]int(nil), b.SeatNumbers...)
	return b
}

func copyBus(b domain.Bus) domain.Bus {
	b.Features = append([]string(nil), b.Features...)
	return b
}

func copyRoute(r domain.Route) domain.Route {
	r.Stops = append([]string(nil), r.Stops...)
	return r
}
