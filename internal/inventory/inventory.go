// Package inventory owns the seat state of every trip: which seat numbers
// are available, which are booked and which are temporarily held. It is the
// only writer of a trip's seat sets.
package inventory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"zambus/internal/domain"
	"zambus/internal/monitoring"
	"zambus/internal/store"
	"zambus/internal/utils"
)

const DefaultHoldTTL = 5 * time.Minute

type Config struct {
	// MaxSeatsPerBooking caps one reservation; 0 disables the cap.
	MaxSeatsPerBooking int
	HoldTTL            time.Duration
	// Clock is swapped in tests.
	Clock func() time.Time
}

type Manager struct {
	store *store.Store
	cfg   Config

	mu        sync.Mutex // guards tripLocks and holds
	tripLocks map[string]*sync.Mutex
	holds     map[string]domain.Hold
}

func New(st *store.Store, cfg Config) *Manager {
	if cfg.HoldTTL <= 0 {
		cfg.HoldTTL = DefaultHoldTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Manager{
		store:     st,
		cfg:       cfg,
		tripLocks: map[string]*sync.Mutex{},
		holds:     map[string]domain.Hold{},
	}
}

// tripLock returns the mutex serializing seat commits for one trip.
func (m *Manager) tripLock(tripID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.tripLocks[tripID]
	if !ok {
		l = &sync.Mutex{}
		m.tripLocks[tripID] = l
	}
	return l
}

// heldSeats returns the seats of every live hold on the trip, minus holds
// belonging to exceptHold.
func (m *Manager) heldSeats(tripID, exceptHold string, now time.Time) map[int]struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[int]struct{}{}
	for id, h := range m.holds {
		if h.TripID != tripID || id == exceptHold || h.Expired(now) {
			continue
		}
		for _, s := range h.SeatNumbers {
			out[s] = struct{}{}
		}
	}
	return out
}

// QueryAvailability returns the seats currently open for reservation on the
// trip, with live holds excluded. The snapshot may be stale by the time a
// reservation is attempted; the reservation's own check-and-commit is what
// resolves races.
func (m *Manager) QueryAvailability(tripID string) ([]int, error) {
	trip, err := m.store.GetTrip(tripID)
	if err != nil {
		return nil, err
	}
	held := m.heldSeats(tripID, "", m.cfg.Clock())
	out := make([]int, 0, len(trip.AvailableSeats))
	for _, s := range trip.AvailableSeats {
		if _, ok := held[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out, nil
}

type ReserveRequest struct {
	TripID        string
	SeatNumbers   []int
	PassengerID   string
	PaymentMethod string
	// PriceOverride replaces the trip's per-seat price when positive
	// (admin walk-in fares).
	PriceOverride int64
}

// Reserve atomically claims the requested seats and records the booking and
// its payment. Either every seat is taken or none is; conflicting seats are
// reported back so the caller can re-fetch availability and pick again.
func (m *Manager) Reserve(req ReserveRequest) (domain.Booking, error) {
	seats := utils.DedupSeats(req.SeatNumbers)
	if len(seats) == 0 {
		return domain.Booking{}, domain.ValidationError{Field: "seatNumbers", Msg: "at least one seat required"}
	}
	if m.cfg.MaxSeatsPerBooking > 0 && len(seats) > m.cfg.MaxSeatsPerBooking {
		return domain.Booking{}, domain.ValidationError{Field: "seatNumbers", Msg: "too many seats for one booking"}
	}
	if _, err := m.store.GetUser(req.PassengerID); err != nil {
		return domain.Booking{}, err
	}

	lock := m.tripLock(req.TripID)
	lock.Lock()
	defer lock.Unlock()
	start := m.cfg.Clock()

	booking, err := m.reserveLocked(req, seats, "", start)
	outcome := monitoring.OutcomeConfirmed
	switch {
	case domain.IsSeatUnavailable(err):
		outcome = monitoring.OutcomeConflict
	case err != nil:
		outcome = monitoring.OutcomeRejected
	}
	monitoring.TrackReservation(outcome, len(seats), m.cfg.Clock().Sub(start))
	return booking, err
}

// reserveLocked runs the check-and-commit step. The caller holds the trip
// lock. exceptHold lets a hold confirmation claim its own held seats.
func (m *Manager) reserveLocked(req ReserveRequest, seats []int, exceptHold string, now time.Time) (domain.Booking, error) {
	trip, err := m.store.GetTrip(req.TripID)
	if err != nil {
		return domain.Booking{}, err
	}
	if trip.Status == domain.TripCancelled || trip.Status == domain.TripArrived {
		return domain.Booking{}, domain.InvalidStateError{Resource: "trip", State: string(trip.Status)}
	}

	open := make(map[int]struct{}, len(trip.AvailableSeats))
	for _, s := range trip.AvailableSeats {
		open[s] = struct{}{}
	}
	held := m.heldSeats(req.TripID, exceptHold, now)

	conflicts := []int{}
	for _, s := range seats {
		_, isOpen := open[s]
		_, isHeld := held[s]
		if !isOpen || isHeld {
			conflicts = append(conflicts, s)
		}
	}
	if len(conflicts) > 0 {
		return domain.Booking{}, domain.SeatUnavailableError{TripID: req.TripID, Seats: conflicts}
	}

	requested := make(map[int]struct{}, len(seats))
	for _, s := range seats {
		requested[s] = struct{}{}
	}
	newAvail := make([]int, 0, len(trip.AvailableSeats)-len(seats))
	for _, s := range trip.AvailableSeats {
		if _, ok := requested[s]; !ok {
			newAvail = append(newAvail, s)
		}
	}
	newBooked := append(append([]int(nil), trip.BookedSeats...), seats...)
	sort.Ints(newAvail)
	sort.Ints(newBooked)
	trip.AvailableSeats = newAvail
	trip.BookedSeats = newBooked

	perSeat := trip.Price
	if req.PriceOverride > 0 {
		perSeat = req.PriceOverride
	}
	method := req.PaymentMethod
	if method == "" {
		method = "mobile-money"
	}

	booking := domain.Booking{
		ID:            uuid.NewString(),
		TripID:        trip.ID,
		PassengerID:   req.PassengerID,
		SeatNumbers:   seats,
		TotalAmount:   perSeat * int64(len(seats)),
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
		BookingDate:   now,
		TicketCode:    utils.NewTicketCode(),
	}
	payment := domain.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		Amount:        booking.TotalAmount,
		Method:        method,
		Status:        "completed",
		TransactionID: utils.NewTransactionID(),
		Date:          now,
	}

	if err := m.store.CommitReservation(trip, booking, payment); err != nil {
		return domain.Booking{}, domain.InternalError{Msg: "reservation commit failed", Err: err}
	}
	return booking, nil
}

// CancelBooking flips the booking to cancelled, refunds its payment and
// returns the seats to the trip's available pool. Departed trips keep their
// manifest frozen.
func (m *Manager) CancelBooking(bookingID string) (domain.Booking, error) {
	booking, err := m.store.GetBooking(bookingID)
	if err != nil {
		return domain.Booking{}, err
	}

	lock := m.tripLock(booking.TripID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; a concurrent cancel may have won.
	booking, err = m.store.GetBooking(bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if booking.Status == domain.BookingCancelled {
		return domain.Booking{}, domain.InvalidStateError{Resource: "booking", State: "cancelled", Msg: "booking already cancelled"}
	}
	trip, err := m.store.GetTrip(booking.TripID)
	if err != nil {
		return domain.Booking{}, err
	}
	if trip.Departed() {
		return domain.Booking{}, domain.InvalidStateError{Resource: "trip", State: string(trip.Status), Msg: "trip already departed"}
	}

	cancelled := make(map[int]struct{}, len(booking.SeatNumbers))
	for _, s := range booking.SeatNumbers {
		cancelled[s] = struct{}{}
	}
	newBooked := make([]int, 0, len(trip.BookedSeats))
	for _, s := range trip.BookedSeats {
		if _, ok := cancelled[s]; !ok {
			newBooked = append(newBooked, s)
		}
	}
	newAvail := append(append([]int(nil), trip.AvailableSeats...), booking.SeatNumbers...)
	sort.Ints(newAvail)
	sort.Ints(newBooked)
	trip.AvailableSeats = newAvail
	trip.BookedSeats = newBooked

	now := m.cfg.Clock()
	booking.Status = domain.BookingCancelled
	booking.PaymentStatus = domain.PaymentRefunded
	refund := domain.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		Amount:        booking.TotalAmount,
		Method:        "refund",
		Status:        "refunded",
		TransactionID: utils.NewTransactionID(),
		Date:          now,
	}

	if err := m.store.CommitCancellation(trip, booking, refund); err != nil {
		return domain.Booking{}, domain.InternalError{Msg: "cancellation commit failed", Err: err}
	}
	monitoring.TrackCancellation()
	return booking, nil
}

// HoldSeats parks seats for a passenger while payment is arranged. Held
// seats disappear from availability reads but only a confirmation moves
// them into the booked set.
func (m *Manager) HoldSeats(tripID string, seatNumbers []int, passengerID string) (domain.Hold, error) {
	seats := utils.DedupSeats(seatNumbers)
	if len(seats) == 0 {
		return domain.Hold{}, domain.ValidationError{Field: "seatNumbers", Msg: "at least one seat required"}
	}
	if m.cfg.MaxSeatsPerBooking > 0 && len(seats) > m.cfg.MaxSeatsPerBooking {
		return domain.Hold{}, domain.ValidationError{Field: "seatNumbers", Msg: "too many seats for one booking"}
	}
	if _, err := m.store.GetUser(passengerID); err != nil {
		return domain.Hold{}, err
	}

	lock := m.tripLock(tripID)
	lock.Lock()
	defer lock.Unlock()
	now := m.cfg.Clock()

	trip, err := m.store.GetTrip(tripID)
	if err != nil {
		return domain.Hold{}, err
	}
	if trip.Status == domain.TripCancelled || trip.Status == domain.TripArrived {
		return domain.Hold{}, domain.InvalidStateError{Resource: "trip", State: string(trip.Status)}
	}

	open := make(map[int]struct{}, len(trip.AvailableSeats))
	for _, s := range trip.AvailableSeats {
		open[s] = struct{}{}
	}
	held := m.heldSeats(tripID, "", now)
	conflicts := []int{}
	for _, s := range seats {
		_, isOpen := open[s]
		_, isHeld := held[s]
		if !isOpen || isHeld {
			conflicts = append(conflicts, s)
		}
	}
	if len(conflicts) > 0 {
		return domain.Hold{}, domain.SeatUnavailableError{TripID: tripID, Seats: conflicts}
	}

	hold := domain.Hold{
		ID:          uuid.NewString(),
		TripID:      tripID,
		PassengerID: passengerID,
		SeatNumbers: seats,
		ExpiresAt:   now.Add(m.cfg.HoldTTL),
	}
	m.mu.Lock()
	m.holds[hold.ID] = hold
	monitoring.SetActiveHolds(len(m.holds))
	m.mu.Unlock()
	return hold, nil
}

// ConfirmHold converts a live hold into a booking.
func (m *Manager) ConfirmHold(holdID, paymentMethod string) (domain.Booking, error) {
	m.mu.Lock()
	hold, ok := m.holds[holdID]
	m.mu.Unlock()
	if !ok {
		return domain.Booking{}, domain.NotFoundError{Resource: "hold", ID: holdID}
	}

	lock := m.tripLock(hold.TripID)
	lock.Lock()
	defer lock.Unlock()
	now := m.cfg.Clock()

	if hold.Expired(now) {
		m.removeHold(holdID)
		return domain.Booking{}, domain.InvalidStateError{Resource: "hold", State: "expired", Msg: "hold expired"}
	}

	booking, err := m.reserveLocked(ReserveRequest{
		TripID:        hold.TripID,
		PassengerID:   hold.PassengerID,
		PaymentMethod: paymentMethod,
	}, hold.SeatNumbers, holdID, now)
	if err != nil {
		return domain.Booking{}, err
	}
	m.removeHold(holdID)
	monitoring.TrackReservation(monitoring.OutcomeConfirmed, len(hold.SeatNumbers), m.cfg.Clock().Sub(now))
	return booking, nil
}

// ReleaseHold drops a hold and frees its seats immediately.
func (m *Manager) ReleaseHold(holdID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.holds[holdID]; !ok {
		return domain.NotFoundError{Resource: "hold", ID: holdID}
	}
	delete(m.holds, holdID)
	monitoring.SetActiveHolds(len(m.holds))
	return nil
}

func (m *Manager) removeHold(holdID string) {
	m.mu.Lock()
	delete(m.holds, holdID)
	monitoring.SetActiveHolds(len(m.holds))
	m.mu.Unlock()
}

// GetHold returns a live hold.
func (m *Manager) GetHold(holdID string) (domain.Hold, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.holds[holdID]
	if !ok {
		return domain.Hold{}, domain.NotFoundError{Resource: "hold", ID: holdID}
	}
	return h, nil
}

// SweepExpiredHolds drops every hold past its expiry and reports how many
// were released. Called periodically by the hold sweeper worker.
func (m *Manager) SweepExpiredHolds(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	released := 0
	for id, h := range m.holds {
		if h.Expired(now) {
			delete(m.holds, id)
			released++
		}
	}
	if released > 0 {
		monitoring.TrackHoldsExpired(released)
	}
	monitoring.SetActiveHolds(len(m.holds))
	return released
}

// ActiveHolds reports the number of live holds.
func (m *Manager) ActiveHolds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.holds)
}
