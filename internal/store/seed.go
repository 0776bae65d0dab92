package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"zambus/internal/domain"
)

// DemoPassword is accepted for every seeded account.
const DemoPassword = "zambus123"

// NewSeeded builds a store pre-loaded with the demo fleet, routes, trips and
// accounts. Trip departures are laid out relative to now so date search
// behaves sensibly regardless of when the process starts.
func NewSeeded(now time.Time) *Store {
	s := New()

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost; treat as unreachable.
		panic(err)
	}

	users := []domain.User{
		{ID: "1", Email: "admin@zambianbus.com", Name: "Chanda Mwansa", Phone: "+260977123456", Role: domain.RoleAdmin},
		{ID: "2", Email: "passenger@example.com", Name: "Mutale Banda", Phone: "+260966789012", Role: domain.RolePassenger},
		{ID: "3", Email: "driver@zambianbus.com", Name: "Joseph Phiri", Phone: "+260955345678", Role: domain.RoleDriver},
		{ID: "4", Email: "mary.tembo@example.com", Name: "Mary Tembo", Phone: "+260944567890", Role: domain.RolePassenger},
		{ID: "5", Email: "driver2@zambianbus.com", Name: "Patrick Mulenga", Phone: "+260933456789", Role: domain.RoleDriver},
	}
	for i, u := range users {
		u.PasswordHash = string(hash)
		u.CreatedAt = now.Add(time.Duration(i-30) * 24 * time.Hour)
		s.AddUser(u)
	}

	s.AddBus(domain.Bus{ID: "1", PlateNumber: "ACB 1234", Capacity: 50, Type: "AC",
		Features: []string{"WiFi", "Charging Ports", "Entertainment", "Reclining Seats"},
		Status:   domain.BusActive, DriverID: "3"})
	s.AddBus(domain.Bus{ID: "2", PlateNumber: "ACA 5678", Capacity: 45, Type: "Luxury",
		Features: []string{"Reclining Seats", "WiFi", "Refreshments", "Air Conditioning"},
		Status:   domain.BusActive, DriverID: "5"})
	s.AddBus(domain.Bus{ID: "3", PlateNumber: "ACE 9012", Capacity: 40, Type: "Non-AC",
		Features: []string{"Comfortable Seats", "Music System"},
		Status:   domain.BusMaintenance})
	s.AddBus(domain.Bus{ID: "4", PlateNumber: "ACD 3456", Capacity: 35, Type: "Sleeper",
		Features: []string{"Sleeping Berths", "Air Conditioning", "Privacy Curtains"},
		Status:   domain.BusActive})

	s.AddRoute(domain.Route{ID: "1", Name: "Lusaka - Ndola Express", Source: "Lusaka", Destination: "Ndola",
		Stops: []string{"Kabwe", "Kapiri Mposhi"}, DurationMin: 240, DistanceKm: 320, BasePrice: 150})
	s.AddRoute(domain.Route{ID: "2", Name: "Lusaka - Livingstone Highway", Source: "Lusaka", Destination: "Livingstone",
		Stops: []string{"Mazabuka", "Monze", "Choma"}, DurationMin: 300, DistanceKm: 470, BasePrice: 200})
	s.AddRoute(domain.Route{ID: "3", Name: "Ndola - Kitwe Route", Source: "Ndola", Destination: "Kitwe",
		Stops: []string{"Luanshya"}, DurationMin: 90, DistanceKm: 65, BasePrice: 50})
	s.AddRoute(domain.Route{ID: "4", Name: "Lusaka - Chipata Express", Source: "Lusaka", Destination: "Chipata",
		Stops: []string{"Nyimba", "Petauke"}, DurationMin: 360, DistanceKm: 550, BasePrice: 250})
	s.AddRoute(domain.Route{ID: "5", Name: "Lusaka - Solwezi Route", Source: "Lusaka", Destination: "Solwezi",
		Stops: []string{"Mumbwa", "Kaoma", "Kasempa"}, DurationMin: 480, DistanceKm: 650, BasePrice: 300})

	day := now.Truncate(24 * time.Hour)
	s.AddTrip(seedTrip("1", "1", "1", "3", day.Add(24*time.Hour+6*time.Hour), 4*time.Hour, 180, 50, []int{1, 2, 15, 30, 45}))
	s.AddTrip(seedTrip("2", "2", "2", "5", day.Add(24*time.Hour+8*time.Hour), 5*time.Hour, 220, 45, []int{5, 12, 20}))
	s.AddTrip(seedTrip("3", "3", "4", "3", day.Add(48*time.Hour+14*time.Hour), 90*time.Minute, 60, 35, []int{8, 16}))

	b1 := domain.Booking{ID: "1", TripID: "1", PassengerID: "2", SeatNumbers: []int{1, 2},
		TotalAmount: 360, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid,
		BookingDate: now.Add(-5 * 24 * time.Hour), TicketCode: "TKT-SEED0001"}
	b2 := domain.Booking{ID: "2", TripID: "2", PassengerID: "4", SeatNumbers: []int{5},
		TotalAmount: 220, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid,
		BookingDate: now.Add(-3 * 24 * time.Hour), TicketCode: "TKT-SEED0002"}
	s.mu.Lock()
	s.bookings[b1.ID] = b1
	s.bookings[b2.ID] = b2
	s.payments["1"] = domain.Payment{ID: "1", BookingID: "1", Amount: 360, Method: "mobile-money",
		Status: "completed", TransactionID: "TXN-SEED0001", Date: b1.BookingDate}
	s.payments["2"] = domain.Payment{ID: "2", BookingID: "2", Amount: 220, Method: "card",
		Status: "completed", TransactionID: "TXN-SEED0002", Date: b2.BookingDate}
	s.mu.Unlock()

	return s
}

// seedTrip marks booked seats up front; the remaining seat numbers of
// 1..capacity stay available.
func seedTrip(id, routeID, busID, driverID string, depart time.Time, dur time.Duration, price int64, capacity int, booked []int) domain.Trip {
	taken := make(map[int]struct{}, len(booked))
	for _, n := range booked {
		taken[n] = struct{}{}
	}
	avail := make([]int, 0, capacity-len(booked))
	for n := 1; n <= capacity; n++ {
		if _, ok := taken[n]; !ok {
			avail = append(avail, n)
		}
	}
	return domain.Trip{
		ID:             id,
		RouteID:        routeID,
		BusID:          busID,
		DriverID:       driverID,
		DepartureTime:  depart,
		ArrivalTime:    depart.Add(dur),
		Price:          price,
		SeatCapacity:   capacity,
		AvailableSeats: avail,
		BookedSeats:    append([]int(nil), booked...),
		Status:         domain.TripScheduled,
	}
}
