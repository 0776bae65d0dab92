package services

import (
	"sort"

	"zambus/internal/domain"
	"zambus/internal/store"
)

type ReportService struct {
	Store *store.Store
}

type RouteRevenue struct {
	RouteID   string `json:"routeId"`
	RouteName string `json:"routeName"`
	Bookings  int    `json:"bookings"`
	SeatsSold int    `json:"seatsSold"`
	Revenue   int64  `json:"revenue"`
}

type Summary struct {
	TotalRevenue     int64                        `json:"totalRevenue"`
	SeatsSold        int                          `json:"seatsSold"`
	BookingsByStatus map[domain.BookingStatus]int `json:"bookingsByStatus"`
	TripsByStatus    map[domain.TripStatus]int    `json:"tripsByStatus"`
	ActiveBuses      int                          `json:"activeBuses"`
	RouteRevenue     []RouteRevenue               `json:"routeRevenue"`
}

// BuildSummary aggregates revenue and utilization over the whole catalog.
// Cancelled bookings contribute nothing; their payments were refunded.
func (s ReportService) BuildSummary() Summary {
	out := Summary{
		BookingsByStatus: map[domain.BookingStatus]int{},
		TripsByStatus:    map[domain.TripStatus]int{},
	}

	tripRoute := map[string]string{}
	for _, t := range s.Store.ListTrips() {
		out.TripsByStatus[t.Status]++
		tripRoute[t.ID] = t.RouteID
	}
	for _, b := range s.Store.ListBuses() {
		if b.Status == domain.BusActive {
			out.ActiveBuses++
		}
	}

	perRoute := map[string]*RouteRevenue{}
	for _, b := range s.Store.ListBookings() {
		out.BookingsByStatus[b.Status]++
		if b.Status == domain.BookingCancelled {
			continue
		}
		out.TotalRevenue += b.TotalAmount
		out.SeatsSold += len(b.SeatNumbers)

		routeID := tripRoute[b.TripID]
		if routeID == "" {
			continue
		}
		rr, ok := perRoute[routeID]
		if !ok {
			rr = &RouteRevenue{RouteID: routeID}
			if route, err := s.Store.GetRoute(routeID); err == nil {
				rr.RouteName = route.Name
			}
			perRoute[routeID] = rr
		}
		rr.Bookings++
		rr.SeatsSold += len(b.SeatNumbers)
		rr.Revenue += b.TotalAmount
	}

	for _, rr := range perRoute {
		out.RouteRevenue = append(out.RouteRevenue, *rr)
	}
	sort.Slice(out.RouteRevenue, func(i, j int) bool {
		if out.RouteRevenue[i].Revenue == out.RouteRevenue[j].Revenue {
			return out.RouteRevenue[i].RouteID < out.RouteRevenue[j].RouteID
		}
		return out.RouteRevenue[i].Revenue > out.RouteRevenue[j].Revenue
	})
	return out
}

type TripOccupancy struct {
	TripID    string  `json:"tripId"`
	Capacity  int     `json:"capacity"`
	Booked    int     `json:"booked"`
	Occupancy float64 `json:"occupancy"`
}

// Occupancy reports per-trip seat utilization.
func (s ReportService) Occupancy() []TripOccupancy {
	out := []TripOccupancy{}
	for _, t := range s.Store.ListTrips() {
		o := TripOccupancy{TripID: t.ID, Capacity: t.SeatCapacity, Booked: len(t.BookedSeats)}
		if t.SeatCapacity > 0 {
			o.Occupancy = float64(o.Booked) / float64(t.SeatCapacity)
		}
		out = append(out, o)
	}
	return out
}
