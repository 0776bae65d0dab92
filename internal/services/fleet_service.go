package services

import (
	"strings"

	"github.com/google/uuid"

	"zambus/internal/domain"
	"zambus/internal/store"
)

type FleetService struct {
	Store *store.Store
}

type BusInput struct {
	PlateNumber string   `json:"plateNumber" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required"`
	Type        string   `json:"type"`
	Features    []string `json:"features"`
	Status      string   `json:"status"`
	DriverID    string   `json:"driverId"`
}

func (s FleetService) CreateBus(in BusInput) (domain.Bus, error) {
	bus, err := s.busFromInput(in)
	if err != nil {
		return domain.Bus{}, err
	}
	bus.ID = uuid.NewString()
	s.Store.AddBus(bus)
	return bus, nil
}

func (s FleetService) UpdateBus(id string, in BusInput) (domain.Bus, error) {
	if _, err := s.Store.GetBus(id); err != nil {
		return domain.Bus{}, err
	}
	bus, err := s.busFromInput(in)
	if err != nil {
		return domain.Bus{}, err
	}
	bus.ID = id
	if err := s.Store.UpdateBus(bus); err != nil {
		return domain.Bus{}, err
	}
	return bus, nil
}

func (s FleetService) busFromInput(in BusInput) (domain.Bus, error) {
	plate := strings.TrimSpace(in.PlateNumber)
	if plate == "" {
		return domain.Bus{}, domain.ValidationError{Field: "plateNumber", Msg: "required"}
	}
	if in.Capacity <= 0 {
		return domain.Bus{}, domain.ValidationError{Field: "capacity", Msg: "must be positive"}
	}
	status := domain.BusStatus(in.Status)
	switch status {
	case "":
		status = domain.BusActive
	case domain.BusActive, domain.BusMaintenance, domain.BusInactive:
	default:
		return domain.Bus{}, domain.ValidationError{Field: "status", Msg: "unknown bus status"}
	}
	if in.DriverID != "" {
		driver, err := s.Store.GetUser(in.DriverID)
		if err != nil {
			return domain.Bus{}, err
		}
		if driver.Role != domain.RoleDriver {
			return domain.Bus{}, domain.ValidationError{Field: "driverId", Msg: "user is not a driver"}
		}
	}
	return domain.Bus{
		PlateNumber: plate,
		Capacity:    in.Capacity,
		Type:        strings.TrimSpace(in.Type),
		Features:    in.Features,
		Status:      status,
		DriverID:    in.DriverID,
	}, nil
}

func (s FleetService) ListBuses() []domain.Bus {
	return s.Store.ListBuses()
}

func (s FleetService) GetBus(id string) (domain.Bus, error) {
	return s.Store.GetBus(id)
}

type RouteInput struct {
	Name        string   `json:"name" binding:"required"`
	Source      string   `json:"source" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	Stops       []string `json:"stops"`
	DurationMin int      `json:"duration"`
	DistanceKm  int      `json:"distance"`
	BasePrice   int64    `json:"basePrice"`
}

func (s FleetService) CreateRoute(in RouteInput) (domain.Route, error) {
	route, err := routeFromInput(in)
	if err != nil {
		return domain.Route{}, err
	}
	route.ID = uuid.NewString()
	s.Store.AddRoute(route)
	return route, nil
}

func (s FleetService) UpdateRoute(id string, in RouteInput) (domain.Route, error) {
	if _, err := s.Store.GetRoute(id); err != nil {
		return domain.Route{}, err
	}
	route, err := routeFromInput(in)
	if err != nil {
		return domain.Route{}, err
	}
	route.ID = id
	if err := s.Store.UpdateRoute(route); err != nil {
		return domain.Route{}, err
	}
	return route, nil
}

func routeFromInput(in RouteInput) (domain.Route, error) {
	src := strings.TrimSpace(in.Source)
	dst := strings.TrimSpace(in.Destination)
	if src == "" || dst == "" {
		return domain.Route{}, domain.ValidationError{Field: "source", Msg: "source and destination required"}
	}
	if strings.EqualFold(src, dst) {
		return domain.Route{}, domain.ValidationError{Field: "destination", Msg: "must differ from source"}
	}
	if in.BasePrice < 0 {
		return domain.Route{}, domain.ValidationError{Field: "basePrice", Msg: "must not be negative"}
	}
	return domain.Route{
		Name:        strings.TrimSpace(in.Name),
		Source:      src,
		Destination: dst,
		Stops:       in.Stops,
		DurationMin: in.DurationMin,
		DistanceKm:  in.DistanceKm,
		BasePrice:   in.BasePrice,
	}, nil
}

func (s FleetService) ListRoutes() []domain.Route {
	return s.Store.ListRoutes()
}

func (s FleetService) GetRoute(id string) (domain.Route, error) {
	return s.Store.GetRoute(id)
}
