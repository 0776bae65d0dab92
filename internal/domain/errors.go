package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID != "":
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// SeatUnavailableError names every requested seat that could not be taken,
// so callers can re-render a fresh seat map before retrying.
type SeatUnavailableError struct {
	TripID string
	Seats  []int
}

func (e SeatUnavailableError) Error() string {
	if len(e.Seats) == 0 {
		return "seats unavailable"
	}
	return fmt.Sprintf("seats %v unavailable on trip %s", e.Seats, e.TripID)
}

type InvalidStateError struct {
	Resource string
	State    string
	Msg      string
}

func (e InvalidStateError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Resource != "" && e.State != "" {
		return fmt.Sprintf("%s is %s", e.Resource, e.State)
	}
	return "invalid state"
}

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsSeatUnavailable(err error) bool {
	var target SeatUnavailableError
	return errors.As(err, &target)
}

func IsInvalidState(err error) bool {
	var target InvalidStateError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// ConflictingSeats extracts the seat numbers carried by a
// SeatUnavailableError, or nil when err is something else.
func ConflictingSeats(err error) []int {
	var target SeatUnavailableError
	if errors.As(err, &target) {
		return target.Seats
	}
	return nil
}
