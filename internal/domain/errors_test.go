package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFoundError{Resource: "trip", ID: "t1"}))
	assert.True(t, IsSeatUnavailable(SeatUnavailableError{TripID: "t1", Seats: []int{2}}))
	assert.True(t, IsInvalidState(InvalidStateError{Resource: "trip", State: "cancelled"}))
	assert.True(t, IsValidation(ValidationError{Field: "seatNumbers", Msg: "required"}))
	assert.True(t, IsInternal(InternalError{Msg: "boom"}))

	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsSeatUnavailable(NotFoundError{Resource: "trip"}))
	assert.False(t, IsNotFound(nil))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading booking: %w", NotFoundError{Resource: "booking", ID: "b1"})
	assert.True(t, IsNotFound(err))

	wrapped := fmt.Errorf("reserve: %w", SeatUnavailableError{TripID: "t1", Seats: []int{2, 7}})
	assert.Equal(t, []int{2, 7}, ConflictingSeats(wrapped))
	assert.Nil(t, ConflictingSeats(errors.New("plain")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "trip t1 not found", NotFoundError{Resource: "trip", ID: "t1"}.Error())
	assert.Equal(t, "seats [2 7] unavailable on trip t1", SeatUnavailableError{TripID: "t1", Seats: []int{2, 7}}.Error())
	assert.Equal(t, "bus is maintenance", InvalidStateError{Resource: "bus", State: "maintenance"}.Error())
	assert.Equal(t, "seatNumbers: required", ValidationError{Field: "seatNumbers", Msg: "required"}.Error())
}

func TestHoldExpired(t *testing.T) {
	h := Hold{}
	assert.True(t, h.Expired(h.ExpiresAt.Add(1)))
	assert.False(t, h.Expired(h.ExpiresAt))
}
