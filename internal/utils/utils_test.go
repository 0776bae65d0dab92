package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKwacha(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "K0"},
		{50, "K50"},
		{150, "K150"},
		{1250, "K1,250"},
		{1000000, "K1,000,000"},
		{-360, "-K360"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatKwacha(tc.amount))
	}
}

func TestParseKwacha(t *testing.T) {
	for raw, want := range map[string]int64{
		"K1,250": 1250,
		"1250":   1250,
		" k 360": 360,
	} {
		got, err := ParseKwacha(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseKwacha("")
	assert.Error(t, err)
	_, err = ParseKwacha("Kabc")
	assert.Error(t, err)
}

func TestParseSeatList(t *testing.T) {
	seats, err := ParseSeatList("3, 1; 2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seats)

	seats, err = ParseSeatList("")
	require.NoError(t, err)
	assert.Empty(t, seats)

	_, err = ParseSeatList("1, two")
	assert.Error(t, err)
}

func TestFormatSeatList(t *testing.T) {
	assert.Equal(t, "1, 2, 15", FormatSeatList([]int{1, 2, 15}))
	assert.Equal(t, "", FormatSeatList(nil))
}

func TestDedupSeats(t *testing.T) {
	assert.Equal(t, []int{1, 2, 5}, DedupSeats([]int{5, 1, 2, 1, 5}))
	assert.Empty(t, DedupSeats(nil))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-04-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/04/2026")
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(time.Date(2026, 4, 1, 23, 59, 0, 0, time.UTC), day))
	assert.False(t, SameDay(time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), day))
}

func TestTicketCodes(t *testing.T) {
	code := NewTicketCode()
	assert.True(t, strings.HasPrefix(code, "TKT-"))
	assert.Len(t, code, 12)
	assert.NotEqual(t, code, NewTicketCode())

	txn := NewTransactionID()
	assert.True(t, strings.HasPrefix(txn, "TXN-"))
	assert.Len(t, txn, 16)
}
