package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewTicketCode mints a short human-presentable ticket code backed by a
// random UUID, e.g. "TKT-3F9A1C04". Used for driver check-in lookup.
func NewTicketCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("TKT-%s", strings.ToUpper(raw[:8]))
}

// NewTransactionID mints a payment transaction reference.
func NewTransactionID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("TXN-%s", strings.ToUpper(raw[:12]))
}
