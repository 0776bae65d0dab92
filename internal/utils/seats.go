package utils

import (
	"sort"
	"strconv"
	"strings"
)

// ParseSeatList splits comma/semicolon separated seat numbers into a
// deduplicated sorted slice. Non-numeric entries are reported per seat.
func ParseSeatList(raw string) ([]int, error) {
	seen := map[int]struct{}{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	out := []int{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

// FormatSeatList renders seat numbers as "1, 2, 15".
func FormatSeatList(seats []int) string {
	parts := make([]string, 0, len(seats))
	for _, s := range seats {
		parts = append(parts, strconv.Itoa(s))
	}
	return strings.Join(parts, ", ")
}

// DedupSeats returns a sorted copy of seats with duplicates removed.
func DedupSeats(seats []int) []int {
	seen := make(map[int]struct{}, len(seats))
	out := make([]int, 0, len(seats))
	for _, s := range seats {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}
