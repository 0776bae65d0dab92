package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatKwacha renders an integer amount with thousand separators, e.g.
// "K1,250".
func FormatKwacha(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sK%s", sign, formatThousand(amount))
}

// ParseKwacha parses "K1,250" or "1250" into an integer amount of Kwacha.
func ParseKwacha(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToLower(s), "k")
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(",", "", ".", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid kwacha amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
