package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCents renders an amount of cents as a decimal string, e.g. 20000 -> "200.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParsePrice parses a decimal price string like "100" or "100.50" into cents.
// At most two fractional digits are accepted.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("price %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if w < 0 || strings.HasPrefix(whole, "-") {
		return 0, fmt.Errorf("price %q must not be negative", s)
	}
	return w*100 + f, nil
}
