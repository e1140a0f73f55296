package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ParseDateLabel parses a CSSE column label (M/D/YY) as a UTC date.
func ParseDateLabel(label string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(label), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date label %q", label)
	}

	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date label %q", label)
		}
		n[i] = v
	}

	year := n[2]
	if year < 100 {
		year += 2000
	}
	if n[0] < 1 || n[0] > 12 || n[1] < 1 || n[1] > 31 {
		return time.Time{}, fmt.Errorf("invalid date label %q", label)
	}

	return time.Date(year, time.Month(n[0]), n[1], 0, 0, 0, 0, time.UTC), nil
}

// FormatDate turns a date label into YYYY-MM-DD. Unparsable labels come
// back unchanged and an empty label stays empty.
func FormatDate(label string) string {
	if label == "" {
		return ""
	}
	t, err := ParseDateLabel(label)
	if err != nil {
		return label
	}
	return t.Format("2006-01-02")
}

// DateToText turns a date label into a short text such as "Mar 14".
func DateToText(label string) string {
	if label == "" {
		return ""
	}
	t, err := ParseDateLabel(label)
	if err != nil {
		return label
	}
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Day())
}
