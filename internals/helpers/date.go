// file: internals/helpers/date.go
package helper

import (
	"strings"
	"time"
)

const DateOnlyLayout = "2006-01-02"

// ParseDateOnly: tanggal kalender tanpa komponen waktu, dinormalisasi ke UTC.
func ParseDateOnly(s string) (time.Time, error) {
	t, err := time.Parse(DateOnlyLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDateOnly kebalikan dari ParseDateOnly.
func FormatDateOnly(t time.Time) string {
	return t.Format(DateOnlyLayout)
}
