package helper

import (
	"testing"
	"time"
)

func TestParseDateOnly(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2026-08-31", want: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{in: " 2026-01-02 ", want: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{in: "2026-02-29", wantErr: true}, // bukan tahun kabisat
		{in: "31-08-2026", wantErr: true},
		{in: "2026/08/31", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDateOnly(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDateOnly(%q) err = nil, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDateOnly(%q) unexpected err: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDateOnly(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseDateOnly(%q) location = %v, want UTC", tt.in, got.Location())
		}
	}
}

func TestFormatDateOnlyRoundTrip(t *testing.T) {
	in := "2026-08-31"
	parsed, err := ParseDateOnly(in)
	if err != nil {
		t.Fatalf("ParseDateOnly: %v", err)
	}
	if got := FormatDateOnly(parsed); got != in {
		t.Errorf("FormatDateOnly = %q, want %q", got, in)
	}
}
