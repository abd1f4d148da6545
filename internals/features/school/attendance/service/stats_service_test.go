package service

import "testing"

func TestRoundPct(t *testing.T) {
	tests := []struct {
		name    string
		present int64
		total   int64
		want    float64
	}{
		{"7 dari 10", 7, 10, 70.0},
		{"semua hadir", 10, 10, 100.0},
		{"tidak pernah hadir", 0, 10, 0.0},
		{"total nol bukan NaN", 0, 0, 0.0},
		{"present tanpa total", 5, 0, 0.0},
		{"dua desimal", 1, 3, 33.33},
		{"dibulatkan ke atas", 2, 3, 66.67},
		{"sepertujuh", 5, 7, 71.43},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundPct(tt.present, tt.total); got != tt.want {
				t.Errorf("roundPct(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}
