package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"halaman pertama", 45, 1, 20, 3, true, false},
		{"halaman tengah", 45, 2, 20, 3, true, true},
		{"halaman terakhir", 45, 3, 20, 3, false, true},
		{"pas satu halaman", 20, 1, 20, 1, false, false},
		{"data kosong tetap 1 halaman", 0, 1, 20, 1, false, false},
		{"perPage nol dinormalisasi", 45, 1, 0, 3, true, false},
		{"page nol dinormalisasi", 45, 0, 20, 3, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.totalPages)
			}
			if p.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.hasNext)
			}
			if p.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.hasPrev)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}
