package service

import (
	"errors"
	"testing"
)

func TestParseClassSpec(t *testing.T) {
	tests := []struct {
		in      string
		class   string
		section string
		wantErr bool
	}{
		{in: "8", class: "8", section: ""},
		{in: "8A", class: "8", section: "A"},
		{in: "12B", class: "12", section: "B"},
		{in: " 9A ", class: "9", section: "A"},
		{in: "", wantErr: true},
		{in: "A8", wantErr: true},
		{in: "8a", wantErr: true},  // section wajib huruf kapital
		{in: "8AB", wantErr: true}, // section maksimal satu huruf
		{in: "kelas8", wantErr: true},
	}
	for _, tt := range tests {
		sc, err := ParseClassSpec(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidClassSpec) {
				t.Errorf("ParseClassSpec(%q) err = %v, want ErrInvalidClassSpec", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClassSpec(%q) unexpected err: %v", tt.in, err)
			continue
		}
		if sc.Class != tt.class || sc.Section != tt.section {
			t.Errorf("ParseClassSpec(%q) = %+v, want class=%q section=%q", tt.in, sc, tt.class, tt.section)
		}
	}
}

func TestParseAssignedScopes(t *testing.T) {
	// token rusak diabaikan, tidak bikin seluruh CSV gagal
	scopes := ParseAssignedScopes("8,9A,kelasX, 10B ,")
	want := []ClassScope{{Class: "8"}, {Class: "9", Section: "A"}, {Class: "10", Section: "B"}}
	if len(scopes) != len(want) {
		t.Fatalf("ParseAssignedScopes = %+v, want %+v", scopes, want)
	}
	for i := range want {
		if scopes[i] != want[i] {
			t.Errorf("scope[%d] = %+v, want %+v", i, scopes[i], want[i])
		}
	}

	if got := ParseAssignedScopes(""); len(got) != 0 {
		t.Errorf("ParseAssignedScopes(\"\") = %+v, want kosong", got)
	}
}

func TestCanAccess(t *testing.T) {
	// guru dengan "8,9A": semua section kelas 8 boleh, kelas 9 hanya section A
	scopes := ParseAssignedScopes("8,9A")

	tests := []struct {
		requested string
		want      bool
	}{
		{"8A", true},
		{"8B", true},
		{"8", true},
		{"9A", true},
		{"9B", false},
		{"9", false}, // minta seluruh kelas 9 padahal cuma pegang 9A
		{"10", false},
		{"10A", false},
	}
	for _, tt := range tests {
		req, err := ParseClassSpec(tt.requested)
		if err != nil {
			t.Fatalf("ParseClassSpec(%q): %v", tt.requested, err)
		}
		if got := CanAccess(scopes, req); got != tt.want {
			t.Errorf("CanAccess(%q) = %v, want %v", tt.requested, got, tt.want)
		}
	}

	if CanAccess(nil, ClassScope{Class: "8"}) {
		t.Error("CanAccess tanpa scope harus false")
	}
}

func TestClassScopeString(t *testing.T) {
	if got := (ClassScope{Class: "8"}).String(); got != "8" {
		t.Errorf("String() = %q, want %q", got, "8")
	}
	if got := (ClassScope{Class: "9", Section: "A"}).String(); got != "9A" {
		t.Errorf("String() = %q, want %q", got, "9A")
	}
}
