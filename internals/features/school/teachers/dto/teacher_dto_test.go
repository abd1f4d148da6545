package dto

import (
	"errors"
	"testing"

	"schoolku_backend/internals/features/school/teachers/service"
)

func TestValidateAssigned(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: ""},
		{in: "   "},
		{in: "8"},
		{in: "8,9A"},
		{in: "8, 9A , 10B"},
		{in: "8,kelasX", wantErr: true}, // write path ketat: satu token rusak = tolak
		{in: "8a", wantErr: true},
		{in: ",", wantErr: true},
	}
	for _, tt := range tests {
		err := ValidateAssigned(tt.in)
		if tt.wantErr && !errors.Is(err, service.ErrInvalidClassSpec) {
			t.Errorf("ValidateAssigned(%q) err = %v, want ErrInvalidClassSpec", tt.in, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ValidateAssigned(%q) unexpected err: %v", tt.in, err)
		}
	}
}

func TestNormalizeAssigned(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" 8 , 9A ,", "8,9A"},
		{"8", "8"},
		{"", ""},
		{" , , ", ""},
	}
	for _, tt := range tests {
		if got := normalizeAssigned(tt.in); got != tt.want {
			t.Errorf("normalizeAssigned(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
