package helper

import "testing"

func TestToBanglaNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain digits", "2026", "২০২৬"},
		{"mixed text", "60 মিনিট", "৬০ মিনিট"},
		{"index", "12.", "১২."},
		{"no digits", "পূর্ণমান", "পূর্ণমান"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToBanglaNumber(tt.in); got != tt.want {
				t.Errorf("ToBanglaNumber(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
