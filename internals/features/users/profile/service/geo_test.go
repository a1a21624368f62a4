package service

import "testing"

func TestDivisions(t *testing.T) {
	divisions := Divisions()
	if len(divisions) != 8 {
		t.Fatalf("len(Divisions()) = %d, want 8", len(divisions))
	}
	found := false
	for _, d := range divisions {
		if d == "ঢাকা" {
			found = true
		}
	}
	if !found {
		t.Error("Divisions() missing ঢাকা")
	}
}

func TestDistricts(t *testing.T) {
	if got := Districts("ঢাকা"); len(got) == 0 {
		t.Error("Districts(ঢাকা) is empty")
	}
	if got := Districts("nowhere"); len(got) != 0 {
		t.Errorf("Districts(nowhere) = %v, want empty", got)
	}
}

func TestThanas(t *testing.T) {
	if got := Thanas("ঢাকা", "গাজীপুর"); len(got) == 0 {
		t.Error("Thanas(ঢাকা, গাজীপুর) is empty")
	}
	if got := Thanas("ঢাকা", "nowhere"); len(got) != 0 {
		t.Errorf("Thanas unknown district = %v, want empty", got)
	}
	if got := Thanas("nowhere", "ঢাকা"); len(got) != 0 {
		t.Errorf("Thanas unknown division = %v, want empty", got)
	}
}

func TestThanas_ReturnsCopy(t *testing.T) {
	first := Thanas("ঢাকা", "ঢাকা")
	if len(first) == 0 {
		t.Fatal("fixture thana list empty")
	}
	first[0] = "mutated"
	second := Thanas("ঢাকা", "ঢাকা")
	if second[0] == "mutated" {
		t.Error("Thanas leaks its backing array")
	}
}

func TestValidCombination(t *testing.T) {
	tests := []struct {
		name                      string
		division, district, thana string
		want                      bool
	}{
		{"valid chain", "ঢাকা", "ঢাকা", "মিরপুর", true},
		{"thana from another district", "ঢাকা", "ঢাকা", "টঙ্গী", false},
		{"unknown division", "nowhere", "ঢাকা", "মিরপুর", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCombination(tt.division, tt.district, tt.thana); got != tt.want {
				t.Errorf("ValidCombination(%q, %q, %q) = %v, want %v", tt.division, tt.district, tt.thana, got, tt.want)
			}
		})
	}
}
