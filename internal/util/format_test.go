package util

import "testing"

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Relaxation", 20, "Relaxation"},
		{"Welcome to Sicily", 10, "Welcome..."},
		{"Ancient", 2, "An"},
		{"Città", 4, "C..."},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFormatPerPerson(t *testing.T) {
	if got := FormatPerPerson("€25-35"); got != "€25-35 per person" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPerPerson("  "); got != "—" {
		t.Fatalf("blank price should render a dash, got %q", got)
	}
}

func TestFormatPhone(t *testing.T) {
	if got := FormatPhone(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := FormatPhone("+39 0924 31108"); got != "☎ +39 0924 31108" {
		t.Fatalf("got %q", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-3, 0, 10) != 0 || Clamp(12, 0, 10) != 10 || Clamp(4, 0, 10) != 4 {
		t.Fatalf("Clamp returned an out-of-range value")
	}
}
