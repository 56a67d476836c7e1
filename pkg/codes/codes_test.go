package codes

import (
	"regexp"
	"testing"
)

func TestNewAppointmentCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^CM-[A-Z0-9]{6}$`)

	for i := 0; i < 100; i++ {
		code, err := NewAppointmentCode(DefaultConfig())
		if err != nil {
			t.Fatalf("NewAppointmentCode() error = %v", err)
		}
		if !re.MatchString(code) {
			t.Fatalf("NewAppointmentCode() = %q, want match for %s", code, re)
		}
	}
}

func TestNewAppointmentCodeCustomShape(t *testing.T) {
	code, err := NewAppointmentCode(Config{Prefix: "RX", Length: 8})
	if err != nil {
		t.Fatalf("NewAppointmentCode() error = %v", err)
	}
	if len(code) != len("RX-")+8 {
		t.Errorf("NewAppointmentCode() = %q, want 11 characters", code)
	}
}

func TestNewAppointmentCodeZeroConfigFallsBack(t *testing.T) {
	code, err := NewAppointmentCode(Config{})
	if err != nil {
		t.Fatalf("NewAppointmentCode() error = %v", err)
	}
	if len(code) != len("CM-")+DefaultSuffixLength {
		t.Errorf("NewAppointmentCode() = %q, want default shape", code)
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" cm-ab12cd ", "CM-AB12CD"},
		{"CM-AB12CD", "CM-AB12CD"},
		{"cm-ab12cd\n", "CM-AB12CD"},
	}
	for _, tt := range tests {
		if got := NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
