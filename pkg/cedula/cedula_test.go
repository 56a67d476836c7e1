package cedula

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"valid coastal province", "0926687856", nil},
		{"valid capital province", "1710034065", nil},
		{"valid highest province", "2400000002", nil},
		{"valid lowest province", "0100000009", nil},
		{"empty", "", ErrFormat},
		{"too short", "123456789", ErrFormat},
		{"too long", "12345678901", ErrFormat},
		{"non numeric", "09266878a6", ErrFormat},
		{"province zero", "0026687856", ErrRegion},
		{"province too high", "2526687856", ErrRegion},
		{"third digit out of range", "0966687856", ErrCategory},
		{"wrong check digit", "0926687855", ErrChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) = %v, want %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

// Mutating any single digit of a valid id must invalidate it, unless the
// mutation happens to preserve the check relation (possible when one of the
// first nine digits changes).
func TestValidateSingleDigitMutation(t *testing.T) {
	const valid = "0926687856"
	if err := Validate(valid); err != nil {
		t.Fatalf("fixture id invalid: %v", err)
	}

	for pos := 0; pos < 10; pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[pos] == d {
				continue
			}
			mutated := valid[:pos] + string(d) + valid[pos+1:]

			digits := make([]int, 10)
			for i := 0; i < 10; i++ {
				digits[i] = int(mutated[i] - '0')
			}
			province := digits[0]*10 + digits[1]
			stillConsistent := province >= 1 && province <= 24 &&
				digits[2] <= 5 &&
				CheckDigit(digits[:9]) == digits[9]

			err := Validate(mutated)
			if stillConsistent && err != nil {
				t.Errorf("Validate(%q) = %v, want nil (mutation preserved check relation)", mutated, err)
			}
			if !stillConsistent && err == nil {
				t.Errorf("Validate(%q) = nil, want error", mutated)
			}
		}
	}
}

func TestCheckDigit(t *testing.T) {
	// All-zero prefix sums to zero, so the check digit wraps to zero.
	if got := CheckDigit([]int{0, 0, 0, 0, 0, 0, 0, 0, 0}); got != 0 {
		t.Errorf("CheckDigit(zeros) = %d, want 0", got)
	}
	if got := CheckDigit([]int{1, 7, 1, 0, 0, 3, 4, 0, 6}); got != 5 {
		t.Errorf("CheckDigit = %d, want 5", got)
	}
}
