// Package cedula validates national identity card numbers.
//
// A valid number has exactly ten digits: two province digits in [1,24],
// a third digit in [0,5], six sequence digits and a final check digit
// computed with the modulo-10 alternating-weights algorithm.
package cedula

import "errors"

var (
	ErrFormat   = errors.New("id must be exactly 10 digits")
	ErrRegion   = errors.New("id province code must be between 01 and 24")
	ErrCategory = errors.New("id third digit must be between 0 and 5")
	ErrChecksum = errors.New("id check digit does not match")
)

// weights applied to the first nine digits.
var weights = [9]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

// Validate checks format, province, category and check digit.
// It is pure and deterministic: no I/O, no clock.
func Validate(id string) error {
	if len(id) != 10 {
		return ErrFormat
	}
	digits := make([]int, 10)
	for i := 0; i < 10; i++ {
		c := id[i]
		if c < '0' || c > '9' {
			return ErrFormat
		}
		digits[i] = int(c - '0')
	}

	province := digits[0]*10 + digits[1]
	if province < 1 || province > 24 {
		return ErrRegion
	}
	if digits[2] > 5 {
		return ErrCategory
	}

	if CheckDigit(digits[:9]) != digits[9] {
		return ErrChecksum
	}
	return nil
}

// CheckDigit computes the check digit for the first nine digits.
// Each digit is multiplied by its weight; products greater than 9 have
// 9 subtracted before summing.
func CheckDigit(first9 []int) int {
	sum := 0
	for i, d := range first9 {
		p := d * weights[i]
		if p > 9 {
			p -= 9
		}
		sum += p
	}
	return (10 - sum%10) % 10
}
