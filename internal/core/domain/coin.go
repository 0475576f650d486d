package domain

import "errors"

var ErrInvalidCoin = errors.New("invalid coin")

// Denominations lists the accepted coin values in descending order, the order
// used for greedy change-making.
var Denominations = []int{100, 50, 20, 10, 5}

// ValidCoin reports whether value is an accepted coin denomination.
func ValidCoin(value int) bool {
	for _, d := range Denominations {
		if value == d {
			return true
		}
	}
	return false
}

// MakeChange breaks remaining into coins by repeatedly taking the largest
// denomination that still fits. Any balance built from accepted coins is a
// multiple of 5, so the pass terminates with zero leftover.
func MakeChange(remaining int) []int {
	var change []int
	for _, d := range Denominations {
		for remaining >= d {
			change = append(change, d)
			remaining -= d
		}
	}
	return change
}
