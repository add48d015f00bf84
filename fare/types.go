// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: age groups, fare constants and sentinel errors.

package fare

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAge indicates an age ≤ 0.
	ErrInvalidAge = errors.New("fare: age must be positive")

	// ErrNegativeDistance indicates a journey distance below zero.
	ErrNegativeDistance = errors.New("fare: distance must be non-negative")

	// ErrUnknownLine indicates a ridden line with no extra fare on record.
	ErrUnknownLine = errors.New("fare: unknown line")

	// ErrNegativeExtraFare indicates a line configured with an extra fare below zero.
	ErrNegativeExtraFare = errors.New("fare: extra fare must be non-negative")
)

// Distance tiers (km) and prices (currency units).
const (
	BaseFare = 1250

	firstTierLimit  = 10
	secondTierLimit = 50

	secondTierStep = 5
	thirdTierStep  = 8
	stepFare       = 100

	// deduction applied before the child and teenager rate
	discountDeduction = 350
)

// AgeGroup is a passenger bracket selecting the discount rule.
type AgeGroup int

const (
	Infant   AgeGroup = iota + 1 // 1-5
	Child                        // 6-12
	Teenager                     // 13-18
	Adult                        // 19+
)

// String implements fmt.Stringer.
func (g AgeGroup) String() string {
	switch g {
	case Infant:
		return "infant"
	case Child:
		return "child"
	case Teenager:
		return "teenager"
	case Adult:
		return "adult"
	default:
		return fmt.Sprintf("AgeGroup(%d)", int(g))
	}
}

// GroupOf maps an age in years to its AgeGroup.
func GroupOf(age int) (AgeGroup, error) {
	switch {
	case age <= 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidAge, age)
	case age <= 5:
		return Infant, nil
	case age <= 12:
		return Child, nil
	case age <= 18:
		return Teenager, nil
	default:
		return Adult, nil
	}
}

// Discount applies the group's rule to a pre-discount fare.
func (g AgeGroup) Discount(fare int) int {
	switch g {
	case Infant:
		return 0
	case Child:
		return max(0, (fare-discountDeduction)*5/10)
	case Teenager:
		return max(0, (fare-discountDeduction)*8/10)
	default:
		return fare
	}
}

// Quote is a priced journey with its intermediate amounts.
type Quote struct {
	Distance    int
	Group       AgeGroup
	Base        int // distance fare
	Surcharge   int // highest extra fare among ridden lines
	PreDiscount int // Base + Surcharge
	Total       int // amount charged
}
