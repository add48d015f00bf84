// SPDX-License-Identifier: MIT
//
// File: calculator.go
// Role: distance tiers and the per-passenger Calculator.

package fare

import (
	"fmt"
	"maps"
)

// Base returns the distance fare for a journey of distance km.
// Anything up to 10 km, zero included, costs BaseFare.
func Base(distance int) int {
	switch {
	case distance <= firstTierLimit:
		return BaseFare
	case distance <= secondTierLimit:
		return BaseFare + stepFare*ceilDiv(distance-firstTierLimit, secondTierStep)
	default:
		full := stepFare * ceilDiv(secondTierLimit-firstTierLimit, secondTierStep)
		return BaseFare + full + stepFare*ceilDiv(distance-secondTierLimit, thirdTierStep)
	}
}

func ceilDiv(n, d int) int { return (n + d - 1) / d }

// Calculator prices journeys for one passenger against a fixed table of line
// extra fares. It is immutable and safe for concurrent use.
type Calculator struct {
	extraFares map[int64]int
	group      AgeGroup
}

// NewCalculator returns a Calculator for a passenger of the given age.
// extraFares maps line ID to its extra fare and is copied.
//
// Errors: ErrInvalidAge, ErrNegativeExtraFare.
func NewCalculator(extraFares map[int64]int, age int) (*Calculator, error) {
	group, err := GroupOf(age)
	if err != nil {
		return nil, err
	}
	for id, f := range extraFares {
		if f < 0 {
			return nil, fmt.Errorf("%w: line %d extra fare %d", ErrNegativeExtraFare, id, f)
		}
	}

	return &Calculator{extraFares: maps.Clone(extraFares), group: group}, nil
}

// Group returns the passenger's age group.
func (c *Calculator) Group() AgeGroup { return c.group }

// Calculate returns the fare charged for a journey.
func (c *Calculator) Calculate(distance int, lineIDs []int64) (int, error) {
	q, err := c.Quote(distance, lineIDs)
	if err != nil {
		return 0, err
	}

	return q.Total, nil
}

// Quote prices a journey and returns the breakdown.
//
// Errors: ErrNegativeDistance, ErrUnknownLine.
func (c *Calculator) Quote(distance int, lineIDs []int64) (Quote, error) {
	if distance < 0 {
		return Quote{}, fmt.Errorf("%w: %d", ErrNegativeDistance, distance)
	}
	surcharge := 0
	for _, id := range lineIDs {
		f, ok := c.extraFares[id]
		if !ok {
			return Quote{}, fmt.Errorf("%w: %d", ErrUnknownLine, id)
		}
		surcharge = max(surcharge, f)
	}

	q := Quote{
		Distance:  distance,
		Group:     c.group,
		Base:      Base(distance),
		Surcharge: surcharge,
	}
	q.PreDiscount = q.Base + q.Surcharge
	q.Total = c.group.Discount(q.PreDiscount)

	return q, nil
}
