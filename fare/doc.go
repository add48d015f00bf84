// Package fare prices a journey from its distance, the lines ridden and the
// passenger's age.
//
// Pricing happens in three steps:
//
//  1. Base(distance): 1250 up to 10 km, then +100 per started 5 km up to
//     50 km, then +100 per started 8 km.
//  2. Surcharge: the highest extra fare among the lines ridden (not the sum).
//  3. Discount by AgeGroup: adults pay in full, teenagers floor((f-350)*0.8),
//     children floor((f-350)*0.5) and infants ride free.
//
// The result is never negative. Ages ≤ 0 are rejected with ErrInvalidAge.
package fare
