// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package opl

import "m4o.io/opl/model"

// coordinateFractionDigits is the number of fractional decimal digits a
// Coordinate retains: model.Coordinate holds round(degrees * 1e7).
const coordinateFractionDigits = 7

// parseCoordinatePartial reads a signed decimal number -- "[-]ddd[.ddd]" --
// directly into a model.Coordinate by digit accumulation, never by routing
// through float64. Routing a value like "8.4234" through strconv.ParseFloat
// and back can perturb the low-order digit on round trip; accumulating the
// integer and fractional digit runs separately and combining them with
// plain integer arithmetic cannot.
//
// Fractional digits beyond coordinateFractionDigits are consumed (so the
// cursor still advances past the whole numeral); the first of them rounds
// the result half away from zero and the rest are ignored. Fewer than
// coordinateFractionDigits are zero-padded on the right.
func parseCoordinatePartial(c *cursor) (model.Coordinate, error) {
	start := c.pos

	neg := false
	if c.peek() == '-' {
		neg = true
		c.pos++
	}

	intStart := c.pos

	var whole int64

	for !c.eof() && isDigit(c.line[c.pos]) {
		whole = whole*10 + int64(c.line[c.pos]-'0')
		c.pos++
	}

	if c.pos == intStart && c.peek() != '.' {
		return 0, fail(start, ErrExpectedInteger)
	}

	var frac int64

	digits := 0
	dropped := 0
	roundUp := false

	if c.peek() == '.' {
		c.pos++

		for !c.eof() && isDigit(c.line[c.pos]) {
			if digits < coordinateFractionDigits {
				frac = frac*10 + int64(c.line[c.pos]-'0')
				digits++
			} else {
				if dropped == 0 {
					roundUp = c.line[c.pos] >= '5'
				}

				dropped++
			}

			c.pos++
		}
	}

	for digits < coordinateFractionDigits {
		frac *= 10
		digits++
	}

	if roundUp {
		frac++
	}

	val := whole*pow10(coordinateFractionDigits) + frac
	if neg {
		val = -val
	}

	if val < minInt32 || val > maxInt32 {
		return 0, fail(start, ErrIntegerTooLong)
	}

	return model.Coordinate(val), nil
}

func pow10(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}

	return v
}
