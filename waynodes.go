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

// parseWayNodes parses the deferred [begin,end) span recorded for an N
// attribute: zero or more "nID[xLONyLAT]" entries separated by ','. The
// inline location is optional and, per the grammar, y may only appear
// immediately after an x was given -- a bare "nID" way-node carries
// model.InvalidLocation.
func parseWayNodes(line []byte, begin, end int, add func(ref model.ID, loc model.Location)) error {
	if begin == end {
		return nil
	}

	c := &cursor{line: line, pos: begin}

	for {
		if err := c.expectChar('n'); err != nil {
			return err
		}

		ref, err := parseID(c)
		if err != nil {
			return err
		}

		loc := model.InvalidLocation

		if c.peek() == 'x' {
			c.pos++

			lon, err := parseCoordinatePartial(c)
			if err != nil {
				return err
			}

			loc.Lon = lon

			if c.peek() == 'y' {
				c.pos++

				lat, err := parseCoordinatePartial(c)
				if err != nil {
					return err
				}

				loc.Lat = lat
			}
		}

		add(ref, loc)

		if c.pos >= end {
			return nil
		}

		if err := c.expectChar(','); err != nil {
			return err
		}
	}
}
