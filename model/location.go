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

package model

import "fmt"

// Coordinate is a signed fixed-point longitude or latitude value, holding
// round(degrees * 1e7). The OPL grammar parses coordinates directly into
// this representation so that files round-trip exactly against other OPL
// implementations, without ever routing the value through a float64.
type Coordinate int32

// InvalidCoordinate is the sentinel value of an unset Coordinate.
const InvalidCoordinate Coordinate = 1<<31 - 1 // math.MaxInt32, mirrors osmium's invalid location marker

// Valid reports whether c holds a real value.
func (c Coordinate) Valid() bool { return c != InvalidCoordinate }

// Degrees converts c back to a decimal degree value.
func (c Coordinate) Degrees() Degrees { return Degrees(c) / TenMillionths }

func (c Coordinate) String() string {
	if !c.Valid() {
		return "invalid"
	}

	return ftoa(float64(c.Degrees()))
}

// Location is a longitude/latitude pair in the fixed-point representation
// used throughout the OPL grammar.
type Location struct {
	Lon Coordinate
	Lat Coordinate
}

// InvalidLocation is a Location with neither coordinate set. It is not the
// zero value of Location: Location{} holds (0,0), which is valid.
var InvalidLocation = Location{Lon: InvalidCoordinate, Lat: InvalidCoordinate}

// Valid reports whether both coordinates of the location are set.
func (l Location) Valid() bool {
	return l.Lon.Valid() && l.Lat.Valid()
}

func (l Location) String() string {
	if !l.Valid() {
		return "invalid"
	}

	return fmt.Sprintf("(%s,%s)", l.Lon, l.Lat)
}
