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

import (
	"fmt"
)

const (
	MaxLat Degrees = 90.0
	MaxLon Degrees = 180.0
	MinLat Degrees = -90.0
	MinLon Degrees = -180.0
)

// BoundingBox is a decimal-degree bounding box, useful for tracking the
// geographic extent of a set of nodes (e.g. for CLI summaries). It is
// distinct from Box, which is the fixed-point representation a changeset's
// own bounds are parsed into.
type BoundingBox struct {
	Top    Degrees
	Left   Degrees
	Bottom Degrees
	Right  Degrees
}

// InitialBoundingBox creates a BoundingBox that is meant to be expanded.
func InitialBoundingBox() *BoundingBox {
	return &BoundingBox{
		Top:    MinLat,
		Left:   MaxLon,
		Bottom: MaxLat,
		Right:  MinLon,
	}
}

// EqualWithin checks if two bounding boxes are within a specific epsilon.
func (b *BoundingBox) EqualWithin(o *BoundingBox, eps Epsilon) bool {
	return b.Left.EqualWithin(o.Left, eps) &&
		b.Right.EqualWithin(o.Right, eps) &&
		b.Top.EqualWithin(o.Top, eps) &&
		b.Bottom.EqualWithin(o.Bottom, eps)
}

// Contains checks if the bounding box contains the lat lng point.
func (b *BoundingBox) Contains(lat Degrees, lng Degrees) bool {
	return b.Left <= lng && lng <= b.Right && b.Bottom <= lat && lat <= b.Top
}

func (b *BoundingBox) ExpandWithLatLng(lat, lng Degrees) {
	if b.Top < lat {
		b.Top = lat
	}

	if b.Bottom > lat {
		b.Bottom = lat
	}

	if b.Left > lng {
		b.Left = lng
	}

	if b.Right < lng {
		b.Right = lng
	}
}

func (b *BoundingBox) ExpandWithBoundingBox(bbox *BoundingBox) {
	if b.Top < bbox.Top {
		b.Top = bbox.Top
	}

	if b.Bottom > bbox.Bottom {
		b.Bottom = bbox.Bottom
	}

	if b.Left > bbox.Left {
		b.Left = bbox.Left
	}

	if b.Right < bbox.Right {
		b.Right = bbox.Right
	}
}

func (b *BoundingBox) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		ftoa(float64(b.Top)), ftoa(float64(b.Left)),
		ftoa(float64(b.Bottom)), ftoa(float64(b.Right)))
}

// Box is the fixed-point bounding box a changeset's own x/y/X/Y attributes
// are parsed into. Unlike BoundingBox, a Box edge that was never assigned
// stays at its default, unset Coordinate instead of the widest possible
// degree range -- the OPL changeset grammar sets whichever edges it saw and
// leaves the rest alone (see §4.5 of the OPL grammar).
type Box struct {
	MinLon Coordinate
	MinLat Coordinate
	MaxLon Coordinate
	MaxLat Coordinate
}

// Valid reports whether every edge of the box was assigned a real value.
func (b Box) Valid() bool {
	return b.MinLon.Valid() && b.MinLat.Valid() && b.MaxLon.Valid() && b.MaxLat.Valid()
}

// ToBoundingBox converts b to the decimal-degree representation. Unset
// edges convert through Coordinate.Degrees() like any other Coordinate;
// callers that care should check Valid() first.
func (b Box) ToBoundingBox() *BoundingBox {
	return &BoundingBox{
		Top:    b.MaxLat.Degrees(),
		Bottom: b.MinLat.Degrees(),
		Left:   b.MinLon.Degrees(),
		Right:  b.MaxLon.Degrees(),
	}
}

func (b Box) String() string {
	return fmt.Sprintf("[(%s,%s),(%s,%s)]", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
}
