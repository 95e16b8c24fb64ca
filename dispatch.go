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

// Package opl implements a character-driven recursive-descent parser for
// the OSM "OPL" (one object per line) text format: one call to ParseLine
// per input line, dispatching on the line's first byte to a node, way,
// relation, or changeset sub-parser and committing the result to a
// model.Sink.
//
// The package does no I/O of its own -- see m4o.io/opl/internal/oplio for
// compression-aware file opening and line scanning, and the root-level
// Decoder for a concurrent, streaming façade built on top of both.
package opl

import "m4o.io/opl/model"

// EntityBits is a bitmask selecting which entity kinds ParseLine will
// accept; a line for a kind not in the mask is skipped without being
// parsed at all, mirroring osmium::osm_entity_bits.
type EntityBits uint8

const (
	NodeBit EntityBits = 1 << iota
	WayBit
	RelationBit
	ChangesetBit

	AllBits = NodeBit | WayBit | RelationBit | ChangesetBit
)

// ParseLine parses a single OPL line and, on success, commits the entity
// it describes to sink. lineNum is only used to annotate a returned
// *Error; it is otherwise opaque to the parser.
//
// An empty line or a line starting with '#' is ignored and ParseLine
// returns (false, nil). A line whose kind is not in mask is also skipped
// without error. Any other malformed line yields (false, err), where err
// unwraps to one of this package's sentinel errors and, via errors.As,
// to a *Error carrying the line and column.
func ParseLine(lineNum uint64, line []byte, sink model.Sink, mask EntityBits) (committed bool, err error) {
	if len(line) == 0 || line[0] == '#' {
		return false, nil
	}

	kind := line[0]

	c := &cursor{line: line, pos: 1}

	switch kind {
	case 'n':
		if mask&NodeBit == 0 {
			return false, nil
		}

		if err := parseNodeLine(c, sink); err != nil {
			return false, annotate(lineNum, err)
		}

		return true, nil
	case 'w':
		if mask&WayBit == 0 {
			return false, nil
		}

		if err := parseWayLine(c, sink); err != nil {
			return false, annotate(lineNum, err)
		}

		return true, nil
	case 'r':
		if mask&RelationBit == 0 {
			return false, nil
		}

		if err := parseRelationLine(c, sink); err != nil {
			return false, annotate(lineNum, err)
		}

		return true, nil
	case 'c':
		if mask&ChangesetBit == 0 {
			return false, nil
		}

		if err := parseChangesetLine(c, sink); err != nil {
			return false, annotate(lineNum, err)
		}

		return true, nil
	default:
		return false, annotate(lineNum, fail(0, ErrUnknownType))
	}
}

// annotate wraps err, which is expected to be a *posError produced
// somewhere under this package, into a line-and-column-carrying *Error.
// Any other error shape (which should not occur) is passed through
// unannotated rather than panicking.
func annotate(lineNum uint64, err error) error {
	if pe, ok := err.(*posError); ok { //nolint:errorlint // we produced this value ourselves
		return newError(lineNum, pe)
	}

	return err
}

func parseNodeLine(c *cursor, sink model.Sink) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	b := sink.NewNode(id)

	if err := parseNode(c, b); err != nil {
		return err
	}

	b.Commit()

	return nil
}

func parseWayLine(c *cursor, sink model.Sink) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	b := sink.NewWay(id)

	if err := parseWay(c, b); err != nil {
		return err
	}

	b.Commit()

	return nil
}

func parseRelationLine(c *cursor, sink model.Sink) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	b := sink.NewRelation(id)

	if err := parseRelation(c, b); err != nil {
		return err
	}

	b.Commit()

	return nil
}

func parseChangesetLine(c *cursor, sink model.Sink) error {
	id, err := parseChangesetID(c)
	if err != nil {
		return err
	}

	b := sink.NewChangeset(id)

	if err := parseChangeset(c, b); err != nil {
		return err
	}

	b.Commit()

	return nil
}
