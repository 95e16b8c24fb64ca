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

// parseChangeset parses the attribute letters of a "c" line into b. A
// changeset has its own attribute grammar: k/s/e/d/i/u/x/y/X/Y/T rather
// than the v/d/c/t/i/u/T(/N/M) letters shared by node, way, and relation.
func parseChangeset(c *cursor, b model.ChangesetBuilder) error {
	var (
		hasNumChanges, hasCreatedAt, hasClosedAt bool
		hasNumComments, hasUID, hasUser          bool
		hasTags, hasMinLon, hasMinLat            bool
		hasMaxLon, hasMaxLat                     bool
	)

	tagsBegin, tagsEnd := -1, -1

	box := model.Box{
		MinLon: model.InvalidCoordinate,
		MinLat: model.InvalidCoordinate,
		MaxLon: model.InvalidCoordinate,
		MaxLat: model.InvalidCoordinate,
	}

	var user string

	for !c.eof() {
		if err := c.skipSpace(); err != nil {
			return err
		}

		if c.eof() {
			break
		}

		letterPos := c.pos
		letter := c.advance()

		switch letter {
		case 'k':
			if hasNumChanges {
				return fail(letterPos, errDuplicateAttribute("num_changes", 'k'))
			}

			hasNumChanges = true

			v, err := parseCount(c)
			if err != nil {
				return err
			}

			b.SetNumChanges(v)
		case 's':
			if hasCreatedAt {
				return fail(letterPos, errDuplicateAttribute("created_at", 's'))
			}

			hasCreatedAt = true

			v, err := parseTimestamp(c)
			if err != nil {
				return err
			}

			b.SetCreatedAt(v)
		case 'e':
			if hasClosedAt {
				return fail(letterPos, errDuplicateAttribute("closed_at", 'e'))
			}

			hasClosedAt = true

			v, err := parseTimestamp(c)
			if err != nil {
				return err
			}

			b.SetClosedAt(v)
		case 'd':
			if hasNumComments {
				return fail(letterPos, errDuplicateAttribute("num_comments", 'd'))
			}

			hasNumComments = true

			v, err := parseCount(c)
			if err != nil {
				return err
			}

			b.SetNumComments(v)
		case 'i':
			if hasUID {
				return fail(letterPos, errDuplicateAttribute("uid", 'i'))
			}

			hasUID = true

			v, err := parseUID(c)
			if err != nil {
				return err
			}

			b.SetUID(v)
		case 'u':
			if hasUser {
				return fail(letterPos, errDuplicateAttribute("user", 'u'))
			}

			hasUser = true

			v, err := parseString(c)
			if err != nil {
				return err
			}

			user = v
		case 'x':
			if hasMinLon {
				return fail(letterPos, errDuplicateAttribute("min_x", 'x'))
			}

			hasMinLon = true

			if c.hasValue() {
				v, err := parseCoordinatePartial(c)
				if err != nil {
					return err
				}

				box.MinLon = v
			}
		case 'y':
			if hasMinLat {
				return fail(letterPos, errDuplicateAttribute("min_y", 'y'))
			}

			hasMinLat = true

			if c.hasValue() {
				v, err := parseCoordinatePartial(c)
				if err != nil {
					return err
				}

				box.MinLat = v
			}
		case 'X':
			if hasMaxLon {
				return fail(letterPos, errDuplicateAttribute("max_x", 'X'))
			}

			hasMaxLon = true

			if c.hasValue() {
				v, err := parseCoordinatePartial(c)
				if err != nil {
					return err
				}

				box.MaxLon = v
			}
		case 'Y':
			if hasMaxLat {
				return fail(letterPos, errDuplicateAttribute("max_y", 'Y'))
			}

			hasMaxLat = true

			if c.hasValue() {
				v, err := parseCoordinatePartial(c)
				if err != nil {
					return err
				}

				box.MaxLat = v
			}
		case 'T':
			if hasTags {
				return fail(letterPos, errDuplicateAttribute("tags", 'T'))
			}

			hasTags = true

			if c.hasValue() {
				tagsBegin, tagsEnd = c.skipSection()
			}
		default:
			return fail(letterPos, ErrUnknownAttribute)
		}
	}

	b.SetUser(user)
	b.SetBounds(box)

	if tagsBegin >= 0 {
		if err := parseTags(c.line, tagsBegin, tagsEnd, b.AddTag); err != nil {
			return err
		}
	}

	return nil
}
