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

// parseNode parses the attribute letters of an "n" line (the leading 'n'
// and the id have already been consumed by ParseLine) into b, then
// resolves the deferred tags span once the flat scan is done.
func parseNode(c *cursor, b model.NodeBuilder) error {
	var (
		hasVersion, hasVisible, hasChangeset bool
		hasTimestamp, hasUID, hasUser        bool
		hasTags, hasLon, hasLat              bool
	)

	tagsBegin, tagsEnd := -1, -1
	loc := model.InvalidLocation

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
		case 'v':
			if hasVersion {
				return fail(letterPos, errDuplicateAttribute("version", 'v'))
			}

			hasVersion = true

			v, err := parseVersion(c)
			if err != nil {
				return err
			}

			b.SetVersion(v)
		case 'd':
			if hasVisible {
				return fail(letterPos, errDuplicateAttribute("visible", 'd'))
			}

			hasVisible = true

			v, err := parseVisible(c)
			if err != nil {
				return err
			}

			b.SetVisible(v)
		case 'c':
			if hasChangeset {
				return fail(letterPos, errDuplicateAttribute("changeset_id", 'c'))
			}

			hasChangeset = true

			v, err := parseChangesetID(c)
			if err != nil {
				return err
			}

			b.SetChangeset(v)
		case 't':
			if hasTimestamp {
				return fail(letterPos, errDuplicateAttribute("timestamp", 't'))
			}

			hasTimestamp = true

			v, err := parseTimestamp(c)
			if err != nil {
				return err
			}

			b.SetTimestamp(v)
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
		case 'T':
			if hasTags {
				return fail(letterPos, errDuplicateAttribute("tags", 'T'))
			}

			hasTags = true

			if c.hasValue() {
				tagsBegin, tagsEnd = c.skipSection()
			}
		case 'x':
			if hasLon {
				return fail(letterPos, errDuplicateAttribute("lon", 'x'))
			}

			hasLon = true

			if c.hasValue() {
				lon, err := parseCoordinatePartial(c)
				if err != nil {
					return err
				}

				loc.Lon = lon
			}
		case 'y':
			if hasLat {
				return fail(letterPos, errDuplicateAttribute("lat", 'y'))
			}

			hasLat = true

			if c.hasValue() {
				lat, err := parseCoordinatePartial(c)
				if err != nil {
					return err
				}

				loc.Lat = lat
			}
		default:
			return fail(letterPos, ErrUnknownAttribute)
		}
	}

	b.SetUser(user)

	if loc.Valid() {
		b.SetLocation(loc)
	}

	if tagsBegin >= 0 {
		if err := parseTags(c.line, tagsBegin, tagsEnd, b.AddTag); err != nil {
			return err
		}
	}

	return nil
}
