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

// parseWay parses the attribute letters of a "w" line into b, then
// resolves the deferred tags and way-node spans.
func parseWay(c *cursor, b model.WayBuilder) error {
	var (
		hasVersion, hasVisible, hasChangeset bool
		hasTimestamp, hasUID, hasUser        bool
		hasTags, hasNodes                    bool
	)

	tagsBegin, tagsEnd := -1, -1
	nodesBegin, nodesEnd := -1, -1

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
		case 'N':
			if hasNodes {
				return fail(letterPos, errDuplicateAttribute("nodes", 'N'))
			}

			hasNodes = true
			nodesBegin, nodesEnd = c.skipSection()
		default:
			return fail(letterPos, ErrUnknownAttribute)
		}
	}

	b.SetUser(user)

	if tagsBegin >= 0 {
		if err := parseTags(c.line, tagsBegin, tagsEnd, b.AddTag); err != nil {
			return err
		}
	}

	if nodesBegin >= 0 {
		if err := parseWayNodes(c.line, nodesBegin, nodesEnd, b.AddNodeRef); err != nil {
			return err
		}
	}

	return nil
}
