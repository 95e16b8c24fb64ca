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

import "time"

// Sink is the abstract, append-only entity buffer the opl grammar package
// populates one line at a time. A line's worth of work is: start exactly
// one of the four builders below, call its setters and appenders in any
// order, then call Commit on it exactly once. No entity is visible to a
// Sink's consumer until Commit returns.
//
// Sink's only methods are the four NewXxx factories below; this single doc
// comment describes the whole contract. Callers of the opl package hold a
// concrete implementation (MemSink, or their own).
type Sink interface {
	NewNode(id ID) NodeBuilder
	NewWay(id ID) WayBuilder
	NewRelation(id ID) RelationBuilder
	NewChangeset(id ChangesetID) ChangesetBuilder
}

// MetaBuilder is the part of a builder shared by Node, Way, and Relation:
// the Meta fields and tags.
type MetaBuilder interface {
	SetVersion(v int32)
	SetVisible(v bool)
	SetChangeset(c ChangesetID)
	SetTimestamp(t time.Time)
	SetUID(uid UID)
	SetUser(user string)
	AddTag(key, value string)

	// Commit finalises the entity being built and appends it to the Sink
	// it was created from. Commit must be called exactly once.
	Commit()
}

// NodeBuilder assembles one Node.
type NodeBuilder interface {
	MetaBuilder
	SetLocation(loc Location)
}

// WayBuilder assembles one Way.
type WayBuilder interface {
	MetaBuilder
	AddNodeRef(ref ID, loc Location)
}

// RelationBuilder assembles one Relation.
type RelationBuilder interface {
	MetaBuilder
	AddMember(typ MemberType, ref ID, role string)
}

// ChangesetBuilder assembles one Changeset. It does not embed MetaBuilder:
// changesets have no version/visibility and their own attribute letters.
type ChangesetBuilder interface {
	SetNumChanges(n uint32)
	SetNumComments(n uint32)
	SetCreatedAt(t time.Time)
	SetClosedAt(t time.Time)
	SetUID(uid UID)
	SetUser(user string)
	SetBounds(b Box)
	AddTag(key, value string)

	Commit()
}
