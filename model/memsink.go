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

// MemSink is the reference Sink implementation: a plain, unsynchronized,
// slice-backed buffer that keeps every entity committed to it, in commit
// order. It plays the same role here that osmium::memory::Buffer plays for
// the upstream OPL grammar -- an append-only store a builder writes into
// and that the caller reads back out of once Commit has returned.
//
// A MemSink is not safe for concurrent use; give each concurrent parser
// invocation its own MemSink and merge their Entities/Changesets
// afterward. (The opl.Decoder worker pool does not use MemSink; it gives
// each line its own single-item sink.)
type MemSink struct {
	Entities   []Entity
	Changesets []Changeset
}

// NewMemSink returns an empty MemSink.
func NewMemSink() *MemSink {
	return &MemSink{}
}

func (s *MemSink) NewNode(id ID) NodeBuilder {
	return &nodeBuilder{sink: s, node: Node{ID: id, Tags: map[string]string{}, Location: InvalidLocation}}
}

func (s *MemSink) NewWay(id ID) WayBuilder {
	return &wayBuilder{sink: s, way: Way{ID: id, Tags: map[string]string{}}}
}

func (s *MemSink) NewRelation(id ID) RelationBuilder {
	return &relationBuilder{sink: s, relation: Relation{ID: id, Tags: map[string]string{}}}
}

func (s *MemSink) NewChangeset(id ChangesetID) ChangesetBuilder {
	return &changesetBuilder{sink: s, changeset: Changeset{ID: id, Tags: map[string]string{}}}
}

type nodeBuilder struct {
	sink *MemSink
	node Node
}

func (b *nodeBuilder) SetVersion(v int32)          { b.node.Meta.Version = v }
func (b *nodeBuilder) SetVisible(v bool)           { b.node.Meta.Visible = v }
func (b *nodeBuilder) SetChangeset(c ChangesetID)  { b.node.Meta.Changeset = c }
func (b *nodeBuilder) SetTimestamp(t time.Time)    { b.node.Meta.Timestamp = t }
func (b *nodeBuilder) SetUID(uid UID)              { b.node.Meta.UID = uid }
func (b *nodeBuilder) SetUser(user string)         { b.node.Meta.User = user }
func (b *nodeBuilder) AddTag(key, value string)    { b.node.Tags[key] = value }
func (b *nodeBuilder) SetLocation(loc Location)    { b.node.Location = loc }

func (b *nodeBuilder) Commit() {
	b.sink.Entities = append(b.sink.Entities, b.node)
}

type wayBuilder struct {
	sink *MemSink
	way  Way
}

func (b *wayBuilder) SetVersion(v int32)         { b.way.Meta.Version = v }
func (b *wayBuilder) SetVisible(v bool)          { b.way.Meta.Visible = v }
func (b *wayBuilder) SetChangeset(c ChangesetID) { b.way.Meta.Changeset = c }
func (b *wayBuilder) SetTimestamp(t time.Time)   { b.way.Meta.Timestamp = t }
func (b *wayBuilder) SetUID(uid UID)             { b.way.Meta.UID = uid }
func (b *wayBuilder) SetUser(user string)        { b.way.Meta.User = user }
func (b *wayBuilder) AddTag(key, value string)   { b.way.Tags[key] = value }

func (b *wayBuilder) AddNodeRef(ref ID, loc Location) {
	b.way.Nodes = append(b.way.Nodes, WayNode{Ref: ref, Location: loc})
}

func (b *wayBuilder) Commit() {
	b.sink.Entities = append(b.sink.Entities, b.way)
}

type relationBuilder struct {
	sink     *MemSink
	relation Relation
}

func (b *relationBuilder) SetVersion(v int32)         { b.relation.Meta.Version = v }
func (b *relationBuilder) SetVisible(v bool)          { b.relation.Meta.Visible = v }
func (b *relationBuilder) SetChangeset(c ChangesetID) { b.relation.Meta.Changeset = c }
func (b *relationBuilder) SetTimestamp(t time.Time)   { b.relation.Meta.Timestamp = t }
func (b *relationBuilder) SetUID(uid UID)             { b.relation.Meta.UID = uid }
func (b *relationBuilder) SetUser(user string)        { b.relation.Meta.User = user }
func (b *relationBuilder) AddTag(key, value string)   { b.relation.Tags[key] = value }

func (b *relationBuilder) AddMember(typ MemberType, ref ID, role string) {
	b.relation.Members = append(b.relation.Members, Member{Type: typ, Ref: ref, Role: role})
}

func (b *relationBuilder) Commit() {
	b.sink.Entities = append(b.sink.Entities, b.relation)
}

type changesetBuilder struct {
	sink      *MemSink
	changeset Changeset
}

func (b *changesetBuilder) SetNumChanges(n uint32)  { b.changeset.NumChanges = n }
func (b *changesetBuilder) SetNumComments(n uint32) { b.changeset.NumComments = n }
func (b *changesetBuilder) SetCreatedAt(t time.Time) { b.changeset.CreatedAt = t }
func (b *changesetBuilder) SetClosedAt(t time.Time)  { b.changeset.ClosedAt = t }
func (b *changesetBuilder) SetUID(uid UID)           { b.changeset.UID = uid }
func (b *changesetBuilder) SetUser(user string)      { b.changeset.User = user }
func (b *changesetBuilder) SetBounds(bounds Box)     { b.changeset.Bounds = bounds }
func (b *changesetBuilder) AddTag(key, value string) { b.changeset.Tags[key] = value }

func (b *changesetBuilder) Commit() {
	b.sink.Changesets = append(b.sink.Changesets, b.changeset)
}
