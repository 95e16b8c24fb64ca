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

// Package model contains the shared entity model parsed out of OPL lines:
// the four entity kinds, their common metadata, and the Sink contract that
// the opl grammar package populates.
package model

//go:generate stringer -type=MemberType

import (
	"time"
)

// ID is the primary key of a node, way, or relation. OPL keeps changeset
// ids in a separate id-space, hence ChangesetID below rather than reuse of
// this type.
type ID int64

// ChangesetID is the primary key of a changeset.
type ChangesetID int64

// UID is the primary key of a user.
type UID int32

// Meta holds the metadata fields common to Node, Way, and Relation: the
// OPL attribute letters v, d, c, t, i, and u.
type Meta struct {
	Version   int32
	Visible   bool
	Changeset ChangesetID
	Timestamp time.Time
	UID       UID
	User      string
}

// Entity is implemented by every OPL object kind that carries the common
// Meta fields and a tag set: Node, Way, and Relation. Changeset is
// deliberately excluded -- it has its own id-space and its own attribute
// grammar (§4.5) and does not share Meta.
type Entity interface {
	isEntity() // prevents extensions

	GetID() ID

	GetTags() map[string]string

	GetMeta() Meta
}

// Node represents a specific point on the earth's surface. A Node's
// Location is valid only when both the x and y attributes were present
// with non-empty values on the OPL line (see §9 of the grammar, "the
// x/y/X/Y flags track presence of the letter, not presence of a value").
type Node struct {
	ID       ID
	Meta     Meta
	Tags     map[string]string
	Location Location
}

var _ Entity = Node{}

func (n Node) isEntity() {}

func (n Node) GetID() ID { return n.ID }

func (n Node) GetTags() map[string]string { return n.Tags }

func (n Node) GetMeta() Meta { return n.Meta }

// WayNode is one element of a Way's ordered node-reference list. Location
// is only Valid() when the OPL way-node carried an inline "x<lon>y<lat>".
type WayNode struct {
	Ref      ID
	Location Location
}

// Way is an ordered list of node references that define a polyline or
// polygon.
type Way struct {
	ID    ID
	Meta  Meta
	Tags  map[string]string
	Nodes []WayNode
}

var _ Entity = Way{}

func (w Way) isEntity() {}

func (w Way) GetID() ID { return w.ID }

func (w Way) GetTags() map[string]string { return w.Tags }

func (w Way) GetMeta() Meta { return w.Meta }

// MemberType is the kind of entity a relation Member refers to.
type MemberType int32

const (
	// NodeMember denotes that the member refers to a node.
	NodeMember MemberType = iota

	// WayMember denotes that the member refers to a way.
	WayMember

	// RelationMember denotes that the member refers to another relation.
	RelationMember
)

// Member is one element of a Relation's ordered member list.
type Member struct {
	Type MemberType
	Ref  ID
	Role string
}

// Relation documents a relationship between two or more other entities
// (nodes, ways, and/or other relations).
type Relation struct {
	ID      ID
	Meta    Meta
	Tags    map[string]string
	Members []Member
}

var _ Entity = Relation{}

func (r Relation) isEntity() {}

func (r Relation) GetID() ID { return r.ID }

func (r Relation) GetTags() map[string]string { return r.Tags }

func (r Relation) GetMeta() Meta { return r.Meta }

// Changeset is a changeset record. Unlike Node, Way, and Relation it has no
// version or visibility and lives in its own id-space, so it does not
// implement Entity; it carries its own bounding Box instead of a single
// Location.
type Changeset struct {
	ID          ChangesetID
	NumChanges  uint32
	NumComments uint32
	CreatedAt   time.Time
	ClosedAt    time.Time
	UID         UID
	User        string
	Tags        map[string]string
	Bounds      Box
}
