// SPDX-License-Identifier: MIT

package flowgraph

import (
	"errors"

	"github.com/katalvlaran/energyflow/hierarchy"
)

// Sentinel errors for graph validation and lookup.
var (
	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("flowgraph: node ID is empty")

	// ErrDuplicateNodeID indicates two nodes sharing one ID.
	ErrDuplicateNodeID = errors.New("flowgraph: duplicate node ID")

	// ErrDanglingLink indicates a link whose source or target is not a node.
	ErrDanglingLink = errors.New("flowgraph: link endpoint not found")

	// ErrDuplicateLink indicates a (source, target) pair occurring twice.
	ErrDuplicateLink = errors.New("flowgraph: duplicate link")

	// ErrNodeNotFound indicates a lookup of a missing node.
	ErrNodeNotFound = errors.New("flowgraph: node not found")
)

// NodeID returns the deterministic node identifier "<levelID>_<name>".
func NodeID(levelID, name string) string {
	return levelID + "_" + name
}

// Node is one (level, name) entity with its accumulated value.
type Node struct {
	// ID is NodeID(LevelID, Name).
	ID string `json:"id" yaml:"id"`

	// Name is the record name shared by every merged record.
	Name string `json:"name" yaml:"name"`

	// Value is the sum of merged record values, possibly rewritten by the
	// filter and view stages.
	Value float64 `json:"value" yaml:"value"`

	// Level is the hierarchy order of the node.
	Level int `json:"level" yaml:"level"`

	// LevelID is the identifier of the node's level.
	LevelID string `json:"levelId" yaml:"levelId"`

	// Category is the normalized category tag, empty when undefined.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Index is the first-seen ordinal of the node within its level.
	Index int `json:"index" yaml:"index"`
}

// Link is a parent→child flow.
type Link struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Value  float64 `json:"value" yaml:"value"`
}

// Graph is the complete output of one build.
type Graph struct {
	Nodes  []Node           `json:"nodes" yaml:"nodes"`
	Links  []Link           `json:"links" yaml:"links"`
	Levels []hierarchy.Info `json:"levels" yaml:"levels"`
}

// New returns an empty Graph describing the given levels.
func New(levels []hierarchy.Info) *Graph {
	infos := make([]hierarchy.Info, len(levels))
	copy(infos, levels)

	return &Graph{
		Nodes:  []Node{},
		Links:  []Link{},
		Levels: infos,
	}
}
