// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"time"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
	"github.com/katalvlaran/energyflow/hierarchy"
)

// ErrPanic wraps a value recovered from a failing stage.
var ErrPanic = errors.New("engine: rebuild panicked")

// Status classifies the outcome of a rebuild.
type Status uint8

const (
	// StatusOK means the graph carries data.
	StatusOK Status = iota
	// StatusLoading means some level's records are not delivered yet.
	StatusLoading
	// StatusMalformed means the level configuration was rejected.
	StatusMalformed
	// StatusNoRecords means a valid period produced no node.
	StatusNoRecords
	// StatusAllZero means every built node has a zero value.
	StatusAllZero
	// StatusFailed means a stage panicked.
	StatusFailed
)

var statusNames = [...]string{
	StatusOK:        "ok",
	StatusLoading:   "loading",
	StatusMalformed: "malformed",
	StatusNoRecords: "no-records",
	StatusAllZero:   "all-zero",
	StatusFailed:    "failed",
}

// String returns a lowercase label for s.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Period is the optional reporting window.
type Period struct {
	Start hierarchy.Attr[time.Time]
	End   hierarchy.Attr[time.Time]
}

// Bounds returns both instants when the period is valid.
func (p Period) Bounds() (start, end time.Time, ok bool) {
	start, okS := p.Start.Get()
	end, okE := p.End.Get()
	if !okS || !okE || start.IsZero() || end.IsZero() || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

// Valid reports whether both bounds are delivered, set and ordered.
func (p Period) Valid() bool {
	_, _, ok := p.Bounds()

	return ok
}

// Input is the complete snapshot one rebuild depends on.
type Input struct {
	// Levels is the hierarchy in any order.
	Levels []hierarchy.LevelConfig

	// Category is the selected energy category; All disables filtering.
	Category category.Category

	// Period is the reporting window the records were loaded for.
	Period Period

	// Selected is the detail node ID, or "" for the overview.
	Selected string
}

// Output is what one rebuild publishes.
type Output struct {
	// Graph is the scoped graph. It is nil while loading or after a failure.
	Graph *flowgraph.Graph `json:"graph" yaml:"graph"`

	// Selected is the node the detail view shows, "" for the overview.
	Selected string `json:"selected,omitempty" yaml:"selected,omitempty"`

	// HasDataForPeriod is false when the period produced no record or only
	// zero values.
	HasDataForPeriod bool `json:"hasDataForPeriod" yaml:"hasDataForPeriod"`

	// NonEmpty reports whether Graph has at least one node.
	NonEmpty bool `json:"nonEmpty" yaml:"nonEmpty"`

	// Status is the internal cause behind the flags.
	Status Status `json:"status" yaml:"status"`

	// Err carries the configuration error or recovered panic.
	Err error `json:"-" yaml:"-"`

	// RebuildID correlates the output with its log records.
	RebuildID string `json:"rebuildId" yaml:"rebuildId"`
}
