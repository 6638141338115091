// SPDX-License-Identifier: MIT

package hierarchy

import "strings"

// Status is the load state of an attribute or of a level's record list.
type Status uint8

const (
	// Unavailable means the attribute is not configured or has no value.
	Unavailable Status = iota
	// Loading means the data source has not delivered the value yet.
	Loading
	// Available means Value holds a delivered value.
	Available
)

// String returns a lowercase label for s.
func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case Loading:
		return "loading"
	default:
		return "unavailable"
	}
}

// Attr is a record attribute together with its load state.
// The zero value is an unavailable attribute.
type Attr[T any] struct {
	Value  T
	Status Status
}

// Some returns an available attribute holding v.
func Some[T any](v T) Attr[T] {
	return Attr[T]{Value: v, Status: Available}
}

// Pending returns an attribute that is still loading.
func Pending[T any]() Attr[T] {
	return Attr[T]{Status: Loading}
}

// Get returns the value and whether it is available.
func (a Attr[T]) Get() (T, bool) {
	return a.Value, a.Status == Available
}

// Available reports whether the attribute carries a delivered value.
func (a Attr[T]) Available() bool { return a.Status == Available }

// noParentName is the placeholder some sources write instead of leaving a
// parent reference blank.
const noParentName = "empty"

// Record is one row of a level's record set.
type Record struct {
	// Name identifies the entity within its level. Records sharing a name are
	// merged into one node.
	Name Attr[string]

	// Value is the measured quantity. NaN counts as non-numeric.
	Value Attr[float64]

	// Category is the optional explicit energy tag.
	Category Attr[string]

	// Parents maps an ancestor level order to the ancestor's name.
	// Leaf records use the penultimate order and 0 (root); intermediate
	// records use their immediate parent order.
	Parents map[int]Attr[string]
}

// Parent returns the name of the ancestor at the given level order.
// It reports false when the reference is missing, not yet loaded, blank, or
// the "empty" placeholder.
func (r Record) Parent(order int) (string, bool) {
	a, ok := r.Parents[order]
	if !ok {
		return "", false
	}
	name, ok := a.Get()
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.EqualFold(trimmed, noParentName) {
		return "", false
	}

	return name, true
}

// ValueSink receives a value reported back to the data-binding layer.
type ValueSink interface {
	SetValue(v string) error
}

// Action is an invokable callback owned by the data-binding layer.
type Action interface {
	CanExecute() bool
	Execute() error
}

// Binding groups the click callbacks configured for one level.
// Every field is optional.
type Binding struct {
	Clicked         ValueSink // receives the clicked node's name
	ClickedCategory ValueSink // receives the clicked node's category tag
	OnClick         Action    // executed after the values are set
}

// LevelConfig describes one hierarchy level and its records.
type LevelConfig struct {
	// ID prefixes every node id built from this level ("<ID>_<name>").
	ID string

	// Name is the display name of the level.
	Name string

	// Order is the rank of the level; 0 is the root.
	Order int

	// Status is the load state of the record list as a whole.
	Status Status

	// Records holds the level's rows in delivery order.
	Records []Record

	// Color is opaque to the engine and forwarded to presentation.
	Color string

	// Binding holds the optional click callbacks of this level.
	Binding *Binding
}
