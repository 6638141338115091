// SPDX-License-Identifier: MIT

package hierarchy

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for level ordering.
var (
	// ErrNoLevels indicates an empty hierarchy configuration.
	ErrNoLevels = errors.New("hierarchy: no levels configured")

	// ErrEmptyLevelID indicates a level without an identifier.
	ErrEmptyLevelID = errors.New("hierarchy: level ID is empty")

	// ErrDuplicateLevelID indicates two levels sharing one identifier.
	ErrDuplicateLevelID = errors.New("hierarchy: duplicate level ID")

	// ErrNegativeOrder indicates a level order below zero.
	ErrNegativeOrder = errors.New("hierarchy: negative level order")

	// ErrDuplicateOrder indicates two levels sharing one order.
	ErrDuplicateOrder = errors.New("hierarchy: duplicate level order")

	// ErrOrderGap indicates level orders that are not dense from 0.
	ErrOrderGap = errors.New("hierarchy: level orders are not contiguous from 0")
)

// Levels is a validated hierarchy sorted ascending by Order, so that
// Levels[i].Order == i for every i.
type Levels []LevelConfig

// Sort validates levels and returns a copy sorted ascending by Order.
// The input slice is not modified.
//
// Validation, in this priority:
//   - at least one level;
//   - every ID non-empty and unique;
//   - every Order non-negative and unique;
//   - orders dense from 0 (0, 1, ..., n-1).
//
// Complexity: O(n log n).
func Sort(levels []LevelConfig) (Levels, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	ids := make(map[string]struct{}, len(levels))
	orders := make(map[int]string, len(levels))
	for _, lc := range levels {
		if lc.ID == "" {
			return nil, fmt.Errorf("%w (level %q)", ErrEmptyLevelID, lc.Name)
		}
		if _, dup := ids[lc.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLevelID, lc.ID)
		}
		ids[lc.ID] = struct{}{}

		if lc.Order < 0 {
			return nil, fmt.Errorf("%w: level %q has order %d", ErrNegativeOrder, lc.ID, lc.Order)
		}
		if other, dup := orders[lc.Order]; dup {
			return nil, fmt.Errorf("%w: %d used by %q and %q", ErrDuplicateOrder, lc.Order, other, lc.ID)
		}
		orders[lc.Order] = lc.ID
	}
	// n distinct non-negative orders are dense iff every order is below n.
	for order, id := range orders {
		if order >= len(levels) {
			return nil, fmt.Errorf("%w: level %q has order %d with %d levels", ErrOrderGap, id, order, len(levels))
		}
	}

	sorted := make(Levels, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	return sorted, nil
}

// Validate reports the first configuration error Sort would return.
func Validate(levels []LevelConfig) error {
	_, err := Sort(levels)

	return err
}

// PendingLevels returns the IDs of levels whose record list is not yet
// available, in input order.
func PendingLevels(levels []LevelConfig) []string {
	var ids []string
	for _, lc := range levels {
		if lc.Status != Available {
			ids = append(ids, lc.ID)
		}
	}

	return ids
}

// Root returns the level of order 0.
func (ls Levels) Root() LevelConfig { return ls[0] }

// Leaf returns the level with the highest order.
func (ls Levels) Leaf() LevelConfig { return ls[len(ls)-1] }

// LeafOrder returns the highest order, or -1 for an empty hierarchy.
func (ls Levels) LeafOrder() int { return len(ls) - 1 }

// At returns the level of the given order.
func (ls Levels) At(order int) (LevelConfig, bool) {
	if order < 0 || order >= len(ls) {
		return LevelConfig{}, false
	}

	return ls[order], true
}

// ByID returns the level with the given identifier.
func (ls Levels) ByID(id string) (LevelConfig, bool) {
	for _, lc := range ls {
		if lc.ID == id {
			return lc, true
		}
	}

	return LevelConfig{}, false
}

// Infos returns the (order, name) pairs of the hierarchy in order.
func (ls Levels) Infos() []Info {
	out := make([]Info, len(ls))
	for i, lc := range ls {
		out[i] = Info{Level: lc.Order, Name: lc.Name}
	}

	return out
}

// Info is the (order, display name) summary of one level.
type Info struct {
	Level int    `json:"level" yaml:"level"`
	Name  string `json:"name" yaml:"name"`
}
