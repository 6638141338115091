// SPDX-License-Identifier: MIT

// Package fixture builds small plant/workshop/machine hierarchies for tests.
package fixture

import "github.com/katalvlaran/energyflow/hierarchy"

// Level IDs used by every fixture.
const (
	Plant    = "plant"
	Workshop = "workshop"
	Machine  = "machine"
)

// Rec returns an available record. Parents maps level orders to names.
func Rec(name string, value float64, cat string, parents map[int]string) hierarchy.Record {
	r := hierarchy.Record{
		Name:    hierarchy.Some(name),
		Value:   hierarchy.Some(value),
		Parents: make(map[int]hierarchy.Attr[string], len(parents)),
	}
	if cat != "" {
		r.Category = hierarchy.Some(cat)
	}
	for order, p := range parents {
		r.Parents[order] = hierarchy.Some(p)
	}

	return r
}

// Level returns an available level.
func Level(id string, order int, records ...hierarchy.Record) hierarchy.LevelConfig {
	return hierarchy.LevelConfig{
		ID:      id,
		Name:    id,
		Order:   order,
		Status:  hierarchy.Available,
		Records: records,
	}
}

// MustSort sorts levels and panics on a configuration error.
func MustSort(levels ...hierarchy.LevelConfig) hierarchy.Levels {
	ls, err := hierarchy.Sort(levels)
	if err != nil {
		panic(err)
	}

	return ls
}

// TwoLevel is plant P1 with machines M1 (10, elec) and M2 (5, gaz).
func TwoLevel() []hierarchy.LevelConfig {
	return []hierarchy.LevelConfig{
		Level(Plant, 0, Rec("P1", 100, "", nil)),
		Level(Machine, 1,
			Rec("M1", 10, "elec", map[int]string{0: "P1"}),
			Rec("M2", 5, "gaz", map[int]string{0: "P1"}),
		),
	}
}

// Factory is a three-level hierarchy:
//
//	P1 ─┬─ W1 ─┬─ M1 (elec 10)
//	    │      └─ M2 (gaz 5)
//	    ├─ W2 ─── M3 (elec 4)
//	    └───────── M4 (elec 7, no workshop)
func Factory() []hierarchy.LevelConfig {
	return []hierarchy.LevelConfig{
		Level(Plant, 0, Rec("P1", 26, "", nil)),
		Level(Workshop, 1,
			Rec("W1", 15, "", map[int]string{0: "P1"}),
			Rec("W2", 4, "", map[int]string{0: "P1"}),
		),
		Level(Machine, 2,
			Rec("M1", 10, "elec", map[int]string{1: "W1", 0: "P1"}),
			Rec("M2", 5, "gaz", map[int]string{1: "W1", 0: "P1"}),
			Rec("M3", 4, "elec", map[int]string{1: "W2", 0: "P1"}),
			Rec("M4", 7, "elec", map[int]string{0: "P1"}),
		),
	}
}
