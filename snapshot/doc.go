// Package snapshot decodes hierarchy snapshots, the offline form of what the
// data-binding layer delivers, from YAML or TOML.
//
// A snapshot document looks like:
//
//	category: elec
//	selected: workshop_W1
//	period: {start: 2024-01-01T00:00:00Z, end: 2024-02-01T00:00:00Z}
//	currency: EUR
//	levels:
//	  - id: plant
//	    name: Plant
//	    order: 0
//	    records:
//	      - {name: P1, value: 26}
//	  - id: machine
//	    name: Machine
//	    order: 1
//	    status: loading
//	    records:
//	      - {name: M1, value: 10, category: elec, parents: {plant: P1}}
//	prices:
//	  - {start: 2024-01-01T00:00:00Z, end: 2024-12-31T00:00:00Z, elec: 0.21}
//
// Decoding maps absence onto the attribute model: a missing or null name,
// value, category or parent is unavailable; a value that is not a number is
// kept as NaN so the builder skips it. Parent keys are a level ID or a
// level order. A level without status is available.
package snapshot
