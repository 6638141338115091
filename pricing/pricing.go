// SPDX-License-Identifier: MIT

// Package pricing converts consumption into cost using period-bound unit
// prices.
//
// A Table holds price rows; each row has a validity window and one unit
// price per concrete energy category. Lookup returns the first row, in table
// order, whose window covers the whole reporting period and which carries a
// usable price for the category. The category's accessor is resolved once
// per lookup, never per row.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/flowgraph"
	"github.com/katalvlaran/energyflow/hierarchy"
)

// Sentinel errors.
var (
	// ErrNoPeriod indicates a lookup without a complete, ordered period.
	ErrNoPeriod = errors.New("pricing: reporting period is not set")

	// ErrNoPriceForPeriod indicates that no row covers the whole period with a
	// usable price.
	ErrNoPriceForPeriod = errors.New("pricing: no price covers the period")

	// ErrUnpriced indicates a category without prices (All).
	ErrUnpriced = errors.New("pricing: category has no price")
)

// Row is one price configuration entry.
type Row struct {
	Start hierarchy.Attr[time.Time]
	End   hierarchy.Attr[time.Time]

	Elec hierarchy.Attr[float64]
	Gaz  hierarchy.Attr[float64]
	Eau  hierarchy.Attr[float64]
	Air  hierarchy.Attr[float64]
}

// Table is an ordered set of price rows in one currency.
type Table struct {
	Currency string
	Rows     []Row
}

// Price is a resolved unit price.
type Price struct {
	Category category.Category
	Unit     float64 // currency per category unit
	Currency string
	Start    time.Time
	End      time.Time
}

// Cost returns value priced at p.
func (p Price) Cost(value float64) float64 { return value * p.Unit }

// accessor returns the field of a Row holding the price of c.
func accessor(c category.Category) (func(Row) hierarchy.Attr[float64], error) {
	switch c {
	case category.Elec:
		return func(r Row) hierarchy.Attr[float64] { return r.Elec }, nil
	case category.Gaz:
		return func(r Row) hierarchy.Attr[float64] { return r.Gaz }, nil
	case category.Eau:
		return func(r Row) hierarchy.Attr[float64] { return r.Eau }, nil
	case category.Air:
		return func(r Row) hierarchy.Attr[float64] { return r.Air }, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnpriced, c)
	}
}

// Lookup resolves the unit price of cat over [start, end].
//
// Errors:
//   - ErrUnpriced for category.All.
//   - ErrNoPeriod if a bound is zero or end precedes start.
//   - ErrNoPriceForPeriod if no row qualifies.
func (t Table) Lookup(cat category.Category, start, end time.Time) (Price, error) {
	get, err := accessor(cat)
	if err != nil {
		return Price{}, err
	}
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return Price{}, ErrNoPeriod
	}

	for _, r := range t.Rows {
		from, okF := r.Start.Get()
		to, okT := r.End.Get()
		if !okF || !okT || from.After(start) || to.Before(end) {
			continue
		}
		unit, ok := get(r).Get()
		if !ok || unit == 0 || math.IsNaN(unit) {
			continue
		}

		return Price{Category: cat, Unit: unit, Currency: t.Currency, Start: from, End: to}, nil
	}

	return Price{}, fmt.Errorf("%w: %s from %s to %s", ErrNoPriceForPeriod,
		cat, start.Format(time.DateOnly), end.Format(time.DateOnly))
}

// NodeCost is the priced value of one node.
type NodeCost struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Cost  float64 `json:"cost" yaml:"cost"`
}

// Costs prices every node of g at p, in node order.
func Costs(g *flowgraph.Graph, p Price) []NodeCost {
	if g == nil {
		return nil
	}
	out := make([]NodeCost, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = NodeCost{ID: n.ID, Name: n.Name, Value: n.Value, Cost: p.Cost(n.Value)}
	}

	return out
}
