// SPDX-License-Identifier: MIT

package category

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownCategory indicates a category code outside the closed set.
var ErrUnknownCategory = errors.New("category: unknown category")

// Category is one member of the closed energy category enumeration.
// The zero value is All.
type Category uint8

const (
	All  Category = iota // no filtering
	Elec                 // electricity
	Gaz                  // gas
	Eau                  // water
	Air                  // compressed air
)

// variant holds the per-category data resolved once at parse time.
// code and keywords are stored in Normalize form.
type variant struct {
	code     string
	unit     string
	keywords []string // name fragments used by Infer; empty for All
}

var variants = [...]variant{
	All:  {code: "all", unit: "unit"},
	Elec: {code: "elec", unit: "kWh", keywords: []string{"elec", "électr", "electr"}},
	Gaz:  {code: "gaz", unit: "m³", keywords: []string{"gaz", "gas"}},
	Eau:  {code: "eau", unit: "m³", keywords: []string{"eau", "water"}},
	Air:  {code: "air", unit: "m³", keywords: []string{"air", "compress"}},
}

// inferOrder is the priority in which keyword groups are tried by Infer.
var inferOrder = [...]Category{Elec, Gaz, Eau, Air}

// Concrete returns every category except All, in declaration order.
func Concrete() []Category {
	return []Category{Elec, Gaz, Eau, Air}
}

// Parse resolves a category code (case-insensitive, surrounding spaces
// ignored). The empty string parses as All.
func Parse(s string) (Category, error) {
	code := Normalize(s)
	if code == "" {
		return All, nil
	}
	for c := range variants {
		if variants[c].code == code {
			return Category(c), nil
		}
	}

	return All, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// String returns the canonical code ("all", "elec", ...).
func (c Category) String() string {
	if int(c) >= len(variants) {
		return fmt.Sprintf("category(%d)", uint8(c))
	}

	return variants[c].code
}

// Unit returns the measurement unit label values of this category are
// authored in.
func (c Category) Unit() string {
	if int(c) >= len(variants) {
		return ""
	}

	return variants[c].unit
}

// IsAll reports whether c disables filtering.
func (c Category) IsAll() bool { return c == All }

// Matches reports whether a node tag qualifies for c. All matches every tag,
// including the empty one. Concrete categories require case-folded equality;
// a tag already in Normalize form, as the builder stores it, is compared
// without folding.
func (c Category) Matches(tag string) bool {
	if c == All {
		return true
	}
	if int(c) >= len(variants) {
		return false
	}
	code := variants[c].code

	return tag == code || Normalize(tag) == code
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// Normalize returns the comparison form of a tag: trimmed and case folded.
func Normalize(tag string) string {
	return cases.Fold().String(strings.TrimSpace(tag))
}

// Equal reports whether two tags are equal under Normalize.
// Two empty tags are not considered equal: absence never matches absence.
func Equal(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}

	return na == nb
}

// Infer guesses a category from a node name using the keyword vocabulary.
// Groups are tried in the order elec, gaz, eau, air and the first hit wins.
// It returns (All, false) when no keyword occurs in the name.
func Infer(name string) (Category, bool) {
	folded := Normalize(name)
	if folded == "" {
		return All, false
	}
	for _, c := range inferOrder {
		for _, kw := range variants[c].keywords {
			if strings.Contains(folded, kw) {
				return c, true
			}
		}
	}

	return All, false
}
