// SPDX-License-Identifier: MIT

package snapshot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/engine"
	"github.com/katalvlaran/energyflow/hierarchy"
	"github.com/katalvlaran/energyflow/pricing"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("snapshot: unknown file format")

	// ErrBadStatus indicates a level status other than available, loading or
	// unavailable.
	ErrBadStatus = errors.New("snapshot: invalid level status")

	// ErrBadParent indicates a parent key naming no level.
	ErrBadParent = errors.New("snapshot: parent key names no level")
)

// Snapshot is a decoded document.
type Snapshot struct {
	Input  engine.Input
	Prices pricing.Table
}

type document struct {
	Category string     `yaml:"category" toml:"category"`
	Selected string     `yaml:"selected" toml:"selected"`
	Period   periodDoc  `yaml:"period" toml:"period"`
	Currency string     `yaml:"currency" toml:"currency"`
	Levels   []levelDoc `yaml:"levels" toml:"levels"`
	Prices   []priceDoc `yaml:"prices" toml:"prices"`
}

type periodDoc struct {
	Start *time.Time `yaml:"start" toml:"start"`
	End   *time.Time `yaml:"end" toml:"end"`
}

type levelDoc struct {
	ID      string      `yaml:"id" toml:"id"`
	Name    string      `yaml:"name" toml:"name"`
	Order   int         `yaml:"order" toml:"order"`
	Status  string      `yaml:"status" toml:"status"`
	Color   string      `yaml:"color" toml:"color"`
	Records []recordDoc `yaml:"records" toml:"records"`
}

type recordDoc struct {
	Name     *string           `yaml:"name" toml:"name"`
	Value    any               `yaml:"value" toml:"value"`
	Category *string           `yaml:"category" toml:"category"`
	Parents  map[string]string `yaml:"parents" toml:"parents"`
}

type priceDoc struct {
	Start *time.Time `yaml:"start" toml:"start"`
	End   *time.Time `yaml:"end" toml:"end"`
	Elec  *float64   `yaml:"elec" toml:"elec"`
	Gaz   *float64   `yaml:"gaz" toml:"gaz"`
	Eau   *float64   `yaml:"eau" toml:"eau"`
	Air   *float64   `yaml:"air" toml:"air"`
}

// DecodeYAML reads a YAML snapshot.
func DecodeYAML(r io.Reader) (*Snapshot, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("snapshot: decode yaml: %w", err)
	}

	return doc.snapshot()
}

// DecodeTOML reads a TOML snapshot.
func DecodeTOML(r io.Reader) (*Snapshot, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("snapshot: decode toml: %w", err)
	}

	return doc.snapshot()
}

// Load decodes the file at path, choosing the format by extension.
func Load(path string) (*Snapshot, error) {
	var decode func(io.Reader) (*Snapshot, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".toml":
		decode = DecodeTOML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	return decode(f)
}

func (d document) snapshot() (*Snapshot, error) {
	cat, err := category.Parse(d.Category)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	s := &Snapshot{
		Input: engine.Input{
			Category: cat,
			Selected: d.Selected,
			Period:   engine.Period{Start: timeAttr(d.Period.Start), End: timeAttr(d.Period.End)},
		},
		Prices: pricing.Table{Currency: d.Currency},
	}

	orders := make(map[string]int, len(d.Levels))
	for _, ld := range d.Levels {
		orders[ld.ID] = ld.Order
	}
	for _, ld := range d.Levels {
		lc, err := ld.level(orders)
		if err != nil {
			return nil, err
		}
		s.Input.Levels = append(s.Input.Levels, lc)
	}

	for _, pd := range d.Prices {
		s.Prices.Rows = append(s.Prices.Rows, pricing.Row{
			Start: timeAttr(pd.Start),
			End:   timeAttr(pd.End),
			Elec:  floatAttr(pd.Elec),
			Gaz:   floatAttr(pd.Gaz),
			Eau:   floatAttr(pd.Eau),
			Air:   floatAttr(pd.Air),
		})
	}

	return s, nil
}

func (ld levelDoc) level(orders map[string]int) (hierarchy.LevelConfig, error) {
	status, err := parseStatus(ld.Status)
	if err != nil {
		return hierarchy.LevelConfig{}, fmt.Errorf("%w: level %q: %q", ErrBadStatus, ld.ID, ld.Status)
	}
	lc := hierarchy.LevelConfig{
		ID:      ld.ID,
		Name:    ld.Name,
		Order:   ld.Order,
		Status:  status,
		Color:   ld.Color,
		Records: make([]hierarchy.Record, 0, len(ld.Records)),
	}
	if lc.Name == "" {
		lc.Name = ld.ID
	}

	for _, rd := range ld.Records {
		r := hierarchy.Record{
			Name:     stringAttr(rd.Name),
			Value:    valueAttr(rd.Value),
			Category: stringAttr(rd.Category),
			Parents:  make(map[int]hierarchy.Attr[string], len(rd.Parents)),
		}
		for key, name := range rd.Parents {
			order, ok := orders[key]
			if !ok {
				n, err := strconv.Atoi(key)
				if err != nil {
					return hierarchy.LevelConfig{}, fmt.Errorf("%w: %q in level %q", ErrBadParent, key, ld.ID)
				}
				order = n
			}
			r.Parents[order] = hierarchy.Some(name)
		}
		lc.Records = append(lc.Records, r)
	}

	return lc, nil
}

func parseStatus(s string) (hierarchy.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "available":
		return hierarchy.Available, nil
	case "loading":
		return hierarchy.Loading, nil
	case "unavailable":
		return hierarchy.Unavailable, nil
	default:
		return hierarchy.Unavailable, ErrBadStatus
	}
}

func stringAttr(p *string) hierarchy.Attr[string] {
	if p == nil {
		return hierarchy.Attr[string]{}
	}

	return hierarchy.Some(*p)
}

func floatAttr(p *float64) hierarchy.Attr[float64] {
	if p == nil {
		return hierarchy.Attr[float64]{}
	}

	return hierarchy.Some(*p)
}

func timeAttr(p *time.Time) hierarchy.Attr[time.Time] {
	if p == nil {
		return hierarchy.Attr[time.Time]{}
	}

	return hierarchy.Some(*p)
}

// valueAttr converts a decoded scalar. Both decoders yield int, int64,
// float64, string or nil for scalars.
func valueAttr(v any) hierarchy.Attr[float64] {
	switch x := v.(type) {
	case nil:
		return hierarchy.Attr[float64]{}
	case int:
		return hierarchy.Some(float64(x))
	case int64:
		return hierarchy.Some(float64(x))
	case float64:
		return hierarchy.Some(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return hierarchy.Some(math.NaN())
		}
		return hierarchy.Some(f)
	default:
		return hierarchy.Some(math.NaN())
	}
}
