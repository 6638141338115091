// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/energyflow/category"
	"github.com/katalvlaran/energyflow/config"
	"github.com/katalvlaran/energyflow/engine"
	"github.com/katalvlaran/energyflow/hierarchy"
	"github.com/katalvlaran/energyflow/snapshot"
)

const plantFile = "testdata/plant.yaml"

// run executes the command tree with an isolated config directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestBuildTable(t *testing.T) {
	out, _, err := run(t, "build", "-f", plantFile)
	require.NoError(t, err)

	assert.Contains(t, out, "flow graph")
	assert.Contains(t, out, "Status:   ok")
	for _, id := range []string{"plant_P1", "workshop_W1", "workshop_W2", "machine_M4"} {
		assert.Contains(t, out, id)
	}
	assert.NotContains(t, out, "machine_M1", "machines under a workshop stay out of the overview")
}

func TestBuildJSONDetail(t *testing.T) {
	out, _, err := run(t, "build", "-f", plantFile, "--select", "workshop_W1", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Status   string `json:"status"`
		Selected string `json:"selected"`
		Graph    struct {
			Nodes []struct {
				ID    string  `json:"id"`
				Value float64 `json:"value"`
			} `json:"nodes"`
		} `json:"graph"`
		RebuildID string `json:"rebuildId"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "workshop_W1", got.Selected)
	assert.NotEmpty(t, got.RebuildID)
	require.Len(t, got.Graph.Nodes, 3)
	assert.Equal(t, "workshop_W1", got.Graph.Nodes[0].ID)
	assert.Equal(t, 15.0, got.Graph.Nodes[0].Value)
}

func TestBuildYAMLCategory(t *testing.T) {
	out, _, err := run(t, "build", "-f", plantFile, "-c", "elec", "-o", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "ok", got["status"])

	nodes := got["graph"].(map[string]any)["nodes"].([]any)
	root := nodes[0].(map[string]any)
	assert.Equal(t, "plant_P1", root["id"])
	assert.Equal(t, 21, root["value"])
}

func TestBuildNoRecords(t *testing.T) {
	out, _, err := run(t, "build", "-f", "testdata/empty.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "no-records")
	assert.Contains(t, out, "No data (Plant)")
	assert.Contains(t, out, "No data (Machine)")
}

func TestBuildConfigOutputFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := config.Default()
	cfg.Output.Format = config.FormatJSON
	require.NoError(t, config.Save(cfg))

	var out bytes.Buffer
	root := NewRootCmd(&out, io.Discard)
	root.SetArgs([]string{"build", "-f", plantFile})
	require.NoError(t, root.Execute())

	assert.True(t, json.Valid(out.Bytes()), "config output format applies without --output")
}

func TestLevels(t *testing.T) {
	out, _, err := run(t, "levels", "-f", plantFile)
	require.NoError(t, err)

	assert.Contains(t, out, "Order")
	assert.Regexp(t, `0\s+plant\s+Plant\s+available\s+1`, out)
	assert.Regexp(t, `2\s+machine\s+Machine\s+available\s+4`, out)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "-f", plantFile)
	require.NoError(t, err)
	assert.Contains(t, out, "levels: 3, sorted and dense")
	assert.Contains(t, out, "graph: 7 nodes")

	out, _, err = run(t, "validate", "-f", "testdata/duplicate.yaml")
	require.ErrorIs(t, err, hierarchy.ErrDuplicateOrder)
	assert.Contains(t, out, "✗")
}

func TestCost(t *testing.T) {
	out, _, err := run(t, "cost", "-f", plantFile, "-c", "elec")
	require.NoError(t, err)
	assert.Contains(t, out, "elec at 0.2 EUR")
	assert.Contains(t, out, "4.20 EUR")

	out, _, err = run(t, "cost", "-f", plantFile, "-c", "gaz", "-o", "json")
	require.NoError(t, err)

	var rep costReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "gaz", rep.Category)
	assert.Equal(t, "EUR", rep.Currency)
	require.NotEmpty(t, rep.Nodes)
	assert.Equal(t, "plant_P1", rep.Nodes[0].ID)
	assert.InDelta(t, 0.4, rep.Nodes[0].Cost, 1e-9)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing file flag", []string{"build"}, errNoFile},
		{"unknown category", []string{"build", "-f", plantFile, "-c", "steam"}, category.ErrUnknownCategory},
		{"unknown output", []string{"build", "-f", plantFile, "-o", "xml"}, config.ErrInvalid},
		{"unknown extension", []string{"levels", "-f", "testdata/plant.json"}, snapshot.ErrUnknownFormat},
		{"bad log level", []string{"--log-level", "loud", "levels", "-f", plantFile}, config.ErrInvalid},
		{"duplicate orders", []string{"levels", "-f", "testdata/duplicate.yaml"}, hierarchy.ErrDuplicateOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "--log-level", "debug", "--log-format", "json", "build", "-f", plantFile)
	require.NoError(t, err)

	assert.Contains(t, errOut, `"msg":"rebuild done"`)
	assert.Contains(t, errOut, `"rebuild_id":`)
}

func newTestModel(t *testing.T) browseModel {
	t.Helper()
	s, err := snapshot.Load(plantFile)
	require.NoError(t, err)
	eng := engine.New(engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	return newBrowseModel(eng, s.Input)
}

func press(m browseModel, msgs ...tea.KeyMsg) browseModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(browseModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCat   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}
)

func TestBrowseOpenAndClose(t *testing.T) {
	m := newTestModel(t)
	require.Len(t, m.nodes(), 4)
	assert.Equal(t, []string{"Overview"}, m.nav.Breadcrumb())

	m = press(m, keyDown, keyEnter)
	assert.Equal(t, "workshop_W1", m.out.Selected)
	assert.Equal(t, []string{"Overview", "W1"}, m.nav.Breadcrumb())
	require.Len(t, m.nodes(), 3)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "Overview › W1")

	// enter on the selected node closes the detail view
	m = press(m, keyEnter)
	assert.Empty(t, m.out.Selected)
	assert.Len(t, m.nodes(), 4)

	m = press(m, keyDown, keyEnter, keyEsc)
	assert.Empty(t, m.nav.Selected())
	assert.Empty(t, m.out.Selected)
}

func TestBrowseRootIsNotSelectable(t *testing.T) {
	m := press(newTestModel(t), keyEnter)
	assert.Empty(t, m.out.Selected)
	assert.Len(t, m.nodes(), 4)
}

func TestBrowseCursorBounds(t *testing.T) {
	m := press(newTestModel(t), keyUp)
	assert.Equal(t, 0, m.cursor)

	m = press(m, keyDown, keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, 3, m.cursor)
}

func TestBrowseCategoryCycle(t *testing.T) {
	m := press(newTestModel(t), keyCat)
	assert.Equal(t, category.Elec, m.input.Category)
	assert.Equal(t, 21.0, m.nodes()[0].Value)
	assert.Contains(t, m.View(), "category elec")

	m = press(m, keyCat, keyCat, keyCat, keyCat)
	assert.Equal(t, category.All, m.input.Category)
	assert.Equal(t, 19.0, m.nodes()[0].Value)
}

func TestBrowseInitialSelection(t *testing.T) {
	s, err := snapshot.Load(plantFile)
	require.NoError(t, err)
	s.Input.Selected = "workshop_W2"

	m := newBrowseModel(engine.New(engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))), s.Input)
	assert.Equal(t, "workshop_W2", m.out.Selected)
	assert.Equal(t, []string{"Overview", "W2"}, m.nav.Breadcrumb())
}

func TestBrowseQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}
