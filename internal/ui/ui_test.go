// SPDX-License-Identifier: MIT

package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	SetColor(false)
	var buf bytes.Buffer

	Table(&buf, []string{"ID", "VALUE"}, [][]string{
		{"plant_P1", "26"},
		{"machine_Pompe à eau", "4.5"},
	})
	assert.Equal(t, ""+
		"  ID                   VALUE\n"+
		"  ───────────────────  ─────\n"+
		"  plant_P1             26\n"+
		"  machine_Pompe à eau  4.5\n", buf.String())
}

func TestTable_NoRows(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"ID"}, nil)
	assert.Empty(t, buf.String())
}

func TestIcons(t *testing.T) {
	SetColor(false)
	assert.Equal(t, "✓", StatusIcon(true))
	assert.Equal(t, "✗", StatusIcon(false))
	assert.Equal(t, "⚠", WarnIcon())
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "26", Number(26))
	assert.Equal(t, "7.5", Number(7.5))
	assert.Equal(t, "0", Number(0))
}
