// SPDX-License-Identifier: MIT
// Package: lsgen/casefile
//
// csv_test.go — schema shape, section ordering and determinism of WriteCSV.

package casefile_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgen/casefile"
	"github.com/katalvlaran/lsgen/demandgen"
)

func testCase() *casefile.Case {
	c := casefile.NewUniform(2, 2, 3, 1.0, 20.0, 0.5, 1.0, 10.0)
	c.DefaultCapacity = 1440
	c.DefaultInventory = 0
	c.CapacityOverrides = []casefile.CapacityOverride{{Node: 1, Period: 2, Value: 720}}
	c.Demand = demandgen.DemandSet{
		{Node: 0, Item: 1, Period: 0, Amount: 12.5},
		{Node: 1, Item: 0, Period: 2, Amount: 40},
	}

	return c
}

func readRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestWriteCSV_HeaderAndRowCount(t *testing.T) {
	c := testCase()

	var buf bytes.Buffer
	require.NoError(t, c.WriteCSV(&buf))

	rows := readRows(t, &buf)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"section", "key", "u", "v", "i", "t", "value"}, rows[0])
	assert.Equal(t, c.RowCount(), len(rows)-1)
	for _, row := range rows {
		assert.Len(t, row, 7)
	}
}

// Sections must appear as contiguous blocks in schema order; a reader that
// streams section by section depends on it.
func TestWriteCSV_SectionOrder(t *testing.T) {
	c := testCase()
	c.EnableTransfer = true
	c.GenerateTransferCosts(0.5, 3.0, 7)
	c.GenerateBigM(1.0)

	var buf bytes.Buffer
	require.NoError(t, c.WriteCSV(&buf))

	want := []string{"meta", "cost", "cap_usage", "capacity", "init", "demand", "transfer", "bigM", "solver"}
	var got []string
	for _, row := range readRows(t, &buf)[1:] {
		if len(got) == 0 || got[len(got)-1] != row[0] {
			got = append(got, row[0])
		}
	}
	assert.Equal(t, want, got)
}

func TestWriteCSV_FieldShapes(t *testing.T) {
	c := testCase()

	var buf bytes.Buffer
	require.NoError(t, c.WriteCSV(&buf))

	var meta, demand, override [][]string
	for _, row := range readRows(t, &buf)[1:] {
		switch {
		case row[0] == "meta":
			meta = append(meta, row)
		case row[0] == "demand":
			demand = append(demand, row)
		case row[0] == "capacity" && row[6] == "720":
			override = append(override, row)
		}
	}

	// Meta rows carry no indices.
	require.Len(t, meta, 4)
	assert.Equal(t, []string{"meta", "U", "", "", "", "", "2"}, meta[0])
	assert.Equal(t, []string{"meta", "enable_transfer", "", "", "", "", "0"}, meta[3])

	// Demand rows fill u, i, t and leave v empty.
	require.Len(t, demand, 2)
	assert.Equal(t, []string{"demand", "Demand", "0", "", "1", "0", "12.5"}, demand[0])
	assert.Equal(t, []string{"demand", "Demand", "1", "", "0", "2", "40"}, demand[1])

	// The override row follows the full default table.
	require.Len(t, override, 1)
	assert.Equal(t, []string{"capacity", "C", "1", "", "", "2", "720"}, override[0])
}

func TestWriteCSV_Deterministic(t *testing.T) {
	c := testCase()

	var a, b bytes.Buffer
	require.NoError(t, c.WriteCSV(&a))
	require.NoError(t, c.WriteCSV(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriteCSV_RejectsInvalid(t *testing.T) {
	c := testCase()
	c.Nodes = 0

	var buf bytes.Buffer
	err := c.WriteCSV(&buf)
	assert.ErrorIs(t, err, casefile.ErrBadDimension)
	assert.Zero(t, buf.Len(), "no partial output on validation failure")
}
