package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codguard/codguard/internal/model"
)

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	rows := [][]string{
		{"order_id", "customer"},
		{"ORD-001", "Huzaifa Paracha"},
	}

	require.NoError(t, writeCSVFile(path, rows))

	data, err := os.ReadFile(path) //nolint:gosec // test-owned temp path
	require.NoError(t, err)
	assert.Equal(t, "order_id,customer\nORD-001,Huzaifa Paracha\n", string(data))
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	manifest := exportManifest{RunID: "run-1", Format: "json", Files: []string{"orders.json"}}

	require.NoError(t, writeJSONFile(path, manifest))

	data, err := os.ReadFile(path) //nolint:gosec // test-owned temp path
	require.NoError(t, err)

	var decoded exportManifest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, manifest.RunID, decoded.RunID)
	assert.Equal(t, manifest.Files, decoded.Files)
}

func TestCourierCell(t *testing.T) {
	assert.Empty(t, courierCell(model.Order{}))
	assert.Empty(t, courierCell(model.Order{AssignedCourier: model.CourierNone}))
	assert.NotEmpty(t, courierCell(model.Order{AssignedCourier: model.CourierPostex}))
}
