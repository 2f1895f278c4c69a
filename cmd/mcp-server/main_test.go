package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestPrintCatalogueJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalogue(&buf, "json"))

	var defs []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &defs))
	require.Len(t, defs, 5)
	assert.Equal(t, "get_fleet_summary", defs[0]["name"])
	assert.Contains(t, defs[1], "inputSchema")
}

func TestPrintCatalogueYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalogue(&buf, "yaml"))

	var defs []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &defs))
	require.Len(t, defs, 5)
	assert.Equal(t, "plan_maintenance_batch", defs[4]["name"])
}

func TestPrintCatalogueUnknownFormat(t *testing.T) {
	assert.Error(t, printCatalogue(&bytes.Buffer{}, "toml"))
}
