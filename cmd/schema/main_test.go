package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	data, err := render()
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "#/$defs/Config", doc["$ref"])
	assert.Contains(t, string(data), `"poll_interval"`)
	assert.Contains(t, string(data), `"SourceConfig"`)
}
