package brain

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromMap(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"learningRate": 0.3,
		"growthRate": 0.25,
		"hidden": [4, 2],
		"seed": 42,
		"name": "colors",
		"tags": ["a", "b"]
	}`), &m))

	o, err := OptionsFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, float32(0.3), o.LearningRate)
	assert.Equal(t, float32(0.25), o.GrowthRate)
	assert.Equal(t, []int{4, 2}, o.Hidden)
	assert.Equal(t, int64(42), o.Seed)
	assert.Equal(t, map[string]any{"name": "colors", "tags": []any{"a", "b"}}, o.Extra)

	n, err := NewNetwork(o)
	require.NoError(t, err)
	assert.Len(t, n.Layers, 4)
	assert.Equal(t, "colors", n.Options.Extra["name"])
}

func TestOptionsFromMapDefaults(t *testing.T) {
	o, err := OptionsFromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), o)
}

func TestOptionsFromMapErrors(t *testing.T) {
	tests := []struct {
		name   string
		m      map[string]any
		option string
	}{
		{"learning rate", map[string]any{"learningRate": "fast"}, "learningRate"},
		{"growth rate", map[string]any{"growthRate": true}, "growthRate"},
		{"hidden type", map[string]any{"hidden": 3}, "hidden"},
		{"hidden element", map[string]any{"hidden": []any{3, "x"}}, "hidden"},
		{"hidden size", map[string]any{"hidden": []int{3, 0}}, "hidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OptionsFromMap(tt.m)
			var cerr *ConfigurationError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.option, cerr.Option)
		})
	}
}

func TestOptionsLogger(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewNetwork(Options{Seed: 1, Logger: log.New(&buf, "", 0)})
	require.NoError(t, err)
	n.Train(xorData, TrainOptions{Iterations: 3})
	out := buf.String()
	assert.True(t, strings.Contains(out, "grew hidden layer by 2 to 2 nodes"), out)
	assert.True(t, strings.Contains(out, "trained 3 epochs on 4 examples"), out)
}
