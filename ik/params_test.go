package ik

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	raw := map[string]interface{}{
		"tx": "0.5", "ty": 0, "tz": -0.25,
		"rx": "10", "ry": 0, "rz": 15,
		"hipStance": 25,
		"legStance": "0",
	}

	p, err := ParseParams(raw)
	require.NoError(t, err)
	assert.Equal(t, Params{TX: 0.5, TZ: -0.25, RX: 10, RZ: 15, HipStance: 25}, p)
}

func TestParseParamsErrors(t *testing.T) {
	data := []map[string]interface{}{
		// Missing most fields.
		{"tx": 1},

		// Unknown key.
		{"tx": 0, "ty": 0, "tz": 0, "rx": 0, "ry": 0, "rz": 0, "hipStance": 0, "legStance": 0, "yaw": 0},

		// Not a number.
		{"tx": "left", "ty": 0, "tz": 0, "rx": 0, "ry": 0, "rz": 0, "hipStance": 0, "legStance": 0},
	}

	for i, raw := range data {
		_, err := ParseParams(raw)
		assert.Error(t, err, "example %d", i+1)
	}
}
