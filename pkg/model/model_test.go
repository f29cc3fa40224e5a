// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionJSONRoundTrip(t *testing.T) {
	p := Position{X: 1, Y: 2.5, Z: -3}
	data, err := json.Marshal(p)
	assert.NoError(t, err)
	assert.Equal(t, "[1,2.5,-3]", string(data))

	var decoded Position
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)
}

func TestPositionJSONErrors(t *testing.T) {
	var p Position
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`[1, 2, 3, 4]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`["a", "b", "c"]`), &p))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.TxNodes, 1)
	assert.Len(t, cfg.RISNodes, 1)
	assert.Len(t, cfg.RxNodes, 1)
	assert.Equal(t, 40, cfg.RISNodes[0].Elements)
	assert.Equal(t, 3.5, cfg.FrequencyGHz)
	assert.Equal(t, MobilityStatic, cfg.RxMobility)
	assert.False(t, cfg.Running)
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	assert.Equal(t, cfg, clone)

	clone.RxNodes[0].Pos = Position{X: 99, Y: 1.5, Z: 99}
	clone.TxNodes[0].ID = "BS-2"
	clone.RISNodes[0].Elements = 8

	assert.Equal(t, Position{X: 5, Y: 1.5, Z: 5}, cfg.RxNodes[0].Pos)
	assert.Equal(t, "BS-1", cfg.TxNodes[0].ID)
	assert.Equal(t, 40, cfg.RISNodes[0].Elements)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrequencyGHz = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.RISNodes[0].Elements = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.SignalType = "chirp"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.RxMobility = "teleport"
	assert.Error(t, cfg.Validate())
}
