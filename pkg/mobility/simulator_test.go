// SPDX-FileCopyrightText: 2022-present Intel Corporation
// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package mobility

import (
	"testing"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestNewSimulatorModes(t *testing.T) {
	for _, mode := range []string{model.MobilityStatic, model.MobilityRandomWaypoint, model.MobilityGaussian} {
		s := NewSimulator(mode, testBounds)
		assert.Equal(t, mode, s.Mode())
	}

	// Unknown modes fall back to static behavior.
	s := NewSimulator("teleport", testBounds)
	s.AddNode("UE-1", model.Position{X: 1, Y: 1.5, Z: 2})
	positions := s.UpdateAll(1.0)
	assert.Equal(t, model.Position{X: 1, Y: 1.5, Z: 2}, positions["UE-1"])
}

func TestSimulatorPositions(t *testing.T) {
	s := NewSimulator(model.MobilityStatic, testBounds)
	s.AddNode("UE-1", model.Position{X: 1, Y: 1.5, Z: 2})

	pos, ok := s.Position("UE-1")
	assert.True(t, ok)
	assert.Equal(t, model.Position{X: 1, Y: 1.5, Z: 2}, pos)

	_, ok = s.Position("UE-404")
	assert.False(t, ok)
}

func TestSimulatorUpdateAllStatic(t *testing.T) {
	s := NewSimulator(model.MobilityStatic, testBounds)
	s.AddNode("UE-1", model.Position{X: 1, Y: 1.5, Z: 2})
	s.AddNode("UE-2", model.Position{X: -4, Y: 1.5, Z: 6})

	positions := s.UpdateAll(5.0)
	assert.Len(t, positions, 2)
	assert.Equal(t, model.Position{X: 1, Y: 1.5, Z: 2}, positions["UE-1"])
	assert.Equal(t, model.Position{X: -4, Y: 1.5, Z: 6}, positions["UE-2"])
}

func TestSimulatorUpdateAllGaussian(t *testing.T) {
	s := NewSimulator(model.MobilityGaussian, testBounds)
	start := model.Position{X: 0, Y: 1.5, Z: 0}
	s.AddNode("UE-1", start)

	positions := s.UpdateAll(0.1)
	assert.NotEqual(t, start, positions["UE-1"])

	// The simulator keeps per-node state across updates.
	next := s.UpdateAll(0.1)
	assert.NotEqual(t, positions["UE-1"], next["UE-1"])
}
