// SPDX-FileCopyrightText: 2022-present Intel Corporation
// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package mobility

import (
	"math"
	"testing"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/stretchr/testify/assert"
)

var testBounds = Bounds{XMin: -50, XMax: 50, ZMin: -50, ZMax: 50}

func TestStaticUpdate(t *testing.T) {
	m := &Static{}
	state := NodeState{
		Position: model.Position{X: 3, Y: 1.5, Z: -7},
		Velocity: model.Position{X: 1, Z: 1},
	}
	updated := m.Update(state, 10.0)
	assert.Equal(t, state, updated)
}

func TestRandomWaypointSnapsToDestination(t *testing.T) {
	m := NewRandomWaypoint(testBounds, 1.5)
	dest := model.Position{X: 1, Y: 1.5, Z: 0}
	state := NodeState{
		Position:    model.Position{X: 0, Y: 1.5, Z: 0},
		Velocity:    model.Position{X: 10},
		Destination: &dest,
	}

	// One second at 10 m/s overshoots the 1 m leg.
	updated := m.Update(state, 1.0)
	assert.Equal(t, dest, updated.Position)
	assert.Nil(t, updated.Destination)
	assert.Equal(t, model.Position{}, updated.Velocity)
}

func TestRandomWaypointDrawsDestination(t *testing.T) {
	m := NewRandomWaypoint(testBounds, 1.5)
	state := NodeState{Position: model.Position{X: 0, Y: 1.5, Z: 0}}

	updated := m.Update(state, 1e-6)
	assert.NotNil(t, updated.Destination)
	assert.Equal(t, 1.5, updated.Destination.Y)

	speed := speedOf(updated.Velocity)
	assert.GreaterOrEqual(t, speed, m.VMin)
	assert.LessOrEqual(t, speed, m.VMax)
}

func TestRandomWaypointStaysInBounds(t *testing.T) {
	m := NewRandomWaypoint(testBounds, 1.5)
	state := NodeState{Position: model.Position{X: 0, Y: 1.5, Z: 0}}

	for i := 0; i < 2000; i++ {
		state = m.Update(state, 0.1)
		assert.GreaterOrEqual(t, state.Position.X, testBounds.XMin)
		assert.LessOrEqual(t, state.Position.X, testBounds.XMax)
		assert.GreaterOrEqual(t, state.Position.Z, testBounds.ZMin)
		assert.LessOrEqual(t, state.Position.Z, testBounds.ZMax)
	}
}

func TestGaussMarkovHeightPinned(t *testing.T) {
	m := NewGaussMarkov(testBounds, 1.5)
	state := NodeState{Position: model.Position{X: 0, Y: 1.5, Z: 0}}

	for i := 0; i < 1000; i++ {
		state = m.Update(state, 0.033)
		assert.Equal(t, 1.5, state.Position.Y)
		assert.Equal(t, 0.0, state.Velocity.Y)
		assert.GreaterOrEqual(t, state.Position.X, testBounds.XMin)
		assert.LessOrEqual(t, state.Position.X, testBounds.XMax)
		assert.GreaterOrEqual(t, state.Position.Z, testBounds.ZMin)
		assert.LessOrEqual(t, state.Position.Z, testBounds.ZMax)
	}
}

func TestGaussMarkovMoves(t *testing.T) {
	m := NewGaussMarkov(testBounds, 1.5)
	start := model.Position{X: 0, Y: 1.5, Z: 0}
	state := NodeState{Position: start}

	state = m.Update(state, 0.1)
	assert.NotEqual(t, start, state.Position)
}

func speedOf(v model.Position) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
