// SPDX-FileCopyrightText: 2022-present Intel Corporation
// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package mobility

import (
	"math"
	"math/rand"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/utils"
)

// Bounds delimits the horizontal region nodes may roam in.
type Bounds struct {
	XMin, XMax float64
	ZMin, ZMax float64
}

// NodeState is the kinematic state of one mobile node. Exactly one
// mobility model mutates it, one node at a time.
type NodeState struct {
	Position    model.Position
	Velocity    model.Position
	Destination *model.Position
}

// Model advances a node's kinematic state by dt seconds.
type Model interface {
	Update(state NodeState, dt float64) NodeState
}

// Static leaves every node where it is.
type Static struct{}

func (s *Static) Update(state NodeState, dt float64) NodeState {
	return state
}

// RandomWaypoint draws a destination uniformly within the bounded
// region and a uniform speed, walks there, then redraws.
type RandomWaypoint struct {
	Bounds Bounds
	Height float64
	VMin   float64
	VMax   float64
}

// NewRandomWaypoint returns a waypoint model with walking speeds.
func NewRandomWaypoint(bounds Bounds, height float64) *RandomWaypoint {
	return &RandomWaypoint{Bounds: bounds, Height: height, VMin: 0.5, VMax: 3.0}
}

func (m *RandomWaypoint) randomDestination() model.Position {
	x := m.Bounds.XMin + rand.Float64()*(m.Bounds.XMax-m.Bounds.XMin)
	z := m.Bounds.ZMin + rand.Float64()*(m.Bounds.ZMax-m.Bounds.ZMin)
	return model.Position{X: x, Y: m.Height, Z: z}
}

func (m *RandomWaypoint) Update(state NodeState, dt float64) NodeState {
	if state.Destination == nil {
		dest := m.randomDestination()
		state.Destination = &dest
		speed := m.VMin + rand.Float64()*(m.VMax-m.VMin)
		direction := utils.Sub(dest, state.Position)
		if unit, ok := utils.Normalize(direction); ok {
			state.Velocity = utils.Scale(unit, speed)
		} else {
			state.Velocity = model.Position{}
		}
	}

	distToDest := utils.Distance(*state.Destination, state.Position)
	moveDist := utils.Norm(state.Velocity) * dt

	if moveDist >= distToDest {
		// Arrived; snap exactly onto the destination and trigger a
		// fresh draw on the next update.
		state.Position = *state.Destination
		state.Destination = nil
		state.Velocity = model.Position{}
	} else {
		state.Position = utils.Add(state.Position, utils.Scale(state.Velocity, dt))
	}
	return state
}

// GaussMarkov evolves the horizontal velocity components with memory
// factor alpha plus a fresh Gaussian perturbation each tick, reflecting
// off the region bounds. The vertical velocity is pinned to zero and
// the height re-pinned every tick regardless of drift.
type GaussMarkov struct {
	Bounds Bounds
	Height float64
	Alpha  float64
	VMean  float64
	Sigma  float64
}

// NewGaussMarkov returns a Gauss-Markov model with pedestrian defaults.
func NewGaussMarkov(bounds Bounds, height float64) *GaussMarkov {
	return &GaussMarkov{Bounds: bounds, Height: height, Alpha: 0.75, VMean: 1.0, Sigma: 0.5}
}

func (m *GaussMarkov) Update(state NodeState, dt float64) NodeState {
	vel := state.Velocity
	noiseScale := m.Sigma * math.Sqrt(1-m.Alpha*m.Alpha)

	// The small bias inside the sign keeps a node from sticking at
	// zero velocity.
	vel.X = m.Alpha*vel.X + (1-m.Alpha)*m.VMean*math.Copysign(1, vel.X+0.01) + noiseScale*rand.NormFloat64()
	vel.Z = m.Alpha*vel.Z + (1-m.Alpha)*m.VMean*math.Copysign(1, vel.Z+0.01) + noiseScale*rand.NormFloat64()
	vel.Y = 0

	pos := utils.Add(state.Position, utils.Scale(vel, dt))

	if pos.X < m.Bounds.XMin || pos.X > m.Bounds.XMax {
		vel.X = -vel.X
		pos.X = math.Min(math.Max(pos.X, m.Bounds.XMin), m.Bounds.XMax)
	}
	if pos.Z < m.Bounds.ZMin || pos.Z > m.Bounds.ZMax {
		vel.Z = -vel.Z
		pos.Z = math.Min(math.Max(pos.Z, m.Bounds.ZMin), m.Bounds.ZMax)
	}

	pos.Y = m.Height

	state.Position = pos
	state.Velocity = vel
	return state
}
