// SPDX-FileCopyrightText: 2022-present Intel Corporation
// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package mobility

import (
	"sort"

	"github.com/nfvri/ris-simulator/pkg/model"
	log "github.com/sirupsen/logrus"
)

// defaultHeight is the fixed height of ground-level mobile nodes.
const defaultHeight = 1.5

// Simulator drives one mobility model over a set of registered nodes.
// It is owned exclusively by one real-time loop at a time: per-node
// state is never mutated while a tick is in progress elsewhere, so no
// locking is done here. Rebuilding the simulator on a mode or node-set
// change discards prior velocity and destination memory by design.
type Simulator struct {
	mode          string
	mobilityModel Model
	nodeStates    map[string]*NodeState
}

// NewSimulator creates a simulator for the named mobility mode. An
// unrecognized mode falls back to static.
func NewSimulator(mode string, bounds Bounds) *Simulator {
	var m Model
	switch mode {
	case model.MobilityStatic:
		m = &Static{}
	case model.MobilityRandomWaypoint:
		m = NewRandomWaypoint(bounds, defaultHeight)
	case model.MobilityGaussian:
		m = NewGaussMarkov(bounds, defaultHeight)
	default:
		log.Warnf("unknown mobility mode %q, falling back to static", mode)
		m = &Static{}
	}
	return &Simulator{
		mode:          mode,
		mobilityModel: m,
		nodeStates:    make(map[string]*NodeState),
	}
}

// Mode returns the mobility mode the simulator was built with.
func (s *Simulator) Mode() string {
	return s.mode
}

// AddNode registers a node at its initial position with zero velocity
// and no destination.
func (s *Simulator) AddNode(nodeID string, pos model.Position) {
	s.nodeStates[nodeID] = &NodeState{Position: pos}
}

// Position returns the current position of a registered node.
func (s *Simulator) Position(nodeID string) (model.Position, bool) {
	state, ok := s.nodeStates[nodeID]
	if !ok {
		return model.Position{}, false
	}
	return state.Position, true
}

// UpdateAll advances every registered node by dt seconds and returns
// the new positions keyed by node id.
func (s *Simulator) UpdateAll(dt float64) map[string]model.Position {
	positions := make(map[string]model.Position, len(s.nodeStates))

	// Deterministic update order keeps runs with a fixed random seed
	// reproducible.
	ids := make([]string, 0, len(s.nodeStates))
	for id := range s.nodeStates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		updated := s.mobilityModel.Update(*s.nodeStates[id], dt)
		s.nodeStates[id] = &updated
		positions[id] = updated.Position
	}
	return positions
}
