// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"fmt"
)

// Mobility model names accepted in configuration.
const (
	MobilityStatic         = "static"
	MobilityRandomWaypoint = "random_waypoint"
	MobilityGaussian       = "gaussian"
)

// Signal types accepted in configuration.
const (
	SignalCosine = "cosine"
	SignalNoise  = "noise"
	SignalZero   = "zero"
)

// Position is a point in simulation space. Y is the height coordinate;
// X and Z span the ground plane.
type Position struct {
	X float64 `mapstructure:"x" yaml:"x"`
	Y float64 `mapstructure:"y" yaml:"y"`
	Z float64 `mapstructure:"z" yaml:"z"`
}

// MarshalJSON encodes a position as a [x, y, z] triple, matching the
// wire format used by visualization clients.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

// UnmarshalJSON decodes a [x, y, z] triple.
func (p *Position) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("position must be a numeric [x, y, z] array: %v", err)
	}
	if len(coords) != 3 {
		return fmt.Errorf("position must have exactly 3 coordinates, got %d", len(coords))
	}
	p.X, p.Y, p.Z = coords[0], coords[1], coords[2]
	return nil
}

// TxNode is a transmitter (base station).
type TxNode struct {
	ID  string   `mapstructure:"id" json:"id" yaml:"id"`
	Pos Position `mapstructure:"pos" json:"pos" yaml:"pos"`
}

// RISNode is a reconfigurable intelligent surface.
type RISNode struct {
	ID       string   `mapstructure:"id" json:"id" yaml:"id"`
	Pos      Position `mapstructure:"pos" json:"pos" yaml:"pos"`
	Elements int      `mapstructure:"elements" json:"elements" yaml:"elements"`
}

// RxNode is a receiver (user equipment).
type RxNode struct {
	ID  string   `mapstructure:"id" json:"id" yaml:"id"`
	Pos Position `mapstructure:"pos" json:"pos" yaml:"pos"`
}

// SimulationConfig is the live configuration of one streaming session.
// It is treated as an immutable snapshot: deltas produce a new value
// which replaces the old one between ticks, never mid-tick.
type SimulationConfig struct {
	TxNodes      []TxNode  `mapstructure:"tx_nodes" json:"tx_nodes" yaml:"tx_nodes"`
	RISNodes     []RISNode `mapstructure:"ris_nodes" json:"ris_nodes" yaml:"ris_nodes"`
	RxNodes      []RxNode  `mapstructure:"rx_nodes" json:"rx_nodes" yaml:"rx_nodes"`
	FrequencyGHz float64   `mapstructure:"frequency_ghz" json:"frequency_ghz" yaml:"frequency_ghz"`
	RISBits      int       `mapstructure:"ris_bits" json:"ris_bits" yaml:"ris_bits"`
	CFO          float64   `mapstructure:"cfo" json:"cfo" yaml:"cfo"`
	SignalType   string    `mapstructure:"signal_type" json:"signal_type" yaml:"signal_type"`
	RxMobility   string    `mapstructure:"rx_mobility" json:"rx_mobility" yaml:"rx_mobility"`
	SelectedRxID string    `mapstructure:"selected_rx_id" json:"selected_rx_id" yaml:"selected_rx_id"`
	Running      bool      `mapstructure:"running" json:"running" yaml:"running"`
}

// Clone returns a copy whose node slices share no backing arrays with
// the receiver. A driver clones its seed configuration so mobility
// updates never write through to the caller's node lists.
func (c SimulationConfig) Clone() SimulationConfig {
	out := c
	out.TxNodes = append([]TxNode(nil), c.TxNodes...)
	out.RISNodes = append([]RISNode(nil), c.RISNodes...)
	out.RxNodes = append([]RxNode(nil), c.RxNodes...)
	return out
}

// DefaultConfig returns the initial session state used before any
// client delta arrives.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		TxNodes:      []TxNode{{ID: "BS-1", Pos: Position{X: 0, Y: 5, Z: 0}}},
		RISNodes:     []RISNode{{ID: "RIS-1", Pos: Position{X: 2.5, Y: 2.5, Z: 2.5}, Elements: 40}},
		RxNodes:      []RxNode{{ID: "UE-1", Pos: Position{X: 5, Y: 1.5, Z: 5}}},
		FrequencyGHz: 3.5,
		RISBits:      2,
		SignalType:   SignalCosine,
		RxMobility:   MobilityStatic,
	}
}

// PropagationResult bundles the outcome of one Tx/RIS/Rx link
// evaluation. Values are produced fresh per invocation and never
// mutated afterwards.
type PropagationResult struct {
	PathLossRISDb      float64 `json:"path_loss_ris_db"`
	PathLossDirectDb   float64 `json:"path_loss_direct_db"`
	RxPowerRISDbm      float64 `json:"rx_power_ris_dbm"`
	RxPowerDirectDbm   float64 `json:"rx_power_direct_dbm"`
	RxPowerCombinedDbm float64 `json:"rx_power_combined_dbm"`
	RISBenefitDb       float64 `json:"ris_benefit_db"`
	RISGainDb          float64 `json:"ris_gain_db"`
	DistanceTxRISM     float64 `json:"distance_tx_ris_m"`
	DistanceRISRxM     float64 `json:"distance_ris_rx_m"`
	DistanceDirectM    float64 `json:"distance_direct_m"`
	ThetaTxDeg         float64 `json:"theta_tx_deg"`
	ThetaRxDeg         float64 `json:"theta_rx_deg"`
}

// Frame is the per-tick output snapshot sent to a streaming client.
type Frame struct {
	PathLossDb    float64    `json:"pathloss_db"`
	RxPowerDbm    float64    `json:"rx_power_dbm"`
	TxIQReal      []float64  `json:"tx_iq_real"`
	TxIQImag      []float64  `json:"tx_iq_imag"`
	RxIQReal      []float64  `json:"rx_iq_real"`
	RxIQImag      []float64  `json:"rx_iq_imag"`
	T             []float64  `json:"t"`
	RxPositions   []Position `json:"rx_positions"`
	DistanceTxRIS float64    `json:"distance_tx_ris"`
	DistanceRISRx float64    `json:"distance_ris_rx"`
	RISPhases     []float64  `json:"ris_phases,omitempty"`
	SelectedRxID  string     `json:"selected_rx_id"`
}
