// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"fmt"
)

// ConfigChange reports which dependent components must be rebuilt after
// a delta has been applied.
type ConfigChange struct {
	Frequency bool
	Mobility  bool
}

// ApplyDelta merges a raw configuration delta into cfg and returns the
// resulting snapshot. The input snapshot is never modified: on any
// error the caller keeps its prior valid state. Unknown keys reject the
// whole delta.
func ApplyDelta(cfg SimulationConfig, data []byte) (SimulationConfig, ConfigChange, error) {
	var delta map[string]json.RawMessage
	change := ConfigChange{}
	if err := json.Unmarshal(data, &delta); err != nil {
		return cfg, change, fmt.Errorf("malformed config delta: %v", err)
	}

	next := cfg
	for key, raw := range delta {
		var err error
		switch key {
		case "tx_nodes":
			next.TxNodes = nil
			err = json.Unmarshal(raw, &next.TxNodes)
		case "ris_nodes":
			next.RISNodes = nil
			err = json.Unmarshal(raw, &next.RISNodes)
		case "rx_nodes":
			next.RxNodes = nil
			err = json.Unmarshal(raw, &next.RxNodes)
			change.Mobility = true
		case "frequency_ghz":
			err = json.Unmarshal(raw, &next.FrequencyGHz)
			change.Frequency = true
		case "ris_bits":
			err = json.Unmarshal(raw, &next.RISBits)
		case "cfo":
			err = json.Unmarshal(raw, &next.CFO)
		case "signal_type":
			err = json.Unmarshal(raw, &next.SignalType)
		case "rx_mobility":
			err = json.Unmarshal(raw, &next.RxMobility)
			change.Mobility = true
		case "selected_rx_id":
			err = json.Unmarshal(raw, &next.SelectedRxID)
		case "running":
			err = json.Unmarshal(raw, &next.Running)
		default:
			return cfg, ConfigChange{}, fmt.Errorf("unknown config key %q", key)
		}
		if err != nil {
			return cfg, ConfigChange{}, fmt.Errorf("invalid value for config key %q: %v", key, err)
		}
	}

	if err := next.Validate(); err != nil {
		return cfg, ConfigChange{}, err
	}
	return next, change, nil
}

// Validate checks the configuration invariants that the propagation and
// mobility layers depend on.
func (c *SimulationConfig) Validate() error {
	if c.FrequencyGHz <= 0 {
		return fmt.Errorf("frequency_ghz must be positive, got %v", c.FrequencyGHz)
	}
	for _, ris := range c.RISNodes {
		if ris.Elements <= 0 {
			return fmt.Errorf("ris node %q must have a positive element count, got %d", ris.ID, ris.Elements)
		}
	}
	switch c.SignalType {
	case SignalCosine, SignalNoise, SignalZero:
	default:
		return fmt.Errorf("unsupported signal_type %q", c.SignalType)
	}
	switch c.RxMobility {
	case MobilityStatic, MobilityRandomWaypoint, MobilityGaussian:
	default:
		return fmt.Errorf("unsupported rx_mobility %q", c.RxMobility)
	}
	return nil
}
