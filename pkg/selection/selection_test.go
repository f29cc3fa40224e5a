// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectInitialPick(t *testing.T) {
	s := NewA3Selector()
	chosen := s.Select([]Measurement{
		{RxID: "UE-1", RxPowerDbm: -70},
		{RxID: "UE-2", RxPowerDbm: -60},
	})
	assert.Equal(t, "UE-2", chosen)
}

func TestSelectEmptyKeepsServing(t *testing.T) {
	s := NewA3Selector()
	assert.Equal(t, "", s.Select(nil))

	s.Select([]Measurement{{RxID: "UE-1", RxPowerDbm: -60}})
	assert.Equal(t, "UE-1", s.Select(nil))
}

func TestSelectHysteresisBlocksSmallGains(t *testing.T) {
	s := NewA3Selector()
	s.Select([]Measurement{{RxID: "UE-1", RxPowerDbm: -60}})

	// 2 dB above serving is inside the 3 dB hysteresis window.
	for i := 0; i < 10; i++ {
		chosen := s.Select([]Measurement{
			{RxID: "UE-1", RxPowerDbm: -60},
			{RxID: "UE-2", RxPowerDbm: -58},
		})
		assert.Equal(t, "UE-1", chosen)
	}
}

func TestSelectSwitchesAfterTimeToTrigger(t *testing.T) {
	s := NewA3Selector()
	s.Select([]Measurement{{RxID: "UE-1", RxPowerDbm: -60}})

	measurements := []Measurement{
		{RxID: "UE-1", RxPowerDbm: -60},
		{RxID: "UE-2", RxPowerDbm: -50},
	}
	assert.Equal(t, "UE-1", s.Select(measurements))
	assert.Equal(t, "UE-1", s.Select(measurements))
	// Third consecutive evaluation above the window triggers the switch.
	assert.Equal(t, "UE-2", s.Select(measurements))
}

func TestSelectInterruptedTriggerResets(t *testing.T) {
	s := NewA3Selector()
	s.Select([]Measurement{{RxID: "UE-1", RxPowerDbm: -60}})

	better := []Measurement{
		{RxID: "UE-1", RxPowerDbm: -60},
		{RxID: "UE-2", RxPowerDbm: -50},
	}
	equal := []Measurement{
		{RxID: "UE-1", RxPowerDbm: -60},
		{RxID: "UE-2", RxPowerDbm: -60},
	}

	s.Select(better)
	s.Select(better)
	s.Select(equal) // streak broken
	assert.Equal(t, "UE-1", s.Select(better))
	assert.Equal(t, "UE-1", s.Select(better))
	assert.Equal(t, "UE-2", s.Select(better))
}

func TestSelectServingDisappears(t *testing.T) {
	s := NewA3Selector()
	s.Select([]Measurement{{RxID: "UE-1", RxPowerDbm: -60}})

	chosen := s.Select([]Measurement{
		{RxID: "UE-2", RxPowerDbm: -80},
		{RxID: "UE-3", RxPowerDbm: -75},
	})
	assert.Equal(t, "UE-3", chosen)
}

func TestReset(t *testing.T) {
	s := NewA3Selector()
	s.Select([]Measurement{{RxID: "UE-1", RxPowerDbm: -60}})
	s.Reset()
	assert.Equal(t, "", s.Select(nil))
}
