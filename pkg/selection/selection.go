// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package selection picks the active receiver of a streaming session
// when the client has not pinned one explicitly.
package selection

import (
	log "github.com/sirupsen/logrus"
)

// Measurement is one receiver's link quality sample for a single tick.
type Measurement struct {
	RxID       string
	RxPowerDbm float64
}

// Selector resolves the active receiver from per-tick measurements.
type Selector interface {
	Select(measurements []Measurement) string
}

// A3Selector switches the serving receiver only when a candidate
// outperforms it by HysteresisDb for TimeToTrigger consecutive
// evaluations. The hysteresis keeps two receivers with near-equal
// power from flapping the selection every tick.
type A3Selector struct {
	HysteresisDb  float64
	TimeToTrigger int

	serving   string
	candidate string
	streak    int
}

// NewA3Selector returns a selector with a 3 dB hysteresis and a
// three-tick trigger window.
func NewA3Selector() *A3Selector {
	return &A3Selector{HysteresisDb: 3.0, TimeToTrigger: 3}
}

// Reset clears the serving receiver and any pending trigger, forcing a
// fresh pick on the next evaluation. Call it whenever the receiver set
// changes.
func (s *A3Selector) Reset() {
	s.serving = ""
	s.candidate = ""
	s.streak = 0
}

// Select returns the id of the receiver to serve given this tick's
// measurements. An empty measurement list keeps the prior selection.
func (s *A3Selector) Select(measurements []Measurement) string {
	if len(measurements) == 0 {
		return s.serving
	}

	best := measurements[0]
	var servingPower float64
	servingFound := false
	for _, m := range measurements {
		if m.RxPowerDbm > best.RxPowerDbm {
			best = m
		}
		if m.RxID == s.serving {
			servingPower = m.RxPowerDbm
			servingFound = true
		}
	}

	if !servingFound {
		s.serving = best.RxID
		s.candidate = ""
		s.streak = 0
		return s.serving
	}

	if best.RxID == s.serving || best.RxPowerDbm <= servingPower+s.HysteresisDb {
		s.candidate = ""
		s.streak = 0
		return s.serving
	}

	if best.RxID == s.candidate {
		s.streak++
	} else {
		s.candidate = best.RxID
		s.streak = 1
	}

	if s.streak >= s.TimeToTrigger {
		log.Infof("switching serving receiver %s -> %s (%.1f dB above hysteresis window)",
			s.serving, s.candidate, best.RxPowerDbm-servingPower-s.HysteresisDb)
		s.serving = s.candidate
		s.candidate = ""
		s.streak = 0
	}
	return s.serving
}
