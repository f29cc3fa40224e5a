// SPDX-FileCopyrightText: 2022-present Intel Corporation
// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package sim

import (
	"context"
	"time"

	"github.com/nfvri/ris-simulator/pkg/mobility"
	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/selection"
	"github.com/nfvri/ris-simulator/pkg/signal"
	"github.com/nfvri/ris-simulator/pkg/usrp"
	log "github.com/sirupsen/logrus"
)

const (
	// tickInterval paces the loop at roughly 30 frames per second.
	// The wait runs to the tick boundary regardless of how long the
	// compute phase took, so frame rate is best effort only.
	tickInterval = 33 * time.Millisecond

	// ingestTimeout bounds the per-tick wait for a config delta.
	ingestTimeout = 10 * time.Millisecond

	sampleRate     = 1e6
	signalDuration = 0.001
	toneFrequency  = 1000.0
	txPowerDbm     = 20.0
	snrDb          = 20.0
	adcBits        = 12

	// vizPoints is the number of IQ samples kept per frame after
	// downsampling for visualization.
	vizPoints = 100
)

// defaultBounds delimits the indoor-scale roaming region for mobile
// receivers.
var defaultBounds = mobility.Bounds{XMin: -50, XMax: 50, ZMin: -50, ZMax: 50}

// Driver runs one streaming simulation session. It exclusively owns
// its configuration snapshot, path loss model and mobility simulator;
// external callers interact only through the delta channel and the
// emit callback.
type Driver struct {
	cfg         model.SimulationConfig
	plModel     *signal.Model
	mobilitySim *mobility.Simulator
	emulator    *usrp.Emulator
	selector    *selection.A3Selector
	bounds      mobility.Bounds
	lastUpdate  time.Time
}

// NewDriver creates a session driver seeded with the given
// configuration snapshot.
func NewDriver(cfg model.SimulationConfig) *Driver {
	d := &Driver{
		cfg:      cfg.Clone(),
		bounds:   defaultBounds,
		emulator: usrp.NewEmulator(sampleRate),
		selector: selection.NewA3Selector(),
	}
	d.plModel = signal.NewModel(cfg.FrequencyGHz)
	d.mobilitySim = newMobilitySim(cfg, d.bounds)
	return d
}

// Config returns the current configuration snapshot.
func (d *Driver) Config() model.SimulationConfig {
	return d.cfg
}

func newMobilitySim(cfg model.SimulationConfig, bounds mobility.Bounds) *mobility.Simulator {
	s := mobility.NewSimulator(cfg.RxMobility, bounds)
	for _, rx := range cfg.RxNodes {
		s.AddNode(rx.ID, rx.Pos)
	}
	return s
}

// Run drives the session until the context is cancelled, the delta
// channel closes, or the emitter fails (connection loss). Each tick:
// ingest at most one pending delta within a bounded wait, compute and
// emit a frame when running, then idle until the next tick boundary.
func (d *Driver) Run(ctx context.Context, deltas <-chan []byte, emit func(*model.Frame) error) error {
	d.lastUpdate = time.Now()

	for {
		tickStart := time.Now()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case data, ok := <-deltas:
			if !ok {
				log.Info("delta channel closed, stopping session")
				return nil
			}
			d.applyDelta(data)
		case <-time.After(ingestTimeout):
		}

		if d.cfg.Running {
			if frame := d.tick(); frame != nil {
				if err := emit(frame); err != nil {
					return err
				}
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(tickStart.Add(tickInterval))):
		}
	}
}

// applyDelta merges a raw configuration delta. A malformed delta is
// logged and dropped; the prior snapshot stays in effect. Dependent
// components are rebuilt fully before the new snapshot is installed so
// the next tick never observes partially-rebuilt state.
func (d *Driver) applyDelta(data []byte) {
	next, change, err := model.ApplyDelta(d.cfg, data)
	if err != nil {
		log.Warnf("dropping config delta: %v", err)
		return
	}

	if change.Frequency {
		d.plModel = signal.NewModel(next.FrequencyGHz)
	}
	if change.Mobility {
		d.mobilitySim = newMobilitySim(next, d.bounds)
		d.selector.Reset()
	}
	d.cfg = next
}

// tick runs the compute phase of one iteration and assembles the
// output frame. Returns nil when the frame cannot be produced; the
// loop keeps going either way.
func (d *Driver) tick() *model.Frame {
	now := time.Now()
	dt := now.Sub(d.lastUpdate).Seconds()
	d.lastUpdate = now

	if d.cfg.RxMobility != model.MobilityStatic {
		positions := d.mobilitySim.UpdateAll(dt)
		for i := range d.cfg.RxNodes {
			if pos, ok := positions[d.cfg.RxNodes[i].ID]; ok {
				d.cfg.RxNodes[i].Pos = pos
			}
		}
	}

	if len(d.cfg.TxNodes) == 0 || len(d.cfg.RISNodes) == 0 || len(d.cfg.RxNodes) == 0 {
		log.Warn("skipping tick: need at least one tx, ris and rx node")
		return nil
	}

	tx := d.cfg.TxNodes[0]
	ris := d.cfg.RISNodes[0]

	coherence := signal.QuantizationCoherence(d.cfg.RISBits)
	params := signal.LinkParams{
		NumElements:   ris.Elements,
		TxPowerDbm:    txPowerDbm,
		Coherence:     coherence,
		IncludeDirect: true,
	}

	rx := d.selectedRx(tx, ris, params)
	result, err := d.plModel.PathLossWithDirect(tx.Pos, ris.Pos, rx.Pos, params)
	if err != nil {
		log.Warnf("skipping tick: %v", err)
		return nil
	}

	t, txIQ := d.emulator.Generate(d.cfg.SignalType, toneFrequency, signalDuration, 1.0)

	rxIQ := d.emulator.ApplyChannel(txIQ, result.PathLossRISDb, 0)
	if d.cfg.CFO != 0 {
		rxIQ = d.emulator.ApplyCFO(rxIQ, d.cfg.CFO)
	}
	rxIQ = d.emulator.AddAWGN(rxIQ, snrDb)
	rxIQ = usrp.QuantizeADC(rxIQ, adcBits)

	var phases []float64
	offsets := d.plModel.ElementGrid(ris.Elements)
	if p, err := d.plModel.OptimalPhases(tx.Pos, ris.Pos, rx.Pos, offsets, d.cfg.RISBits); err == nil {
		phases = p
	}

	step := len(t) / vizPoints
	if step < 1 {
		step = 1
	}

	rxPositions := make([]model.Position, len(d.cfg.RxNodes))
	for i, node := range d.cfg.RxNodes {
		rxPositions[i] = node.Pos
	}

	return &model.Frame{
		PathLossDb:    result.PathLossRISDb,
		RxPowerDbm:    result.RxPowerCombinedDbm,
		TxIQReal:      downsampleReal(txIQ, step),
		TxIQImag:      downsampleImag(txIQ, step),
		RxIQReal:      downsampleReal(rxIQ, step),
		RxIQImag:      downsampleImag(rxIQ, step),
		T:             downsample(t, step),
		RxPositions:   rxPositions,
		DistanceTxRIS: result.DistanceTxRISM,
		DistanceRISRx: result.DistanceRISRxM,
		RISPhases:     phases,
		SelectedRxID:  rx.ID,
	}
}

// selectedRx resolves the active receiver. A configured id pins the
// selection manually; an empty id hands the choice to the hysteresis
// selector, which tracks the strongest combined received power. Either
// way an unresolvable id falls back to the first receiver.
func (d *Driver) selectedRx(tx model.TxNode, ris model.RISNode, params signal.LinkParams) model.RxNode {
	if d.cfg.SelectedRxID == "" && len(d.cfg.RxNodes) > 1 {
		measurements := make([]selection.Measurement, 0, len(d.cfg.RxNodes))
		for _, rx := range d.cfg.RxNodes {
			result, err := d.plModel.PathLossWithDirect(tx.Pos, ris.Pos, rx.Pos, params)
			if err != nil {
				continue
			}
			measurements = append(measurements, selection.Measurement{
				RxID:       rx.ID,
				RxPowerDbm: result.RxPowerCombinedDbm,
			})
		}
		chosen := d.selector.Select(measurements)
		for _, rx := range d.cfg.RxNodes {
			if rx.ID == chosen {
				return rx
			}
		}
		return d.cfg.RxNodes[0]
	}

	for _, rx := range d.cfg.RxNodes {
		if rx.ID == d.cfg.SelectedRxID {
			return rx
		}
	}
	return d.cfg.RxNodes[0]
}

func downsample(in []float64, step int) []float64 {
	out := make([]float64, 0, len(in)/step+1)
	for i := 0; i < len(in); i += step {
		out = append(out, in[i])
	}
	return out
}

func downsampleReal(in []complex128, step int) []float64 {
	out := make([]float64, 0, len(in)/step+1)
	for i := 0; i < len(in); i += step {
		out = append(out, real(in[i]))
	}
	return out
}

func downsampleImag(in []complex128, step int) []float64 {
	out := make([]float64, 0, len(in)/step+1)
	for i := 0; i < len(in); i += step {
		out = append(out, imag(in[i]))
	}
	return out
}
