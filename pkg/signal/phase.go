package signal

import (
	"fmt"
	"math"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/utils"
)

// OptimalPhases computes, per RIS element, the reflection phase that
// aligns the reflected wavefront for the given Tx/Rx pair. Element
// offsets are expressed in the surface plane relative to the RIS
// center. Quantization is applied when bits > 0.
func (m *Model) OptimalPhases(txPos, risPos, rxPos model.Position, elementOffsets []model.Position, bits int) ([]float64, error) {
	dirTxRIS, ok := utils.Normalize(utils.Sub(risPos, txPos))
	if !ok {
		return nil, fmt.Errorf("tx and ris positions coincide")
	}
	dirRISRx, ok := utils.Normalize(utils.Sub(rxPos, risPos))
	if !ok {
		return nil, fmt.Errorf("ris and rx positions coincide")
	}

	phases := make([]float64, len(elementOffsets))
	for i, offset := range elementOffsets {
		dIn := utils.Dot(dirTxRIS, offset)
		dOut := utils.Dot(dirRISRx, offset)
		phases[i] = -2 * math.Pi * (dIn + dOut) / m.Wavelength
	}

	if bits > 0 {
		phases = QuantizePhases(phases, bits)
	}
	return phases, nil
}

// QuantizePhases maps each phase to the nearest of 2^bits uniformly
// spaced states spanning a full turn, wrapped into (-π, π]. The states
// sit at the centers of the quantization cells, so for bits=2 the four
// legal values are exactly π/4, 3π/4, -3π/4 and -π/4. Quantization is
// idempotent.
func QuantizePhases(phases []float64, bits int) []float64 {
	numStates := math.Pow(2, float64(bits))
	step := 2 * math.Pi / numStates

	quantized := make([]float64, len(phases))
	for i, phase := range phases {
		q := (math.Floor(phase/step) + 0.5) * step
		quantized[i] = WrapPhase(q)
	}
	return quantized
}

// WrapPhase wraps a phase into (-π, π].
func WrapPhase(phase float64) float64 {
	wrapped := math.Mod(phase, 2*math.Pi)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}
	return wrapped
}

// QuantizationCoherence maps a phase resolution in bits to an effective
// coherence factor via the classic sinc² quantization loss. bits <= 0
// means continuous phase control, i.e. full coherence.
func QuantizationCoherence(bits int) float64 {
	if bits <= 0 {
		return 1.0
	}
	x := math.Pi / math.Pow(2, float64(bits))
	s := math.Sin(x) / x
	return s * s
}

// ElementGrid lays out n element offsets on a square half-wavelength
// grid in the RIS surface plane (X/Y), centered on the surface origin.
// The trailing remainder of a non-square count fills the last row.
func (m *Model) ElementGrid(n int) []model.Position {
	if n <= 0 {
		return nil
	}
	side := int(math.Ceil(math.Sqrt(float64(n))))
	spacing := m.Wavelength / 2
	half := float64(side-1) / 2

	offsets := make([]model.Position, 0, n)
	for i := 0; i < side && len(offsets) < n; i++ {
		for j := 0; j < side && len(offsets) < n; j++ {
			offsets = append(offsets, model.Position{
				X: (float64(j) - half) * spacing,
				Y: (float64(i) - half) * spacing,
			})
		}
	}
	return offsets
}
