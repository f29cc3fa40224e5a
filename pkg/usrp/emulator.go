package usrp

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/nfvri/ris-simulator/pkg/model"
)

// Emulator generates baseband IQ sample sequences and applies the
// transmit/receive impairment chain.
type Emulator struct {
	SampleRate float64
}

// NewEmulator returns an emulator at the given sample rate in Hz.
func NewEmulator(sampleRate float64) *Emulator {
	return &Emulator{SampleRate: sampleRate}
}

// Generate produces a baseband IQ sequence of the requested type over
// the given duration, along with its timebase. Unrecognized signal
// types produce an all-zero sequence.
func (e *Emulator) Generate(signalType string, frequency, duration, amplitude float64) ([]float64, []complex128) {
	n := int(duration * e.SampleRate)
	t := make([]float64, n)
	iq := make([]complex128, n)

	for i := 0; i < n; i++ {
		t[i] = float64(i) / e.SampleRate
	}

	switch signalType {
	case model.SignalCosine:
		for i := 0; i < n; i++ {
			iq[i] = complex(amplitude, 0) * cmplx.Exp(complex(0, 2*math.Pi*frequency*t[i]))
		}
	case model.SignalNoise:
		for i := 0; i < n; i++ {
			iq[i] = complex(amplitude*rand.NormFloat64(), amplitude*rand.NormFloat64())
		}
	}
	return t, iq
}

// ApplyCFO rotates the sequence by a carrier frequency offset in Hz.
func (e *Emulator) ApplyCFO(iq []complex128, cfoHz float64) []complex128 {
	out := make([]complex128, len(iq))
	for i, s := range iq {
		t := float64(i) / e.SampleRate
		out[i] = s * cmplx.Exp(complex(0, 2*math.Pi*cfoHz*t))
	}
	return out
}

// ApplyChannel attenuates the sequence by a path loss in dB and applies
// a constant phase rotation.
func (e *Emulator) ApplyChannel(iq []complex128, pathLossDb, phaseShift float64) []complex128 {
	attenuation := math.Pow(10, -pathLossDb/20)
	rot := cmplx.Exp(complex(0, phaseShift))
	out := make([]complex128, len(iq))
	for i, s := range iq {
		out[i] = s * complex(attenuation, 0) * rot
	}
	return out
}

// ApplyTxImpairments applies a linear gain followed by a carrier
// frequency offset, modelling the transmit chain.
func (e *Emulator) ApplyTxImpairments(iq []complex128, gainDb, cfoHz float64) []complex128 {
	gain := math.Pow(10, gainDb/20)
	out := make([]complex128, len(iq))
	for i, s := range iq {
		out[i] = s * complex(gain, 0)
	}
	if cfoHz != 0 {
		out = e.ApplyCFO(out, cfoHz)
	}
	return out
}

// AddAWGN adds white Gaussian noise at a target SNR in dB, with the
// noise power derived from the measured signal power.
func (e *Emulator) AddAWGN(iq []complex128, snrDb float64) []complex128 {
	if len(iq) == 0 {
		return iq
	}

	signalPower := 0.0
	for _, s := range iq {
		mag := cmplx.Abs(s)
		signalPower += mag * mag
	}
	signalPower /= float64(len(iq))

	noisePower := signalPower / math.Pow(10, snrDb/10)
	noiseStd := math.Sqrt(noisePower / 2)

	out := make([]complex128, len(iq))
	for i, s := range iq {
		out[i] = s + complex(noiseStd*rand.NormFloat64(), noiseStd*rand.NormFloat64())
	}
	return out
}

// QuantizeADC applies uniform quantization to both rails with a step
// derived from the peak magnitude in the sequence. An all-zero
// sequence is returned unchanged to avoid a zero step.
func QuantizeADC(iq []complex128, bits int) []complex128 {
	maxVal := 0.0
	for _, s := range iq {
		if mag := cmplx.Abs(s); mag > maxVal {
			maxVal = mag
		}
	}
	if maxVal == 0 {
		return iq
	}

	levels := math.Pow(2, float64(bits))
	step := 2 * maxVal / levels

	out := make([]complex128, len(iq))
	for i, s := range iq {
		out[i] = complex(
			math.Round(real(s)/step)*step,
			math.Round(imag(s)/step)*step,
		)
	}
	return out
}
