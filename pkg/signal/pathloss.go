package signal

import (
	"fmt"
	"math"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/utils"
)

const speedOfLight = 3.0e8

// minDistance floors every pairwise distance before it reaches a
// log-scale computation. Coincident positions degrade to this floor
// instead of producing a singularity.
const minDistance = 0.01

// patternFloor bounds cos²θ from below in the element pattern loss.
const patternFloor = 0.001

// excludedPathDbm is the sentinel received power for a direct path
// that the caller asked to exclude.
const excludedPathDbm = -200

// Model evaluates far-field RIS-assisted path loss. It is stateless
// apart from frequency-derived constants and safe for concurrent use.
type Model struct {
	FrequencyGHz   float64
	Wavelength     float64
	ElementGainDbi float64
	Efficiency     float64
}

// LinkParams carries the per-link knobs for a path loss evaluation.
type LinkParams struct {
	NumElements   int
	TxPowerDbm    float64
	Coherence     float64
	IncludeDirect bool
	// Normal is the RIS surface normal; the zero value selects the
	// default +Z broadside.
	Normal model.Position
}

// NewModel returns a path loss model for the given carrier frequency
// with the standard element gain (5 dBi) and efficiency (0.7).
func NewModel(frequencyGHz float64) *Model {
	frequency := frequencyGHz * 1e9
	return &Model{
		FrequencyGHz:   frequencyGHz,
		Wavelength:     speedOfLight / frequency,
		ElementGainDbi: 5.0,
		Efficiency:     0.7,
	}
}

// FreeSpacePathLoss returns the free space path loss in dB for a
// distance in meters.
func (m *Model) FreeSpacePathLoss(distance float64) float64 {
	if distance < minDistance {
		distance = minDistance
	}
	return 20 * math.Log10(4*math.Pi*distance/m.Wavelength)
}

// ElementPatternLoss returns the cos²θ element pattern loss in dB
// (always ≤ 0). The angle is clamped to the principal half-space and
// the cos² term floored to keep the log finite at grazing incidence.
func (m *Model) ElementPatternLoss(theta float64) float64 {
	theta = math.Abs(theta)
	if theta > math.Pi/2-0.01 {
		theta = math.Pi/2 - 0.01
	}
	cosSq := math.Cos(theta) * math.Cos(theta)
	return 10 * math.Log10(math.Max(cosSq, patternFloor))
}

// ArrayGain returns the RIS array gain in dB. The coherence factor
// interpolates the effective exponent between incoherent (N) and fully
// coherent (N²) combining.
func ArrayGain(numElements int, coherence float64) float64 {
	return 10 * math.Log10(float64(numElements)) * (1.0 + coherence)
}

// PathLossWithDirect evaluates the RIS-assisted and direct path losses
// for one Tx/RIS/Rx triple. It is a pure function: deterministic given
// its inputs and free of side effects.
func (m *Model) PathLossWithDirect(txPos, risPos, rxPos model.Position, params LinkParams) (model.PropagationResult, error) {
	if params.NumElements <= 0 {
		return model.PropagationResult{}, fmt.Errorf("element count must be positive, got %d", params.NumElements)
	}

	d1 := math.Max(utils.Distance(txPos, risPos), minDistance)
	d2 := math.Max(utils.Distance(risPos, rxPos), minDistance)
	dDirect := math.Max(utils.Distance(txPos, rxPos), minDistance)

	normal := params.Normal
	if normal == (model.Position{}) {
		normal = model.Position{X: 0, Y: 0, Z: 1}
	}
	normal, ok := utils.Normalize(normal)
	if !ok {
		return model.PropagationResult{}, fmt.Errorf("ris surface normal must be non-zero")
	}

	dirToTx := utils.Scale(utils.Sub(txPos, risPos), 1/d1)
	dirToRx := utils.Scale(utils.Sub(rxPos, risPos), 1/d2)
	theta1 := utils.IncidenceAngle(dirToTx, normal)
	theta2 := utils.IncidenceAngle(dirToRx, normal)

	plDirect := m.FreeSpacePathLoss(dDirect)
	plTxRIS := m.FreeSpacePathLoss(d1)
	plRISRx := m.FreeSpacePathLoss(d2)

	arrayGainDb := ArrayGain(params.NumElements, params.Coherence)
	patternLossDb := -(m.ElementPatternLoss(theta1) + m.ElementPatternLoss(theta2))
	elementGainDb := 2 * m.ElementGainDbi
	efficiencyDb := 10 * math.Log10(m.Efficiency)

	risGainDb := arrayGainDb + elementGainDb - patternLossDb + efficiencyDb
	plRIS := plTxRIS + plRISRx - risGainDb

	pDirectDbm := utils.If(params.IncludeDirect, params.TxPowerDbm-plDirect, excludedPathDbm)
	pRISDbm := params.TxPowerDbm - plRIS

	// Non-coherent combining of the two paths in the linear domain.
	combinedMw := DbmToMw(pDirectDbm) + DbmToMw(pRISDbm)
	combinedDbm := MwToDbm(combinedMw + 1e-30)

	return model.PropagationResult{
		PathLossRISDb:      plRIS,
		PathLossDirectDb:   plDirect,
		RxPowerRISDbm:      pRISDbm,
		RxPowerDirectDbm:   pDirectDbm,
		RxPowerCombinedDbm: combinedDbm,
		RISBenefitDb:       plDirect - plRIS,
		RISGainDb:          risGainDb,
		DistanceTxRISM:     d1,
		DistanceRISRxM:     d2,
		DistanceDirectM:    dDirect,
		ThetaTxDeg:         theta1 * 180 / math.Pi,
		ThetaRxDeg:         theta2 * 180 / math.Pi,
	}, nil
}
