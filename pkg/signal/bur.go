package signal

import (
	"fmt"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/statistics"
	"github.com/nfvri/ris-simulator/pkg/utils"
)

// ComputeBUR evaluates the Beneficial-UE-Ratio over an explicit
// receiver population: the fraction of receivers for which the RIS
// path outperforms the direct path by more than the threshold.
// An empty receiver list yields 0%, not an error.
func ComputeBUR(req model.BURRequest) (*model.BURResult, error) {
	if req.NumElements <= 0 {
		return nil, fmt.Errorf("n_elements must be positive, got %d", req.NumElements)
	}
	if req.FrequencyGHz <= 0 {
		return nil, fmt.Errorf("frequency_ghz must be positive, got %v", req.FrequencyGHz)
	}

	m := NewModel(req.FrequencyGHz)
	params := LinkParams{
		NumElements:   req.NumElements,
		TxPowerDbm:    20,
		Coherence:     1.0,
		IncludeDirect: true,
	}

	beneficialCount := 0
	results := make([]model.UEResult, 0, len(req.RxPositions))
	benefits := make([]float64, 0, len(req.RxPositions))
	for _, rxPos := range req.RxPositions {
		result, err := m.PathLossWithDirect(req.TxPos, req.RISPos, rxPos, params)
		if err != nil {
			return nil, err
		}

		benefit := -result.PathLossRISDb - -result.PathLossDirectDb
		isBeneficial := benefit > req.ThresholdDb
		if isBeneficial {
			beneficialCount++
		}

		benefits = append(benefits, benefit)
		results = append(results, model.UEResult{
			RxPos:        rxPos,
			RISPlDb:      result.PathLossRISDb,
			DirectPlDb:   result.PathLossDirectDb,
			BenefitDb:    benefit,
			IsBeneficial: isBeneficial,
		})
	}

	bur := 0.0
	if len(req.RxPositions) > 0 {
		bur = utils.RoundToDecimal(float64(beneficialCount)/float64(len(req.RxPositions))*100, 2)
	}

	return &model.BURResult{
		BURPercent:      bur,
		BeneficialCount: beneficialCount,
		TotalUEs:        len(req.RxPositions),
		ThresholdDb:     req.ThresholdDb,
		MeanBenefitDb:   statistics.Mean(benefits),
		MedianBenefitDb: statistics.Percentile(benefits, 50),
		StdDevBenefitDb: statistics.StdDev(benefits),
		PerUEResults:    results,
	}, nil
}
