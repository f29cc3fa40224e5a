package signal

import (
	"fmt"
	"testing"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeBUREmpty(t *testing.T) {
	res, err := ComputeBUR(model.BURRequest{
		TxPos:        model.Position{X: 0, Y: 5, Z: 0},
		RISPos:       model.Position{X: 10, Y: 2.5, Z: 10},
		NumElements:  40,
		FrequencyGHz: 3.5,
		ThresholdDb:  5.0,
	})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, res.BURPercent)
	assert.Equal(t, 0, res.TotalUEs)
	assert.Equal(t, 0, res.BeneficialCount)
	assert.Empty(t, res.PerUEResults)
}

func TestComputeBURValidation(t *testing.T) {
	_, err := ComputeBUR(model.BURRequest{NumElements: 0, FrequencyGHz: 3.5})
	assert.Error(t, err)
	_, err = ComputeBUR(model.BURRequest{NumElements: 40, FrequencyGHz: 0})
	assert.Error(t, err)
}

func TestComputeBURBenefitDecaysWithDistance(t *testing.T) {
	req := model.BURRequest{
		TxPos:        model.Position{X: 0, Y: 5, Z: 0},
		RISPos:       model.Position{X: 10, Y: 2.5, Z: 10},
		NumElements:  100,
		FrequencyGHz: 3.5,
		ThresholdDb:  0.0,
	}
	// Receivers receding from the surface, away from the transmitter.
	for k := 1; k <= 8; k++ {
		req.RxPositions = append(req.RxPositions, model.Position{X: 10, Y: 1.5, Z: 10 + float64(k)})
	}

	res, err := ComputeBUR(req)
	assert.NoError(t, err)
	assert.Len(t, res.PerUEResults, 8)

	for i := 1; i < len(res.PerUEResults); i++ {
		assert.Less(t, res.PerUEResults[i].BenefitDb, res.PerUEResults[i-1].BenefitDb,
			fmt.Sprintf("benefit should shrink as the receiver recedes (index %d)", i))
	}
}

func TestComputeBURCounts(t *testing.T) {
	req := model.BURRequest{
		TxPos:        model.Position{X: 0, Y: 5, Z: 0},
		RISPos:       model.Position{X: 10, Y: 2.5, Z: 10},
		NumElements:  64,
		FrequencyGHz: 3.5,
		ThresholdDb:  -1000,
		RxPositions: []model.Position{
			{X: 10, Y: 1.5, Z: 12},
			{X: 12, Y: 1.5, Z: 10},
			{X: 8, Y: 1.5, Z: 12},
			{X: 14, Y: 1.5, Z: 14},
		},
	}

	res, err := ComputeBUR(req)
	assert.NoError(t, err)

	// An impossible-to-miss threshold marks every receiver beneficial.
	assert.Equal(t, 4, res.TotalUEs)
	assert.Equal(t, 4, res.BeneficialCount)
	assert.Equal(t, 100.0, res.BURPercent)

	count := 0
	for _, ue := range res.PerUEResults {
		if ue.IsBeneficial {
			count++
		}
		assert.InDelta(t, ue.DirectPlDb-ue.RISPlDb, ue.BenefitDb, 1e-9)
	}
	assert.Equal(t, res.BeneficialCount, count)
}

func TestComputeBURPercentRounded(t *testing.T) {
	req := model.BURRequest{
		TxPos:        model.Position{X: -0.6, Y: 0, Z: 0.8},
		RISPos:       model.Position{},
		NumElements:  100,
		FrequencyGHz: 3.5,
		ThresholdDb:  0,
		RxPositions: []model.Position{
			// Mirrored across the surface: the reflected hop beats the
			// comparable direct path here.
			{X: 0.6, Y: 0, Z: 0.8},
			// Co-located with the transmitter: the direct path is
			// essentially lossless, the reflected one is not.
			{X: -0.6, Y: 0, Z: 0.8},
			{X: -0.6, Y: 0, Z: 0.8},
		},
	}

	res, err := ComputeBUR(req)
	assert.NoError(t, err)

	assert.Equal(t, 1, res.BeneficialCount)
	assert.Equal(t, 3, res.TotalUEs)
	assert.Equal(t, 33.33, res.BURPercent)
}

func TestComputeBURStatistics(t *testing.T) {
	req := model.BURRequest{
		TxPos:        model.Position{X: 0, Y: 5, Z: 0},
		RISPos:       model.Position{X: 10, Y: 2.5, Z: 10},
		NumElements:  64,
		FrequencyGHz: 3.5,
		ThresholdDb:  0,
		RxPositions: []model.Position{
			{X: 10, Y: 1.5, Z: 11},
			{X: 10, Y: 1.5, Z: 14},
			{X: 10, Y: 1.5, Z: 18},
		},
	}

	res, err := ComputeBUR(req)
	assert.NoError(t, err)

	assert.GreaterOrEqual(t, res.MeanBenefitDb, res.PerUEResults[2].BenefitDb)
	assert.LessOrEqual(t, res.MeanBenefitDb, res.PerUEResults[0].BenefitDb)
	assert.Equal(t, res.PerUEResults[1].BenefitDb, res.MedianBenefitDb)
	assert.Greater(t, res.StdDevBenefitDb, 0.0)
}
