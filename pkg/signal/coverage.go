package signal

import (
	"fmt"
	"sync"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/statistics"
	"github.com/nfvri/ris-simulator/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// ComputeHeatmap sweeps the propagation model over a square ground grid
// and returns received power grids plus scalar summaries. Grid rows are
// computed in parallel; the model is a pure function so no cell depends
// on any other.
func ComputeHeatmap(req model.HeatmapRequest) (*model.HeatmapResult, error) {
	if req.GridSize <= 0 {
		return nil, fmt.Errorf("grid_size must be positive, got %d", req.GridSize)
	}
	if req.GridExtent <= 0 {
		return nil, fmt.Errorf("grid_extent must be positive, got %v", req.GridExtent)
	}
	if req.NumElements <= 0 {
		return nil, fmt.Errorf("n_elements must be positive, got %d", req.NumElements)
	}
	if req.FrequencyGHz <= 0 {
		return nil, fmt.Errorf("frequency_ghz must be positive, got %v", req.FrequencyGHz)
	}

	m := NewModel(req.FrequencyGHz)

	// Only the yaw component of the Euler rotation affects the surface
	// normal; pitch and roll are accepted but unused.
	yaw := req.RISRotation[1]
	normal := utils.YawNormal(yaw)

	size := req.GridSize
	xCoords := utils.Linspace(-req.GridExtent, req.GridExtent, size)
	zCoords := utils.Linspace(-req.GridExtent, req.GridExtent, size)

	res := &model.HeatmapResult{
		Heatmap:        makeGrid(size),
		HeatmapDirect:  makeGrid(size),
		HeatmapRISOnly: makeGrid(size),
		HeatmapGain:    makeGrid(size),
		HeatmapRISGain: makeGrid(size),
		XCoords:        xCoords,
		ZCoords:        zCoords,
		TxPowerDbm:     req.TxPowerDbm,
		NumElements:    req.NumElements,
	}

	params := LinkParams{
		NumElements:   req.NumElements,
		TxPowerDbm:    req.TxPowerDbm,
		Coherence:     req.PhaseCoherence,
		IncludeDirect: true,
		Normal:        normal,
	}

	var wg sync.WaitGroup
	for i := 0; i < size; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < size; j++ {
				rxPos := model.Position{X: xCoords[j], Y: req.Height, Z: zCoords[i]}
				result, err := m.PathLossWithDirect(req.TxPos, req.RISPos, rxPos, params)
				if err != nil {
					// Element count was validated above; nothing else errs.
					log.Errorf("heatmap cell (%d,%d): %v", i, j, err)
					continue
				}
				res.Heatmap[i][j] = result.RxPowerCombinedDbm
				res.HeatmapDirect[i][j] = result.RxPowerDirectDbm
				res.HeatmapRISOnly[i][j] = result.RxPowerRISDbm
				res.HeatmapGain[i][j] = result.RxPowerCombinedDbm - result.RxPowerDirectDbm
				res.HeatmapRISGain[i][j] = result.RxPowerRISDbm - result.RxPowerDirectDbm
			}
		}(i)
	}
	wg.Wait()

	res.MinPower, res.MaxPower, _ = gridStats(res.Heatmap)
	res.MinGain, res.MaxGain, res.AvgGain = gridStats(res.HeatmapGain)

	if req.BoundaryThresholdDb > 0 {
		res.BoundaryPoints = BenefitBoundary(m, req.TxPos, req.RISPos, req.Height, params, req.BoundaryThresholdDb)
	}

	return res, nil
}

func makeGrid(size int) [][]float64 {
	grid := make([][]float64, size)
	for i := range grid {
		grid[i] = make([]float64, size)
	}
	return grid
}

func gridStats(grid [][]float64) (min, max, mean float64) {
	flat := make([]float64, 0, len(grid)*len(grid))
	for _, row := range grid {
		flat = append(flat, row...)
	}
	min, max = statistics.MinMax(flat)
	return min, max, statistics.Mean(flat)
}
