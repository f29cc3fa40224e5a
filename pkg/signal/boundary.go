package signal

import (
	"math"
	"math/rand"

	"github.com/davidkleiven/gononlin/nonlin"
	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// benefitBoundaryGuesses is the number of Newton-Krylov starting points
// scattered around the RIS when tracing the benefit contour.
const benefitBoundaryGuesses = 180

// BenefitBoundary traces the ground-plane contour where the RIS path
// outperforms the direct path by exactly thresholdDb, using a
// Newton-Krylov solver started from random points around the RIS.
// Points are returned sorted by bearing around the RIS so they form a
// traversable ring. An empty slice means the solver never converged
// inside the sweep region.
func BenefitBoundary(m *Model, txPos, risPos model.Position, height float64, params LinkParams, thresholdDb float64) []model.Position {
	benefit := func(x, z float64) float64 {
		rxPos := model.Position{X: x, Y: height, Z: z}
		result, err := m.PathLossWithDirect(txPos, risPos, rxPos, params)
		if err != nil {
			return math.Inf(-1)
		}
		return result.RISBenefitDb
	}

	problem := nonlin.Problem{
		F: func(out, x []float64) {
			out[0] = benefit(x[0], x[1]) - thresholdDb
			out[1] = benefit(x[0], x[1]) - thresholdDb
		},
	}

	solver := nonlin.NewtonKrylov{
		Maxiter:  10,
		StepSize: 1e-3,
		Tol:      1e-6,
	}

	boundaryPoints := make([]model.Position, 0)
	for i := 0; i < benefitBoundaryGuesses; i++ {
		radius := 1.0 + 50.0*rand.Float64()
		angle := 2 * math.Pi * rand.Float64()
		x0 := []float64{
			risPos.X + radius*math.Cos(angle),
			risPos.Z + radius*math.Sin(angle),
		}
		res, err := solver.Solve(problem, x0)
		if err != nil || !res.Converged {
			continue
		}
		if math.IsNaN(res.X[0]) || math.IsNaN(res.X[1]) {
			continue
		}
		boundaryPoints = append(boundaryPoints, model.Position{X: res.X[0], Y: height, Z: res.X[1]})
	}

	if len(boundaryPoints) == 0 {
		log.Warnf("benefit boundary at %v dB did not converge", thresholdDb)
		return boundaryPoints
	}
	return utils.SortPositionsByBearing(risPos, boundaryPoints)
}
