package signal

import (
	"fmt"

	"github.com/nfvri/ris-simulator/pkg/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// powerGrid adapts a heatmap result to the plotter grid interface.
type powerGrid struct {
	grid    [][]float64
	xCoords []float64
	zCoords []float64
}

func (g *powerGrid) Dims() (int, int)   { return len(g.xCoords), len(g.zCoords) }
func (g *powerGrid) Z(c, r int) float64 { return g.grid[r][c] }
func (g *powerGrid) X(c int) float64    { return g.xCoords[c] }
func (g *powerGrid) Y(r int) float64    { return g.zCoords[r] }

// RenderHeatmap saves the combined received power grid of a heatmap
// result as a PNG image.
func RenderHeatmap(res *model.HeatmapResult, filename string) error {
	if len(res.Heatmap) == 0 {
		return fmt.Errorf("empty heatmap result")
	}

	grid := &powerGrid{grid: res.Heatmap, xCoords: res.XCoords, zCoords: res.ZCoords}
	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(grid, pal)

	p := plot.New()
	p.Title.Text = "Combined Received Power (dBm)"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "z (m)"
	p.Add(hm)

	return p.Save(10*vg.Inch, 10*vg.Inch, filename)
}
