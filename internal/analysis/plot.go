package analysis

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"solar-string-sim/internal/model"
)

// RenderCurvePNG draws a curve's I-V and P-V traces to a PNG file.
func RenderCurvePNG(curve *model.IVCurve, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Voltage (V)"
	p.Y.Label.Text = "Current (A) / Power (W)"
	p.Add(plotter.NewGrid())

	iv := make(plotter.XYs, curve.Len())
	pv := make(plotter.XYs, curve.Len())
	for i := 0; i < curve.Len(); i++ {
		iv[i].X = curve.V[i]
		iv[i].Y = curve.I[i]
		pv[i].X = curve.V[i]
		pv[i].Y = curve.V[i] * curve.I[i]
	}

	ivLine, err := plotter.NewLine(iv)
	if err != nil {
		return err
	}
	ivLine.Color = color.RGBA{B: 255, A: 255}

	pvLine, err := plotter.NewLine(pv)
	if err != nil {
		return err
	}
	pvLine.Color = color.RGBA{R: 255, A: 255}
	pvLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	mpp, err := plotter.NewScatter(plotter.XYs{{X: curve.Vmp, Y: curve.Imp}})
	if err != nil {
		return err
	}

	p.Add(ivLine, pvLine, mpp)
	p.Legend.Add("I-V", ivLine)
	p.Legend.Add("P-V", pvLine)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
