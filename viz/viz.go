package viz

import (
	"errors"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrNoSeries is returned when an Overlay has nothing to draw.
	ErrNoSeries = errors.New("viz: overlay has no series")
	// ErrBadPoints is returned when a point set has fewer than two columns.
	ErrBadPoints = errors.New("viz: point sets need at least two columns")
)

// Overlay collects the point sets of one straightening run. Nil fields are
// skipped when rendering; at least one must be present. Matrices need two
// or more columns - only the first two are drawn.
type Overlay struct {
	Bent     *mat.Dense // source skeleton
	Straight *mat.Dense // target skeleton
	Points   *mat.Dense // query points before the warp
	Warped   *mat.Dense // query points after the warp
}

// SavePNG writes the overlay as a PNG file of the given size: skeletons as
// lines, query sets as scatters.
func (o Overlay) SavePNG(path string, w, h vg.Length) error {
	if err := o.check(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "rigid chain warp"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	lines := []struct {
		name string
		m    *mat.Dense
		col  color.RGBA
	}{
		{"bent", o.Bent, color.RGBA{R: 0xd9, G: 0x53, B: 0x4f, A: 0xff}},
		{"straight", o.Straight, color.RGBA{R: 0x42, G: 0x8b, B: 0xca, A: 0xff}},
	}
	for _, s := range lines {
		if s.m == nil {
			continue
		}
		line, err := plotter.NewLine(xys(s.m))
		if err != nil {
			return err
		}
		line.Width = vg.Points(1.5)
		line.Color = s.col
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	dots := []struct {
		name string
		m    *mat.Dense
		col  color.RGBA
	}{
		{"points", o.Points, color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff}},
		{"warped", o.Warped, color.RGBA{R: 0x5c, G: 0xb8, B: 0x5c, A: 0xff}},
	}
	for _, s := range dots {
		if s.m == nil {
			continue
		}
		sc, err := plotter.NewScatter(xys(s.m))
		if err != nil {
			return err
		}
		sc.GlyphStyle.Radius = vg.Points(2)
		sc.GlyphStyle.Color = s.col
		p.Add(sc)
		p.Legend.Add(s.name, sc)
	}

	return p.Save(w, h, path)
}

// WriteHTML renders the overlay as a self-contained ECharts scatter page.
func (o Overlay) WriteHTML(w io.Writer, title string) error {
	if err := o.check(); err != nil {
		return err
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y"}),
	)

	add := func(name string, m *mat.Dense, size int) {
		if m == nil {
			return
		}
		n, _ := m.Dims()
		data := make([]opts.ScatterData, 0, n)
		for i := 0; i < n; i++ {
			data = append(data, opts.ScatterData{
				Value: []interface{}{m.At(i, 0), m.At(i, 1)},
			})
		}
		sc.AddSeries(name, data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: size}))
	}
	add("bent", o.Bent, 10)
	add("straight", o.Straight, 10)
	add("points", o.Points, 6)
	add("warped", o.Warped, 6)

	return sc.Render(w)
}

// check rejects overlays that cannot be drawn.
func (o Overlay) check() error {
	series := 0
	for _, m := range []*mat.Dense{o.Bent, o.Straight, o.Points, o.Warped} {
		if m == nil {
			continue
		}
		if _, c := m.Dims(); c < 2 {
			return ErrBadPoints
		}
		series++
	}
	if series == 0 {
		return ErrNoSeries
	}
	return nil
}

// xys projects the rows of m onto the XY plane.
func xys(m *mat.Dense) plotter.XYs {
	n, _ := m.Dims()
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = m.At(i, 0)
		pts[i].Y = m.At(i, 1)
	}
	return pts
}
