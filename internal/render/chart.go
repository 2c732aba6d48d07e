// Package render draws altitude series as a PNG line chart.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"celestial-chart/internal/sky"
	"celestial-chart/internal/timezone"
)

const title = "Altitude of Celestial Bodies"

// ErrNothingToPlot is returned when no result carries a series.
var ErrNothingToPlot = errors.New("no altitude series to plot")

// Options controls the output image.
type Options struct {
	Width  float64 // inches
	Height float64 // inches
	DPI    int
	// Subtitle is printed under the title, typically the observer's place name.
	Subtitle string
}

// DefaultOptions matches the default chart configuration.
var DefaultOptions = Options{Width: 10, Height: 6, DPI: 100}

// Render draws every successful series in results and returns PNG bytes.
// The time axis is labelled in the resolved zone.
func Render(zone timezone.Zone, results []sky.BodyResult, opts Options) ([]byte, error) {
	p := plot.New()

	p.Title.Text = title
	if opts.Subtitle != "" {
		p.Title.Text += "\n" + opts.Subtitle
	}
	p.X.Label.Text = fmt.Sprintf("Time (%s)", zone.Name)
	p.Y.Label.Text = "Altitude (degrees)"
	p.Y.Min, p.Y.Max = -90, 90
	p.Y.Tick.Marker = plot.ConstantTicks(altitudeTicks())
	p.X.Tick.Marker = plot.TimeTicks{Format: "15:04", Time: plot.UnixTimeIn(location(zone))}
	p.Legend.Top = true

	p.Add(plotter.NewGrid())

	var (
		plotted    int
		first, end time.Time
	)
	for _, r := range results {
		if !r.OK() || len(r.Series.Samples) == 0 {
			continue
		}

		pts := make(plotter.XYs, len(r.Series.Samples))
		for i, s := range r.Series.Samples {
			pts[i].X = unix(s.Time)
			pts[i].Y = s.AltitudeDeg
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to build line for %s: %w", r.Body, err)
		}
		line.Color = plotutil.Color(plotted)
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(r.Body, line)

		samples := r.Series.Samples
		if first.IsZero() || samples[0].Time.Before(first) {
			first = samples[0].Time
		}
		if last := samples[len(samples)-1].Time; last.After(end) {
			end = last
		}
		plotted++
	}
	if plotted == 0 {
		return nil, ErrNothingToPlot
	}

	p.X.Min, p.X.Max = unix(first), unix(end)
	if p.X.Max <= p.X.Min {
		p.X.Max = p.X.Min + 1
	}

	horizon := plotter.NewFunction(func(float64) float64 { return 0 })
	horizon.Color = color.Gray{Y: 96}
	horizon.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	horizon.Width = vg.Points(1)
	p.Add(horizon)
	p.Legend.Add("Horizon", horizon)

	annotation, err := zoneAnnotation(zone, p.X.Max)
	if err != nil {
		return nil, err
	}
	p.Add(annotation)

	return encode(p, opts)
}

func zoneAnnotation(zone timezone.Zone, x float64) (*plotter.Labels, error) {
	label := "Timezone: " + zone.Name
	if zone.Fallback {
		label += " (fallback)"
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: -88}},
		Labels: []string{label},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build timezone label: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XRight
		labels.TextStyle[i].YAlign = text.YBottom
		labels.TextStyle[i].Color = color.Gray{Y: 64}
	}
	labels.Offset = vg.Point{X: -vg.Points(4), Y: vg.Points(2)}
	return labels, nil
}

func encode(p *plot.Plot, opts Options) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.DPI <= 0 {
		return nil, fmt.Errorf("invalid image size %gx%g in at %d dpi", opts.Width, opts.Height, opts.DPI)
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func altitudeTicks() []plot.Tick {
	ticks := make([]plot.Tick, 0, 7)
	for deg := -90; deg <= 90; deg += 30 {
		ticks = append(ticks, plot.Tick{Value: float64(deg), Label: fmt.Sprintf("%d", deg)})
	}
	return ticks
}

func location(zone timezone.Zone) *time.Location {
	if zone.Location == nil {
		return time.UTC
	}
	return zone.Location
}

func unix(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
