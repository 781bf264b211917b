// Package plot renders amplification curves from a signal table.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"multicomponent/internal/signal"
)

// Channels selectable for plotting.
const (
	ChannelFAM = "FAM"
	ChannelROX = "ROX"
)

// legendLimit is the largest well count that still gets a legend.
const legendLimit = 12

// Options controls the rendered image.
type Options struct {
	Title   string
	Channel string // ChannelFAM (default) or ChannelROX
	Width   vg.Length
	Height  vg.Length
}

// DefaultOptions draws FAM on an 800×500 pt canvas.
var DefaultOptions = Options{Channel: ChannelFAM, Width: vg.Points(800), Height: vg.Points(500)}

// Curves draws one line per well (cycle on X, signal on Y) and writes a PNG.
func Curves(w io.Writer, t *signal.Table, o Options) error {
	wells := t.Wells()
	if len(wells) == 0 {
		return errors.New("plot: no wells to draw")
	}
	if o.Channel == "" {
		o.Channel = ChannelFAM
	}
	if o.Width == 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height == 0 {
		o.Height = DefaultOptions.Height
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "Cycle"
	p.Y.Label.Text = o.Channel
	p.Add(plotter.NewGrid())

	for i, well := range wells {
		series := t.Series(well)
		pts := make(plotter.XYs, len(series))
		for j, pt := range series {
			y := pt.FAM
			if o.Channel == ChannelROX {
				y = pt.ROX
			}
			pts[j] = plotter.XY{X: float64(pt.Cycle), Y: y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot: well %d: %w", well, err)
		}
		line.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
		if len(wells) <= legendLimit {
			p.Legend.Add(fmt.Sprintf("well %d", well), line)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true

	wt, err := p.WriterTo(o.Width, o.Height, "png")
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
