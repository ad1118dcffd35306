// Package diagram draws the condensed copy number diagram: one row per copy number, one
// linked pair of boxes per copy whose dark share is the fraction of genomes with a mutant
// call at that copy.
package diagram

import (
	"fmt"
	"github.com/dasnellings/cnvAlleles/aggregate"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"image/color"
	"os"
	"path/filepath"
	"strings"
)

const (
	copySpacing float64 = 0.2 // gap between linked copies
	boxHeight   float64 = 0.5
	labelDrop   float64 = 0.1 // label baseline below the connector line
)

const pngDpi int = 300

var (
	MutantColor   color.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255} // dark blue
	WildTypeColor color.Color = color.White
	EdgeColor     color.Color = color.Black

	Width  vg.Length = 6.4 * vg.Inch
	Height vg.Length = 4.8 * vg.Inch
)

// Box is one allele share of a single copy.
type Box struct {
	X, Y, Width, Height float64
	Mutant              bool
}

// Segment is a horizontal connector between two copies.
type Segment struct {
	X1, X2, Y float64
}

// Label is a text annotation, anchored at its bottom left corner.
type Label struct {
	X, Y float64
	Text string
}

// Figure holds every element of the diagram in data coordinates.
type Figure struct {
	XMin, XMax float64
	YMin, YMax float64
	Boxes      []Box
	Connectors []Segment
	Labels     []Label
}

// Layout places the elements for copy numbers 1 through cnMax. Copy number cn is drawn on
// row y = cn. Copy c (1-based) starts at x = c + 0.2c, its mutant box has width equal to the
// mutant proportion and is followed by the wild type box. Consecutive copies are linked by a
// connector and the number of genomes in the group is written after the last copy.
func Layout(cnMax int, tables map[int]aggregate.Table) Figure {
	fig := Figure{
		XMin: 1,
		XMax: float64(cnMax) * 1.5,
		YMin: 0.5,
		YMax: float64(cnMax) * 1.2,
	}

	var x, y, shift, end float64
	for _, cn := range aggregate.CopyNumbers(tables) {
		if cn > cnMax {
			continue
		}
		t := tables[cn]
		y = float64(cn)
		for i, p := range t.Proportions {
			x = float64(i + 1)
			shift = float64(i+1) * copySpacing
			fig.Boxes = append(fig.Boxes,
				Box{X: x + shift, Y: y, Width: p, Height: boxHeight, Mutant: true},
				Box{X: x + p + shift, Y: y, Width: 1 - p, Height: boxHeight})
			end = x + 1 + shift
			if i+1 < cn {
				fig.Connectors = append(fig.Connectors, Segment{X1: end, X2: end + copySpacing, Y: y + boxHeight/2})
			} else {
				fig.Labels = append(fig.Labels, Label{X: end + copySpacing, Y: y + boxHeight/2 - labelDrop, Text: fmt.Sprintf("%d", t.Count)})
			}
		}
	}
	return fig
}

// copyBoxes draws filled, outlined rectangles.
type copyBoxes struct {
	boxes []Box
	edge  draw.LineStyle
}

func (b copyBoxes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	var fill color.Color
	for _, bx := range b.boxes {
		pts := []vg.Point{
			{X: trX(bx.X), Y: trY(bx.Y)},
			{X: trX(bx.X + bx.Width), Y: trY(bx.Y)},
			{X: trX(bx.X + bx.Width), Y: trY(bx.Y + bx.Height)},
			{X: trX(bx.X), Y: trY(bx.Y + bx.Height)},
		}
		fill = WildTypeColor
		if bx.Mutant {
			fill = MutantColor
		}
		if bx.Width > 0 {
			c.FillPolygon(fill, pts)
		}
		c.StrokeLines(b.edge, append(pts, pts[0]))
	}
}

func (b copyBoxes) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(b.boxes) == 0 {
		return 0, 0, 0, 0
	}
	xmin, ymin = b.boxes[0].X, b.boxes[0].Y
	for _, bx := range b.boxes {
		if bx.X < xmin {
			xmin = bx.X
		}
		if bx.Y < ymin {
			ymin = bx.Y
		}
		if bx.X+bx.Width > xmax {
			xmax = bx.X + bx.Width
		}
		if bx.Y+bx.Height > ymax {
			ymax = bx.Y + bx.Height
		}
	}
	return
}

// Plot assembles a gonum plot of fig.
func Plot(fig Figure) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()

	edge := draw.LineStyle{Color: EdgeColor, Width: vg.Points(1)}
	p.Add(copyBoxes{boxes: fig.Boxes, edge: edge})

	for _, s := range fig.Connectors {
		l, err := plotter.NewLine(plotter.XYs{{X: s.X1, Y: s.Y}, {X: s.X2, Y: s.Y}})
		if err != nil {
			return nil, err
		}
		l.LineStyle = draw.LineStyle{Color: EdgeColor, Width: vg.Points(0.75)}
		p.Add(l)
	}

	if len(fig.Labels) > 0 {
		var xyl plotter.XYLabels
		for _, l := range fig.Labels {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: l.X, Y: l.Y})
			xyl.Labels = append(xyl.Labels, l.Text)
		}
		labels, err := plotter.NewLabels(xyl)
		if err != nil {
			return nil, err
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].Font.Style = xfont.StyleItalic
			labels.TextStyle[i].XAlign = text.XLeft
			labels.TextStyle[i].YAlign = text.YBottom
		}
		p.Add(labels)
	}

	p.X.Min, p.X.Max = fig.XMin, fig.XMax
	p.Y.Min, p.Y.Max = fig.YMin, fig.YMax
	return p, nil
}

// Render draws fig to filename. The format is chosen from the file extension. PNG output
// is rasterized at 300 dpi; eps, pdf, svg, and the other formats understood by gonum/plot
// are written by plot.Save.
func Render(fig Figure, filename string) error {
	p, err := Plot(fig)
	if err != nil {
		return err
	}

	if strings.ToLower(filepath.Ext(filename)) != ".png" {
		return p.Save(Width, Height, filename)
	}

	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(pngDpi))
	p.Draw(draw.New(c))
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
