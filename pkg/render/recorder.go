// pkg/render/recorder.go
package render

import "image/color"

// DrawOp is one Fill or Stroke captured by a Recorder.
type DrawOp struct {
	Fill      bool // false: stroke
	Color     color.Color
	LineWidth float64
	Path      []Subpath
}

// Recorder is a Surface that remembers what was drawn instead of drawing
// it. Tests use it to assert on frames without a GPU.
type Recorder struct {
	Clears int
	Ops    []DrawOp

	path   Path
	stroke color.Color
	fill   color.Color
	width  float64
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{stroke: color.Black, fill: color.Black, width: 1}
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Clears = 0
	r.Ops = nil
	r.path.Reset()
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Clears++
	r.Ops = nil
}

func (r *Recorder) BeginPath()                   { r.path.Reset() }
func (r *Recorder) MoveTo(x, y float64)          { r.path.MoveTo(x, y) }
func (r *Recorder) LineTo(x, y float64)          { r.path.LineTo(x, y) }
func (r *Recorder) ClosePath()                   { r.path.Close() }
func (r *Recorder) Circle(x, y, rad float64)     { r.path.Circle(x, y, rad) }
func (r *Recorder) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Recorder) SetFillColor(c color.Color)   { r.fill = c }
func (r *Recorder) SetLineWidth(w float64)       { r.width = w }

func (r *Recorder) Stroke() {
	r.Ops = append(r.Ops, DrawOp{Color: r.stroke, LineWidth: r.width, Path: r.path.Clone()})
}

func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, DrawOp{Fill: true, Color: r.fill, LineWidth: r.width, Path: r.path.Clone()})
}

// Filled returns the fill operations of the current frame.
func (r *Recorder) Filled() []DrawOp { return r.filter(true) }

// Stroked returns the stroke operations of the current frame.
func (r *Recorder) Stroked() []DrawOp { return r.filter(false) }

func (r *Recorder) filter(fill bool) []DrawOp {
	var out []DrawOp
	for _, op := range r.Ops {
		if op.Fill == fill {
			out = append(out, op)
		}
	}
	return out
}
