// Released under an MIT license. See LICENSE.

package engine

import (
	"math"
	"strconv"

	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/atom"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/env"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/errsem"
	"github.com/HaydenSingleton/VT-Plotscript/internal/common/type/expression"
)

// Plot layout constants. Coordinates are emitted in screen orientation,
// with the ordinate negated. Continuous plots are scaled into a box
// boxUnits on a side; discrete plots keep their data coordinates.
const (
	boxUnits       = 20.0 // Scaled width and height of a continuous plot.
	samples        = 50   // Sampling intervals for a continuous plot.
	titleOffset    = 3.0  // Title and abscissa label distance from the box.
	ordinateOffset = 3.0  // Ordinate label distance from the box.
	labelOffset    = 2.0  // Abscissa extremum label distance from the box.
	boundsOffset   = 2.0  // Ordinate extremum label distance from the box.
	snapLimit      = 0.001
)

func evalDiscretePlot(c expression.T, scope *env.T) (expression.T, error) {
	tail := c.Tail()

	if len(tail) != 2 {
		return expression.Empty(), errsem.New("invalid number of arguments for discrete-plot")
	}

	data, err := Eval(tail[0], scope)
	if err != nil {
		return expression.Empty(), err
	}

	options, err := Eval(tail[1], scope)
	if err != nil {
		return expression.Empty(), err
	}

	if !data.IsList() || !options.IsList() {
		return expression.Empty(), errsem.New("an argument to discrete-plot is not a list")
	}

	points := data.Tail()
	if len(points) == 0 {
		return expression.Empty(), errsem.New("no data given to discrete-plot")
	}

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))

	for i := range points {
		if !points[i].IsList() || points[i].TailLength() < 2 {
			return expression.Empty(), errsem.New("data entry in discrete-plot is not a point")
		}

		members := points[i].Tail()

		x := members[0].Head()
		y := members[1].Head()

		xs = append(xs, x.AsNumber())
		ys = append(ys, y.AsNumber())
	}

	xmin, xmax := extrema(xs)
	ymin, ymax := extrema(ys)

	b := builder{scope: scope}

	// Bounding box.
	topLeft := b.point(xmin, -ymax)
	topRight := b.point(xmax, -ymax)
	botLeft := b.point(xmin, -ymin)
	botRight := b.point(xmax, -ymin)

	result := []expression.T{
		b.line(topLeft, botLeft),
		b.line(topRight, botRight),
		b.line(topLeft, topRight),
		b.line(botLeft, botRight),
	}

	// Extremum labels.
	for _, v := range []float64{xmin, xmax, ymin, ymax} {
		result = append(result, expression.New(atom.NewString(formatBound(v))))
	}

	for _, opt := range options.Tail() {
		if !opt.IsList() || opt.TailLength() < 2 {
			return expression.Empty(), errsem.New("option in discrete-plot is not a list")
		}

		result = append(result, opt.Tail()[1])
	}

	// Stems drop to the abscissa, or to the box bottom when the whole
	// range is above it.
	stemBottom := -math.Max(0, ymin)

	for i := range xs {
		p := b.point(xs[i], -ys[i])

		result = append(result, p, b.line(p, b.point(xs[i], stemBottom)))
	}

	if 0 < ymax && 0 > ymin {
		result = append(result, b.line(b.point(xmax, 0), b.point(xmin, 0)))
	}

	if 0 < xmax && 0 > xmin {
		result = append(result, b.line(b.point(0, -ymax), b.point(0, -ymin)))
	}

	if b.err != nil {
		return expression.Empty(), b.err
	}

	plot := expression.NewPlot("DP", result...)
	plot.SetProperty("numpoints", number(float64(len(points))))
	plot.SetProperty("numoptions", number(float64(options.TailLength())))

	return plot, nil
}

func evalContinuousPlot(c expression.T, scope *env.T) (expression.T, error) {
	tail := c.Tail()

	if len(tail) != 2 && len(tail) != 3 {
		return expression.Empty(), errsem.New("invalid number of arguments for continuous-plot")
	}

	fn, err := Eval(tail[0], scope)
	if err != nil {
		return expression.Empty(), err
	}

	if !fn.IsLambda() {
		return expression.Empty(), errsem.New("first argument to continuous-plot not a lambda")
	}

	bounds, err := Eval(tail[1], scope)
	if err != nil {
		return expression.Empty(), err
	}

	if !bounds.IsList() {
		return expression.Empty(), errsem.New("second argument to continuous-plot not a list")
	}

	if bounds.TailLength() != 2 {
		return expression.Empty(), errsem.New("bounds list in continuous-plot must have two entries")
	}

	var opts []expression.T

	if len(tail) == 3 {
		o, err := Eval(tail[2], scope)
		if err != nil {
			return expression.Empty(), err
		}

		if !o.IsList() {
			return expression.Empty(), errsem.New("third argument to continuous-plot not a list")
		}

		opts = o.Tail()
	}

	b0 := bounds.Tail()[0].Head()
	b1 := bounds.Tail()[1].Head()

	al := math.Min(b0.AsNumber(), b1.AsNumber())
	au := math.Max(b0.AsNumber(), b1.AsNumber())

	if al == au {
		return expression.Empty(), errsem.New("bounds in continuous-plot have zero width")
	}

	// Sample the function across the bounds.
	step := (au - al) / samples

	xs := make([]float64, 0, samples+1)
	ys := make([]float64, 0, samples+1)

	for i := 0; i <= samples; i++ {
		x := al + step*float64(i)

		v, err := applyLambda(fn, []expression.T{expression.New(atom.NewNumber(x))}, scope)
		if err != nil {
			return expression.Empty(), err
		}

		h := v.Head()
		if !h.IsNumber() {
			return expression.Empty(), errsem.New("function in continuous-plot did not return a number")
		}

		xs = append(xs, x)
		ys = append(ys, h.AsNumber())
	}

	ol, ou := extrema(ys)

	xscale := boxUnits / (au - al)
	yscale := -1.0

	if ou != ol {
		yscale = boxUnits / (ou - ol) * -1
	}

	b := builder{scope: scope}

	// Polyline through the scaled samples.
	prev := b.point(snap(xs[0]*xscale), snap(ys[0]*yscale))

	var result []expression.T

	for i := 1; i < len(xs); i++ {
		next := b.point(snap(xs[i]*xscale), snap(ys[i]*yscale))
		result = append(result, b.line(prev, next))
		prev = next
	}

	xmin, xmax := al*xscale, au*xscale
	ymin, ymax := ol*yscale, ou*yscale

	topLeft := b.point(xmin, ymax)
	topRight := b.point(xmax, ymax)
	botLeft := b.point(xmin, ymin)
	botRight := b.point(xmax, ymin)

	result = append(result,
		b.line(topLeft, botLeft),
		b.line(topRight, botRight),
		b.line(topLeft, topRight),
		b.line(botLeft, botRight),
	)

	if 0 < ou || 0 > ol {
		result = append(result, b.line(b.point(xmax, 0), b.point(xmin, 0)))
	}

	if 0 < au || 0 > al {
		result = append(result, b.line(b.point(0, ymax), b.point(0, ymin)))
	}

	// Extremum labels.
	result = append(result,
		b.text(formatBound(al), xmin, ymin+labelOffset),
		b.text(formatBound(au), xmax, ymin+labelOffset),
		b.text(formatBound(ol), xmin-boundsOffset, ymin),
		b.text(formatBound(ou), xmin-boundsOffset, ymax),
	)

	xmiddle := (xmax + xmin) / 2
	ymiddle := (ymin + ymax) / 2

	for _, opt := range opts {
		if !opt.IsList() || opt.TailLength() < 2 {
			return expression.Empty(), errsem.New("option in continuous-plot is not a list")
		}

		key := opt.Tail()[0].Head()
		value := opt.Tail()[1].Head()

		if !value.IsString() {
			return expression.Empty(), errsem.New("option value in continuous-plot is not a string")
		}

		label := b.make("make-text", expression.New(value))

		switch key.AsSymbol() {
		case "title":
			b.position(&label, xmiddle, ymax-titleOffset)
		case "abscissa-label":
			b.position(&label, xmiddle, ymin+titleOffset)
		case "ordinate-label":
			b.position(&label, xmin-ordinateOffset, ymiddle)
		}

		result = append(result, label)
	}

	if b.err != nil {
		return expression.Empty(), b.err
	}

	plot := expression.NewPlot("CP", result...)
	plot.SetProperty("numpoints", number(samples+1))
	plot.SetProperty("numoptions", number(float64(len(opts))))

	return plot, nil
}

// builder constructs drawable primitives through the same procedures
// the language exposes, remembering the first failure.
type builder struct {
	scope *env.T
	err   error
}

func (b *builder) make(name string, args ...expression.T) expression.T {
	if b.err != nil {
		return expression.Empty()
	}

	v, err := Apply(atom.NewSymbol(name), args, b.scope)
	if err != nil {
		b.err = err

		return expression.Empty()
	}

	return v
}

func (b *builder) point(x, y float64) expression.T {
	return b.make("make-point", number(x), number(y))
}

func (b *builder) line(from, to expression.T) expression.T {
	return b.make("make-line", from, to)
}

func (b *builder) text(s string, x, y float64) expression.T {
	t := b.make("make-text", expression.New(atom.NewString(s)))
	b.position(&t, x, y)

	return t
}

func (b *builder) position(t *expression.T, x, y float64) {
	t.SetProperty(`"position"`, b.point(x, y))
}

func extrema(vs []float64) (min, max float64) {
	min, max = vs[0], vs[0]

	for _, v := range vs[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	return min, max
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func number(v float64) expression.T {
	return expression.New(atom.NewNumber(v))
}

func snap(v float64) float64 {
	if math.Abs(v) < snapLimit {
		return 0
	}

	return v
}
