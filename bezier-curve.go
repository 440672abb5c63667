// Package beziercurve builds natural cubic Bezier splines through ordered
// point sequences and evaluates their segments.
package beziercurve

import (
	"fmt"
	"math"
	"slices"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Evaluator maps a segment parameter to a point on the curve.
type Evaluator interface {
	At(t float64) Point
}

// Segment is one cubic piece: anchors P0 and P3, controls P1 and P2.
type Segment struct {
	P0, P1, P2, P3 Point
}

// At evaluates the cubic at t. Values outside [0,1] are not clamped and
// extrapolate the polynomial.
func (s Segment) At(t float64) Point {
	mt := 1 - t
	k0 := mt * mt * mt
	k1 := 3 * mt * mt * t
	k2 := 3 * mt * t * t
	k3 := t * t * t
	return Point{
		X: k0*s.P0.X + k1*s.P1.X + k2*s.P2.X + k3*s.P3.X,
		Y: k0*s.P0.Y + k1*s.P1.Y + k2*s.P2.Y + k3*s.P3.Y,
	}
}

// Curve is an immutable sequence of segments joining consecutive points.
type Curve struct {
	points   []Point
	a, b     []Point
	segments []Segment
}

// New builds the curve through points. At least two finite points are
// required.
func New(points []Point) (*Curve, error) {
	a, b, err := Coefficients(points)
	if err != nil {
		return nil, err
	}

	c := &Curve{
		points:   slices.Clone(points),
		a:        a,
		b:        b,
		segments: make([]Segment, len(a)),
	}
	for i := range c.segments {
		c.segments[i] = Segment{P0: c.points[i], P1: a[i], P2: b[i], P3: c.points[i+1]}
	}
	return c, nil
}

// Len returns the number of segments.
func (c *Curve) Len() int {
	return len(c.segments)
}

// Segment returns segment i, spanning points[i] to points[i+1].
// It panics if i is not in [0, Len()).
func (c *Curve) Segment(i int) Segment {
	return c.segments[i]
}

func (c *Curve) Segments() []Evaluator {
	evs := make([]Evaluator, len(c.segments))
	for i, s := range c.segments {
		evs[i] = s
	}
	return evs
}

func (c *Curve) Points() []Point {
	return slices.Clone(c.points)
}

// Sample evaluates every segment at n evenly spaced parameters in [0,1]
// and concatenates the results into one polyline. Both anchors of each
// segment are included, so interior points appear twice. With n == 1 only
// the segment starts are returned; n < 1 returns nil.
func (c *Curve) Sample(n int) []Point {
	if n < 1 {
		return nil
	}

	out := make([]Point, 0, n*len(c.segments))
	for _, s := range c.segments {
		for k := 0; k < n; k++ {
			t := 0.0
			if n > 1 {
				t = float64(k) / float64(n-1)
			}
			out = append(out, s.At(t))
		}
	}
	return out
}

// Controls returns copies of the first and second control points of every
// segment.
func (c *Curve) Controls() (a, b []Point) {
	return slices.Clone(c.a), slices.Clone(c.b)
}

// Coefficients computes the control points of each segment of the spline
// through points: a[i] and b[i] shape the segment from points[i] to
// points[i+1].
func Coefficients(points []Point) (a, b []Point, err error) {
	if len(points) < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, nil, fmt.Errorf("%w: point %d is %v", ErrNonFinite, i, p)
		}
	}

	n := len(points) - 1
	sub, diag, super := bands(n)

	ax, err := solveAxis(points, sub, diag, super, func(p Point) float64 { return p.X })
	if err != nil {
		return nil, nil, err
	}
	ay, err := solveAxis(points, sub, diag, super, func(p Point) float64 { return p.Y })
	if err != nil {
		return nil, nil, err
	}

	a = make([]Point, n)
	for i := range a {
		a[i] = Point{X: ax[i], Y: ay[i]}
	}

	b = make([]Point, n)
	for i := 0; i < n-1; i++ {
		b[i] = points[i+1].Scale(2).Sub(a[i+1])
	}
	b[n-1] = a[n-1].Add(points[n]).Scale(0.5)

	return a, b, nil
}

// bands returns the fixed coefficient matrix for n segments.
func bands(n int) (sub, diag, super []float64) {
	sub = make([]float64, n-1)
	super = make([]float64, n-1)
	for i := range sub {
		sub[i] = 1
		super[i] = 1
	}
	if n > 1 {
		sub[n-2] = 2
	}

	diag = make([]float64, n)
	for i := range diag {
		diag[i] = 4
	}
	diag[0] = 2
	diag[n-1] = 7

	return
}

// solveAxis solves the control point system for the coordinate picked by
// axis. Axes are independent of each other.
func solveAxis(points []Point, sub, diag, super []float64, axis func(Point) float64) ([]float64, error) {
	n := len(points) - 1

	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = 2 * (2*axis(points[i]) + axis(points[i+1]))
	}
	rhs[0] = axis(points[0]) + 2*axis(points[1])
	rhs[n-1] = 8*axis(points[n-1]) + axis(points[n])

	return SolveTridiagonal(sub, diag, super, rhs)
}

func (c *Curve) String() string {
	return fmt.Sprintf("Bezier curve: %d segments, points: %v", len(c.segments), c.points)
}
