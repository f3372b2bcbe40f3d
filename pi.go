package alignkit

import (
	"fmt"
	"math"

	"alignkit/geom"
	"alignkit/segment"
	"alignkit/synth"
)

// LayoutHorizontalByPI expands a polyline of horizontal points of
// intersection into tangent/arc/tangent segments and appends them one by
// one. radii holds one radius per point; the first and last entries are
// placeholders and ignored, and a zero radius leaves a kink at that
// vertex. Each tangent length is R·tan(Δ/2) for deflection Δ, taken out
// of the straights on either side.
//
// Appends commit independently: on failure the alignment keeps every
// segment appended so far, and the returned count says how many.
func (o *Orchestrator) LayoutHorizontalByPI(points []geom.Point, radii []float64) (int, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("pi layout: %d points: %w", len(points), synth.ErrDegenerateGeometry)
	}
	appended := 0
	app := func(seg *segment.Horizontal) error {
		if _, err := o.AppendHorizontal(seg); err != nil {
			return err
		}
		appended++
		return nil
	}

	cur := points[0]
	for i := 1; i < len(points)-1; i++ {
		pi := points[i]
		vin := pi.Sub(cur)
		vout := points[i+1].Sub(pi)
		delta := normalizeAngle(vout.Angle() - vin.Angle())
		var r float64
		if i < len(radii) {
			r = radii[i]
		}
		if r == 0 || delta == 0 {
			// No curve at this vertex: run the tangent into the PI and
			// let the kink stand.
			if err := app(lineBetween(cur, pi)); err != nil {
				return appended, err
			}
			cur = pi
			continue
		}
		r = math.Abs(r)
		t := r * math.Tan(math.Abs(delta)/2)
		tangentLen := vin.Hypot() - t
		if tangentLen < 0 || t > vout.Hypot() {
			return appended, fmt.Errorf("pi layout: radius %g does not fit at vertex %d: %w", r, i, synth.ErrDegenerateGeometry)
		}
		if tangentLen > 0 {
			if err := app(&segment.Horizontal{
				Type:           segment.Line,
				StartPoint:     cur,
				StartDirection: vin.Angle(),
				Length:         tangentLen,
			}); err != nil {
				return appended, err
			}
		}
		signed := math.Copysign(r, delta)
		if err := app(&segment.Horizontal{
			Type:           segment.CircularArc,
			StartPoint:     pi.Translate(vin.Normalize().Mul(-t)),
			StartDirection: vin.Angle(),
			StartRadius:    signed,
			EndRadius:      signed,
			Length:         r * math.Abs(delta),
		}); err != nil {
			return appended, err
		}
		cur = pi.Translate(vout.Normalize().Mul(t))
	}
	if closing := points[len(points)-1].Sub(cur); closing.Hypot() > 0 {
		if err := app(lineBetween(cur, points[len(points)-1])); err != nil {
			return appended, err
		}
	}
	return appended, nil
}

// LayoutVerticalByPI expands vertical points of intersection, given as
// (distance, height) pairs, into grade/parabola segments on the current
// profile. halfLens holds the parabolic half-length per point; first and
// last entries are placeholders and ignored, and a zero half-length
// leaves a grade break.
func (o *Orchestrator) LayoutVerticalByPI(points []geom.Point, halfLens []float64) (int, error) {
	if len(points) < 2 {
		return 0, fmt.Errorf("vertical pi layout: %d points: %w", len(points), synth.ErrDegenerateGeometry)
	}
	appended := 0
	app := func(seg *segment.Vertical) error {
		if _, err := o.AppendVertical(seg); err != nil {
			return err
		}
		appended++
		return nil
	}
	gradeOf := func(a, b geom.Point) (float64, error) {
		if b.X <= a.X {
			return 0, fmt.Errorf("vertical pi layout: distances not increasing at %g: %w", b.X, synth.ErrDegenerateGeometry)
		}
		return (b.Y - a.Y) / (b.X - a.X), nil
	}

	cur := points[0]
	for i := 1; i < len(points)-1; i++ {
		pi := points[i]
		gin, err := gradeOf(cur, pi)
		if err != nil {
			return appended, err
		}
		gout, err := gradeOf(pi, points[i+1])
		if err != nil {
			return appended, err
		}
		var half float64
		if i < len(halfLens) {
			half = halfLens[i]
		}
		if half <= 0 || gin == gout {
			if err := app(&segment.Vertical{
				Type:           segment.ConstantGradient,
				StartDistAlong: cur.X,
				StartHeight:    cur.Y,
				StartGradient:  gin,
				EndGradient:    gin,
				Length:         pi.X - cur.X,
			}); err != nil {
				return appended, err
			}
			cur = pi
			continue
		}
		gradeLen := pi.X - half - cur.X
		if gradeLen < 0 || pi.X+half > points[i+1].X {
			return appended, fmt.Errorf("vertical pi layout: half-length %g does not fit at vertex %d: %w", half, i, synth.ErrDegenerateGeometry)
		}
		if gradeLen > 0 {
			if err := app(&segment.Vertical{
				Type:           segment.ConstantGradient,
				StartDistAlong: cur.X,
				StartHeight:    cur.Y,
				StartGradient:  gin,
				EndGradient:    gin,
				Length:         gradeLen,
			}); err != nil {
				return appended, err
			}
		}
		if err := app(&segment.Vertical{
			Type:           segment.ParabolicArc,
			StartDistAlong: pi.X - half,
			StartHeight:    pi.Y - gin*half,
			StartGradient:  gin,
			EndGradient:    gout,
			Length:         2 * half,
		}); err != nil {
			return appended, err
		}
		cur = geom.Pt(pi.X+half, pi.Y+gout*half)
	}
	last := points[len(points)-1]
	if last.X > cur.X {
		grade, err := gradeOf(cur, last)
		if err != nil {
			return appended, err
		}
		if err := app(&segment.Vertical{
			Type:           segment.ConstantGradient,
			StartDistAlong: cur.X,
			StartHeight:    cur.Y,
			StartGradient:  grade,
			EndGradient:    grade,
			Length:         last.X - cur.X,
		}); err != nil {
			return appended, err
		}
	}
	return appended, nil
}

func lineBetween(a, b geom.Point) *segment.Horizontal {
	v := b.Sub(a)
	return &segment.Horizontal{
		Type:           segment.Line,
		StartPoint:     a,
		StartDirection: v.Angle(),
		Length:         v.Hypot(),
	}
}

// normalizeAngle wraps an angle into (−π, π].
func normalizeAngle(th float64) float64 {
	for th > math.Pi {
		th -= 2 * math.Pi
	}
	for th <= -math.Pi {
		th += 2 * math.Pi
	}
	return th
}
