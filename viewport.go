package mandel

import (
	"fmt"

	"github.com/deepzoom/mandel/hp"
)

// Command is one of the five recognized navigation commands.
type Command int

const (
	PanLeft Command = iota
	PanRight
	PanUp
	PanDown
	ZoomIn
)

func (c Command) String() string {
	switch c {
	case PanLeft:
		return "pan-left"
	case PanRight:
		return "pan-right"
	case PanUp:
		return "pan-up"
	case PanDown:
		return "pan-down"
	case ZoomIn:
		return "zoom-in"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Viewport is the rectangle of the complex plane currently mapped onto the
// raster. It is a value type: Pan, ZoomIn and Apply read a full snapshot of
// the four bounds and return a fresh value, so a viewport held by a running
// worker is never mutated under it.
type Viewport struct {
	Left, Right, Top, Bottom hp.Real
}

// NewViewport builds a viewport from float64 bounds at the given precision.
func NewViewport(left, right, top, bottom float64, prec uint) Viewport {
	return Viewport{
		Left:   hp.NewWithPrec(left, prec),
		Right:  hp.NewWithPrec(right, prec),
		Top:    hp.NewWithPrec(top, prec),
		Bottom: hp.NewWithPrec(bottom, prec),
	}
}

// DefaultViewport is the whole-set view the reference starts from.
func DefaultViewport(prec uint) Viewport {
	return NewViewport(-2.5, 1, 1, -1, prec)
}

// Classic landmarks in the Mandelbrot set, handy as starting views.
func SeahorseValley(prec uint) Viewport { return NewViewport(-0.8, -0.7, 0.15, 0.05, prec) }
func ElephantValley(prec uint) Viewport { return NewViewport(-1.85, -1.75, -0.02, -0.10, prec) }
func SpiralMinibrot(prec uint) Viewport { return NewViewport(-0.7435, -0.7420, 0.1325, 0.1310, prec) }
func TripleSpiral(prec uint) Viewport   { return NewViewport(-0.7480, -0.7450, 0.0980, 0.0950, prec) }
func ValleyOfTheDragon(prec uint) Viewport {
	return NewViewport(-0.7400, -0.7350, 0.1850, 0.1800, prec)
}
func MinibrotInMiniSpiral(prec uint) Viewport {
	return NewViewport(-1.7390, -1.7375, -0.0220, -0.0235, prec)
}

// ViewByName resolves a starting view by name: "full" for the whole set, or
// one of the landmarks "seahorse", "elephant", "spiral", "triple", "dragon",
// "minibrot".
func ViewByName(name string, prec uint) (Viewport, error) {
	switch name {
	case "full":
		return DefaultViewport(prec), nil
	case "seahorse":
		return SeahorseValley(prec), nil
	case "elephant":
		return ElephantValley(prec), nil
	case "spiral":
		return SpiralMinibrot(prec), nil
	case "triple":
		return TripleSpiral(prec), nil
	case "dragon":
		return ValleyOfTheDragon(prec), nil
	case "minibrot":
		return MinibrotInMiniSpiral(prec), nil
	}
	return Viewport{}, fmt.Errorf("unknown view %q", name)
}

// Width returns Right - Left.
func (v Viewport) Width() hp.Real {
	return v.Right.Sub(v.Left)
}

// Height returns Top - Bottom.
func (v Viewport) Height() hp.Real {
	return v.Top.Sub(v.Bottom)
}

// Pan shifts the viewport by half its span in the given cardinal direction.
// Width and height are preserved exactly: both bounds on an axis move by the
// same already-rounded delta.
func (v Viewport) Pan(cmd Command) Viewport {
	hdiff := v.Width().DivFloat(2)
	vdiff := v.Height().DivFloat(2)

	switch cmd {
	case PanLeft:
		v.Left = v.Left.Sub(hdiff)
		v.Right = v.Right.Sub(hdiff)
	case PanRight:
		v.Left = v.Left.Add(hdiff)
		v.Right = v.Right.Add(hdiff)
	case PanUp:
		v.Bottom = v.Bottom.Add(vdiff)
		v.Top = v.Top.Add(vdiff)
	case PanDown:
		v.Bottom = v.Bottom.Sub(vdiff)
		v.Top = v.Top.Sub(vdiff)
	}
	return v
}

// ZoomIn halves the width and height, keeping the rectangle centered, by
// moving every bound inward by a quarter of the current span.
func (v Viewport) ZoomIn() Viewport {
	hq := v.Width().DivFloat(4)
	vq := v.Height().DivFloat(4)

	v.Left = v.Left.Add(hq)
	v.Right = v.Right.Sub(hq)
	v.Bottom = v.Bottom.Add(vq)
	v.Top = v.Top.Sub(vq)
	return v
}

// Apply returns the viewport produced by one navigation command.
func (v Viewport) Apply(cmd Command) Viewport {
	if cmd == ZoomIn {
		return v.ZoomIn()
	}
	return v.Pan(cmd)
}

func (v Viewport) validate() error {
	if v.Left.Cmp(v.Right) >= 0 {
		return fmt.Errorf("viewport: left %s is not below right %s", v.Left, v.Right)
	}
	if v.Bottom.Cmp(v.Top) >= 0 {
		return fmt.Errorf("viewport: bottom %s is not below top %s", v.Bottom, v.Top)
	}
	return nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%s, %s] x [%s, %s]", v.Left, v.Right, v.Bottom, v.Top)
}
