// Package hp provides fixed-precision real arithmetic for deep-zoom
// coordinates. All operations round toward negative infinity, so a chain of
// operations on equal inputs is bit-for-bit deterministic regardless of which
// worker computes it.
package hp

import "math/big"

// DefaultPrec is the default mantissa width in bits. 128 bits is enough to
// keep pixel boundaries stable far past float64 zoom depth.
const DefaultPrec = 128

// Real is an immutable fixed-precision real number. Operations never modify
// their operands; each returns a freshly allocated result carrying the
// receiver's precision. The zero value is not usable; construct with New or
// NewWithPrec.
type Real struct {
	f *big.Float
}

// New returns a Real with DefaultPrec holding x.
func New(x float64) Real {
	return NewWithPrec(x, DefaultPrec)
}

// NewWithPrec returns a Real with the given mantissa width holding x.
func NewWithPrec(x float64, prec uint) Real {
	return Real{f: new(big.Float).SetPrec(prec).SetMode(big.ToNegativeInf).SetFloat64(x)}
}

func (a Real) result() *big.Float {
	return new(big.Float).SetPrec(a.f.Prec()).SetMode(big.ToNegativeInf)
}

// Add returns a + b.
func (a Real) Add(b Real) Real {
	return Real{f: a.result().Add(a.f, b.f)}
}

// Sub returns a - b.
func (a Real) Sub(b Real) Real {
	return Real{f: a.result().Sub(a.f, b.f)}
}

// Mul returns a * b.
func (a Real) Mul(b Real) Real {
	return Real{f: a.result().Mul(a.f, b.f)}
}

// MulFloat returns a * x, with x converted at the receiver's precision.
func (a Real) MulFloat(x float64) Real {
	return Real{f: a.result().Mul(a.f, a.convert(x))}
}

// DivFloat returns a / x, with x converted at the receiver's precision.
func (a Real) DivFloat(x float64) Real {
	return Real{f: a.result().Quo(a.f, a.convert(x))}
}

// convert brings a float64 operand to the receiver's precision. The
// conversion itself rounds down like every other step; at precisions below
// float64's 53 mantissa bits it is a real rounding, not a widening.
func (a Real) convert(x float64) *big.Float {
	return new(big.Float).SetPrec(a.f.Prec()).SetMode(big.ToNegativeInf).SetFloat64(x)
}

// Cmp returns -1, 0 or +1 according to whether a is less than, equal to or
// greater than b. Comparison is exact.
func (a Real) Cmp(b Real) int {
	return a.f.Cmp(b.f)
}

// CmpFloat compares a against the float64 x exactly.
func (a Real) CmpFloat(x float64) int {
	return a.f.Cmp(new(big.Float).SetFloat64(x))
}

// Prec returns the mantissa width of a in bits.
func (a Real) Prec() uint {
	return a.f.Prec()
}

// Float64 returns the nearest float64 to a.
func (a Real) Float64() float64 {
	x, _ := a.f.Float64()
	return x
}

func (a Real) String() string {
	return a.f.Text('g', 20)
}
