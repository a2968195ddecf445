/*

Unit-tagged angle scalars

*/

package gmath

import (
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/unit"
)

// Angle conversion factors. Untyped so they adopt the precision of the
// expression they appear in.
const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Deg is an angle measured in degrees with float32 precision.
//
// A plain Go conversion such as Rad(d) reinterprets the stored number in
// the target unit without rescaling it. Use the To methods to convert
// the measured angle.
type Deg float32

// Rad is an angle measured in radians with float32 precision.
type Rad float32

// Degd is an angle measured in degrees with float64 precision.
type Degd float64

// Radd is an angle measured in radians with float64 precision.
type Radd float64

// Deg methods.

// ToRad converts the angle to radians.
func (a Deg) ToRad() Rad { return Rad(a * degToRad) }

// ToDegd converts the angle to float64 precision.
func (a Deg) ToDegd() Degd { return Degd(a) }

// ToRadd converts the angle to radians with float64 precision. The unit
// conversion is done in float64.
func (a Deg) ToRadd() Radd { return Degd(a).ToRadd() }

// Mul returns the angle scaled by k.
func (a Deg) Mul(k float32) Deg { return a * Deg(k) }

// Div returns the angle divided by k.
func (a Deg) Div(k float32) Deg { return a / Deg(k) }

// Ratio returns the quotient a/b as a dimensionless scalar.
func (a Deg) Ratio(b Deg) float32 { return float32(a / b) }

// Normalized returns the angle wrapped to the range [-180, 180).
func (a Deg) Normalized() Deg {
	v := math32.Mod(float32(a), 360)
	if v < -180 {
		v += 360
	} else if v >= 180 {
		v -= 360
	}
	return Deg(v)
}

// String implements fmt.Stringer.
func (a Deg) String() string { return "Deg(" + ftoa32(float32(a)) + ")" }

// Rad methods.

// ToDeg converts the angle to degrees.
func (a Rad) ToDeg() Deg { return Deg(a * radToDeg) }

// ToRadd converts the angle to float64 precision.
func (a Rad) ToRadd() Radd { return Radd(a) }

// ToDegd converts the angle to degrees with float64 precision. The unit
// conversion is done in float64.
func (a Rad) ToDegd() Degd { return Radd(a).ToDegd() }

// Mul returns the angle scaled by k.
func (a Rad) Mul(k float32) Rad { return a * Rad(k) }

// Div returns the angle divided by k.
func (a Rad) Div(k float32) Rad { return a / Rad(k) }

// Ratio returns the quotient a/b as a dimensionless scalar.
func (a Rad) Ratio(b Rad) float32 { return float32(a / b) }

// Normalized returns the angle wrapped to the range [-pi, pi).
func (a Rad) Normalized() Rad {
	v := math32.Mod(float32(a), 2*math32.Pi)
	if v < -math32.Pi {
		v += 2 * math32.Pi
	} else if v >= math32.Pi {
		v -= 2 * math32.Pi
	}
	return Rad(v)
}

// Sin returns the sine of the angle.
func (a Rad) Sin() float32 { return math32.Sin(float32(a)) }

// Cos returns the cosine of the angle.
func (a Rad) Cos() float32 { return math32.Cos(float32(a)) }

// Tan returns the tangent of the angle.
func (a Rad) Tan() float32 { return math32.Tan(float32(a)) }

// Sincos returns Sin(a), Cos(a).
func (a Rad) Sincos() (sin, cos float32) { return math32.Sincos(float32(a)) }

// String implements fmt.Stringer.
func (a Rad) String() string { return "Rad(" + ftoa32(float32(a)) + ")" }

// Degd methods.

// ToRadd converts the angle to radians.
func (a Degd) ToRadd() Radd { return Radd(a * degToRad) }

// ToDeg converts the angle to float32 precision.
func (a Degd) ToDeg() Deg { return Deg(a) }

// ToRad converts the angle to radians with float32 precision. The unit
// conversion is done in float64 and the result narrowed.
func (a Degd) ToRad() Rad { return Rad(a.ToRadd()) }

// Mul returns the angle scaled by k.
func (a Degd) Mul(k float64) Degd { return a * Degd(k) }

// Div returns the angle divided by k.
func (a Degd) Div(k float64) Degd { return a / Degd(k) }

// Ratio returns the quotient a/b as a dimensionless scalar.
func (a Degd) Ratio(b Degd) float64 { return float64(a / b) }

// Normalized returns the angle wrapped to the range [-180, 180).
func (a Degd) Normalized() Degd {
	v := math.Mod(float64(a), 360)
	if v < -180 {
		v += 360
	} else if v >= 180 {
		v -= 360
	}
	return Degd(v)
}

// String implements fmt.Stringer.
func (a Degd) String() string { return "Degd(" + ftoa64(float64(a)) + ")" }

// Radd methods.

// ToDegd converts the angle to degrees.
func (a Radd) ToDegd() Degd { return Degd(a * radToDeg) }

// ToRad converts the angle to float32 precision.
func (a Radd) ToRad() Rad { return Rad(a) }

// ToDeg converts the angle to degrees with float32 precision. The unit
// conversion is done in float64 and the result narrowed.
func (a Radd) ToDeg() Deg { return Deg(a.ToDegd()) }

// Mul returns the angle scaled by k.
func (a Radd) Mul(k float64) Radd { return a * Radd(k) }

// Div returns the angle divided by k.
func (a Radd) Div(k float64) Radd { return a / Radd(k) }

// Ratio returns the quotient a/b as a dimensionless scalar.
func (a Radd) Ratio(b Radd) float64 { return float64(a / b) }

// Normalized returns the angle wrapped to the range [-pi, pi).
func (a Radd) Normalized() Radd {
	v := math.Mod(float64(a), 2*math.Pi)
	if v < -math.Pi {
		v += 2 * math.Pi
	} else if v >= math.Pi {
		v -= 2 * math.Pi
	}
	return Radd(v)
}

// Sin returns the sine of the angle.
func (a Radd) Sin() float64 { return math.Sin(float64(a)) }

// Cos returns the cosine of the angle.
func (a Radd) Cos() float64 { return math.Cos(float64(a)) }

// Tan returns the tangent of the angle.
func (a Radd) Tan() float64 { return math.Tan(float64(a)) }

// Sincos returns Sin(a), Cos(a).
func (a Radd) Sincos() (sin, cos float64) { return math.Sincos(float64(a)) }

// Unit returns the angle as a gonum unit.Angle.
func (a Radd) Unit() unit.Angle { return unit.Angle(a) }

// RaddFromUnit converts a gonum unit.Angle to a Radd.
func RaddFromUnit(u unit.Angle) Radd { return Radd(u) }

// String implements fmt.Stringer.
func (a Radd) String() string { return "Radd(" + ftoa64(float64(a)) + ")" }

// Inverse trigonometry. Results are tagged radians at the precision of
// the argument.

// Asin returns the arc sine of x in radians.
func Asin(x float32) Rad { return Rad(math32.Asin(x)) }

// Acos returns the arc cosine of x in radians.
func Acos(x float32) Rad { return Rad(math32.Acos(x)) }

// Atan returns the arc tangent of x in radians.
func Atan(x float32) Rad { return Rad(math32.Atan(x)) }

// Atan2 returns the arc tangent of y/x in radians, using the signs of
// the two to determine the quadrant of the result.
func Atan2(y, x float32) Rad { return Rad(math32.Atan2(y, x)) }

// Asind returns the arc sine of x in radians at float64 precision.
func Asind(x float64) Radd { return Radd(math.Asin(x)) }

// Acosd returns the arc cosine of x in radians at float64 precision.
func Acosd(x float64) Radd { return Radd(math.Acos(x)) }

// Atand returns the arc tangent of x in radians at float64 precision.
func Atand(x float64) Radd { return Radd(math.Atan(x)) }

// Atan2d returns the arc tangent of y/x in radians at float64
// precision, using the signs of the two to determine the quadrant.
func Atan2d(y, x float64) Radd { return Radd(math.Atan2(y, x)) }

// ftoa32 formats v with the shortest representation that parses back to
// the same float32.
func ftoa32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func ftoa64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
