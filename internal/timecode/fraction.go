package timecode

import (
	"encoding/json"
	"math/big"
	"strconv"
)

// Fraction is an exact rational number (numerator/denominator).
// Values are always reduced with a positive denominator, so equal
// fractions compare equal with ==.
type Fraction struct {
	Num int64 // Numerator
	Den int64 // Denominator, > 0
}

// NewFraction creates a reduced fraction
func NewFraction(num, den int64) Fraction {
	if den == 0 {
		den = 1
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Fraction{Num: num, Den: den}
}

// String renders the fraction the way rate metadata carries it:
// "num/den", or just "num" when the denominator is 1.
func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return strconv.FormatInt(f.Num, 10) + "/" + strconv.FormatInt(f.Den, 10)
}

// Rat returns the fraction as a fresh big.Rat, so shared values stay
// immutable.
func (f Fraction) Rat() *big.Rat {
	return big.NewRat(f.Num, f.Den)
}

// MarshalJSON emits the fraction in its string form.
func (f Fraction) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Common editorial frame rates
var (
	FrameRate24 = Fraction{Num: 24, Den: 1} // 24 fps
	FrameRate25 = Fraction{Num: 25, Den: 1} // 25 fps (PAL)
	FrameRate30 = Fraction{Num: 30, Den: 1} // 30 fps

	// NTSC pulldown rates
	FrameRate23_976 = Fraction{Num: 24000, Den: 1001} // 23.976 fps
	FrameRate29_97  = Fraction{Num: 30000, Den: 1001} // 29.97 fps
	FrameRate59_94  = Fraction{Num: 60000, Den: 1001} // 59.94 fps
)
