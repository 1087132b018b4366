package timecode

import (
	"math/big"
	"strconv"
	"strings"
)

// decPrecision is the significand budget for decimal division,
// matching the runtime whose output the fixture format preserves.
const decPrecision = 28

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// decValue is an arbitrary-precision decimal: |value| = coef * 10^exp.
// coef is never negative; neg carries the sign so the digit string
// stays unsigned through decomposition.
type decValue struct {
	neg  bool
	coef *big.Int
	exp  int
}

// divDecimal divides num/den into a decimal of at most decPrecision
// significant digits. Terminating expansions that fit the budget come
// out exact with their minimal digits and an exponent no higher than
// the ideal 0; everything else carries exactly decPrecision digits
// with the last one rounded half to even. num/den must be in lowest
// terms, num >= 0, den > 0.
func divDecimal(num, den *big.Int) decValue {
	if num.Sign() == 0 {
		return decValue{coef: new(big.Int), exp: 0}
	}

	if m, ok := exactShift(den); ok {
		coef := new(big.Int).Mul(num, pow10(m))
		coef.Quo(coef, den)
		if len(coef.Text(10)) <= decPrecision {
			return decValue{coef: coef, exp: -m}
		}
	}

	return divRounded(num, den)
}

// exactShift reports the smallest m with den | 10^m, which exists only
// when den factors into 2s and 5s. With num/den reduced, that minimal
// m also guarantees the resulting coefficient has no trailing zeros.
func exactShift(den *big.Int) (int, bool) {
	rest := new(big.Int).Set(den)
	q := new(big.Int)
	r := new(big.Int)

	twos := 0
	for {
		q.QuoRem(rest, bigTwo, r)
		if r.Sign() != 0 {
			break
		}
		rest.Set(q)
		twos++
	}

	fives := 0
	for {
		q.QuoRem(rest, bigFive, r)
		if r.Sign() != 0 {
			break
		}
		rest.Set(q)
		fives++
	}

	if rest.Cmp(bigOne) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// divRounded produces exactly decPrecision significant digits with the
// final digit rounded half to even.
func divRounded(num, den *big.Int) decValue {
	// e estimates the adjusted exponent; the digit-length check below
	// corrects it when the leading digits straddle a power of ten.
	e := len(num.Text(10)) - len(den.Text(10))

	for {
		k := decPrecision - 1 - e

		var q, r, divisor *big.Int
		if k >= 0 {
			scaled := new(big.Int).Mul(num, pow10(k))
			divisor = den
			q, r = new(big.Int).QuoRem(scaled, divisor, new(big.Int))
		} else {
			divisor = new(big.Int).Mul(den, pow10(-k))
			q, r = new(big.Int).QuoRem(num, divisor, new(big.Int))
		}

		switch digits := len(q.Text(10)); {
		case digits == decPrecision:
			exp := -k
			r.Mul(r, bigTwo)
			if cmp := r.Cmp(divisor); cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
				q.Add(q, bigOne)
				if len(q.Text(10)) > decPrecision {
					q.Quo(q, bigTen)
					exp++
				}
			}
			return decValue{coef: q, exp: exp}
		case digits > decPrecision:
			e++
		default:
			e--
		}
	}
}

// quantize9 rescales to exponent -9 (nine fractional digits), padding
// short values with zeros and rounding long ones half away from zero.
func (d decValue) quantize9() decValue {
	const target = -9

	out := decValue{neg: d.neg, coef: new(big.Int).Set(d.coef), exp: target}
	switch diff := d.exp - target; {
	case diff > 0:
		out.coef.Mul(out.coef, pow10(diff))
	case diff < 0:
		drop := pow10(-diff)
		r := new(big.Int)
		out.coef.QuoRem(out.coef, drop, r)
		r.Mul(r, bigTwo)
		if r.Cmp(drop) >= 0 {
			out.coef.Add(out.coef, bigOne)
		}
	}
	return out
}

// String renders the value the way the generator runtime printed it:
// fixed notation while the exponent is at most 0 and the adjusted
// exponent at least -6, scientific beyond that ("5E-10").
func (d decValue) String() string {
	digits := d.coef.Text(10)
	adjusted := d.exp + len(digits) - 1

	var s string
	if d.exp <= 0 && adjusted >= -6 {
		switch {
		case d.exp == 0:
			s = digits
		case adjusted >= 0:
			s = digits[:adjusted+1] + "." + digits[adjusted+1:]
		default:
			s = "0." + strings.Repeat("0", -adjusted-1) + digits
		}
	} else {
		s = digits
		if len(digits) > 1 {
			s = digits[:1] + "." + digits[1:]
		}
		s += "E"
		if adjusted >= 0 {
			s += "+"
		}
		s += strconv.Itoa(adjusted)
	}

	if d.neg {
		return "-" + s
	}
	return s
}

// runtimeString decomposes a quantized value (exp -9) into
// HH:MM:SS[.frac]. Components are zero-padded to two digits and hours
// grow wider rather than wrap; the fractional part appears only when
// nonzero, with trailing zeros stripped.
func runtimeString(q decValue) string {
	scale := pow10(9)
	intPart, frac := new(big.Int).QuoRem(q.coef, scale, new(big.Int))
	if q.neg {
		intPart.Neg(intPart)
	}

	sixty := big.NewInt(60)
	hours, rem := new(big.Int).QuoRem(intPart, big.NewInt(3600), new(big.Int))
	minutes, seconds := new(big.Int).QuoRem(rem, sixty, new(big.Int))

	out := pad2(hours) + ":" + pad2(minutes) + ":" + pad2(seconds)

	fracDigits := frac.Text(10)
	if len(fracDigits) < 9 {
		fracDigits = strings.Repeat("0", 9-len(fracDigits)) + fracDigits
	}
	if trimmed := strings.TrimRight(fracDigits, "0"); trimmed != "" {
		out += "." + trimmed
	}
	return out
}

func pad2(x *big.Int) string {
	s := x.Text(10)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
