package timecode

import "math/big"

// Representation is the full bundle of time representations for one
// frame count under one rate. Every non-integer value travels as a
// string so the serialized form is float-free.
type Representation struct {
	Rate
	Timecode        string `json:"timecode"`
	Frame           int64  `json:"frame"`
	SecondsRational string `json:"seconds_rational"`
	SecondsDecimal  string `json:"seconds_decimal"`
	Runtime         string `json:"runtime"`
	FeetAndFrames   string `json:"feet_and_frames"`
}

// FromFrames converts a frame count under a rate into its
// representation bundle. The timecode string is carried verbatim from
// the input; nothing validates it against the frame count. Negative
// frame counts are not rejected and flow through the arithmetic.
//
// The pipeline is ordered: exact rational seconds, then the decimal
// approximation, then a nine-digit half-away-from-zero quantize that
// only feeds the runtime string. The serialized decimal is the
// unquantized one, and the quantize consumes the decimal approximation
// rather than the exact rational.
func FromFrames(tc string, frames int64, rate Rate) Representation {
	seconds := rate.Seconds(frames)

	num := seconds.Num()
	dec := divDecimal(new(big.Int).Abs(num), seconds.Denom())
	dec.neg = num.Sign() < 0 && dec.coef.Sign() != 0

	return Representation{
		Rate:            rate,
		Timecode:        tc,
		Frame:           frames,
		SecondsRational: seconds.RatString(),
		SecondsDecimal:  dec.String(),
		Runtime:         runtimeString(dec.quantize9()),
		FeetAndFrames:   FeetAndFrames(frames),
	}
}
