package timecode

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/zsiec/cutcheck/internal/errors"
)

// Rate describes how frame counts map onto wall time: the nominal
// integer timebase, the NTSC and drop-frame flags as declared in the
// source material, and the exact frame rate they resolve to.
type Rate struct {
	Timebase  int64    `json:"timebase"`
	NTSC      bool     `json:"ntsc"`
	DropFrame bool     `json:"drop_frame"`
	FrameRate Fraction `json:"frame_rate_frac"`
}

// NewRate resolves raw rate metadata into an exact frame rate. NTSC
// scales the integer timebase by 1000/1001. Drop-frame is carried as
// display metadata and never changes arithmetic.
func NewRate(timebase int64, ntsc, dropFrame bool) (Rate, error) {
	if timebase < 1 {
		return Rate{}, errors.NewMalformedNumber("rate/timebase",
			strconv.FormatInt(timebase, 10), fmt.Errorf("timebase must be positive"))
	}

	fr := NewFraction(timebase, 1)
	if ntsc {
		fr = NewFraction(timebase*1000, 1001)
	}

	return Rate{
		Timebase:  timebase,
		NTSC:      ntsc,
		DropFrame: dropFrame,
		FrameRate: fr,
	}, nil
}

// Seconds returns the exact duration of a frame count under this rate.
func (r Rate) Seconds(frames int64) *big.Rat {
	return new(big.Rat).SetFrac(
		new(big.Int).Mul(big.NewInt(frames), big.NewInt(r.FrameRate.Den)),
		big.NewInt(r.FrameRate.Num),
	)
}
