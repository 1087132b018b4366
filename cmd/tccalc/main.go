package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/zsiec/cutcheck/internal/timecode"
	"github.com/zsiec/cutcheck/pkg/version"
)

// tccalc converts a single frame count into the full representation
// bundle, for spot-checking conversions without authoring a timeline.
func main() {
	var (
		timebase    int64
		ntsc        bool
		dropFrame   bool
		frames      int64
		tc          string
		showVersion bool
	)

	flag.Int64Var(&timebase, "timebase", 24, "Integer timebase (frames per second before NTSC adjustment)")
	flag.BoolVar(&ntsc, "ntsc", false, "NTSC rate (timebase * 1000/1001)")
	flag.BoolVar(&dropFrame, "df", false, "Drop-frame display format")
	flag.Int64Var(&frames, "frames", 0, "Frame count to convert")
	flag.StringVar(&tc, "tc", "", "Display timecode carried verbatim into the output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Println(version.GetInfo().String())
		os.Exit(0)
	}

	rate, err := timecode.NewRate(timebase, ntsc, dropFrame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid rate: %v\n", err)
		os.Exit(1)
	}

	rep := timecode.FromFrames(tc, frames, rate)

	data, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}
