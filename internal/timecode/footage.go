package timecode

import "fmt"

// framesPerFoot is 35mm 4-perf film: 16 frames to the foot.
const framesPerFoot = 16

// FeetAndFrames renders a film footage counter ("feet+FF") for a frame
// count. Division floors, so the frames component stays in [0, 16)
// even for negative input and feet*16+ff always round-trips.
func FeetAndFrames(frames int64) string {
	feet := frames / framesPerFoot
	ff := frames % framesPerFoot
	if ff < 0 {
		feet--
		ff += framesPerFoot
	}
	return fmt.Sprintf("%d+%02d", feet, ff)
}
