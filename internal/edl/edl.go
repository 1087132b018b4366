package edl

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/zsiec/cutcheck/internal/errors"
)

// Event is one edit event matched out of the list text. The four
// timecodes are carried verbatim, in the column order the format
// defines: source in, source out, record in, record out.
type Event struct {
	SourceIn  string
	SourceOut string
	RecordIn  string
	RecordOut string
}

// eventPattern matches four consecutive whitespace-separated timecode
// tokens. \s+ crosses newlines on purpose: some lists wrap the record
// columns onto the next line, and the tool that authored the fixtures
// matched those too. Everything else in the file is ignored.
var eventPattern = regexp.MustCompile(
	`(?P<source_in>([0-9]{2}):([0-9]{2}):([0-9]{2}):([0-9]{2}))\s+` +
		`(?P<source_out>([0-9]{2}):([0-9]{2}):([0-9]{2}):([0-9]{2}))\s+` +
		`(?P<record_in>([0-9]{2}):([0-9]{2}):([0-9]{2}):([0-9]{2}))\s+` +
		`(?P<record_out>([0-9]{2}):([0-9]{2}):([0-9]{2}):([0-9]{2}))`)

var (
	sourceInIdx  = eventPattern.SubexpIndex("source_in")
	sourceOutIdx = eventPattern.SubexpIndex("source_out")
	recordInIdx  = eventPattern.SubexpIndex("record_in")
	recordOutIdx = eventPattern.SubexpIndex("record_out")
)

// ScanBytes returns every event in the text, non-overlapping, in input
// order. A run of eight timecode tokens therefore yields two events.
func ScanBytes(data []byte) []Event {
	matches := eventPattern.FindAllSubmatch(data, -1)

	events := make([]Event, 0, len(matches))
	for _, m := range matches {
		events = append(events, Event{
			SourceIn:  string(m[sourceInIdx]),
			SourceOut: string(m[sourceOutIdx]),
			RecordIn:  string(m[recordInIdx]),
			RecordOut: string(m[recordOutIdx]),
		})
	}

	return events
}

// Scan reads the whole list before matching. Streaming would break
// events that span a read boundary, and edit lists are small.
func Scan(r io.Reader) ([]Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapInternalError(err, "reading edit list")
	}

	return ScanBytes(data), nil
}

// ScanFile reads and scans the edit list at path.
func ScanFile(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInternalError(err, fmt.Sprintf("reading edit list %s", path))
	}

	return ScanBytes(data), nil
}
