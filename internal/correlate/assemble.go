package correlate

import (
	"github.com/zsiec/cutcheck/internal/edl"
	"github.com/zsiec/cutcheck/internal/errors"
	"github.com/zsiec/cutcheck/internal/logger"
	"github.com/zsiec/cutcheck/internal/timecode"
	"github.com/zsiec/cutcheck/internal/xmeml"
)

// Assemble cross-validates the timeline against the EDL events and
// builds the fixture aggregate. Events are processed in input order,
// never re-sorted, filtered, or deduplicated; the first failure aborts
// with nothing assembled.
func Assemble(doc *xmeml.Document, events []edl.Event, log logger.Logger) (*SequenceInfo, error) {
	total, err := doc.SequenceDuration()
	if err != nil {
		return nil, err
	}
	log.WithField("total_duration_frames", total).Info("read sequence duration")

	point, err := doc.SequenceTimecode()
	if err != nil {
		return nil, err
	}

	seqRate, err := timecode.NewRate(point.Rate.Timebase, point.Rate.NTSC, point.Rate.DropFrame)
	if err != nil {
		return nil, err
	}

	clips := doc.Clips()
	if len(events) != len(clips) {
		return nil, errors.NewEventCountMismatch(len(events), len(clips))
	}
	log.WithField("events", len(events)).Info("events found")

	engine := NewEngine(point.Frame, log)

	records := make([]EventRecord, 0, len(events))
	for i, ev := range events {
		record, err := engine.Record(ev, clips[i])
		if err != nil {
			return nil, withEventIndex(err, i)
		}
		records = append(records, record)
	}

	return &SequenceInfo{
		StartTime:           timecode.FromFrames(point.Timecode, point.Frame, seqRate),
		TotalDurationFrames: total,
		Events:              records,
	}, nil
}

// withEventIndex pins which pair an error surfaced at. Correlation is
// sequential, so the index is deterministic.
func withEventIndex(err error, i int) error {
	if appErr, ok := errors.GetAppError(err); ok {
		if appErr.Details == nil {
			appErr.Details = make(map[string]interface{})
		}
		appErr.Details["event_index"] = i
	}
	return err
}
