package correlate

import (
	"github.com/zsiec/cutcheck/internal/edl"
	"github.com/zsiec/cutcheck/internal/errors"
	"github.com/zsiec/cutcheck/internal/logger"
	"github.com/zsiec/cutcheck/internal/timecode"
	"github.com/zsiec/cutcheck/internal/xmeml"
)

// EventRecord is one cross-validated edit event. All four boundaries
// are represented under the source file's rate, record side included.
// That reproduces the behavior of the tool whose fixtures downstream
// tests already depend on.
type EventRecord struct {
	DurationFrames int64                   `json:"duration_frames"`
	SourceIn       timecode.Representation `json:"source_in"`
	SourceOut      timecode.Representation `json:"source_out"`
	RecordIn       timecode.Representation `json:"record_in"`
	RecordOut      timecode.Representation `json:"record_out"`
}

// SequenceInfo is the full fixture aggregate.
type SequenceInfo struct {
	StartTime           timecode.Representation `json:"start_time"`
	TotalDurationFrames int64                   `json:"total_duration_frames"`
	Events              []EventRecord           `json:"events"`
}

// sourceBase is the per-file resolution cached by file identity: the
// file's rate and the frame its timecode starts at.
type sourceBase struct {
	rate       timecode.Rate
	startFrame int64
}

// Engine pairs EDL events with timeline clips. It owns the only
// mutable state in the pipeline, the file-identity cache, which is
// populated on first sight of an id and read-only afterwards.
type Engine struct {
	timelineStart int64
	sources       map[string]sourceBase
	log           logger.Logger
}

// NewEngine creates an engine for one run. timelineStart is the
// sequence's own start frame, resolved by the caller before any
// events are processed.
func NewEngine(timelineStart int64, log logger.Logger) *Engine {
	return &Engine{
		timelineStart: timelineStart,
		sources:       make(map[string]sourceBase),
		log:           log,
	}
}

// Record correlates one EDL event with one clip and returns the
// validated record. The textual timecodes come from the EDL; every
// frame number comes from the clip, shifted onto its absolute base.
func (e *Engine) Record(ev edl.Event, clip xmeml.Clip) (EventRecord, error) {
	id, err := clip.FileID()
	if err != nil {
		return EventRecord{}, err
	}

	base, ok := e.sources[id]
	if !ok {
		base, err = e.resolveSource(id, clip)
		if err != nil {
			return EventRecord{}, err
		}
		e.sources[id] = base
	}

	in, err := clip.In()
	if err != nil {
		return EventRecord{}, err
	}
	out, err := clip.Out()
	if err != nil {
		return EventRecord{}, err
	}
	start, err := clip.Start()
	if err != nil {
		return EventRecord{}, err
	}
	end, err := clip.End()
	if err != nil {
		return EventRecord{}, err
	}

	sourceIn := in + base.startFrame
	sourceOut := out + base.startFrame
	recordIn := start + e.timelineStart
	recordOut := end + e.timelineStart

	sourceDur := sourceOut - sourceIn
	recordDur := recordOut - recordIn
	if sourceDur != recordDur {
		return EventRecord{}, errors.NewDurationMismatch(sourceDur, recordDur)
	}

	return EventRecord{
		DurationFrames: recordDur,
		SourceIn:       timecode.FromFrames(ev.SourceIn, sourceIn, base.rate),
		SourceOut:      timecode.FromFrames(ev.SourceOut, sourceOut, base.rate),
		RecordIn:       timecode.FromFrames(ev.RecordIn, recordIn, base.rate),
		RecordOut:      timecode.FromFrames(ev.RecordOut, recordOut, base.rate),
	}, nil
}

// resolveSource reads a file's rate declaration and start frame. Runs
// at most once per file id; repeated references carry no timecode
// body to read from.
func (e *Engine) resolveSource(id string, clip xmeml.Clip) (sourceBase, error) {
	point, err := clip.FileTimecode()
	if err != nil {
		return sourceBase{}, err
	}

	rate, err := timecode.NewRate(point.Rate.Timebase, point.Rate.NTSC, point.Rate.DropFrame)
	if err != nil {
		return sourceBase{}, err
	}

	e.log.WithFields(logger.Fields{
		"file_id":     id,
		"frame_rate":  rate.FrameRate.String(),
		"start_frame": point.Frame,
	}).Debug("resolved source file rate")

	return sourceBase{rate: rate, startFrame: point.Frame}, nil
}
