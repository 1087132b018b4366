package correlate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsiec/cutcheck/internal/edl"
	"github.com/zsiec/cutcheck/internal/errors"
	"github.com/zsiec/cutcheck/internal/logger"
	"github.com/zsiec/cutcheck/internal/timecode"
	"github.com/zsiec/cutcheck/internal/xmeml"
)

// timecodeXML renders one <timecode> element body.
func timecodeXML(timebase int64, ntsc bool, tc string, frame int64) string {
	ntscText := "FALSE"
	if ntsc {
		ntscText = "TRUE"
	}
	return fmt.Sprintf(
		`<timecode><rate><timebase>%d</timebase><ntsc>%s</ntsc></rate>`+
			`<string>%s</string><frame>%d</frame><displayformat>NDF</displayformat></timecode>`,
		timebase, ntscText, tc, frame)
}

func clipXML(file string, in, out, start, end int64) string {
	return fmt.Sprintf(
		`<clipitem><in>%d</in><out>%d</out><start>%d</start><end>%d</end>%s</clipitem>`,
		in, out, start, end, file)
}

func timelineXML(duration int64, seqTimecode string, clips ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<xmeml version="4"><sequence><duration>%d</duration>%s`, duration, seqTimecode)
	b.WriteString(`<media><video><track>`)
	for _, clip := range clips {
		b.WriteString(clip)
	}
	b.WriteString(`</track></video></media></sequence></xmeml>`)
	return b.String()
}

func parseTimeline(t *testing.T, text string) *xmeml.Document {
	t.Helper()
	doc, err := xmeml.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return doc
}

func rate(t *testing.T, timebase int64, ntsc bool) timecode.Rate {
	t.Helper()
	r, err := timecode.NewRate(timebase, ntsc, false)
	require.NoError(t, err)
	return r
}

func TestAssemble(t *testing.T) {
	// The sequence runs at plain 24 while the source file is NTSC. The
	// second clip references the file by bare id, so it can only
	// resolve through the cache.
	fileBody := `<file id="file-1"><name>A001C003.mov</name>` +
		timecodeXML(24, true, "01:00:00:00", 86400) + `</file>`

	doc := parseTimeline(t, timelineXML(96,
		timecodeXML(24, false, "00:59:53:00", 86232),
		clipXML(fileBody, 0, 48, 0, 48),
		clipXML(`<file id="file-1"/>`, 100, 148, 48, 96),
	))

	events := []edl.Event{
		{SourceIn: "01:00:00:00", SourceOut: "01:00:02:00", RecordIn: "00:59:53:00", RecordOut: "00:59:55:00"},
		{SourceIn: "01:00:04:04", SourceOut: "01:00:06:04", RecordIn: "00:59:55:00", RecordOut: "00:59:57:00"},
	}

	info, err := Assemble(doc, events, logger.NewNullLogger())
	require.NoError(t, err)

	seqRate := rate(t, 24, false)
	fileRate := rate(t, 24, true)

	want := &SequenceInfo{
		StartTime:           timecode.FromFrames("00:59:53:00", 86232, seqRate),
		TotalDurationFrames: 96,
		Events: []EventRecord{
			{
				DurationFrames: 48,
				SourceIn:       timecode.FromFrames("01:00:00:00", 86400, fileRate),
				SourceOut:      timecode.FromFrames("01:00:02:00", 86448, fileRate),
				RecordIn:       timecode.FromFrames("00:59:53:00", 86232, fileRate),
				RecordOut:      timecode.FromFrames("00:59:55:00", 86280, fileRate),
			},
			{
				DurationFrames: 48,
				SourceIn:       timecode.FromFrames("01:00:04:04", 86500, fileRate),
				SourceOut:      timecode.FromFrames("01:00:06:04", 86548, fileRate),
				RecordIn:       timecode.FromFrames("00:59:55:00", 86280, fileRate),
				RecordOut:      timecode.FromFrames("00:59:57:00", 86328, fileRate),
			},
		},
	}

	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("assembled sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleRecordSideUsesSourceRate(t *testing.T) {
	fileBody := `<file id="file-1">` + timecodeXML(30, true, "01:00:00:00", 107892) + `</file>`

	doc := parseTimeline(t, timelineXML(48,
		timecodeXML(24, false, "01:00:00:00", 86400),
		clipXML(fileBody, 0, 48, 0, 48),
	))

	info, err := Assemble(doc, []edl.Event{{}}, logger.NewNullLogger())
	require.NoError(t, err)

	// Sequence rate only shapes the start time. Every event boundary,
	// record side included, carries the file's rate.
	assert.False(t, info.StartTime.NTSC)
	assert.Equal(t, "30000/1001", info.Events[0].RecordIn.FrameRate.String())
	assert.Equal(t, "30000/1001", info.Events[0].RecordOut.FrameRate.String())
	assert.True(t, info.Events[0].RecordIn.NTSC)
}

func TestAssembleDurationCheck(t *testing.T) {
	tests := []struct {
		name    string
		end     int64
		wantErr bool
	}{
		{"matching durations", 148, false},
		{"record one frame long", 149, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileBody := `<file id="file-1">` + timecodeXML(24, false, "00:00:00:00", 0) + `</file>`
			doc := parseTimeline(t, timelineXML(48,
				timecodeXML(24, false, "00:00:00:00", 0),
				clipXML(fileBody, 0, 48, 100, tt.end),
			))

			info, err := Assemble(doc, []edl.Event{{}}, logger.NewNullLogger())
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, int64(48), info.Events[0].DurationFrames)
				assert.Equal(t, int64(100), info.Events[0].RecordIn.Frame)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeDurationMismatch))
			assert.Nil(t, info)

			appErr, ok := errors.GetAppError(err)
			require.True(t, ok)
			assert.Equal(t, int64(48), appErr.Details["source_frames"])
			assert.Equal(t, int64(49), appErr.Details["record_frames"])
			assert.Equal(t, 0, appErr.Details["event_index"])
		})
	}
}

func TestAssembleEventCountMismatch(t *testing.T) {
	fileBody := `<file id="file-1">` + timecodeXML(24, false, "00:00:00:00", 0) + `</file>`
	doc := parseTimeline(t, timelineXML(48,
		timecodeXML(24, false, "00:00:00:00", 0),
		clipXML(fileBody, 0, 48, 0, 48),
	))

	info, err := Assemble(doc, []edl.Event{{}, {}}, logger.NewNullLogger())
	require.Error(t, err)
	assert.Nil(t, info)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEventCountMismatch))

	appErr, ok := errors.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 2, appErr.Details["edl_events"])
	assert.Equal(t, 1, appErr.Details["xml_clips"])
}

func TestAssembleEmptySequence(t *testing.T) {
	doc := parseTimeline(t, timelineXML(0,
		timecodeXML(24, false, "00:00:00:00", 0),
	))

	info, err := Assemble(doc, nil, logger.NewNullLogger())
	require.NoError(t, err)

	require.NotNil(t, info.Events)
	assert.Len(t, info.Events, 0)
}

func TestAssembleUnresolvableBareReference(t *testing.T) {
	// file-2 is only ever referenced bare, so its rate cannot be
	// resolved. The failure names the event it surfaced at.
	fileBody := `<file id="file-1">` + timecodeXML(24, false, "00:00:00:00", 0) + `</file>`
	doc := parseTimeline(t, timelineXML(96,
		timecodeXML(24, false, "00:00:00:00", 0),
		clipXML(fileBody, 0, 48, 0, 48),
		clipXML(`<file id="file-2"/>`, 0, 48, 48, 96),
	))

	_, err := Assemble(doc, []edl.Event{{}, {}}, logger.NewNullLogger())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeMissingField))

	appErr, ok := errors.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, "clipitem/file/timecode", appErr.Details["path"])
	assert.Equal(t, 1, appErr.Details["event_index"])
}

func TestEngineCachesByFileID(t *testing.T) {
	fileBody := `<file id="file-1">` + timecodeXML(24, true, "01:00:00:00", 86400) + `</file>`
	doc := parseTimeline(t, timelineXML(96,
		timecodeXML(24, false, "00:00:00:00", 0),
		clipXML(fileBody, 0, 48, 0, 48),
		clipXML(`<file id="file-1"/>`, 0, 48, 48, 96),
	))
	clips := doc.Clips()

	engine := NewEngine(0, logger.NewNullLogger())

	first, err := engine.Record(edl.Event{}, clips[0])
	require.NoError(t, err)

	// The bare reference has no timecode body; only the cached base
	// can supply its rate and start frame.
	second, err := engine.Record(edl.Event{}, clips[1])
	require.NoError(t, err)

	assert.Equal(t, first.SourceIn.Rate, second.SourceIn.Rate)
	assert.Equal(t, int64(86400), second.SourceIn.Frame)
	assert.Len(t, engine.sources, 1)
}
