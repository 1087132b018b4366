package xmeml

import (
	"github.com/beevik/etree"

	"github.com/zsiec/cutcheck/internal/errors"
)

// Clip wraps one <clipitem> element.
type Clip struct {
	elm *etree.Element
}

// FileID returns the clip's source-file identity, the id attribute of
// its file reference. An empty id is legal; a missing attribute is
// not. XMEML writes the full file body only on the first reference,
// so the id is the only part of <file> a later clip is guaranteed to
// carry.
func (c Clip) FileID() (string, error) {
	file := c.elm.FindElement("./file")
	if file == nil {
		return "", errors.NewMissingField("clipitem/file")
	}

	attr := file.SelectAttr("id")
	if attr == nil {
		return "", errors.NewMissingField("clipitem/file[@id]")
	}
	return attr.Value, nil
}

// FileTimecode returns the source file's own timecode point. Only
// valid on the first reference to a file; bare repeats have no
// timecode child and fail here, which is why callers cache by FileID.
func (c Clip) FileTimecode() (TimecodePoint, error) {
	elm := c.elm.FindElement("./file/timecode")
	if elm == nil {
		return TimecodePoint{}, errors.NewMissingField("clipitem/file/timecode")
	}
	return timecodePoint(elm, "clipitem/file/timecode")
}

// In returns the clip's source-in offset, relative to the source
// file's start frame.
func (c Clip) In() (int64, error) {
	return intText(c.elm, "in", "clipitem/in")
}

// Out returns the clip's source-out offset.
func (c Clip) Out() (int64, error) {
	return intText(c.elm, "out", "clipitem/out")
}

// Start returns the clip's record-in offset, relative to the
// timeline's start frame.
func (c Clip) Start() (int64, error) {
	return intText(c.elm, "start", "clipitem/start")
}

// End returns the clip's record-out offset.
func (c Clip) End() (int64, error) {
	return intText(c.elm, "end", "clipitem/end")
}
