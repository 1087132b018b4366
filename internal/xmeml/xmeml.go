package xmeml

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/zsiec/cutcheck/internal/errors"
)

// Document is a parsed XMEML timeline. Access goes through the fixed
// element paths the fixture format consumes; nothing else in the tree
// is interpreted.
type Document struct {
	root *etree.Element
}

// Parse reads an XMEML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.WrapInternalError(err, "parsing sequence XML")
	}
	return fromTree(doc)
}

// ParseFile reads the XMEML document at path.
func ParseFile(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.WrapInternalError(err, fmt.Sprintf("parsing sequence XML %s", path))
	}
	return fromTree(doc)
}

func fromTree(doc *etree.Document) (*Document, error) {
	root := doc.Root()
	if root == nil {
		return nil, errors.NewMissingField("xmeml")
	}
	return &Document{root: root}, nil
}

// SequenceDuration returns the timeline's total duration in frames.
// The value is authored, not derived from the clips.
func (d *Document) SequenceDuration() (int64, error) {
	return intText(d.root, "sequence/duration", "sequence/duration")
}

// SequenceTimecode returns the timeline's own timecode point: its
// start timecode, start frame, and rate declaration.
func (d *Document) SequenceTimecode() (TimecodePoint, error) {
	elm := d.root.FindElement("./sequence/timecode")
	if elm == nil {
		return TimecodePoint{}, errors.NewMissingField("sequence/timecode")
	}
	return timecodePoint(elm, "sequence/timecode")
}

// Clips returns every clipitem on every video track, in document
// order.
func (d *Document) Clips() []Clip {
	elms := d.root.FindElements("./sequence/media/video/track/clipitem")

	clips := make([]Clip, 0, len(elms))
	for _, elm := range elms {
		clips = append(clips, Clip{elm: elm})
	}
	return clips
}

// RateDecl is a raw rate declaration as authored: integer timebase
// plus the NTSC and drop-frame markers. The booleans come from exact
// text comparison, "TRUE" and "DF", the way the format writes them.
type RateDecl struct {
	Timebase  int64
	NTSC      bool
	DropFrame bool
}

// TimecodePoint is one <timecode> element: the display string, the
// frame number it anchors, and the rate declared alongside them.
type TimecodePoint struct {
	Timecode string
	Frame    int64
	Rate     RateDecl
}

func timecodePoint(elm *etree.Element, label string) (TimecodePoint, error) {
	tc, err := findText(elm, "string", label+"/string")
	if err != nil {
		return TimecodePoint{}, err
	}

	frame, err := intText(elm, "frame", label+"/frame")
	if err != nil {
		return TimecodePoint{}, err
	}

	rate, err := rateDecl(elm, label)
	if err != nil {
		return TimecodePoint{}, err
	}

	return TimecodePoint{Timecode: tc, Frame: frame, Rate: rate}, nil
}

func rateDecl(elm *etree.Element, label string) (RateDecl, error) {
	timebase, err := intText(elm, "rate/timebase", label+"/rate/timebase")
	if err != nil {
		return RateDecl{}, err
	}

	ntsc, err := findText(elm, "rate/ntsc", label+"/rate/ntsc")
	if err != nil {
		return RateDecl{}, err
	}

	displayFormat, err := findText(elm, "displayformat", label+"/displayformat")
	if err != nil {
		return RateDecl{}, err
	}

	return RateDecl{
		Timebase:  timebase,
		NTSC:      ntsc == "TRUE",
		DropFrame: displayFormat == "DF",
	}, nil
}

// findText resolves a child path to its text. Absent elements and
// empty text are the same failure: the source format writes no empty
// required fields, so neither can be told apart downstream.
func findText(elm *etree.Element, path, label string) (string, error) {
	child := elm.FindElement("./" + path)
	if child == nil || child.Text() == "" {
		return "", errors.NewMissingField(label)
	}
	return child.Text(), nil
}

func intText(elm *etree.Element, path, label string) (int64, error) {
	text, err := findText(elm, path, label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, errors.NewMalformedNumber(label, text, err)
	}
	return n, nil
}
