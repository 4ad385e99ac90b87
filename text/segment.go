package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Segment is a run of a single line that shares one bidi direction.
type Segment struct {
	// Text is the segment content.
	Text string

	// Start and End are rune offsets of the segment in the line.
	Start, End int

	// Direction is the resolved direction of the run.
	Direction Direction
}

// segmentLine splits a line (no hard breaks) into directional runs in
// visual order. base is the paragraph direction used when the text has no
// strong characters. Text that bidi analysis rejects is returned as a single
// run in the base direction.
func segmentLine(line []rune, base Direction) []Segment {
	if len(line) == 0 {
		return nil
	}
	if !needsBidi(line) {
		return []Segment{{Text: string(line), Start: 0, End: len(line), Direction: DirectionLTR}}
	}

	def := bidi.LeftToRight
	if base == DirectionRTL {
		def = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(string(line), bidi.DefaultDirection(def)); err != nil {
		return []Segment{{Text: string(line), Start: 0, End: len(line), Direction: base}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Segment{{Text: string(line), Start: 0, End: len(line), Direction: base}}
	}

	segments := make([]Segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos() // inclusive rune indices
		if end >= len(line) {
			end = len(line) - 1
		}
		if start > end {
			continue
		}
		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		segments = append(segments, Segment{
			Text:      string(line[start : end+1]),
			Start:     start,
			End:       end + 1,
			Direction: dir,
		})
	}
	if len(segments) == 0 {
		return []Segment{{Text: string(line), Start: 0, End: len(line), Direction: base}}
	}
	return segments
}

// needsBidi reports whether the line contains right-to-left characters.
// Lines without any are a single left-to-right run whatever the base
// direction, and skip the bidi algorithm.
func needsBidi(line []rune) bool {
	for _, r := range line {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL, bidi.RLE, bidi.RLO, bidi.RLI:
			return true
		}
	}
	return false
}
