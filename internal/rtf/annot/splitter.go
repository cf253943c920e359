// Package annot separates Scrivener's inline annotation spans from
// ordinary body text.
//
// Annotations are a second layer of RTF-like syntax embedded as
// escaped literal text in the document body. Their control words are
// not valid RTF (they contain underscores and equals signs), so they
// survive tokenization as plain text and surface in the recovered
// lines, possibly split across several of them. The splitter
// reassembles the spans by scanning the line stream for the marker
// triple and routing each side of every boundary to the configured
// output.
package annot

import (
	"errors"
	"strings"
)

// The literal markers delimiting an annotation span. The text between
// the open and open-end markers is span metadata (color settings); the
// text between open-end and close is the annotation payload.
const (
	markerOpen    = `{\Scrv_annot`
	markerOpenEnd = `\text=`
	markerClose   = `\end_Scrv_annot}`
)

// ErrSplitMarker reports an annotation whose open and open-end markers
// did not arrive on the same line. The source format keeps the pair on
// one physical line; anything else cannot be resolved without guessing,
// so it is a hard error rather than a silent corruption.
var ErrSplitMarker = errors.New("annotation open marker split across lines")

// LineSource is a finite, forward-only producer of decoded text lines,
// returning io.EOF when exhausted.
type LineSource interface {
	Next() (string, error)
}

// Splitter filters a line stream into content, annotation payload, or
// both. Empty chunks are always suppressed.
type Splitter struct {
	src          LineSource
	pushback     string
	hasPushback  bool
	inAnnotation bool
	content      bool
	annotations  bool
}

// NewSplitter returns a splitter emitting the selected chunk kinds.
// When both are enabled, a line containing a boundary yields the
// annotation chunk before the content chunk.
func NewSplitter(src LineSource, content, annotations bool) *Splitter {
	return &Splitter{src: src, content: content, annotations: annotations}
}

// SkipAnnotations returns a splitter yielding only ordinary content.
func SkipAnnotations(src LineSource) *Splitter {
	return NewSplitter(src, true, false)
}

// OnlyAnnotations returns a splitter yielding only annotation payload.
func OnlyAnnotations(src LineSource) *Splitter {
	return NewSplitter(src, false, true)
}

// Next returns the next chunk compatible with the output settings, or
// io.EOF once the source and any buffered remainder are drained.
func (s *Splitter) Next() (string, error) {
	for {
		line, err := s.nextLine()
		if err != nil {
			return "", err
		}
		chunk, ok, err := s.takeChunk(line)
		if err != nil {
			return "", err
		}
		if ok {
			return chunk, nil
		}
	}
}

// nextLine prefers the pushed-back remainder of a previously split
// line; a pending pushback is always drained before the source's end
// is reported.
func (s *Splitter) nextLine() (string, error) {
	if s.hasPushback {
		s.hasPushback = false
		return s.pushback, nil
	}
	return s.src.Next()
}

// takeChunk scans line up to whatever terminates the current mode,
// pushing back the remainder past the boundary. The returned bool
// reports whether the chunk is wanted under the output settings.
func (s *Splitter) takeChunk(line string) (string, bool, error) {
	if s.inAnnotation {
		payload := line
		if idx := strings.Index(line, markerClose); idx >= 0 {
			s.inAnnotation = false
			s.putBack(line[idx+len(markerClose):])
			payload = line[:idx]
		}
		return payload, s.annotations && payload != "", nil
	}

	content := line
	if start := strings.Index(line, markerOpen); start >= 0 {
		end := strings.Index(line, markerOpenEnd)
		if end < 0 {
			return "", false, ErrSplitMarker
		}
		s.inAnnotation = true
		s.putBack(line[end+len(markerOpenEnd):])
		content = line[:start]
	}
	return content, s.content && content != "", nil
}

func (s *Splitter) putBack(line string) {
	s.pushback = line
	s.hasPushback = true
}
