// Package segment picks the time windows that become highlight cards.
// Selection is deterministic: the same cues and keywords always produce the
// same windows.
package segment

import (
	"sort"
	"strings"
	"time"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/transcript"
)

// Segment is a selected time window composed of a contiguous cue range.
type Segment struct {
	Start    time.Duration
	End      time.Duration
	FirstCue int
	LastCue  int
	Keyword  string // keyword that anchored the window, "general" for spacing fill
	Text     string
}

// Select returns up to count non-overlapping, time-ordered segments.
//
// For each keyword the first cue containing it (case-insensitive substring)
// anchors a window of cues bounded by the target duration. Overlapping
// windows are merged. If keyword matches produce fewer than count windows,
// or no keywords are given, the remaining slots are filled by evenly
// spacing windows across the uncovered part of the transcript.
func Select(cues []transcript.Cue, keywords []string, count int, window time.Duration) []Segment {
	if len(cues) == 0 || count <= 0 {
		return nil
	}

	segments := keywordWindows(cues, keywords, window)
	segments = mergeOverlapping(cues, segments)

	if len(segments) < count {
		segments = append(segments, spacingFill(cues, segments, count-len(segments), window)...)
	}

	sort.Slice(segments, func(i, j int) bool { return segments[i].Start < segments[j].Start })
	if len(segments) > count {
		segments = segments[:count]
	}
	return segments
}

// keywordWindows builds one candidate window per matched keyword.
func keywordWindows(cues []transcript.Cue, keywords []string, window time.Duration) []Segment {
	var out []Segment
	for _, kw := range keywords {
		needle := strings.ToLower(strings.TrimSpace(kw))
		if needle == "" {
			continue
		}
		for i, cue := range cues {
			if strings.Contains(strings.ToLower(cue.Text), needle) {
				first, last := expandWindow(cues, i, window)
				out = append(out, newSegment(cues, first, last, kw))
				break
			}
		}
	}
	return out
}

// expandWindow grows the cue range symmetrically around anchor until the
// window duration is reached or the transcript runs out on both sides.
func expandWindow(cues []transcript.Cue, anchor int, window time.Duration) (first, last int) {
	first, last = anchor, anchor
	for cues[last].End-cues[first].Start < window {
		grewBack := false
		if first > 0 {
			first--
			grewBack = true
		}
		if cues[last].End-cues[first].Start >= window {
			break
		}
		grewFwd := false
		if last < len(cues)-1 {
			last++
			grewFwd = true
		}
		if !grewBack && !grewFwd {
			break
		}
	}
	return first, last
}

// mergeOverlapping collapses windows that share cues into one window,
// keeping the earliest anchor's keyword.
func mergeOverlapping(cues []transcript.Cue, segments []Segment) []Segment {
	if len(segments) < 2 {
		return segments
	}

	sort.Slice(segments, func(i, j int) bool {
		if segments[i].FirstCue != segments[j].FirstCue {
			return segments[i].FirstCue < segments[j].FirstCue
		}
		return segments[i].LastCue < segments[j].LastCue
	})

	merged := []Segment{segments[0]}
	for _, seg := range segments[1:] {
		prev := &merged[len(merged)-1]
		if seg.FirstCue <= prev.LastCue {
			if seg.LastCue > prev.LastCue {
				*prev = newSegment(cues, prev.FirstCue, seg.LastCue, prev.Keyword)
			}
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

// spacingFill builds needed windows from the cues not covered by any
// existing segment, splitting them into evenly sized chunks.
func spacingFill(cues []transcript.Cue, taken []Segment, needed int, window time.Duration) []Segment {
	covered := make([]bool, len(cues))
	for _, seg := range taken {
		for i := seg.FirstCue; i <= seg.LastCue; i++ {
			covered[i] = true
		}
	}

	var free []int
	for i := range cues {
		if !covered[i] {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return nil
	}

	chunk := len(free) / needed
	if chunk == 0 {
		chunk = 1
	}

	var out []Segment
	for n := 0; n < needed; n++ {
		lo := n * chunk
		if lo >= len(free) {
			break
		}
		hi := lo + chunk - 1
		if n == needed-1 || hi >= len(free) {
			hi = len(free) - 1
		}

		// A chunk must be a contiguous cue run to form a window; stop at
		// the first gap and cap the run at the window duration.
		first := free[lo]
		last := first
		for k := lo + 1; k <= hi && free[k] == last+1; k++ {
			if cues[free[k]].End-cues[first].Start > window {
				break
			}
			last = free[k]
		}
		out = append(out, newSegment(cues, first, last, "general"))
	}
	return out
}

func newSegment(cues []transcript.Cue, first, last int, keyword string) Segment {
	return Segment{
		Start:    cues[first].Start,
		End:      cues[last].End,
		FirstCue: first,
		LastCue:  last,
		Keyword:  keyword,
		Text:     transcript.JoinText(cues, first, last),
	}
}
