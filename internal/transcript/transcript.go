package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Cue is a single timed caption entry. The slice returned by the parsers is
// ordered by start time and treated as immutable by everything downstream.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

var (
	reCueTiming  = regexp.MustCompile(`(\d{1,2}:)?\d{2}:\d{2}[.,]\d{3}\s+-->\s+(\d{1,2}:)?\d{2}:\d{2}[.,]\d{3}`)
	reInlineTime = regexp.MustCompile(`<\d{2}:\d{2}:\d{2}\.\d{3}>`)
	reTag        = regexp.MustCompile(`<[^>]+>`)
	reSeqNumber  = regexp.MustCompile(`^\d+$`)
)

// ParseFile parses a .vtt or .srt transcript file into cues.
func ParseFile(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return ParseVTT(string(data)), nil
	case ".srt":
		return ParseSRT(string(data)), nil
	default:
		return nil, fmt.Errorf("unsupported transcript format %q (use .vtt or .srt)", filepath.Ext(path))
	}
}

// ParseVTT parses WebVTT content, including YouTube auto-captions with
// inline word timing and cue settings. Cues that cannot be parsed are
// skipped rather than failing the whole transcript.
func ParseVTT(content string) []Cue {
	var cues []Cue

	for _, block := range splitBlocks(content) {
		var timing string
		var textLines []string

		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case line == "":
				continue
			case strings.Contains(line, "-->"):
				// Drop cue settings such as "align:start position:0%".
				timing = reCueTiming.FindString(line)
			case strings.HasPrefix(line, "WEBVTT"),
				strings.HasPrefix(line, "Kind:"),
				strings.HasPrefix(line, "Language:"),
				strings.HasPrefix(line, "NOTE"),
				reSeqNumber.MatchString(line):
				continue
			default:
				if text := cleanCueText(line); text != "" && !contains(textLines, text) {
					textLines = append(textLines, text)
				}
			}
		}

		if cue, ok := buildCue(timing, textLines); ok {
			cues = append(cues, cue)
		}
	}

	sortCues(cues)
	return cues
}

// ParseSRT parses SubRip content.
func ParseSRT(content string) []Cue {
	var cues []Cue

	for _, block := range splitBlocks(content) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		// Line 0 is the sequence number unless the block omits it.
		idx := 0
		if reSeqNumber.MatchString(strings.TrimSpace(lines[0])) {
			idx = 1
		}
		if idx >= len(lines) || !strings.Contains(lines[idx], "-->") {
			continue
		}

		timing := reCueTiming.FindString(lines[idx])
		var textLines []string
		for _, line := range lines[idx+1:] {
			if text := cleanCueText(line); text != "" {
				textLines = append(textLines, text)
			}
		}

		if cue, ok := buildCue(timing, textLines); ok {
			cues = append(cues, cue)
		}
	}

	sortCues(cues)
	return cues
}

// Duration reports the time span covered by the cue sequence.
func Duration(cues []Cue) time.Duration {
	if len(cues) == 0 {
		return 0
	}
	return cues[len(cues)-1].End - cues[0].Start
}

// JoinText concatenates the text of cues[from:to+1] with single spaces.
func JoinText(cues []Cue, from, to int) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to && i < len(cues); i++ {
		if cues[i].Text != "" {
			parts = append(parts, cues[i].Text)
		}
	}
	return strings.Join(parts, " ")
}

// ParseTimestamp parses "HH:MM:SS.mmm", "MM:SS.mmm" and the SRT comma
// variants into a duration.
func ParseTimestamp(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	parts := strings.Split(s, ":")

	var hours, minutes int
	var seconds float64
	var err error

	switch len(parts) {
	case 3:
		if hours, err = strconv.Atoi(parts[0]); err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
		if minutes, err = strconv.Atoi(parts[1]); err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
		if seconds, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
	case 2:
		if minutes, err = strconv.Atoi(parts[0]); err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
		if seconds, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
	default:
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second)), nil
}

// FormatTimestamp renders a duration as MM:SS, or HH:MM:SS past an hour.
// Used for display on cards.
func FormatTimestamp(d time.Duration) string {
	total := int(d.Seconds())
	if total < 3600 {
		return fmt.Sprintf("%02d:%02d", total/60, total%60)
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// FormatVTTTimestamp renders a duration in WebVTT form (HH:MM:SS.mmm).
func FormatVTTTimestamp(d time.Duration) string {
	total := d.Milliseconds()
	ms := total % 1000
	secs := (total / 1000) % 60
	mins := (total / 60000) % 60
	hours := total / 3600000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, mins, secs, ms)
}

func splitBlocks(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return regexp.MustCompile(`\n\s*\n`).Split(content, -1)
}

func cleanCueText(line string) string {
	line = reInlineTime.ReplaceAllString(line, "")
	line = reTag.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

func buildCue(timing string, textLines []string) (Cue, bool) {
	if timing == "" || len(textLines) == 0 {
		return Cue{}, false
	}

	bounds := strings.Split(timing, "-->")
	if len(bounds) != 2 {
		return Cue{}, false
	}

	start, err := ParseTimestamp(bounds[0])
	if err != nil {
		return Cue{}, false
	}
	end, err := ParseTimestamp(bounds[1])
	if err != nil {
		return Cue{}, false
	}

	return Cue{Start: start, End: end, Text: strings.Join(textLines, " ")}, true
}

func sortCues(cues []Cue) {
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Start < cues[j].Start })
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
