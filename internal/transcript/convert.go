package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Raw pasted transcripts without timing are paced at an assumed reading
// speed so the selector still gets usable windows.
const (
	wordsPerSecond = 2.5
	minCueDuration = 2 * time.Second
	maxCueGap      = 5 * time.Second
)

var (
	reLooseTime = regexp.MustCompile(`(\d{1,2}):(\d{2})(?::(\d{2}))?`)
	reSentence  = regexp.MustCompile(`[.!?]+`)
)

// ConvertRaw turns raw transcript text (as pasted from YouTube's transcript
// panel, with or without timestamps) into WebVTT content.
func ConvertRaw(raw string) (string, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(strings.TrimSpace(raw)) == 0 {
		return "", fmt.Errorf("empty transcript text")
	}

	var cues []Cue
	if hasTimestamps(lines) {
		cues = parseTimedLines(lines)
	} else {
		cues = paceSentences(lines)
	}

	if len(cues) == 0 {
		return "", fmt.Errorf("no usable transcript lines")
	}

	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, cue := range cues {
		fmt.Fprintf(&b, "%s --> %s\n%s\n\n",
			FormatVTTTimestamp(cue.Start), FormatVTTTimestamp(cue.End), cue.Text)
	}
	return b.String(), nil
}

func hasTimestamps(lines []string) bool {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		if reLooseTime.MatchString(line) {
			return true
		}
	}
	return false
}

// parseTimedLines handles "MM:SS some text" style lines. Each timestamp
// opens a cue that runs until the next timestamp (capped at maxCueGap).
func parseTimedLines(lines []string) []Cue {
	type stamped struct {
		at   time.Duration
		text []string
	}
	var entries []stamped

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := reLooseTime.FindStringSubmatch(line); m != nil {
			first, _ := strconv.Atoi(m[1])
			second, _ := strconv.Atoi(m[2])
			at := time.Duration(first)*time.Minute + time.Duration(second)*time.Second
			if m[3] != "" {
				// Three groups means HH:MM:SS.
				third, _ := strconv.Atoi(m[3])
				at = time.Duration(first)*time.Hour + time.Duration(second)*time.Minute + time.Duration(third)*time.Second
			}

			rest := strings.TrimSpace(reLooseTime.ReplaceAllString(line, ""))
			entry := stamped{at: at}
			if rest != "" {
				entry.text = append(entry.text, rest)
			}
			entries = append(entries, entry)
			continue
		}

		if len(entries) > 0 {
			entries[len(entries)-1].text = append(entries[len(entries)-1].text, line)
		}
	}

	var cues []Cue
	for i, e := range entries {
		text := strings.TrimSpace(strings.Join(e.text, " "))
		if text == "" {
			continue
		}
		end := e.at + maxCueGap
		if i+1 < len(entries) && entries[i+1].at > e.at {
			end = entries[i+1].at
		}
		cues = append(cues, Cue{Start: e.at, End: end, Text: text})
	}
	return cues
}

// paceSentences estimates timing for untimed text from sentence length.
func paceSentences(lines []string) []Cue {
	full := strings.Join(lines, " ")

	var cues []Cue
	var at time.Duration
	for _, sentence := range reSentence.Split(full, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		words := len(strings.Fields(sentence))
		dur := time.Duration(float64(words) / wordsPerSecond * float64(time.Second))
		if dur < minCueDuration {
			dur = minCueDuration
		}

		cues = append(cues, Cue{Start: at, End: at + dur, Text: sentence})
		at += dur
	}
	return cues
}
