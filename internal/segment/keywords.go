package segment

import (
	"strings"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/transcript"
)

// maxDetectedKeywords caps auto-detection so a chatty transcript does not
// crowd out the even-spacing windows.
const maxDetectedKeywords = 4

// keywordIndicators maps a candidate keyword to phrases whose presence in
// the transcript suggests the keyword marks an interesting section.
var keywordIndicators = []struct {
	keyword    string
	indicators []string
}{
	{"introduction", []string{"introduction", "intro", "welcome", "today we", "going to", "start"}},
	{"conclusion", []string{"conclusion", "summary", "recap", "in summary", "to wrap up", "finally"}},
	{"demo", []string{"demo", "demonstration", "show you", "example", "let me show", "here is"}},
	{"important", []string{"important", "key", "main", "crucial", "essential", "remember"}},
	{"results", []string{"results", "outcome", "findings", "data", "numbers", "statistics"}},
	{"tips", []string{"tip", "trick", "advice", "suggestion", "recommend", "best practice"}},
}

// DetectKeywords scans the transcript for phrases that usually mark
// interesting sections and returns matching keywords, at most
// maxDetectedKeywords. Falls back to a generic set when nothing matches.
func DetectKeywords(cues []transcript.Cue) []string {
	text := strings.ToLower(transcript.JoinText(cues, 0, len(cues)-1))

	var detected []string
	for _, bucket := range keywordIndicators {
		for _, indicator := range bucket.indicators {
			if strings.Contains(text, indicator) {
				detected = append(detected, bucket.keyword)
				break
			}
		}
		if len(detected) == maxDetectedKeywords {
			break
		}
	}

	if len(detected) == 0 {
		detected = []string{"introduction", "conclusion", "important"}
	}
	return detected
}
