package summarizer

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// extractiveSummarizer builds a summary by scoring and picking sentences
// from the segment text. Used when no model is configured and as the
// per-call fallback when a model call fails.
type extractiveSummarizer struct {
	maxWords int
}

var (
	reBracketed    = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
	reSentEnd      = regexp.MustCompile(`[.!?]+`)
	reFillerPhrase = regexp.MustCompile(`(?i)\b(you know|i mean)\b`)

	fillerWords = []string{"um", "uh", "basically", "actually"}

	// Sentences containing these tend to carry the point of the segment.
	signalWords = []string{
		"important", "key", "critical", "essential", "significant",
		"main", "primary", "focus", "highlight", "demonstrate",
		"show", "reveal", "discover", "conclusion", "first", "finally",
	}
)

func (s *extractiveSummarizer) Name() string { return "extractive" }

func (s *extractiveSummarizer) Summarize(ctx context.Context, text string) string {
	cleaned := cleanText(text)
	if cleaned == "" {
		cleaned = strings.TrimSpace(text)
	}
	if cleaned == "" {
		return ""
	}

	sentences := splitSentences(cleaned)
	if len(sentences) == 0 {
		return truncateWords(cleaned, s.maxWords)
	}

	type scored struct {
		index    int
		score    float64
		sentence string
	}

	ranked := make([]scored, 0, len(sentences))
	for i, sentence := range sentences {
		score := 1.0 / float64(i+1) // prefer earlier sentences

		words := len(strings.Fields(sentence))
		if words > 20 {
			words = 20
		}
		score += float64(words) / 20.0

		lower := strings.ToLower(sentence)
		for _, w := range signalWords {
			if strings.Contains(lower, w) {
				score += 0.5
			}
		}

		ranked = append(ranked, scored{index: i, score: score, sentence: sentence})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	var picked []scored
	wordCount := 0
	for _, cand := range ranked {
		words := len(strings.Fields(cand.sentence))
		if wordCount+words > s.maxWords {
			continue
		}
		picked = append(picked, cand)
		wordCount += words
	}

	if len(picked) == 0 {
		return truncateWords(ranked[0].sentence, s.maxWords)
	}

	// Emit in original order so the summary reads naturally.
	sort.Slice(picked, func(i, j int) bool { return picked[i].index < picked[j].index })

	parts := make([]string, len(picked))
	for i, p := range picked {
		parts[i] = polishSentence(p.sentence)
	}
	return strings.Join(parts, " ")
}

// cleanText strips bracketed speaker labels and spoken fillers, both
// single words and phrases.
func cleanText(text string) string {
	text = reBracketed.ReplaceAllString(text, "")
	text = reFillerPhrase.ReplaceAllString(text, "")

	words := strings.Fields(text)
	out := words[:0]
	for _, w := range words {
		if isFiller(strings.ToLower(strings.Trim(w, ",."))) {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

func isFiller(w string) bool {
	for _, f := range fillerWords {
		if w == f {
			return true
		}
	}
	return false
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range reSentEnd.Split(text, -1) {
		s = strings.TrimSpace(s)
		// Fragments shorter than a few words are caption noise.
		if len(strings.Fields(s)) >= 4 {
			out = append(out, s)
		}
	}
	return out
}

func polishSentence(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	if runes[0] >= 'a' && runes[0] <= 'z' {
		runes[0] = runes[0] - 'a' + 'A'
	}
	s = string(runes)
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}

func truncateWords(text string, max int) string {
	words := strings.Fields(text)
	if len(words) <= max {
		return text
	}
	return strings.Join(words[:max], " ") + "..."
}
