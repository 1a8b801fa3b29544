package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
)

const summaryPrompt = `You are writing a caption for a highlight card on a video summary page.
Summarize the transcript excerpt below in at most %d words. Write one or two
plain sentences, no markdown, no quotes, no preamble.

Transcript excerpt:
---
%s
---`

// geminiInputLimit keeps segment text well inside the model's context.
const geminiInputLimit = 6000

// abstractiveSummarizer calls Gemini and rotates API keys on quota errors.
// Every failure path degrades to the extractive fallback so cards always
// get a usable caption.
type abstractiveSummarizer struct {
	apiKeys    []string
	currentKey int
	model      string
	maxWords   int
	fallback   *extractiveSummarizer
	logger     logger.Logger
}

func (s *abstractiveSummarizer) Name() string { return "abstractive" }

func (s *abstractiveSummarizer) Summarize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	summary, err := s.callGemini(ctx, text)
	if err != nil {
		s.logger.Warn(ctx, "Model summarization failed, using extractive fallback: %v", err)
		return s.fallback.Summarize(ctx, text)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return s.fallback.Summarize(ctx, text)
	}
	return truncateWords(summary, s.maxWords)
}

// callGemini sends the excerpt to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *abstractiveSummarizer) callGemini(ctx context.Context, text string) (string, error) {
	if len(text) > geminiInputLimit {
		text = text[:geminiInputLimit]
	}
	prompt := fmt.Sprintf(summaryPrompt, s.maxWords, text)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return out, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *abstractiveSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
