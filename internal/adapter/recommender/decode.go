package recommender

import (
	"encoding/json"
	"strings"

	"cognitive-pathways/internal/domain"
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// stripThinking removes every <think>...</think> block emitted by reasoning models.
func stripThinking(text string) string {
	for {
		start := strings.Index(text, thinkOpen)
		if start == -1 {
			return text
		}
		end := strings.Index(text[start:], thinkClose)
		if end == -1 {
			return text[:start]
		}
		text = text[:start] + text[start+end+len(thinkClose):]
	}
}

// DecodeRecommendation extracts the JSON object between the first '{' and the last '}'
// of text. It reports false when no object decodes or it carries neither a stream nor insights.
func DecodeRecommendation(text string) (domain.Recommendation, bool) {
	cleaned := strings.TrimSpace(stripThinking(text))

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end <= start {
		return domain.Recommendation{}, false
	}

	var rec domain.Recommendation
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &rec); err != nil {
		return domain.Recommendation{}, false
	}
	rec.RecommendedStream = strings.TrimSpace(rec.RecommendedStream)
	rec.AIInsights = strings.TrimSpace(rec.AIInsights)
	if rec.RecommendedStream == "" && rec.AIInsights == "" {
		return domain.Recommendation{}, false
	}
	if rec.TopCourses == nil {
		rec.TopCourses = []string{}
	}
	return rec, true
}
