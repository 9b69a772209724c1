package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/askeland/newswatch/pkg/domain"
)

// aiTerms are scanned against the lowercased title and text. The scan counts
// distinct terms present, not occurrences. Danish terms included since part
// of the sources publish in Danish.
var aiTerms = []string{
	"artificial intelligence",
	"machine learning",
	"deep learning",
	"neural network",
	"large language model",
	"generative ai",
	"chatgpt",
	"gpt",
	"claude",
	"llm",
	"openai",
	"anthropic",
	"ai model",
	"ai system",
	"ai-generated",
	"kunstig intelligens",
	"maskinlæring",
	"sprogmodel",
}

// term groups deciding the assigned topic, checked in priority order
var (
	languageModelTerms = []string{"chatgpt", "gpt", "claude", "llm", "large language model", "sprogmodel"}
	businessTerms      = []string{"openai", "anthropic"}
)

// FallbackClassifier is the deterministic keyword classifier used when the
// LLM is not configured or unavailable. Same input always yields the same
// judgment, which the tests rely on.
type FallbackClassifier struct{}

// NewFallbackClassifier creates the keyword-based classifier
func NewFallbackClassifier() *FallbackClassifier {
	return &FallbackClassifier{}
}

// Classify counts AI terms in the article and converts the count into a
// judgment. Three or more distinct terms make an AI topic, confidence grows
// with the count and is capped at 0.8 so fallback judgments never outrank
// confident LLM ones.
func (f *FallbackClassifier) Classify(_ context.Context, article *domain.Article) (*domain.AITopicAnalysis, error) {
	if article == nil {
		return nil, fmt.Errorf("article is nil")
	}

	matched := matchedTerms(article)
	count := len(matched)

	analysis := &domain.AITopicAnalysis{
		IsAITopic:   count >= 3,
		Confidence:  min(0.8, 0.4+0.1*float64(count)),
		Explanation: fmt.Sprintf("Fallback classification: %d AI terms found", count),
		Keywords:    matched,
	}
	if len(analysis.Keywords) > 5 {
		analysis.Keywords = analysis.Keywords[:5]
	}

	if analysis.IsAITopic {
		analysis.Topic = topicFor(matched)
	} else {
		analysis.Explanation += " - not sufficient for AI classification"
	}

	return analysis, nil
}

// matchedTerms returns the distinct AI terms present in the article
func matchedTerms(article *domain.Article) []string {
	haystack := strings.ToLower(article.Title + " " + article.Text)

	var matched []string
	for _, term := range aiTerms {
		if strings.Contains(haystack, term) {
			matched = append(matched, term)
		}
	}
	return matched
}

// topicFor picks the fallback topic from the matched terms
func topicFor(matched []string) string {
	present := make(map[string]bool, len(matched))
	for _, m := range matched {
		present[m] = true
	}
	for _, t := range languageModelTerms {
		if present[t] {
			return "AI Language Models and NLP"
		}
	}
	for _, t := range businessTerms {
		if present[t] {
			return "AI Business and Industry"
		}
	}
	return "AI Technology and Infrastructure"
}
