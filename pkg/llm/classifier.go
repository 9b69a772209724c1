// Package llm classifies articles for AI relevance. The primary classifier
// talks to an OpenAI-compatible endpoint, the fallback is a deterministic
// keyword scorer used when no API key is configured or the endpoint is down.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/askeland/newswatch/pkg/config"
	"github.com/askeland/newswatch/pkg/domain"
)

// Topics assignable by both classifier paths
var Topics = []string{
	"AI Language Models and NLP",
	"AI Business and Industry",
	"AI Technology and Infrastructure",
	"AI Ethics and Regulation",
	"AI in Media and Creative Industries",
}

// Classifier uses an LLM to judge whether an article is about AI
type Classifier struct {
	client *openai.Client
	config config.LLMConfig
	sleep  func(time.Duration)
}

// NewClassifier creates a new LLM classifier
func NewClassifier(cfg config.LLMConfig) *Classifier {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Classifier{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
		sleep:  time.Sleep,
	}
}

const systemPrompt = `You are an analyst for a media-industry monitoring service. You decide whether a news article is substantially about artificial intelligence.

Respond with a single JSON object:
- is_ai_topic: true when AI, machine learning or related technology is a central subject of the article, false when it is only mentioned in passing or absent
- confidence: your confidence in the judgment, 0.0 to 1.0
- topic: when is_ai_topic is true, the best fit from the provided topic list, otherwise an empty string
- explanation: one sentence explaining the judgment (max 200 chars)
- keywords: up to 5 AI-related keywords actually present in the article, lowercase

Articles may be in English or Danish. Judge Danish text directly, do not translate.`

// Classify judges one article. The article text is truncated before sending,
// the stored record keeps the full text.
func (c *Classifier) Classify(ctx context.Context, article *domain.Article) (*domain.AITopicAnalysis, error) {
	if article == nil {
		return nil, fmt.Errorf("article is nil")
	}

	prompt := c.buildPrompt(article)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	var lastContent string
	for attempt := 0; attempt < 3; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       c.config.Model,
			Temperature: float32(c.config.Temperature),
			MaxTokens:   c.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		}

		resp, err := c.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		analysis, err := parseResponse(resp.Choices[0].Message.Content)
		if err == nil {
			// politeness delay after a successful external call only
			if c.config.RequestDelay > 0 {
				c.sleep(c.config.RequestDelay)
			}
			return analysis, nil
		}
		lastErr = err
		lastContent = resp.Choices[0].Message.Content
	}

	// the model ignored the JSON instruction three times, salvage a verdict
	// from the raw text instead of losing the article
	lgr.Printf("[WARN] malformed llm response after 3 attempts, manual parse: %v", lastErr)
	if c.config.RequestDelay > 0 {
		c.sleep(c.config.RequestDelay)
	}
	return manualParse(lastContent, article), nil
}

// markers an affirmative prose answer tends to contain when the model skips
// the JSON format
var affirmativeMarkers = []string{"true", "yes", "ai-related", "artificial intelligence", "primarily about ai"}

// manualParse salvages a judgment from a response that never contained valid
// JSON. Affirmative markers decide the verdict, the topic is matched by name
// against the topic list with a catch-all when an affirmative response names
// none, keywords come from the deterministic term scan.
func manualParse(content string, article *domain.Article) *domain.AITopicAnalysis {
	lower := strings.ToLower(content)

	affirmative := false
	for _, marker := range affirmativeMarkers {
		if strings.Contains(lower, marker) {
			affirmative = true
			break
		}
	}

	snippet := content
	if len(snippet) > 100 {
		snippet = snippet[:100] + "..."
	}
	keywords := matchedTerms(article)
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}

	analysis := &domain.AITopicAnalysis{
		IsAITopic:   affirmative,
		Confidence:  0.7,
		Explanation: "Manual parsing: " + snippet,
		Keywords:    keywords,
	}
	if !affirmative {
		return analysis
	}

	analysis.Confidence = 0.8
	analysis.Topic = "AI Technology and Infrastructure"
	for _, topic := range Topics {
		if strings.Contains(lower, strings.ToLower(topic)) {
			analysis.Topic = topic
			break
		}
	}
	return analysis
}

// buildPrompt creates the per-article prompt for the LLM
func (c *Classifier) buildPrompt(article *domain.Article) string {
	var sb strings.Builder

	sb.WriteString("Topic list:\n")
	sb.WriteString(strings.Join(Topics, ", "))
	sb.WriteString("\n\n")

	sb.WriteString("Article to judge:\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", article.Title))
	sb.WriteString(fmt.Sprintf("Source: %s (%s)\n", article.Domain, article.Language))

	// limit content sent to the model
	text := article.Text
	if len(text) > 2000 {
		text = text[:2000] + "..."
	}
	sb.WriteString(fmt.Sprintf("Text: %s\n\n", text))

	sb.WriteString("Respond with the JSON object only.")
	return sb.String()
}

// parseResponse extracts the analysis object from the LLM response, which may
// wrap the JSON in prose or a code fence
func parseResponse(content string) (*domain.AITopicAnalysis, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json object found in response")
	}

	var analysis domain.AITopicAnalysis
	if err := json.Unmarshal([]byte(content[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse json response: %w", err)
	}

	// clamp confidence to valid range
	if analysis.Confidence < 0 {
		analysis.Confidence = 0
	}
	if analysis.Confidence > 1 {
		analysis.Confidence = 1
	}
	if len(analysis.Keywords) > 5 {
		analysis.Keywords = analysis.Keywords[:5]
	}
	if !analysis.IsAITopic {
		analysis.Topic = ""
	}

	return &analysis, nil
}
