package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askeland/newswatch/pkg/domain"
)

func TestFallbackClassifier_Classify(t *testing.T) {
	f := NewFallbackClassifier()
	ctx := context.Background()

	t.Run("three terms make an ai topic", func(t *testing.T) {
		a := &domain.Article{
			Title: "ChatGPT update",
			Text:  "OpenAI improved its large language model with better machine learning.",
		}
		analysis, err := f.Classify(ctx, a)
		require.NoError(t, err)

		assert.True(t, analysis.IsAITopic)
		// chatgpt, gpt, large language model, machine learning, openai
		assert.InDelta(t, 0.8, analysis.Confidence, 0.0001)
		assert.Equal(t, "AI Language Models and NLP", analysis.Topic)
		assert.Contains(t, analysis.Explanation, "AI terms found")
		assert.NotEmpty(t, analysis.Keywords)
		assert.LessOrEqual(t, len(analysis.Keywords), 5)
	})

	t.Run("two terms are not enough", func(t *testing.T) {
		a := &domain.Article{
			Title: "Tech giants invest",
			Text:  "Anthropic and OpenAI raised new funding rounds this quarter.",
		}
		analysis, err := f.Classify(ctx, a)
		require.NoError(t, err)

		assert.False(t, analysis.IsAITopic)
		assert.InDelta(t, 0.6, analysis.Confidence, 0.0001)
		assert.Empty(t, analysis.Topic)
		assert.Contains(t, analysis.Explanation, "not sufficient for AI classification")
	})

	t.Run("no terms", func(t *testing.T) {
		a := &domain.Article{
			Title: "Football results",
			Text:  "The home team won after a dramatic second half.",
		}
		analysis, err := f.Classify(ctx, a)
		require.NoError(t, err)

		assert.False(t, analysis.IsAITopic)
		assert.InDelta(t, 0.4, analysis.Confidence, 0.0001)
		assert.Contains(t, analysis.Explanation, "0 AI terms found")
		assert.Empty(t, analysis.Keywords)
	})

	t.Run("business topic when no language model terms", func(t *testing.T) {
		a := &domain.Article{
			Title: "OpenAI and Anthropic",
			Text:  "Both labs invest heavily in artificial intelligence research.",
		}
		analysis, err := f.Classify(ctx, a)
		require.NoError(t, err)

		assert.True(t, analysis.IsAITopic)
		assert.Equal(t, "AI Business and Industry", analysis.Topic)
	})

	t.Run("infrastructure topic as default", func(t *testing.T) {
		a := &domain.Article{
			Title: "Research advances",
			Text:  "Artificial intelligence systems built on deep learning and neural network designs keep improving.",
		}
		analysis, err := f.Classify(ctx, a)
		require.NoError(t, err)

		assert.True(t, analysis.IsAITopic)
		assert.Equal(t, "AI Technology and Infrastructure", analysis.Topic)
	})

	t.Run("danish terms count", func(t *testing.T) {
		a := &domain.Article{
			Title: "Kunstig intelligens i medierne",
			Text:  "En ny sprogmodel bygget med maskinlæring er taget i brug.",
		}
		analysis, err := f.Classify(ctx, a)
		require.NoError(t, err)

		assert.True(t, analysis.IsAITopic)
		assert.Equal(t, "AI Language Models and NLP", analysis.Topic)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := &domain.Article{
			Title: "ChatGPT update",
			Text:  "OpenAI improved its large language model with better machine learning.",
		}
		first, err := f.Classify(ctx, a)
		require.NoError(t, err)
		second, err := f.Classify(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("nil article", func(t *testing.T) {
		_, err := f.Classify(ctx, nil)
		require.Error(t, err)
	})
}
