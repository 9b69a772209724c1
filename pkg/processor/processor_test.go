package processor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askeland/newswatch/pkg/domain"
)

func validArticle() *domain.Article {
	return &domain.Article{
		URL:         "https://bbc.com/news/ai-article",
		Title:       "AI systems are changing the newsroom",
		Text:        strings.Repeat("Newsrooms around the world are adopting machine learning tools. ", 20),
		Domain:      "bbc.com",
		DatePublish: "2025-06-01 10:00:00",
	}
}

func TestProcessor_Validate(t *testing.T) {
	p := New(700)

	t.Run("valid article passes", func(t *testing.T) {
		reason, ok := p.Validate(validArticle())
		assert.True(t, ok)
		assert.Empty(t, reason)
	})

	t.Run("missing url", func(t *testing.T) {
		a := validArticle()
		a.URL = ""
		reason, ok := p.Validate(a)
		assert.False(t, ok)
		assert.Contains(t, reason, "url")
	})

	t.Run("non-http scheme", func(t *testing.T) {
		a := validArticle()
		a.URL = "ftp://bbc.com/article"
		reason, ok := p.Validate(a)
		assert.False(t, ok)
		assert.Contains(t, reason, "invalid url scheme")
	})

	t.Run("missing title", func(t *testing.T) {
		a := validArticle()
		a.Title = "   "
		_, ok := p.Validate(a)
		assert.False(t, ok)
	})

	t.Run("missing publish date", func(t *testing.T) {
		a := validArticle()
		a.DatePublish = ""
		reason, ok := p.Validate(a)
		assert.False(t, ok)
		assert.Contains(t, reason, "date_publish")
	})

	t.Run("short text gets placeholder then fails length", func(t *testing.T) {
		a := validArticle()
		a.Text = "too short"
		reason, ok := p.Validate(a)
		assert.False(t, ok)
		assert.Contains(t, reason, "text too short")
		// placeholder was synthesized before the length check
		assert.Contains(t, a.Text, "metadata-only")
		assert.Contains(t, a.Text, a.Title)
	})

	t.Run("short text passes with low threshold", func(t *testing.T) {
		p := New(50)
		a := validArticle()
		a.Text = ""
		reason, ok := p.Validate(a)
		assert.True(t, ok, "placeholder should satisfy a low threshold, got %q", reason)
		assert.Contains(t, a.Text, "Article from bbc.com")
	})

	t.Run("nil article", func(t *testing.T) {
		_, ok := p.Validate(nil)
		assert.False(t, ok)
	})
}

func TestProcessor_Process(t *testing.T) {
	p := New(700)

	t.Run("stamps hash and time", func(t *testing.T) {
		a := validArticle()
		before := time.Now().UTC()
		require.NoError(t, p.Process(a))

		assert.Len(t, a.ContentHash, 64)
		assert.False(t, a.ProcessedAt.Before(before.Add(-time.Second)))
		assert.Equal(t, time.UTC, a.ProcessedAt.Location())
	})

	t.Run("strips html", func(t *testing.T) {
		a := validArticle()
		a.Text = "<p>First paragraph.</p><script>alert(1)</script><p>Second &amp; third.</p>" + a.Text
		require.NoError(t, p.Process(a))
		assert.NotContains(t, a.Text, "<p>")
		assert.NotContains(t, a.Text, "alert(1)")
		assert.Contains(t, a.Text, "Second & third.")
	})

	t.Run("drops nul bytes", func(t *testing.T) {
		a := validArticle()
		a.Text = "before\x00after" + a.Text
		require.NoError(t, p.Process(a))
		assert.NotContains(t, a.Text, "\x00")
		assert.Contains(t, a.Text, "beforeafter")
	})

	t.Run("idempotent", func(t *testing.T) {
		a := validArticle()
		require.NoError(t, p.Process(a))
		text, hash := a.Text, a.ContentHash

		require.NoError(t, p.Process(a))
		assert.Equal(t, text, a.Text)
		assert.Equal(t, hash, a.ContentHash)
	})

	t.Run("same text same hash", func(t *testing.T) {
		a, b := validArticle(), validArticle()
		b.URL = "https://bbc.com/news/other"
		require.NoError(t, p.Process(a))
		require.NoError(t, p.Process(b))
		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		a := validArticle()
		a.Text = "<p>   </p>"
		err := p.Process(a)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no text after cleaning")
	})

	t.Run("nil article", func(t *testing.T) {
		require.Error(t, p.Process(nil))
	})
}
