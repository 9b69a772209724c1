// Package processor validates raw articles and normalizes them into their
// stored form. Validation decides whether an article is worth keeping at all,
// processing cleans the text and stamps provenance fields.
package processor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"

	"github.com/askeland/newswatch/pkg/domain"
)

// Processor validates and normalizes articles before storage
type Processor struct {
	minLength int
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// New creates a processor enforcing the given minimum text length
func New(minLength int) *Processor {
	return &Processor{
		minLength: minLength,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// Validate checks an article for the required fields and minimum text length.
// An article with missing or too-short text gets a synthesized metadata
// placeholder before the length check, so a rich title on a known domain can
// still pass. Returns the rejection reason when the article fails.
func (p *Processor) Validate(a *domain.Article) (reason string, ok bool) {
	if a == nil {
		return "article is nil", false
	}
	if a.URL == "" {
		return "missing required field: url", false
	}
	if !strings.HasPrefix(a.URL, "http://") && !strings.HasPrefix(a.URL, "https://") {
		return fmt.Sprintf("invalid url scheme: %s", a.URL), false
	}
	if strings.TrimSpace(a.Title) == "" {
		return "missing required field: title", false
	}
	if a.DatePublish == "" {
		return "missing required field: date_publish", false
	}

	if len(strings.TrimSpace(a.Text)) < p.minLength {
		a.Text = p.placeholderText(a)
	}
	if len(a.Text) < p.minLength {
		return fmt.Sprintf("text too short: %d chars, minimum %d", len(a.Text), p.minLength), false
	}
	return "", true
}

// placeholderText synthesizes a metadata-only body for articles whose full
// text could not be extracted
func (p *Processor) placeholderText(a *domain.Article) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Article from %s published %s. ", a.Domain, a.DatePublish))
	b.WriteString("This is a metadata-only record, the full text could not be extracted from the source page. ")
	b.WriteString(fmt.Sprintf("Original title: %s. ", a.Title))
	if a.DomainCategory != "" {
		b.WriteString(fmt.Sprintf("Source category: %s. ", a.DomainCategory))
	}
	if existing := strings.TrimSpace(a.Text); existing != "" {
		b.WriteString(existing)
	}
	return b.String()
}

// Process normalizes an article in place: strips any residual HTML, applies
// NFKC unicode normalization, drops NUL bytes, computes the content hash and
// stamps the processing time. Processing an already processed article yields
// the same text and hash.
func (p *Processor) Process(a *domain.Article) error {
	if a == nil {
		return fmt.Errorf("article is nil")
	}
	if a.URL == "" {
		return fmt.Errorf("article has no url")
	}

	a.Title = p.cleanText(a.Title)
	a.Text = p.cleanText(a.Text)

	if a.Text == "" {
		return fmt.Errorf("article %s has no text after cleaning", a.URL)
	}

	sum := sha256.Sum256([]byte(a.Text))
	a.ContentHash = hex.EncodeToString(sum[:])
	a.ProcessedAt = p.now().UTC()
	return nil
}

// cleanText strips tags, normalizes unicode and whitespace. The sanitizer
// entity-escapes what it keeps, so entities are decoded back afterwards.
func (p *Processor) cleanText(s string) string {
	s = p.sanitizer.Sanitize(s)
	s = html.UnescapeString(s)
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.TrimSpace(s)
}
