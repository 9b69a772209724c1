// Package policy holds the static domain allow-lists and the pure functions
// that classify a news domain: editorial category, country and language
// inference, and the normalization used for duplicate detection.
package policy

import "strings"

// CategoryFor returns the editorial category for a domain. Matching is by
// exact normalized domain first, then by suffix so subdomains inherit the
// parent's category. Unknown domains map to "Other".
func CategoryFor(domain string) string {
	normalized := normalize(domain)

	if cat, ok := domainCategories[normalized]; ok {
		return cat
	}
	for catDomain, cat := range domainCategories {
		if strings.HasSuffix(normalized, "."+catDomain) {
			return cat
		}
	}
	return "Other"
}

// InferCountry guesses the source country from the domain TLD
func InferCountry(domain string) string {
	switch {
	case strings.HasSuffix(domain, ".dk"):
		return "DK"
	case strings.HasSuffix(domain, ".co.uk"):
		return "GB"
	case strings.HasSuffix(domain, ".com"), strings.HasSuffix(domain, ".org"):
		return "US"
	default:
		return "unknown"
	}
}

// danishStopwords are common Danish words used for the best-effort language
// scan. The signal is weak and must never drive filtering decisions.
var danishStopwords = []string{"danmark", "dansk", "københavn", "aarhus", "odense", " og ", " er ", " det ", " den ", " der "}

// InferLanguage guesses the article language from domain and text.
// Best-effort only: .dk domains force Danish, otherwise a stopword scan,
// defaulting to English.
func InferLanguage(domain, text string) string {
	if strings.HasSuffix(domain, ".dk") {
		return "da"
	}
	if text != "" {
		lower := strings.ToLower(text)
		for _, w := range danishStopwords {
			if strings.Contains(lower, w) {
				return "da"
			}
		}
	}
	return "en"
}

// NormalizeForDedup collapses a domain to its base form for duplicate
// detection: lowercase, www. stripped, last two labels only, so
// edition.cnn.com and www.cnn.com both become cnn.com. Single-label
// domains pass through unchanged.
func NormalizeForDedup(domain string) string {
	if domain == "" {
		return domain
	}
	d := normalize(domain)
	parts := strings.Split(d, ".")
	if len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ".")
	}
	return d
}

// IsDanishDomain reports whether the domain is on the Danish allow-list.
// Danish domains are accepted regardless of the language the index reports.
func IsDanishDomain(domain string) bool {
	return danishDomains[normalize(domain)]
}

// IsProblematic reports whether the domain is on the block-list of video and
// social platforms that never yield extractable article text.
func IsProblematic(domain string) bool {
	d := normalize(domain)
	for _, p := range problematicDomains {
		if strings.Contains(d, p) {
			return true
		}
	}
	return false
}

// IsAllowed reports whether the domain (or a parent of it) is on the
// allow-list of reliable news sources.
func IsAllowed(domain string) bool {
	d := normalize(domain)
	for _, allowed := range AllowedDomains() {
		if d == allowed || strings.HasSuffix(d, "."+allowed) {
			return true
		}
	}
	return false
}

// AllowedDomains returns the full source allow-list, Danish domains first
func AllowedDomains() []string {
	out := make([]string, 0, len(danishDomainList)+len(englishDomainList))
	out = append(out, danishDomainList...)
	out = append(out, englishDomainList...)
	return out
}

// DanishDomains returns the Danish part of the allow-list
func DanishDomains() []string {
	out := make([]string, len(danishDomainList))
	copy(out, danishDomainList)
	return out
}

// EnglishDomains returns the non-Danish part of the allow-list
func EnglishDomains() []string {
	out := make([]string, len(englishDomainList))
	copy(out, englishDomainList)
	return out
}

// AllowedLanguage reports whether the index-reported language code is in the
// accepted set. GDELT is inconsistent about codes vs names, so close variants
// are included.
func AllowedLanguage(lang string) bool {
	switch strings.ToLower(lang) {
	case "en", "eng", "english", "da", "dan", "danish":
		return true
	}
	return false
}

func normalize(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimPrefix(d, "www.")
}
