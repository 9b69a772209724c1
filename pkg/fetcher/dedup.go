package fetcher

import (
	"strings"

	"github.com/askeland/newswatch/pkg/domain"
	"github.com/askeland/newswatch/pkg/policy"
)

// Deduplicate drops articles already seen in the slice, first occurrence
// wins. Two keys are checked: the exact URL, and the pair of base domain and
// lowercased title, which catches the same story syndicated under different
// URLs of one publisher.
func Deduplicate(articles []*domain.Article) []*domain.Article {
	seenURL := make(map[string]bool, len(articles))
	seenTitle := make(map[[2]string]bool, len(articles))

	out := make([]*domain.Article, 0, len(articles))
	for _, a := range articles {
		if a == nil || a.URL == "" {
			continue
		}
		if seenURL[a.URL] {
			continue
		}

		titleKey := [2]string{policy.NormalizeForDedup(a.Domain), strings.ToLower(strings.TrimSpace(a.Title))}
		if titleKey[1] != "" && seenTitle[titleKey] {
			continue
		}

		seenURL[a.URL] = true
		if titleKey[1] != "" {
			seenTitle[titleKey] = true
		}
		out = append(out, a)
	}
	return out
}
