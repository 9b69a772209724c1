package fetcher

import (
	"sort"
	"sync"
)

// DomainFailureTracker counts extraction failures per domain within a single
// batch. Once a domain crosses the limit the rest of its articles are skipped
// for this batch, the next batch starts with a clean slate.
type DomainFailureTracker struct {
	mu       sync.Mutex
	limit    int
	failures map[string]int
	reasons  map[string]string
}

// NewDomainFailureTracker creates a tracker with the given failure limit
func NewDomainFailureTracker(limit int) *DomainFailureTracker {
	if limit < 1 {
		limit = 1
	}
	return &DomainFailureTracker{
		limit:    limit,
		failures: make(map[string]int),
		reasons:  make(map[string]string),
	}
}

// MarkFailed records one failure for the domain with its reason
func (t *DomainFailureTracker) MarkFailed(domain, reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[domain]++
	t.reasons[domain] = reason
}

// ShouldSkip reports whether the domain has reached the failure limit
func (t *DomainFailureTracker) ShouldSkip(domain string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failures[domain] >= t.limit
}

// FailedDomains returns the domains that reached the limit, sorted
func (t *DomainFailureTracker) FailedDomains() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []string
	for d, n := range t.failures {
		if n >= t.limit {
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}

// FailureCounts returns a copy of the per-domain failure counts
func (t *DomainFailureTracker) FailureCounts() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]int, len(t.failures))
	for d, n := range t.failures {
		out[d] = n
	}
	return out
}

// LastReason returns the most recent failure reason for the domain
func (t *DomainFailureTracker) LastReason(domain string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reasons[domain]
}

// TotalFailures returns the sum of all recorded failures
func (t *DomainFailureTracker) TotalFailures() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := 0
	for _, n := range t.failures {
		total += n
	}
	return total
}
