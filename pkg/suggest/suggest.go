// Package suggest ranks registered flag keys by similarity to a mistyped token, for
// "did you mean" diagnostics.
package suggest

import (
	"sort"
	"strings"
)

// threshold is the minimum similarity score for a key to count as a near miss.
const threshold = 0.5

// FindSimilar returns up to maxResults candidate keys similar to target, best match first.
// Leading hyphens are ignored when scoring, so "--cuont" still finds "--count" and "-count"
// finds "--count"; the returned keys keep their registered spelling.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	type scored struct {
		key   string
		score float64
	}
	matches := make([]scored, 0, len(candidates))
	for _, key := range candidates {
		score := similarity(strings.TrimLeft(target, "-"), strings.TrimLeft(key, "-"))
		if score > threshold {
			matches = append(matches, scored{key: key, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score == matches[j].score {
			return matches[i].key < matches[j].key
		}
		return matches[i].score > matches[j].score
	})

	result := make([]string, 0, maxResults)
	for i := 0; i < len(matches) && i < maxResults; i++ {
		result = append(result, matches[i].key)
	}
	return result
}

func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshteinDistance(a, b))/float64(maxLen)
}

// levenshteinDistance computes edit distance with a two-row rolling table.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
