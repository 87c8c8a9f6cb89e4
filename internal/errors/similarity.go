package errors

import (
	"fmt"
	"strings"
)

// suggestThreshold is the minimum similarity for a did-you-mean hint.
const suggestThreshold = 0.6

// editDistance computes the optimal-string-alignment distance between two
// strings: insertions, deletions, substitutions, and swaps of adjacent runes
// each cost one edit. "whlie" is one edit away from "while".
func editDistance(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prevprev := make([]int, lb+1)
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr := make([]int, lb+1)
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				best = min(best, prevprev[j-2]+1)
			}
			curr[j] = best
		}
		prevprev = prev
		prev = curr
	}

	return prev[lb]
}

// Similarity returns a normalized similarity score between 0.0 and 1.0.
// 1.0 means identical strings, 0.0 means completely different.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(editDistance(ra, rb))/float64(maxLen)
}

// FindClosest returns the candidate most similar to target, or an empty
// string if no candidate reaches the threshold. Ties keep the earlier
// candidate.
func FindClosest(target string, candidates []string, threshold float64) string {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := Similarity(target, c)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	if bestScore >= threshold {
		return best
	}
	return ""
}

// SuggestKeyword returns a "did you mean" hint when word looks like a
// misspelling of one of keywords. Exact matches yield no hint.
func SuggestKeyword(word string, keywords []string) string {
	for _, k := range keywords {
		if k == word {
			return ""
		}
	}
	if closest := FindClosest(word, keywords, suggestThreshold); closest != "" {
		return fmt.Sprintf("did you mean '%s'?", closest)
	}
	return ""
}
