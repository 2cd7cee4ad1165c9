package errors

import (
	"fmt"
	"strings"
)

// SuggestEmitterName suggests close matches when an emitter reference names
// neither a builtin nor a declared user-defined emitter.
func SuggestEmitterName(unknown string, known []string) string {
	if len(known) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string
	for _, name := range known {
		dist := levenshteinDistance(unknown, name)
		if dist < minDistance {
			minDistance = dist
			bestMatch = name
		}
	}

	// Only suggest a single name if the distance is reasonable.
	if minDistance < 4 {
		return fmt.Sprintf("did you mean %q?", bestMatch)
	}
	return fmt.Sprintf("known emitters: %s", strings.Join(known, ", "))
}

// SuggestMissingKey suggests adding a required document key.
func SuggestMissingKey(key, example string) string {
	if example != "" {
		return fmt.Sprintf("add %q to the codec document, e.g. %s", key, example)
	}
	return fmt.Sprintf("add %q to the codec document", key)
}

// levenshteinDistance computes the edit distance between two strings, used
// for emitter name suggestions.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}
	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len1][len2]
}
