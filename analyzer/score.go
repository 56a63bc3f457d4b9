package analyzer

import "fmt"

// Score rates a run as floor(100 × minLen / visited).
//
// A player who walks only the optimal route scores 100; detours lower the
// score. Values above 100 are possible when visited < minLen (e.g. Visited
// flags cleared mid-run) and are returned as is.
func Score(minLen, visited int) (int, error) {
	if minLen < 0 || visited < 0 {
		return 0, fmt.Errorf("%s: minLen=%d visited=%d: %w", methodScore, minLen, visited, ErrNegativeCount)
	}
	if visited == 0 {
		return 0, fmt.Errorf("%s: %w", methodScore, ErrDivisionByZero)
	}

	return 100 * minLen / visited, nil
}
