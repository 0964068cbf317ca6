package ranker

import "sort"

// CanonicalSort orders scored electives by:
// 1. Score: higher first
// 2. Position: catalog order
func CanonicalSort(scored []ScoredElective) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Position < b.Position
	})
}

// Top sorts scored in place and returns at most n leading entries.
func Top(scored []ScoredElective, n int) []ScoredElective {
	CanonicalSort(scored)
	if n < 0 {
		n = 0
	}
	if len(scored) > n {
		return scored[:n]
	}
	return scored
}
