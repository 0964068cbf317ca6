package ranker

import (
	"strings"

	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/alexanderramin/advisor/internal/textsim"
)

// ScorePrecision is the number of decimal places scores are rounded to.
const ScorePrecision = 2

// ScoredElective pairs an eligible elective with its similarity to the
// student's course history.
type ScoredElective struct {
	Entry domain.CatalogEntry
	// Position is the elective's index in the eligible list, which follows
	// catalog order. It breaks score ties.
	Position int
	Score    float64
}

// QueryDocument joins the non-blank course titles with single spaces, in the
// given order.
func QueryDocument(titles []string) string {
	kept := make([]string, 0, len(titles))
	for _, t := range titles {
		if strings.TrimSpace(t) == "" {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

// ScoreElectives scores every eligible elective title against query. A new
// TF-IDF model is fitted over the query plus these titles on each call.
// An empty query scores every elective 0; no electives yields nil.
func ScoreElectives(query string, eligible []domain.CatalogEntry) []ScoredElective {
	if len(eligible) == 0 {
		return nil
	}

	titles := make([]string, len(eligible))
	for i, e := range eligible {
		titles[i] = e.Title
	}

	var sims []float64
	if strings.TrimSpace(query) != "" {
		sims = textsim.NewVectorizer(textsim.DefaultAnalyzer()).QuerySimilarities(query, titles)
	}

	scored := make([]ScoredElective, len(eligible))
	for i, e := range eligible {
		var s float64
		if sims != nil {
			s = textsim.Round(sims[i], ScorePrecision)
		}
		scored[i] = ScoredElective{Entry: e, Position: i, Score: s}
	}
	return scored
}
