package service

import (
	"context"
	"time"

	"github.com/alexanderramin/advisor/internal/catalog"
	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/ranker"
	"github.com/alexanderramin/advisor/internal/repository"
)

type advisorService struct {
	catalog  *catalog.Catalog
	lookup   *StudentLookup
	enricher *ScheduleEnricher
	observer UseCaseObserver
}

// NewAdvisorService builds the recommendation pipeline over a history table
// and an injected catalog. Nothing is cached between calls.
func NewAdvisorService(
	history repository.HistoryRepo,
	cat *catalog.Catalog,
	observers ...UseCaseObserver,
) AdvisorService {
	return &advisorService{
		catalog:  cat,
		lookup:   &StudentLookup{history: history},
		enricher: &ScheduleEnricher{history: history},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *advisorService) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *advisorService) Recommend(ctx context.Context, req contract.RecommendRequest) (resp *contract.RecommendResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"catalog_version": s.catalog.Version(),
	}
	defer func() {
		if resp != nil {
			fields["status"] = string(resp.Status)
			fields["recommendations"] = len(resp.Recommendations)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "recommend",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	sc, err := s.lookup.Load(ctx, req)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		now := startedAt
		if req.Now != nil {
			now = *req.Now
		}
		return NotFoundResponse(now, s.catalog.Version()), nil
	}

	student := SummarizeStudent(sc)
	taken := ExtractSubjectsTaken(sc.Rows)
	candidates := ExcludeTaken(s.catalog.Entries(), taken)
	eligible := FilterEligible(ScoreCandidates(taken, candidates), student.AcademicProgram)
	top := ranker.Top(eligible, contract.MaxRecommendations)
	fields["eligible"] = len(eligible)

	recs, err := s.enricher.Enrich(ctx, top)
	if err != nil {
		return nil, err
	}

	return AssembleResponse(sc.Now, s.catalog.Version(), student, taken, recs), nil
}
