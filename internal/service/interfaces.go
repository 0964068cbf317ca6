package service

import (
	"context"

	"github.com/alexanderramin/advisor/internal/catalog"
	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/repository"
)

type AdvisorService interface {
	Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error)
	Catalog() *catalog.Catalog
}

// ImportResult summarizes a completed history import.
type ImportResult struct {
	Import   *repository.HistoryImport
	Students int
}

type ImportService interface {
	ImportHistory(ctx context.Context, path string) (*ImportResult, error)
	ListImports(ctx context.Context) ([]*repository.HistoryImport, error)
}
