package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/advisor/internal/service"
)

func TestObserver_Recommend(t *testing.T) {
	success := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("SUCCESS"))
	failed := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(statusError))

	obs := Observer{}
	obs.ObserveUseCase(context.Background(), service.UseCaseEvent{
		Name:     "recommend",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"status": "SUCCESS"},
	})
	obs.ObserveUseCase(context.Background(), service.UseCaseEvent{
		Name: "recommend",
		Err:  errors.New("db closed"),
	})

	assert.Equal(t, success+1, testutil.ToFloat64(RecommendationsTotal.WithLabelValues("SUCCESS")))
	assert.Equal(t, failed+1, testutil.ToFloat64(RecommendationsTotal.WithLabelValues(statusError)))
}

func TestObserver_Import(t *testing.T) {
	rows := testutil.ToFloat64(HistoryRowsImported)
	errs := testutil.ToFloat64(HistoryImportErrors)

	obs := Observer{}
	obs.ObserveUseCase(context.Background(), service.UseCaseEvent{
		Name:    "import-history",
		Success: true,
		Fields:  map[string]any{"rows": 42},
	})
	obs.ObserveUseCase(context.Background(), service.UseCaseEvent{
		Name: "import-history",
		Err:  errors.New("missing columns"),
	})

	assert.Equal(t, rows+42, testutil.ToFloat64(HistoryRowsImported))
	assert.Equal(t, errs+1, testutil.ToFloat64(HistoryImportErrors))
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/healthz", "200"))
	RecordAPIRequest("GET", "/healthz", "200", time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/healthz", "200")))
}
