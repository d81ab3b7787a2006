package usecase

import (
	"context"

	"github.com/podtrends/trenddeck/internal/application/settings"
	"github.com/podtrends/trenddeck/internal/domain/trend"
)

// TrendAPI abstracts the backend trend endpoints.
type TrendAPI interface {
	ListItems(ctx context.Context, limit int) ([]trend.Item, error)
	GetItem(ctx context.Context, id int) (*trend.Item, error)
	RunIngest(ctx context.Context, urls []string, maxItemsPerFeed int, runAI bool) (string, error)
}

// TrendService coordinates item loading and ingestion kickoff.
type TrendService struct {
	API       TrendAPI
	Ingest    settings.IngestConfig
	ItemLimit int
}

// NewTrendService constructs a TrendService.
func NewTrendService(api TrendAPI, ingest settings.IngestConfig, itemLimit int) TrendService {
	return TrendService{API: api, Ingest: ingest, ItemLimit: itemLimit}
}

// Refresh loads the current item set from the backend. The result replaces
// any previously loaded set wholesale.
func (s TrendService) Refresh(ctx context.Context) ([]trend.Item, error) {
	return s.API.ListItems(ctx, s.ItemLimit)
}

// Detail loads a single item by id.
func (s TrendService) Detail(ctx context.Context, id int) (*trend.Item, error) {
	return s.API.GetItem(ctx, id)
}

// StartIngestion queues one ingestion run and returns the server task id.
// Completion is observed via the realtime channel or a manual refresh; the
// task id is only ever displayed, never polled.
func (s TrendService) StartIngestion(ctx context.Context) (string, error) {
	return s.API.RunIngest(ctx, s.Ingest.CleanSources(), s.Ingest.MaxItemsPerFeed, s.Ingest.RunAI)
}
