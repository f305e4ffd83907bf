package data

import (
	"context"
	"leaguedash/pkg/models/match"

	"golang.org/x/sync/errgroup"
)

// DetailResult is the outcome of one match of a batch. Exactly one of Match and Err is set.
type DetailResult struct {
	MatchID string
	Match   *match.MatchRecord
	Err     error
}

// FetchMatchDetails fetches every match concurrently, bounded by the configured
// concurrency. A failing match doesn't fail the batch, results keep the order of ids.
func (f *Fetcher) FetchMatchDetails(ctx context.Context, matchIDs []string, region string) []DetailResult {
	results := make([]DetailResult, len(matchIDs))

	var g errgroup.Group
	g.SetLimit(f.concurrency)

	for i, id := range matchIDs {
		results[i].MatchID = id
		g.Go(func() error {
			m, err := f.FetchMatchDetail(ctx, id, region)
			results[i].Match = m
			results[i].Err = err
			return nil
		})
	}

	// Every goroutine returns nil.
	_ = g.Wait()

	return results
}
