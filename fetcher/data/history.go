package data

import (
	"context"
	"slices"
	"sync"
)

// HistorySource returns one window of match ids.
type HistorySource interface {
	FetchMatchHistory(ctx context.Context, puuid, region string, offset, count int) ([]string, error)
}

// MatchHistory accumulates the match ids of a player page by page.
// Pages are requested in increasing offset order, ids already present are skipped.
type MatchHistory struct {
	source   HistorySource
	puuid    string
	region   string
	pageSize int

	mu        sync.Mutex
	ids       []string
	seen      map[string]struct{}
	offset    int
	exhausted bool
}

// NewMatchHistory creates an empty history.
func NewMatchHistory(source HistorySource, puuid, region string, pageSize int) *MatchHistory {
	if pageSize <= 0 {
		pageSize = 20
	}

	return &MatchHistory{
		source:   source,
		puuid:    puuid,
		region:   region,
		pageSize: pageSize,
		seen:     make(map[string]struct{}),
	}
}

// LoadMore requests the next window and returns the ids it added.
// A page shorter than the page size marks the history as exhausted.
func (h *MatchHistory) LoadMore(ctx context.Context) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.loadMore(ctx)
}

func (h *MatchHistory) loadMore(ctx context.Context) ([]string, error) {
	if h.exhausted {
		return nil, nil
	}

	page, err := h.source.FetchMatchHistory(ctx, h.puuid, h.region, h.offset, h.pageSize)
	if err != nil {
		return nil, err
	}

	added := make([]string, 0, len(page))
	for _, id := range page {
		if _, ok := h.seen[id]; ok {
			continue
		}
		h.seen[id] = struct{}{}
		h.ids = append(h.ids, id)
		added = append(added, id)
	}

	h.offset += len(page)
	if len(page) < h.pageSize {
		h.exhausted = true
	}

	return added, nil
}

// Window returns count ids from offset, loading pages until they are available
// or the history is exhausted. hasMore reports whether ids exist past the window.
func (h *MatchHistory) Window(ctx context.Context, offset, count int) (ids []string, hasMore bool, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for len(h.ids) < offset+count && !h.exhausted {
		if _, err := h.loadMore(ctx); err != nil {
			return nil, false, err
		}
	}

	// One more page tells whether the window is the last one.
	if len(h.ids) == offset+count && !h.exhausted {
		if _, err := h.loadMore(ctx); err != nil {
			return nil, false, err
		}
	}

	start := min(offset, len(h.ids))
	end := min(offset+count, len(h.ids))
	return slices.Clone(h.ids[start:end]), len(h.ids) > end, nil
}

// IDs returns a copy of the ids loaded so far.
func (h *MatchHistory) IDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return slices.Clone(h.ids)
}

// Exhausted reports whether the backend has no older matches.
func (h *MatchHistory) Exhausted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.exhausted
}
