package testutil

import (
	"context"
	"leaguedash/fetcher/data"
	"leaguedash/pkg/models/match"
	"leaguedash/pkg/models/player"

	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mock implementations of the data fetcher.
// ============================================================================

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchPlayer(ctx context.Context, gameName, tagLine, region string) (*player.PlayerProfile, error) {
	args := m.Called(ctx, gameName, tagLine, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*player.PlayerProfile), args.Error(1)
}

func (m *MockFetcher) FetchAccount(ctx context.Context, gameName, tagLine, region string) (*player.Account, error) {
	args := m.Called(ctx, gameName, tagLine, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*player.Account), args.Error(1)
}

func (m *MockFetcher) FetchRankings(ctx context.Context, puuid, region string) ([]player.RankedEntry, error) {
	args := m.Called(ctx, puuid, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]player.RankedEntry), args.Error(1)
}

func (m *MockFetcher) FetchMatchHistory(ctx context.Context, puuid, region string, offset, count int) ([]string, error) {
	args := m.Called(ctx, puuid, region, offset, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFetcher) FetchMatchDetail(ctx context.Context, matchID, region string) (*match.MatchRecord, error) {
	args := m.Called(ctx, matchID, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*match.MatchRecord), args.Error(1)
}

func (m *MockFetcher) FetchMatchDetails(ctx context.Context, matchIDs []string, region string) []data.DetailResult {
	args := m.Called(ctx, matchIDs, region)
	return args.Get(0).([]data.DetailResult)
}

// ============================================================================
// Mock implementation of the version resolver.
// ============================================================================

type MockVersionResolver struct {
	mock.Mock
}

func (m *MockVersionResolver) Latest() string {
	return m.Called().String(0)
}

func (m *MockVersionResolver) Resolve(explicit string) string {
	return m.Called(explicit).String(0)
}

func (m *MockVersionResolver) ResolveFromMatch(record *match.MatchRecord) string {
	return m.Called(record).String(0)
}
