package data

import (
	"context"
	"leaguedash/pkg/models/match"
	"leaguedash/pkg/models/player"

	"github.com/stretchr/testify/mock"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) GetPlayer(ctx context.Context, gameName, tagLine, region string) (*player.PlayerProfile, error) {
	args := m.Called(ctx, gameName, tagLine, region)
	profile, _ := args.Get(0).(*player.PlayerProfile)
	return profile, args.Error(1)
}

func (m *mockBackend) GetAccount(ctx context.Context, gameName, tagLine, region string) (*player.Account, error) {
	args := m.Called(ctx, gameName, tagLine, region)
	account, _ := args.Get(0).(*player.Account)
	return account, args.Error(1)
}

func (m *mockBackend) GetSummonerByPuuid(ctx context.Context, puuid, region string) (*player.Summoner, error) {
	args := m.Called(ctx, puuid, region)
	summoner, _ := args.Get(0).(*player.Summoner)
	return summoner, args.Error(1)
}

func (m *mockBackend) GetRankings(ctx context.Context, summonerID, region string) ([]player.RankedEntry, error) {
	args := m.Called(ctx, summonerID, region)
	entries, _ := args.Get(0).([]player.RankedEntry)
	return entries, args.Error(1)
}

func (m *mockBackend) GetMatchIDs(ctx context.Context, puuid, region string, offset, count int) ([]string, error) {
	args := m.Called(ctx, puuid, region, offset, count)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockBackend) GetMatch(ctx context.Context, matchID, region string) (*match.MatchRecord, error) {
	args := m.Called(ctx, matchID, region)
	record, _ := args.Get(0).(*match.MatchRecord)
	return record, args.Error(1)
}

type mockMatchStore struct {
	mock.Mock
}

func (m *mockMatchStore) GetMatch(ctx context.Context, matchID string) (*match.MatchRecord, error) {
	args := m.Called(ctx, matchID)
	record, _ := args.Get(0).(*match.MatchRecord)
	return record, args.Error(1)
}

func (m *mockMatchStore) SaveMatch(ctx context.Context, record *match.MatchRecord) error {
	return m.Called(ctx, record).Error(0)
}

type mockHistorySource struct {
	mock.Mock
}

func (m *mockHistorySource) FetchMatchHistory(ctx context.Context, puuid, region string, offset, count int) ([]string, error) {
	args := m.Called(ctx, puuid, region, offset, count)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
