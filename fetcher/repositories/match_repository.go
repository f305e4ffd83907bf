package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguedash/pkg/cache"
	"leaguedash/pkg/database/models"
	"leaguedash/pkg/models/match"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type MatchRepository interface {
	GetMatch(ctx context.Context, matchID string) (*match.MatchRecord, error)
	SaveMatch(ctx context.Context, m *match.MatchRecord) error
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Match repository structure.
type matchRepository struct {
	db *gorm.DB
}

// Create a match repository.
func NewMatchRepository(db *gorm.DB) (MatchRepository, error) {
	if db == nil {
		return nil, errors.New("couldn't create the match repository: no database connection")
	}
	return &matchRepository{db: db}, nil
}

// GetMatch loads a snapshot, cache.ErrMatchNotStored when there is none.
func (mr *matchRepository) GetMatch(ctx context.Context, matchID string) (*match.MatchRecord, error) {
	var snapshot models.MatchSnapshot
	err := mr.db.WithContext(ctx).Where("match_id = ?", matchID).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cache.ErrMatchNotStored
		}
		return nil, fmt.Errorf("couldn't get match snapshot %s: %w", matchID, err)
	}

	var m match.MatchRecord
	if err := json.Unmarshal(snapshot.Payload, &m); err != nil {
		return nil, fmt.Errorf("couldn't decode match snapshot %s: %w", matchID, err)
	}
	return &m, nil
}

// SaveMatch writes a snapshot. Matches don't change, an existing snapshot is kept.
func (mr *matchRepository) SaveMatch(ctx context.Context, m *match.MatchRecord) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("couldn't encode match %s: %w", m.MatchID(), err)
	}

	snapshot := &models.MatchSnapshot{
		MatchID:     m.MatchID(),
		QueueID:     m.Info.QueueID,
		GameVersion: m.Info.GameVersion,
		PlatformID:  m.Info.PlatformID,
		EndedAt:     m.EndedAt(),
		Payload:     datatypes.JSON(payload),
	}

	return mr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}},
		DoNothing: true,
	}).Create(snapshot).Error
}

// DeleteEndedBefore removes the snapshots of matches that ended before cutoff.
func (mr *matchRepository) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := mr.db.WithContext(ctx).Where("ended_at < ?", cutoff).Delete(&models.MatchSnapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("couldn't prune match snapshots: %w", result.Error)
	}
	return result.RowsAffected, nil
}
