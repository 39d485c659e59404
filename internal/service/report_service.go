package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"donation-service/internal/entity"
)

const (
	leaderboardCacheKey = "leaderboard"
	leaderboardCacheTTL = time.Minute
)

// ReportStore is the read-only aggregation slice over the ledgers.
type ReportStore interface {
	ListDonations(ctx context.Context) ([]entity.DonationDetail, error)
	ListDonationsByUser(ctx context.Context, userID int) ([]entity.DonationDetail, error)
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type ReportService struct {
	reports ReportStore
	rdb     *redis.Client
}

// NewReportService creates a new instance of ReportService. rdb may be nil,
// which disables the leaderboard cache.
func NewReportService(reports ReportStore, rdb *redis.Client) *ReportService {
	return &ReportService{
		reports: reports,
		rdb:     rdb,
	}
}

func (s *ReportService) ListDonations(ctx context.Context) ([]entity.DonationDetail, error) {
	details, err := s.reports.ListDonations(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing donations")
		return nil, err
	}

	return details, nil
}

// ListDonationsForUser returns the user's donation history with inner-join
// semantics: users with no donations get an empty list.
func (s *ReportService) ListDonationsForUser(ctx context.Context, userID int) ([]entity.DonationDetail, error) {
	details, err := s.reports.ListDonationsByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing donations for user %d", userID)
		return nil, err
	}

	return details, nil
}

// Leaderboard ranks contributors by total donated. The result is served
// cache-aside from Redis; donation mutations invalidate it.
func (s *ReportService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, leaderboardCacheKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msg("Error reading leaderboard cache")
		}
		if cached != "" {
			var entries []entity.LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
			logger.Warn().Msg("Dropping unreadable leaderboard cache entry")
		}
	}

	entries, err := s.reports.Leaderboard(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error building leaderboard")
		return nil, err
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if s.rdb != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			err = s.rdb.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL).Err()
		}
		if err != nil {
			logger.Error().Err(err).Msg("Error writing leaderboard cache")
		}
	}

	return entries, nil
}
