package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"

	"donation-service/internal/entity"
)

// DonationStore is the slice of the donation ledger the service needs.
type DonationStore interface {
	Create(ctx context.Context, donation *entity.Donation) (*entity.Donation, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type DonationService struct {
	donations   DonationStore
	kafkaWriter *kafka.Writer
	rdb         *redis.Client
}

// NewDonationService creates a new instance of DonationService. kafkaWriter
// and rdb may be nil; events and cache invalidation are then skipped.
func NewDonationService(donations DonationStore, kafkaWriter *kafka.Writer, rdb *redis.Client) *DonationService {
	return &DonationService{
		donations:   donations,
		kafkaWriter: kafkaWriter,
		rdb:         rdb,
	}
}

// Record stores a contribution. All fields are required and the amount must
// be strictly positive. On success a donation.recorded event is published so
// raised amounts converge without coupling the request path to a recompute.
func (s *DonationService) Record(ctx context.Context, donation *entity.Donation) (*entity.Donation, error) {
	if donation.UserID <= 0 || donation.CampaignID <= 0 {
		return nil, fmt.Errorf("%w: user_id and campaign_id are required", entity.ErrValidation)
	}
	if donation.Message == "" {
		return nil, fmt.Errorf("%w: message is required", entity.ErrValidation)
	}
	if donation.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", entity.ErrValidation)
	}

	created, err := s.donations.Create(ctx, donation)
	if err != nil {
		logger.Error().Err(err).Msg("Error recording donation")
		return nil, err
	}

	s.invalidateLeaderboard(ctx)

	err = s.publishDonationEvent(ctx, created, "recorded")
	if err != nil {
		logger.Error().Err(err).Msgf("Error publishing event for donation %d", created.ID)
	}

	return created, nil
}

func (s *DonationService) Remove(ctx context.Context, id int) error {
	err := s.donations.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error removing donation %d", id)
		return err
	}

	s.invalidateLeaderboard(ctx)

	err = s.publishDonationEvent(ctx, &entity.Donation{ID: id}, "removed")
	if err != nil {
		logger.Error().Err(err).Msgf("Error publishing event for donation %d", id)
	}

	return nil
}

func (s *DonationService) CountDonations(ctx context.Context) (int, error) {
	count, err := s.donations.Count(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting donations")
		return 0, err
	}

	return count, nil
}

func (s *DonationService) publishDonationEvent(ctx context.Context, donation *entity.Donation, key string) error {
	if s.kafkaWriter == nil {
		return nil
	}

	donationJSON, err := json.Marshal(donation)
	if err != nil {
		return err
	}

	// donation.recorded.1 or donation.removed.1
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("donation.%s.%d", key, donation.ID)),
		Value: donationJSON,
	}

	return s.kafkaWriter.WriteMessages(ctx, msg)
}

func (s *DonationService) invalidateLeaderboard(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, leaderboardCacheKey).Err(); err != nil {
		logger.Error().Err(err).Msg("Error invalidating leaderboard cache")
	}
}
