package service

import (
	"context"
	"fmt"

	"donation-service/internal/entity"
)

// CampaignStore is the slice of the campaign ledger the service needs.
type CampaignStore interface {
	Create(ctx context.Context, campaign *entity.Campaign) (*entity.Campaign, error)
	List(ctx context.Context) ([]entity.Campaign, error)
	SetStatus(ctx context.Context, id int, status string) error
	RecomputeRaised(ctx context.Context) ([]entity.Campaign, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int) error
}

type CampaignService struct {
	campaigns CampaignStore
}

// NewCampaignService creates a new instance of CampaignService.
func NewCampaignService(campaigns CampaignStore) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, campaign *entity.Campaign) (*entity.Campaign, error) {
	if campaign.Title == "" {
		return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if campaign.Goal <= 0 {
		return nil, fmt.Errorf("%w: goal amount must be positive", entity.ErrValidation)
	}
	if campaign.StartDate.IsZero() || campaign.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", entity.ErrValidation)
	}
	if campaign.Status == "" {
		campaign.Status = entity.CampaignActive
	}
	if campaign.Status != entity.CampaignActive && campaign.Status != entity.CampaignInactive {
		return nil, fmt.Errorf("%w: status must be active or inactive", entity.ErrValidation)
	}

	created, err := s.campaigns.Create(ctx, campaign)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating campaign")
		return nil, err
	}

	return created, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context) ([]entity.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing campaigns")
		return nil, err
	}

	return campaigns, nil
}

func (s *CampaignService) UpdateStatus(ctx context.Context, id int, status string) error {
	if status != entity.CampaignActive && status != entity.CampaignInactive {
		return fmt.Errorf("%w: status must be active or inactive", entity.ErrValidation)
	}

	err := s.campaigns.SetStatus(ctx, id, status)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating status for campaign %d", id)
		return err
	}

	return nil
}

// RecomputeRaised re-derives raised amounts for every campaign. A campaign
// with no donations ends at zero, not null.
func (s *CampaignService) RecomputeRaised(ctx context.Context) ([]entity.Campaign, error) {
	campaigns, err := s.campaigns.RecomputeRaised(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error recomputing raised amounts")
		return nil, err
	}

	return campaigns, nil
}

// CountByStatus always reports both statuses, zero-filled when absent.
func (s *CampaignService) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts, err := s.campaigns.CountByStatus(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting campaign statuses")
		return nil, err
	}

	result := map[string]int{
		entity.CampaignActive:   0,
		entity.CampaignInactive: 0,
	}
	for status, count := range counts {
		if _, ok := result[status]; ok {
			result[status] = count
		}
	}

	return result, nil
}

func (s *CampaignService) CountCampaigns(ctx context.Context) (int, error) {
	count, err := s.campaigns.Count(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting campaigns")
		return 0, err
	}

	return count, nil
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, id int) error {
	err := s.campaigns.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting campaign %d", id)
		return err
	}

	return nil
}
