package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"donation-service/internal/entity"
)

type fakeCampaignStore struct {
	campaigns []entity.Campaign
	donations []entity.Donation
	nextID    int
}

func (f *fakeCampaignStore) Create(_ context.Context, campaign *entity.Campaign) (*entity.Campaign, error) {
	f.nextID++
	campaign.ID = f.nextID
	f.campaigns = append(f.campaigns, *campaign)
	return campaign, nil
}

func (f *fakeCampaignStore) List(_ context.Context) ([]entity.Campaign, error) {
	out := make([]entity.Campaign, 0, len(f.campaigns))
	for i := len(f.campaigns) - 1; i >= 0; i-- {
		out = append(out, f.campaigns[i])
	}
	return out, nil
}

func (f *fakeCampaignStore) SetStatus(_ context.Context, id int, status string) error {
	for i := range f.campaigns {
		if f.campaigns[i].ID == id {
			f.campaigns[i].Status = status
			return nil
		}
	}
	return entity.ErrNotFound
}

func (f *fakeCampaignStore) RecomputeRaised(_ context.Context) ([]entity.Campaign, error) {
	for i := range f.campaigns {
		sum := 0.0
		for _, donation := range f.donations {
			if donation.CampaignID == f.campaigns[i].ID {
				sum += donation.Amount
			}
		}
		f.campaigns[i].Raised = sum
	}
	out := make([]entity.Campaign, len(f.campaigns))
	copy(out, f.campaigns)
	return out, nil
}

func (f *fakeCampaignStore) CountByStatus(_ context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, campaign := range f.campaigns {
		counts[campaign.Status]++
	}
	return counts, nil
}

func (f *fakeCampaignStore) Count(_ context.Context) (int, error) {
	return len(f.campaigns), nil
}

func (f *fakeCampaignStore) Delete(_ context.Context, id int) error {
	for i := range f.campaigns {
		if f.campaigns[i].ID == id {
			f.campaigns = append(f.campaigns[:i], f.campaigns[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

func testCampaign(title, status string) *entity.Campaign {
	return &entity.Campaign{
		Title:     title,
		Goal:      1000,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	svc := NewCampaignService(&fakeCampaignStore{})
	ctx := context.Background()

	cases := map[string]*entity.Campaign{
		"missing title":    {Goal: 100, StartDate: time.Now(), EndDate: time.Now()},
		"nonpositive goal": {Title: "x", Goal: 0, StartDate: time.Now(), EndDate: time.Now()},
		"missing dates":    {Title: "x", Goal: 100},
		"bad status": {
			Title: "x", Goal: 100, StartDate: time.Now(), EndDate: time.Now(), Status: "archived",
		},
	}
	for name, campaign := range cases {
		if _, err := svc.CreateCampaign(ctx, campaign); !errors.Is(err, entity.ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestCreateCampaignDefaultsToActive(t *testing.T) {
	svc := NewCampaignService(&fakeCampaignStore{})

	created, err := svc.CreateCampaign(context.Background(), testCampaign("Clean Water", ""))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != entity.CampaignActive {
		t.Fatalf("expected default status active, got %q", created.Status)
	}
}

func TestRecomputeRaisedSumsDonations(t *testing.T) {
	store := &fakeCampaignStore{}
	svc := NewCampaignService(store)
	ctx := context.Background()

	funded, err := svc.CreateCampaign(ctx, testCampaign("Funded", entity.CampaignActive))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	empty, err := svc.CreateCampaign(ctx, testCampaign("Empty", entity.CampaignActive))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	store.donations = []entity.Donation{
		{CampaignID: funded.ID, Amount: 10},
		{CampaignID: funded.ID, Amount: 15},
	}

	campaigns, err := svc.RecomputeRaised(ctx)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}

	raised := map[int]float64{}
	for _, campaign := range campaigns {
		raised[campaign.ID] = campaign.Raised
	}
	if raised[funded.ID] != 25 {
		t.Fatalf("expected raised 25, got %v", raised[funded.ID])
	}
	if raised[empty.ID] != 0 {
		t.Fatalf("expected raised 0 for campaign without donations, got %v", raised[empty.ID])
	}
}

func TestCountByStatusZeroFills(t *testing.T) {
	store := &fakeCampaignStore{}
	svc := NewCampaignService(store)
	ctx := context.Background()

	for _, status := range []string{entity.CampaignActive, entity.CampaignActive, entity.CampaignInactive} {
		if _, err := svc.CreateCampaign(ctx, testCampaign("c", status)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	counts, err := svc.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("count by status: %v", err)
	}
	if counts[entity.CampaignActive] != 2 || counts[entity.CampaignInactive] != 1 {
		t.Fatalf("expected {active:2 inactive:1}, got %v", counts)
	}

	// Both keys are always present, zero-filled when absent.
	emptySvc := NewCampaignService(&fakeCampaignStore{})
	counts, err = emptySvc.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("count by status: %v", err)
	}
	if counts[entity.CampaignActive] != 0 || counts[entity.CampaignInactive] != 0 {
		t.Fatalf("expected zero-filled counts, got %v", counts)
	}
}

func TestUpdateStatusUnknownCampaign(t *testing.T) {
	svc := NewCampaignService(&fakeCampaignStore{})

	err := svc.UpdateStatus(context.Background(), 99, entity.CampaignInactive)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewCampaignService(&fakeCampaignStore{})

	err := svc.UpdateStatus(context.Background(), 1, "archived")
	if !errors.Is(err, entity.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
