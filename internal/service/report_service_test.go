package service

import (
	"context"
	"testing"
	"time"

	"donation-service/internal/entity"
)

type fakeReportStore struct {
	details []entity.DonationDetail
	byUser  map[int][]entity.DonationDetail
	entries []entity.LeaderboardEntry
}

func (f *fakeReportStore) ListDonations(_ context.Context) ([]entity.DonationDetail, error) {
	return f.details, nil
}

func (f *fakeReportStore) ListDonationsByUser(_ context.Context, userID int) ([]entity.DonationDetail, error) {
	return f.byUser[userID], nil
}

func (f *fakeReportStore) Leaderboard(_ context.Context) ([]entity.LeaderboardEntry, error) {
	return f.entries, nil
}

func TestLeaderboardAssignsRanks(t *testing.T) {
	store := &fakeReportStore{entries: []entity.LeaderboardEntry{
		{
			UserID:             7,
			ContributorName:    "Alice",
			TotalDonations:     100,
			NumberOfDonations:  3,
			LastDonationDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			CampaignsSupported: 2,
		},
		{
			UserID:             3,
			ContributorName:    "Bob",
			TotalDonations:     50,
			NumberOfDonations:  1,
			LastDonationDate:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			CampaignsSupported: 1,
		},
	}}
	svc := NewReportService(store, nil)

	entries, err := svc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Rank != 1 || entries[0].ContributorName != "Alice" {
		t.Fatalf("expected Alice ranked 1, got %+v", entries[0])
	}
	if entries[1].Rank != 2 || entries[1].ContributorName != "Bob" {
		t.Fatalf("expected Bob ranked 2, got %+v", entries[1])
	}
	if entries[0].NumberOfDonations != 3 || entries[0].CampaignsSupported != 2 {
		t.Fatalf("aggregates altered in transit: %+v", entries[0])
	}
}

func TestListDonationsForUserWithoutDonations(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, nil)

	details, err := svc.ListDonationsForUser(context.Background(), 12)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("expected empty history, got %d rows", len(details))
	}
}
