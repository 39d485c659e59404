package service

import (
	"context"
	"errors"
	"testing"

	"donation-service/internal/entity"
)

type fakeDonationStore struct {
	donations []entity.Donation
	nextID    int
}

func (f *fakeDonationStore) Create(_ context.Context, donation *entity.Donation) (*entity.Donation, error) {
	f.nextID++
	donation.ID = f.nextID
	f.donations = append(f.donations, *donation)
	return donation, nil
}

func (f *fakeDonationStore) Delete(_ context.Context, id int) error {
	for i := range f.donations {
		if f.donations[i].ID == id {
			f.donations = append(f.donations[:i], f.donations[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

func (f *fakeDonationStore) Count(_ context.Context) (int, error) {
	return len(f.donations), nil
}

func TestRecordValidation(t *testing.T) {
	svc := NewDonationService(&fakeDonationStore{}, nil, nil)
	ctx := context.Background()

	cases := map[string]*entity.Donation{
		"missing user":     {CampaignID: 1, Amount: 10, Message: "hi"},
		"missing campaign": {UserID: 1, Amount: 10, Message: "hi"},
		"missing message":  {UserID: 1, CampaignID: 1, Amount: 10},
		"zero amount":      {UserID: 1, CampaignID: 1, Amount: 0, Message: "hi"},
		"negative amount":  {UserID: 1, CampaignID: 1, Amount: -5, Message: "hi"},
	}
	for name, donation := range cases {
		if _, err := svc.Record(ctx, donation); !errors.Is(err, entity.ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestRecordPersistsDonation(t *testing.T) {
	store := &fakeDonationStore{}
	svc := NewDonationService(store, nil, nil)

	created, err := svc.Record(context.Background(), &entity.Donation{
		UserID:     1,
		CampaignID: 2,
		Amount:     50,
		Message:    "keep going",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned donation id")
	}

	count, err := svc.CountDonations(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 donation, got %d", count)
	}
}

func TestRemoveUnknownDonation(t *testing.T) {
	svc := NewDonationService(&fakeDonationStore{}, nil, nil)

	err := svc.Remove(context.Background(), 42)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
