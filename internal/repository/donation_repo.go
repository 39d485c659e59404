package repository

import (
	"context"
	"database/sql"

	"donation-service/internal/entity"
)

type DonationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) *DonationRepository {
	return &DonationRepository{db}
}

func (r *DonationRepository) Create(ctx context.Context, donation *entity.Donation) (*entity.Donation, error) {
	query := `INSERT INTO donations (user_id, campaign_id, amount, message) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, donation.UserID, donation.CampaignID, donation.Amount, donation.Message)
	if err != nil {
		return nil, translate(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, translate(err)
	}

	donation.ID = int(id)
	return donation, nil
}

func (r *DonationRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM donations WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translate(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return translate(err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *DonationRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM donations`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, translate(err)
	}

	return count, nil
}
