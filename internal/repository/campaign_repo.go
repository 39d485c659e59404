package repository

import (
	"context"
	"database/sql"

	"donation-service/internal/entity"
)

type CampaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) (*entity.Campaign, error) {
	query := `INSERT INTO campaigns (title, description, goal, start_date, end_date, status, image) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, campaign.Title, campaign.Description, campaign.Goal, campaign.StartDate, campaign.EndDate, campaign.Status, campaign.Image)
	if err != nil {
		return nil, translate(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, translate(err)
	}

	campaign.ID = int(id)
	return campaign, nil
}

func (r *CampaignRepository) List(ctx context.Context) ([]entity.Campaign, error) {
	query := `SELECT id, title, description, goal, start_date, end_date, status, raised, image FROM campaigns ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	campaigns, err := scanCampaigns(rows)
	if err != nil {
		return nil, translate(err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) SetStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE campaigns SET status = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, status, id)
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

// RecomputeRaised re-derives every campaign's raised amount from its
// donations and returns the refreshed set. The update and the read run in
// one transaction so the returned rows match what was persisted.
func (r *CampaignRepository) RecomputeRaised(ctx context.Context) ([]entity.Campaign, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, translate(err)
	}

	updateQuery := `
		UPDATE campaigns
		SET raised = (
			SELECT COALESCE(SUM(d.amount), 0)
			FROM donations d
			WHERE d.campaign_id = campaigns.id
		)`
	_, err = tx.ExecContext(ctx, updateQuery)
	if err != nil {
		tx.Rollback()
		return nil, translate(err)
	}

	fetchQuery := `SELECT id, title, description, goal, start_date, end_date, status, raised, image FROM campaigns ORDER BY id DESC`
	rows, err := tx.QueryContext(ctx, fetchQuery)
	if err != nil {
		tx.Rollback()
		return nil, translate(err)
	}

	campaigns, err := scanCampaigns(rows)
	rows.Close()
	if err != nil {
		tx.Rollback()
		return nil, translate(err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, translate(err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM campaigns GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, translate(err)
		}
		counts[status] = count
	}

	return counts, translate(rows.Err())
}

func (r *CampaignRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(id) FROM campaigns`
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, translate(err)
	}

	return count, nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM campaigns WHERE id = ?`
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

func scanCampaigns(rows *sql.Rows) ([]entity.Campaign, error) {
	var campaigns []entity.Campaign
	for rows.Next() {
		campaign := entity.Campaign{}
		err := rows.Scan(&campaign.ID, &campaign.Title, &campaign.Description, &campaign.Goal,
			&campaign.StartDate, &campaign.EndDate, &campaign.Status, &campaign.Raised, &campaign.Image)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}
