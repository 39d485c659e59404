package repository

import (
	"context"
	"database/sql"

	"donation-service/internal/entity"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db}
}

// ListDonations joins every donation with its campaign and donor, newest
// donation first. Inner-join semantics: a donation row always has both.
func (r *ReportRepository) ListDonations(ctx context.Context) ([]entity.DonationDetail, error) {
	query := `
		SELECT d.id, d.amount, d.message, d.date, c.title, c.image, u.name, u.photo
		FROM donations d
		JOIN identities u ON d.user_id = u.id AND u.space = 'user'
		JOIN campaigns c ON d.campaign_id = c.id
		ORDER BY d.date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	details, err := scanDonationDetails(rows)
	if err != nil {
		return nil, translate(err)
	}

	return details, nil
}

func (r *ReportRepository) ListDonationsByUser(ctx context.Context, userID int) ([]entity.DonationDetail, error) {
	query := `
		SELECT d.id, d.amount, d.message, d.date, c.title, c.image, u.name, u.photo
		FROM donations d
		JOIN identities u ON d.user_id = u.id AND u.space = 'user'
		JOIN campaigns c ON d.campaign_id = c.id
		WHERE d.user_id = ?
		ORDER BY d.date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	details, err := scanDonationDetails(rows)
	if err != nil {
		return nil, translate(err)
	}

	return details, nil
}

// Leaderboard aggregates donations per donor, largest total first. Exact
// ties are broken by ascending donor id so the ranking is a total order.
// Ranks are assigned by the caller.
func (r *ReportRepository) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	query := `
		SELECT u.id, u.name, u.photo,
			SUM(d.amount), COUNT(d.id), MAX(d.date), COUNT(DISTINCT d.campaign_id)
		FROM donations d
		JOIN identities u ON d.user_id = u.id AND u.space = 'user'
		GROUP BY u.id, u.name, u.photo
		ORDER BY SUM(d.amount) DESC, u.id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var entries []entity.LeaderboardEntry
	for rows.Next() {
		entry := entity.LeaderboardEntry{}
		err := rows.Scan(&entry.UserID, &entry.ContributorName, &entry.Photo,
			&entry.TotalDonations, &entry.NumberOfDonations, &entry.LastDonationDate, &entry.CampaignsSupported)
		if err != nil {
			return nil, translate(err)
		}
		entries = append(entries, entry)
	}

	return entries, translate(rows.Err())
}

func scanDonationDetails(rows *sql.Rows) ([]entity.DonationDetail, error) {
	var details []entity.DonationDetail
	for rows.Next() {
		detail := entity.DonationDetail{}
		err := rows.Scan(&detail.ID, &detail.Amount, &detail.Message, &detail.Date,
			&detail.CampaignTitle, &detail.CampaignImage, &detail.DonorName, &detail.DonorPhoto)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, rows.Err()
}
